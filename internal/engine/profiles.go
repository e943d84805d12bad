package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Profile is a named player identity. Every per-profile entity is stored under
// a key composed from the profile id; exactly one profile is active at a time.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Theme string `json:"theme,omitempty"`
	XP    int    `json:"xp"`
	Level int    `json:"level"`
	Title string `json:"title"`
}

const (
	DefaultProfileID   = "default"
	DefaultProfileName = "Guest"
	defaultTheme       = "dark"
)

// ProfilePatch shallow-merges into the active profile; nil fields are left
// untouched.
type ProfilePatch struct {
	Name  *string
	Theme *string
	XP    *int
	Level *int
	Title *string
}

// Profiles returns all profiles in insertion order.
func (s *Service) Profiles(ctx context.Context) ([]Profile, error) {
	return readJSON[[]Profile](ctx, s.store, keyProfiles)
}

// EnsureDefaultProfile creates the default profile and marks it active when
// the profile list is empty. Idempotent.
func (s *Service) EnsureDefaultProfile(ctx context.Context) (Profile, error) {
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return Profile{}, err
	}
	if len(profiles) > 0 {
		return profiles[0], nil
	}
	def := Profile{
		ID:    DefaultProfileID,
		Name:  DefaultProfileName,
		Theme: defaultTheme,
		XP:    0,
		Level: 1,
		Title: TitleRookie,
	}
	if err := writeJSON(ctx, s.store, keyProfiles, []Profile{def}); err != nil {
		return Profile{}, err
	}
	if err := writeJSON(ctx, s.store, keyActiveProfile, def.ID); err != nil {
		return Profile{}, err
	}
	return def, nil
}

// ActiveProfile resolves the active profile, creating the default one first if
// needed. An active pointer that matches no profile falls back to the first
// profile in the list.
func (s *Service) ActiveProfile(ctx context.Context) (Profile, error) {
	if _, err := s.EnsureDefaultProfile(ctx); err != nil {
		return Profile{}, err
	}
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return Profile{}, err
	}
	id, err := readJSON[string](ctx, s.store, keyActiveProfile)
	if err != nil {
		return Profile{}, err
	}
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return profiles[0], nil
}

// SetActiveProfile records the given id as active. Callers are responsible for
// refreshing anything derived from the profile namespace.
func (s *Service) SetActiveProfile(ctx context.Context, id string) error {
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if p.ID == id {
			return writeJSON(ctx, s.store, keyActiveProfile, id)
		}
	}
	return errors.New("unknown profile id: " + id)
}

// CreateProfile appends a new profile with default progression and makes it
// active.
func (s *Service) CreateProfile(ctx context.Context, name string) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, errors.New("profile name is required")
	}
	if _, err := s.EnsureDefaultProfile(ctx); err != nil {
		return Profile{}, err
	}
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return Profile{}, err
	}
	p := Profile{
		ID:    "p-" + uuid.NewString(),
		Name:  name,
		Theme: defaultTheme,
		XP:    0,
		Level: 1,
		Title: TitleRookie,
	}
	profiles = append(profiles, p)
	if err := writeJSON(ctx, s.store, keyProfiles, profiles); err != nil {
		return Profile{}, err
	}
	if err := writeJSON(ctx, s.store, keyActiveProfile, p.ID); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// UpdateProfile merges patch fields into the active profile. A missing active
// profile is a silent no-op.
func (s *Service) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return err
	}
	id, err := readJSON[string](ctx, s.store, keyActiveProfile)
	if err != nil {
		return err
	}
	for i := range profiles {
		if profiles[i].ID != id {
			continue
		}
		if patch.Name != nil {
			profiles[i].Name = *patch.Name
		}
		if patch.Theme != nil {
			profiles[i].Theme = *patch.Theme
		}
		if patch.XP != nil {
			profiles[i].XP = *patch.XP
		}
		if patch.Level != nil {
			profiles[i].Level = *patch.Level
		}
		if patch.Title != nil {
			profiles[i].Title = *patch.Title
		}
		return writeJSON(ctx, s.store, keyProfiles, profiles)
	}
	return nil
}
