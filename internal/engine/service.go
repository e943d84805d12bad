// Package engine implements the launcher's profile-scoped progression state:
// profiles, XP and levels, the play ledger, achievements, daily quests and the
// lockdown gate. All state lives in an injected storage.Store; the engine is
// the only writer.
package engine

import (
	"context"
	"strings"
	"time"

	"blklauncher/internal/storage"
)

// Storage keys. Per-profile bases are composed with the active profile id via
// storage.Namespace; the rest are global.
const (
	keyProfiles      = "blkProfiles"
	keyActiveProfile = "blkActiveProfile"
	keyLockdown      = "blk_lockdown"
	keyLocalGames    = "blkLocalGames"

	keyFavorites       = "favorites"
	keyCollections     = "collections"
	keyStats           = "gameStats"
	keyHistory         = "history"
	keyAchievements    = "achievements"
	keyDailyChallenges = "dailyChallenges"
	keyRecentlyPlayed  = "recentlyPlayed"
	keySaveSlots       = "saveSlots"
)

// NotifyFunc receives every level-up, achievement-unlock and quest-completion
// message, exactly one call per event. How it is displayed is the caller's
// business.
type NotifyFunc func(message string)

// Service owns all launcher state operations.
type Service struct {
	store  storage.Store
	notify NotifyFunc
	secret string
	now    func() time.Time
}

func NewService(st storage.Store, notify NotifyFunc) *Service {
	if notify == nil {
		notify = func(string) {}
	}
	return &Service{
		store:  st,
		notify: notify,
		secret: DefaultAdminSecret,
		now:    time.Now,
	}
}

// SetAdminSecret overrides the built-in admin secret. Blank input keeps the
// current secret.
func (s *Service) SetAdminSecret(secret string) {
	if strings.TrimSpace(secret) != "" {
		s.secret = secret
	}
}

// activeKey composes the storage key of a per-profile entity for the active
// profile, creating the default profile first if none exists.
func (s *Service) activeKey(ctx context.Context, base string) (string, error) {
	p, err := s.ActiveProfile(ctx)
	if err != nil {
		return "", err
	}
	return storage.Namespace(base, p.ID), nil
}
