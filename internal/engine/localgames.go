package engine

import (
	"context"
	"errors"
	"strings"

	"blklauncher/internal/catalog"
)

// LocalGames returns the user-added catalog extension. The list is global, not
// per-profile.
func (s *Service) LocalGames(ctx context.Context) ([]catalog.Game, error) {
	return readJSON[[]catalog.Game](ctx, s.store, keyLocalGames)
}

// AddLocalGame appends a user-local game to the catalog extension. Title and
// URL are required; a blank id is derived from the title. Nothing is written
// when validation fails.
func (s *Service) AddLocalGame(ctx context.Context, g catalog.Game) (catalog.Game, error) {
	g.Title = strings.TrimSpace(g.Title)
	g.URL = strings.TrimSpace(g.URL)
	if g.Title == "" {
		return catalog.Game{}, errors.New("game title is required")
	}
	if g.URL == "" {
		return catalog.Game{}, errors.New("game URL is required")
	}
	if strings.TrimSpace(g.ID) == "" {
		g.ID = slugify(g.Title)
	}

	games, err := s.LocalGames(ctx)
	if err != nil {
		return catalog.Game{}, err
	}
	for _, existing := range games {
		if existing.ID == g.ID {
			return catalog.Game{}, errors.New("a game with id " + g.ID + " already exists")
		}
	}
	games = append(games, g)
	if err := writeJSON(ctx, s.store, keyLocalGames, games); err != nil {
		return catalog.Game{}, err
	}
	return g, nil
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
