package engine

import (
	"context"
	"errors"
	"strings"
)

// Favorites returns the active profile's favorite game ids, insertion order.
func (s *Service) Favorites(ctx context.Context) ([]string, error) {
	key, err := s.activeKey(ctx, keyFavorites)
	if err != nil {
		return nil, err
	}
	return readJSON[[]string](ctx, s.store, key)
}

// ToggleFavorite adds or removes a game from the favorites and reports the
// resulting count to the daily quest tracker. Returns whether the game is a
// favorite after the toggle.
func (s *Service) ToggleFavorite(ctx context.Context, gameID string) (bool, error) {
	if gameID == "" {
		return false, errors.New("game id is required")
	}
	favs, err := s.Favorites(ctx)
	if err != nil {
		return false, err
	}

	favored := true
	next := make([]string, 0, len(favs)+1)
	for _, id := range favs {
		if id == gameID {
			favored = false
			continue
		}
		next = append(next, id)
	}
	if favored {
		next = append(next, gameID)
	}

	key, err := s.activeKey(ctx, keyFavorites)
	if err != nil {
		return false, err
	}
	if err := writeJSON(ctx, s.store, key, next); err != nil {
		return false, err
	}
	if _, err := s.ReportQuestProgress(ctx, QuestEventFavoriteCount, QuestProgress{Count: len(next)}); err != nil {
		return false, err
	}
	return favored, nil
}

// Collection is a named group of game ids.
type Collection struct {
	Name    string   `json:"name"`
	GameIDs []string `json:"gameIds"`
}

// Collections returns the active profile's collections.
func (s *Service) Collections(ctx context.Context) ([]Collection, error) {
	key, err := s.activeKey(ctx, keyCollections)
	if err != nil {
		return nil, err
	}
	return readJSON[[]Collection](ctx, s.store, key)
}

// SaveCollections replaces the active profile's collections.
func (s *Service) SaveCollections(ctx context.Context, cols []Collection) error {
	for _, c := range cols {
		if strings.TrimSpace(c.Name) == "" {
			return errors.New("collection name is required")
		}
	}
	key, err := s.activeKey(ctx, keyCollections)
	if err != nil {
		return err
	}
	return writeJSON(ctx, s.store, key, cols)
}
