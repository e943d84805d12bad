package engine

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// GameStat is the per-game play record for one profile. Timestamps and
// durations are stored as unix milliseconds, matching the persisted shape.
type GameStat struct {
	Plays      int   `json:"plays"`
	LastPlayed int64 `json:"lastPlayed"`
	TotalTime  int64 `json:"totalTime"`
}

// HistoryEntry is one completed play session, newest first.
type HistoryEntry struct {
	GameID   string `json:"gameId"`
	At       int64  `json:"at"`
	Duration int64  `json:"duration"`
}

const (
	maxHistoryEntries = 200
	maxRecentlyPlayed = 20
)

// PlayResult reports what one recorded play changed.
type PlayResult struct {
	GameID   string
	Stat     GameStat
	XP       *XPResult
	Unlocked []AchievementRule
}

// Stats returns the active profile's per-game stats. The snapshot is fresh on
// every call; mutating it does not touch stored state.
func (s *Service) Stats(ctx context.Context) (map[string]GameStat, error) {
	key, err := s.activeKey(ctx, keyStats)
	if err != nil {
		return nil, err
	}
	stats, err := readJSON[map[string]GameStat](ctx, s.store, key)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = map[string]GameStat{}
	}
	return stats, nil
}

// History returns the session history, newest first.
func (s *Service) History(ctx context.Context) ([]HistoryEntry, error) {
	key, err := s.activeKey(ctx, keyHistory)
	if err != nil {
		return nil, err
	}
	return readJSON[[]HistoryEntry](ctx, s.store, key)
}

// RecentlyPlayed returns game ids, newest first, deduplicated.
func (s *Service) RecentlyPlayed(ctx context.Context) ([]string, error) {
	key, err := s.activeKey(ctx, keyRecentlyPlayed)
	if err != nil {
		return nil, err
	}
	return readJSON[[]string](ctx, s.store, key)
}

// TopGames returns up to n game ids ordered by play count, most played first.
func (s *Service) TopGames(ctx context.Context, n int) ([]string, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if stats[ids[i]].Plays != stats[ids[j]].Plays {
			return stats[ids[i]].Plays > stats[ids[j]].Plays
		}
		return ids[i] < ids[j]
	})
	if n > 0 && len(ids) > n {
		ids = ids[:n]
	}
	return ids, nil
}

// RecordPlay records one finished session for the active profile: bump the
// game's stat entry, move it to the front of recently-played, prepend a
// history entry, award the fixed play XP, then sweep the achievement rules
// over the updated stats. Steps always run in this order; there is no partial
// path.
func (s *Service) RecordPlay(ctx context.Context, gameID string, played time.Duration) (*PlayResult, error) {
	if gameID == "" {
		return nil, fmt.Errorf("game id is required")
	}
	if played < 0 {
		return nil, fmt.Errorf("play duration must not be negative, got %v", played)
	}
	now := s.now()

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	st := stats[gameID]
	st.Plays++
	st.LastPlayed = now.UnixMilli()
	st.TotalTime += played.Milliseconds()
	stats[gameID] = st
	statsKey, err := s.activeKey(ctx, keyStats)
	if err != nil {
		return nil, err
	}
	if err := writeJSON(ctx, s.store, statsKey, stats); err != nil {
		return nil, err
	}

	recent, err := s.RecentlyPlayed(ctx)
	if err != nil {
		return nil, err
	}
	next := make([]string, 0, len(recent)+1)
	next = append(next, gameID)
	for _, id := range recent {
		if id != gameID {
			next = append(next, id)
		}
	}
	if len(next) > maxRecentlyPlayed {
		next = next[:maxRecentlyPlayed]
	}
	recentKey, err := s.activeKey(ctx, keyRecentlyPlayed)
	if err != nil {
		return nil, err
	}
	if err := writeJSON(ctx, s.store, recentKey, next); err != nil {
		return nil, err
	}

	hist, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	hist = append([]HistoryEntry{{GameID: gameID, At: now.UnixMilli(), Duration: played.Milliseconds()}}, hist...)
	if len(hist) > maxHistoryEntries {
		hist = hist[:maxHistoryEntries]
	}
	histKey, err := s.activeKey(ctx, keyHistory)
	if err != nil {
		return nil, err
	}
	if err := writeJSON(ctx, s.store, histKey, hist); err != nil {
		return nil, err
	}

	xp, err := s.AddXP(ctx, PlayXP)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.EvaluateAchievements(ctx, stats)
	if err != nil {
		return nil, err
	}

	return &PlayResult{GameID: gameID, Stat: st, XP: xp, Unlocked: unlocked}, nil
}
