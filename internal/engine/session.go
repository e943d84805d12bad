package engine

import (
	"context"
	"errors"
	"time"

	"blklauncher/internal/catalog"
)

const racingCategory = "racing"

// PlaySession tracks one open game. Opening reports the new-game quest event;
// closing flushes the elapsed time into the ledger exactly once.
type PlaySession struct {
	Game      catalog.Game
	StartedAt time.Time
	IsNew     bool

	flushed bool
}

// Elapsed returns the session duration so far.
func (ps *PlaySession) Elapsed(now time.Time) time.Duration {
	return now.Sub(ps.StartedAt)
}

// StartSession opens a game. A game with no prior stat entry counts as new and
// drives the try-new-game daily quest.
func (s *Service) StartSession(ctx context.Context, game catalog.Game) (*PlaySession, error) {
	if game.ID == "" {
		return nil, errors.New("game id is required")
	}
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	_, played := stats[game.ID]
	sess := &PlaySession{Game: game, StartedAt: s.now(), IsNew: !played}
	if _, err := s.ReportQuestProgress(ctx, QuestEventNewGame, QuestProgress{IsNew: sess.IsNew}); err != nil {
		return nil, err
	}
	return sess, nil
}

// EndSession closes the session, recording the elapsed time. A second call on
// the same session is a no-op; reopening requires a fresh StartSession.
func (s *Service) EndSession(ctx context.Context, sess *PlaySession) (*PlayResult, error) {
	if sess == nil || sess.flushed {
		return nil, nil
	}
	sess.flushed = true
	return s.Play(ctx, sess.Game, sess.Elapsed(s.now()))
}

// Play records a completed session of the given duration, driving the same
// quest events the interactive viewer does: a first-ever play reports the
// new-game quest and racing-category sessions report their duration toward
// the racing quest.
func (s *Service) Play(ctx context.Context, game catalog.Game, played time.Duration) (*PlayResult, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if _, seen := stats[game.ID]; !seen {
		if _, err := s.ReportQuestProgress(ctx, QuestEventNewGame, QuestProgress{IsNew: true}); err != nil {
			return nil, err
		}
	}
	res, err := s.RecordPlay(ctx, game.ID, played)
	if err != nil {
		return nil, err
	}
	if game.Category == racingCategory {
		if _, err := s.ReportQuestProgress(ctx, QuestEventRacingTime, QuestProgress{Played: played}); err != nil {
			return nil, err
		}
	}
	return res, nil
}
