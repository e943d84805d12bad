package engine

import (
	"context"
	"fmt"
	"time"
)

// QuestEventType tags progress events reported to the daily quest tracker.
type QuestEventType string

const (
	// QuestEventRacingTime carries the duration of a racing-game session.
	QuestEventRacingTime QuestEventType = "time_racing"
	// QuestEventFavoriteCount carries the current favorite count.
	QuestEventFavoriteCount QuestEventType = "favorite_count"
	// QuestEventNewGame marks a session of a never-before-played game.
	QuestEventNewGame QuestEventType = "new_game"
)

// QuestProgress is the payload of a quest event; only the field matching the
// event type is read.
type QuestProgress struct {
	Played time.Duration // QuestEventRacingTime
	Count  int           // QuestEventFavoriteCount
	IsNew  bool          // QuestEventNewGame
}

// Challenge is one daily quest. Done only ever flips false to true.
type Challenge struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// DailyChallenges is the calendar-day-scoped challenge set.
type DailyChallenges struct {
	Date       string      `json:"date"`
	Challenges []Challenge `json:"challenges"`
}

// Quest thresholds.
const (
	questRacingTarget   = 5 * time.Minute
	questFavoriteTarget = 2
)

type challengeTemplate struct {
	ID    string
	Text  string
	Event QuestEventType
}

var challengeTemplates = []challengeTemplate{
	{ID: "play_racing", Text: "Play any racing game for 5 minutes.", Event: QuestEventRacingTime},
	{ID: "favorite_two", Text: "Favorite 2 new games.", Event: QuestEventFavoriteCount},
	{ID: "try_new", Text: "Play a game you've never played before.", Event: QuestEventNewGame},
}

func (p QuestProgress) meets(event QuestEventType) bool {
	switch event {
	case QuestEventRacingTime:
		return p.Played >= questRacingTarget
	case QuestEventFavoriteCount:
		return p.Count >= questFavoriteTarget
	case QuestEventNewGame:
		return p.IsNew
	default:
		return false
	}
}

// dayKey is the local calendar-day key challenges are scoped to.
func dayKey(now time.Time) string {
	return now.Local().Format("2006-01-02")
}

// EnsureDailyChallenges returns today's challenge set, regenerating a fresh
// all-incomplete set when the stored one is from another day.
func (s *Service) EnsureDailyChallenges(ctx context.Context) (DailyChallenges, error) {
	key, err := s.activeKey(ctx, keyDailyChallenges)
	if err != nil {
		return DailyChallenges{}, err
	}
	today := dayKey(s.now())
	existing, err := readJSON[DailyChallenges](ctx, s.store, key)
	if err != nil {
		return DailyChallenges{}, err
	}
	if existing.Date == today && len(existing.Challenges) > 0 {
		return existing, nil
	}

	dc := DailyChallenges{Date: today}
	for _, t := range challengeTemplates {
		dc.Challenges = append(dc.Challenges, Challenge{ID: t.ID, Text: t.Text})
	}
	if err := writeJSON(ctx, s.store, key, dc); err != nil {
		return DailyChallenges{}, err
	}
	return dc, nil
}

// ReportQuestProgress feeds one event into today's challenge set. A matching,
// still-incomplete challenge whose threshold is met flips to done, emits one
// notification and awards the fixed quest XP; completed challenges are never
// re-evaluated. The set is persisted only when something flipped.
func (s *Service) ReportQuestProgress(ctx context.Context, event QuestEventType, progress QuestProgress) ([]Challenge, error) {
	dc, err := s.EnsureDailyChallenges(ctx)
	if err != nil {
		return nil, err
	}

	var completed []Challenge
	for i := range dc.Challenges {
		ch := &dc.Challenges[i]
		if ch.Done {
			continue
		}
		tmpl, ok := templateFor(ch.ID)
		if !ok || tmpl.Event != event || !progress.meets(event) {
			continue
		}
		ch.Done = true
		completed = append(completed, *ch)
		s.notify(fmt.Sprintf("Daily quest complete: %s", ch.Text))
		if _, err := s.AddXP(ctx, QuestXP); err != nil {
			return nil, err
		}
	}

	if len(completed) > 0 {
		key, err := s.activeKey(ctx, keyDailyChallenges)
		if err != nil {
			return nil, err
		}
		if err := writeJSON(ctx, s.store, key, dc); err != nil {
			return nil, err
		}
	}
	return completed, nil
}

func templateFor(id string) (challengeTemplate, bool) {
	for _, t := range challengeTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return challengeTemplate{}, false
}
