package engine

import (
	"context"
	"fmt"
	"time"
)

// RuleKind tags how an achievement rule is checked.
type RuleKind string

const (
	// RuleAnyPlay is satisfied once any game has at least one play.
	RuleAnyPlay RuleKind = "any_play"
	// RuleGameTotalTime is satisfied when one specific game reaches a total
	// play time.
	RuleGameTotalTime RuleKind = "game_total_time"
	// RuleDistinctGames is satisfied when enough different games have stats.
	RuleDistinctGames RuleKind = "distinct_games"
)

// AchievementRule is a declarative achievement definition. Runtime state is
// only the per-profile set of unlocked ids.
type AchievementRule struct {
	ID          string
	Name        string
	Description string
	Kind        RuleKind

	// Threshold parameters, meaningful per kind.
	GameID       string
	MinTotalTime time.Duration
	MinDistinct  int
}

// AchievementRules is the static rule table, evaluated in order on every
// sweep.
var AchievementRules = []AchievementRule{
	{
		ID:          "first_play",
		Name:        "First Launch",
		Description: "Play any game once.",
		Kind:        RuleAnyPlay,
	},
	{
		ID:           "drift_king",
		Name:         "Drift King",
		Description:  "Play Drift Hunters for at least 30 minutes total.",
		Kind:         RuleGameTotalTime,
		GameID:       "drift-hunters",
		MinTotalTime: 30 * time.Minute,
	},
	{
		ID:          "variety_gamer",
		Name:        "Variety Gamer",
		Description: "Play 5 different games.",
		Kind:        RuleDistinctGames,
		MinDistinct: 5,
	},
}

func (r AchievementRule) satisfied(stats map[string]GameStat) bool {
	switch r.Kind {
	case RuleAnyPlay:
		for _, st := range stats {
			if st.Plays >= 1 {
				return true
			}
		}
		return false
	case RuleGameTotalTime:
		st, ok := stats[r.GameID]
		return ok && st.TotalTime >= r.MinTotalTime.Milliseconds()
	case RuleDistinctGames:
		return len(stats) >= r.MinDistinct
	default:
		return false
	}
}

// Achievement pairs a rule with its earned state for display.
type Achievement struct {
	AchievementRule
	Earned bool
}

// UnlockedAchievements returns the active profile's unlocked achievement ids.
func (s *Service) UnlockedAchievements(ctx context.Context) ([]string, error) {
	key, err := s.activeKey(ctx, keyAchievements)
	if err != nil {
		return nil, err
	}
	return readJSON[[]string](ctx, s.store, key)
}

// Achievements returns the full rule table with earned flags.
func (s *Service) Achievements(ctx context.Context) ([]Achievement, error) {
	unlocked, err := s.UnlockedAchievements(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		set[id] = true
	}
	out := make([]Achievement, 0, len(AchievementRules))
	for _, r := range AchievementRules {
		out = append(out, Achievement{AchievementRule: r, Earned: set[r.ID]})
	}
	return out, nil
}

// EvaluateAchievements sweeps every rule not yet unlocked against the given
// stats snapshot. Each newly satisfied rule joins the unlocked set, emits one
// notification and awards the fixed achievement XP. Already-unlocked rules are
// never re-awarded; the set is persisted only when it changed.
func (s *Service) EvaluateAchievements(ctx context.Context, stats map[string]GameStat) ([]AchievementRule, error) {
	unlocked, err := s.UnlockedAchievements(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		set[id] = true
	}

	var newly []AchievementRule
	for _, r := range AchievementRules {
		if set[r.ID] || !r.satisfied(stats) {
			continue
		}
		unlocked = append(unlocked, r.ID)
		set[r.ID] = true
		newly = append(newly, r)
		s.notify(fmt.Sprintf("Achievement unlocked: %s", r.Name))
		if _, err := s.AddXP(ctx, AchievementXP); err != nil {
			return nil, err
		}
	}

	if len(newly) > 0 {
		key, err := s.activeKey(ctx, keyAchievements)
		if err != nil {
			return nil, err
		}
		if err := writeJSON(ctx, s.store, key, unlocked); err != nil {
			return nil, err
		}
	}
	return newly, nil
}
