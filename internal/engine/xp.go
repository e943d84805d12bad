package engine

import (
	"context"
	"fmt"
)

// Fixed XP awards.
const (
	PlayXP        = 5   // per recorded play
	AchievementXP = 50  // per achievement unlock
	QuestXP       = 100 // per daily quest completion
)

// Titles by level band.
const (
	TitleRookie = "Rookie"
	TitlePro    = "Pro"
	TitleElite  = "BLK Elite"

	LevelPro   = 5
	LevelElite = 10
)

// XPRequiredForLevel returns the XP needed to advance from the given level to
// the next one. The requirement grows linearly, so level crossing must be
// iterative, not a single division.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * 100
}

// TitleForLevel returns the display title for a level.
func TitleForLevel(level int) string {
	switch {
	case level >= LevelElite:
		return TitleElite
	case level >= LevelPro:
		return TitlePro
	default:
		return TitleRookie
	}
}

// advance applies an XP award to a profile's xp/level pair, crossing as many
// level thresholds as the total covers. The returned xp is the remainder
// toward the next level.
func advance(xp, level, amount int) (newXP, newLevel int, leveledUp bool) {
	if level < 1 {
		level = 1
	}
	cur := xp + amount
	needed := XPRequiredForLevel(level)
	for cur >= needed {
		cur -= needed
		level++
		needed = XPRequiredForLevel(level)
		leveledUp = true
	}
	return cur, level, leveledUp
}

// XPResult describes the active profile's progression after an award.
type XPResult struct {
	XP        int
	Level     int
	Title     string
	LeveledUp bool
}

// AddXP awards XP to the active profile, resolving any level-ups and the
// resulting title, then persists the profile. A call that crosses one or more
// levels emits a single level-up notification naming the final level.
func (s *Service) AddXP(ctx context.Context, amount int) (*XPResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("xp amount must be positive, got %d", amount)
	}
	p, err := s.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}

	xp, level, leveledUp := advance(p.XP, p.Level, amount)
	title := TitleForLevel(level)

	if err := s.UpdateProfile(ctx, ProfilePatch{XP: &xp, Level: &level, Title: &title}); err != nil {
		return nil, err
	}
	if leveledUp {
		s.notify(fmt.Sprintf("Level up! You are now level %d.", level))
	}
	return &XPResult{XP: xp, Level: level, Title: title, LeveledUp: leveledUp}, nil
}
