package engine

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	svc, notes := newTestService(t)
	ctx := context.Background()

	stats := map[string]GameStat{"slope": {Plays: 1}}
	newly, err := svc.EvaluateAchievements(ctx, stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(newly) != 1 || newly[0].ID != "first_play" {
		t.Fatalf("newly = %+v", newly)
	}
	xpAfterFirst := activeProfile(t, svc).XP

	// Identical stats a second time: no new unlock, no XP, no notification.
	newly, err = svc.EvaluateAchievements(ctx, stats)
	if err != nil {
		t.Fatalf("evaluate again: %v", err)
	}
	if len(newly) != 0 {
		t.Fatalf("re-evaluation unlocked %+v", newly)
	}
	if got := activeProfile(t, svc).XP; got != xpAfterFirst {
		t.Fatalf("xp changed on re-evaluation: %d -> %d", xpAfterFirst, got)
	}
	if len(*notes) != 1 {
		t.Fatalf("notifications = %v", *notes)
	}
}

func TestEvaluateAchievementsMultipleInOneCall(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	stats := map[string]GameStat{}
	for i := 0; i < 5; i++ {
		stats[fmt.Sprintf("game-%d", i)] = GameStat{Plays: 1}
	}
	stats["drift-hunters"] = GameStat{Plays: 1, TotalTime: (30 * time.Minute).Milliseconds()}

	newly, err := svc.EvaluateAchievements(ctx, stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(newly) != 3 {
		t.Fatalf("expected all three rules to unlock, got %+v", newly)
	}
	// Table order is preserved.
	if newly[0].ID != "first_play" || newly[1].ID != "drift_king" || newly[2].ID != "variety_gamer" {
		t.Fatalf("unlock order = %+v", newly)
	}
}

func TestVarietyGamerThreshold(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	stats := map[string]GameStat{}
	for i := 0; i < 4; i++ {
		stats[fmt.Sprintf("game-%d", i)] = GameStat{Plays: 1}
	}
	newly, err := svc.EvaluateAchievements(ctx, stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, r := range newly {
		if r.ID == "variety_gamer" {
			t.Fatalf("variety_gamer unlocked at 4 games")
		}
	}

	stats["game-4"] = GameStat{Plays: 1}
	newly, err = svc.EvaluateAchievements(ctx, stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(newly) != 1 || newly[0].ID != "variety_gamer" {
		t.Fatalf("newly = %+v", newly)
	}
}

func TestDriftKingBelowThreshold(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	stats := map[string]GameStat{
		"drift-hunters": {Plays: 3, TotalTime: (29 * time.Minute).Milliseconds()},
	}
	newly, err := svc.EvaluateAchievements(ctx, stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, r := range newly {
		if r.ID == "drift_king" {
			t.Fatalf("drift_king unlocked below 30 minutes")
		}
	}
}

func TestAchievementsListing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.EvaluateAchievements(ctx, map[string]GameStat{"slope": {Plays: 1}}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	all, err := svc.Achievements(ctx)
	if err != nil {
		t.Fatalf("Achievements: %v", err)
	}
	if len(all) != len(AchievementRules) {
		t.Fatalf("listing length = %d, want %d", len(all), len(AchievementRules))
	}
	for _, a := range all {
		want := a.ID == "first_play"
		if a.Earned != want {
			t.Fatalf("%s earned = %v, want %v", a.ID, a.Earned, want)
		}
	}
}
