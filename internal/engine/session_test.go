package engine

import (
	"context"
	"testing"
	"time"

	"blklauncher/internal/catalog"
)

var driftHunters = catalog.Game{ID: "drift-hunters", Title: "Drift Hunters", Category: "racing"}

func TestStartSessionMarksNewGame(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, driftHunters)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if !sess.IsNew {
		t.Fatalf("expected first session to be new")
	}

	dc, err := svc.EnsureDailyChallenges(ctx)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for _, ch := range dc.Challenges {
		if ch.ID == "try_new" && !ch.Done {
			t.Fatalf("try_new not completed: %+v", dc)
		}
	}
}

func TestEndSessionFlushesOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	freezeClock(svc, start)

	sess, err := svc.StartSession(ctx, driftHunters)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	freezeClock(svc, start.Add(6*time.Minute))
	res, err := svc.EndSession(ctx, sess)
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if res == nil || res.Stat.Plays != 1 || res.Stat.TotalTime != (6*time.Minute).Milliseconds() {
		t.Fatalf("result = %+v", res)
	}

	// Closing again must not double-record.
	res, err = svc.EndSession(ctx, sess)
	if err != nil {
		t.Fatalf("EndSession again: %v", err)
	}
	if res != nil {
		t.Fatalf("second flush recorded a play: %+v", res)
	}
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats["drift-hunters"].Plays != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestRacingSessionDrivesRacingQuest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Play(ctx, driftHunters, 5*time.Minute); err != nil {
		t.Fatalf("Play: %v", err)
	}
	dc, err := svc.EnsureDailyChallenges(ctx)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for _, ch := range dc.Challenges {
		if ch.ID == "play_racing" && !ch.Done {
			t.Fatalf("play_racing not completed: %+v", dc)
		}
	}
}

func TestNonRacingSessionDoesNotDriveRacingQuest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	slope := catalog.Game{ID: "slope", Title: "Slope", Category: "action"}
	if _, err := svc.Play(ctx, slope, time.Hour); err != nil {
		t.Fatalf("Play: %v", err)
	}
	dc, err := svc.EnsureDailyChallenges(ctx)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for _, ch := range dc.Challenges {
		if ch.ID == "play_racing" && ch.Done {
			t.Fatalf("play_racing completed by a non-racing game")
		}
	}
}

func TestSecondSessionIsNotNew(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, driftHunters)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := svc.EndSession(ctx, sess); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	sess2, err := svc.StartSession(ctx, driftHunters)
	if err != nil {
		t.Fatalf("StartSession again: %v", err)
	}
	if sess2.IsNew {
		t.Fatalf("replay marked as new")
	}
}
