package engine

import (
	"context"
	"testing"
	"time"
)

func TestSaveSlotRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC)
	freezeClock(svc, at)

	if _, ok, err := svc.ReadSaveSlot(ctx, "slope", "1"); err != nil || ok {
		t.Fatalf("read empty = ok=%v err=%v", ok, err)
	}

	if err := svc.WriteSaveSlot(ctx, "slope", "1"); err != nil {
		t.Fatalf("write: %v", err)
	}
	meta, ok, err := svc.ReadSaveSlot(ctx, "slope", "1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !ok || meta.SavedAt != at.UnixMilli() {
		t.Fatalf("meta = %+v ok=%v", meta, ok)
	}

	// Other slots and games stay independent.
	if _, ok, _ := svc.ReadSaveSlot(ctx, "slope", "2"); ok {
		t.Fatalf("slot 2 unexpectedly present")
	}
	if _, ok, _ := svc.ReadSaveSlot(ctx, "2048", "1"); ok {
		t.Fatalf("other game unexpectedly present")
	}

	if err := svc.WriteSaveSlot(ctx, "", "1"); err == nil {
		t.Fatalf("expected error for empty game id")
	}
}
