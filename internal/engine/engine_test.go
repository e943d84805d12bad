package engine

import (
	"context"
	"testing"
	"time"

	"blklauncher/internal/storage"
)

func newTestService(t *testing.T) (*Service, *[]string) {
	t.Helper()
	notes := &[]string{}
	svc := NewService(storage.NewMemory(), func(msg string) {
		*notes = append(*notes, msg)
	})
	return svc, notes
}

func freezeClock(svc *Service, at time.Time) {
	svc.now = func() time.Time { return at }
}

func activeProfile(t *testing.T, svc *Service) Profile {
	t.Helper()
	p, err := svc.ActiveProfile(context.Background())
	if err != nil {
		t.Fatalf("active profile: %v", err)
	}
	return p
}
