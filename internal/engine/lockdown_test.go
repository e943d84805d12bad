package engine

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"testing"
	"time"
)

func TestLockdownInactiveByDefault(t *testing.T) {
	svc, _ := newTestService(t)
	st, err := svc.Lockdown(context.Background())
	if err != nil {
		t.Fatalf("Lockdown: %v", err)
	}
	if st.Active {
		t.Fatalf("state = %+v", st)
	}
}

func TestArmLockdownAndCountdown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	freezeClock(svc, at)

	st, err := svc.ArmLockdown(ctx, DefaultAdminSecret, 1, "Maintenance")
	if err != nil {
		t.Fatalf("arm: %v", err)
	}
	if !st.Active || st.Reason != "Maintenance" {
		t.Fatalf("state = %+v", st)
	}
	// Until carries the deadline; callers branch on IsZero to decide
	// whether a countdown is shown.
	if st.Until.IsZero() || !st.Until.Equal(at.Add(time.Minute)) {
		t.Fatalf("until = %v, want %v", st.Until, at.Add(time.Minute))
	}
	if st.Countdown() != "00:01:00" {
		t.Fatalf("countdown = %q, want 00:01:00", st.Countdown())
	}

	// A later evaluation sees the remaining time shrink.
	freezeClock(svc, at.Add(25*time.Second))
	st, err = svc.Lockdown(ctx)
	if err != nil {
		t.Fatalf("Lockdown: %v", err)
	}
	if !st.Active || st.Countdown() != "00:00:35" {
		t.Fatalf("state = %+v countdown=%q", st, st.Countdown())
	}
}

func TestLockdownExpirySelfClears(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	freezeClock(svc, at)

	if _, err := svc.ArmLockdown(ctx, DefaultAdminSecret, 1, ""); err != nil {
		t.Fatalf("arm: %v", err)
	}

	freezeClock(svc, at.Add(time.Minute)) // until == now counts as expired
	st, err := svc.Lockdown(ctx)
	if err != nil {
		t.Fatalf("Lockdown: %v", err)
	}
	if st.Active {
		t.Fatalf("state = %+v", st)
	}

	// The record is gone, not just ignored.
	raw, err := svc.store.Get(ctx, keyLockdown)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if raw != nil {
		t.Fatalf("stale record still stored: %s", raw)
	}
}

func TestArmLockdownValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ArmLockdown(ctx, "wrong", 5, ""); !errors.Is(err, ErrBadSecret) {
		t.Fatalf("err = %v, want ErrBadSecret", err)
	}
	if _, err := svc.ArmLockdown(ctx, DefaultAdminSecret, 0, ""); err == nil {
		t.Fatalf("expected error for zero minutes")
	}
	// Nothing was persisted by the failed attempts.
	st, err := svc.Lockdown(ctx)
	if err != nil {
		t.Fatalf("Lockdown: %v", err)
	}
	if st.Active {
		t.Fatalf("state = %+v", st)
	}
}

func TestClearLockdown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	freezeClock(svc, time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC))

	if _, err := svc.ArmLockdown(ctx, DefaultAdminSecret, 60, ""); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if err := svc.ClearLockdown(ctx, "nope"); !errors.Is(err, ErrBadSecret) {
		t.Fatalf("err = %v, want ErrBadSecret", err)
	}
	// Surrounding whitespace on the input is tolerated; the comparison itself
	// is exact and case-sensitive.
	if err := svc.ClearLockdown(ctx, "  "+DefaultAdminSecret+"\n"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	st, err := svc.Lockdown(ctx)
	if err != nil {
		t.Fatalf("Lockdown: %v", err)
	}
	if st.Active {
		t.Fatalf("state = %+v", st)
	}
}

func TestSetAdminSecret(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.SetAdminSecret("hunter2")
	if _, err := svc.ArmLockdown(ctx, DefaultAdminSecret, 5, ""); !errors.Is(err, ErrBadSecret) {
		t.Fatalf("old secret accepted after override")
	}
	if _, err := svc.ArmLockdown(ctx, "hunter2", 5, ""); err != nil {
		t.Fatalf("arm with override: %v", err)
	}

	// Blank override keeps the current secret.
	svc.SetAdminSecret("   ")
	if err := svc.ClearLockdown(ctx, "hunter2"); err != nil {
		t.Fatalf("clear: %v", err)
	}
}

func TestLockdownFromQuery(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	if _, ok := LockdownFromQuery(url.Values{}, now); ok {
		t.Fatalf("empty query armed the gate")
	}
	if _, ok := LockdownFromQuery(url.Values{"lockdown": {"0"}}, now); ok {
		t.Fatalf("lockdown=0 armed the gate")
	}

	q := url.Values{
		"lockdown": {"1"},
		"msg":      {"Homework first."},
		"end":      {timeToMillis(now.Add(time.Minute))},
	}
	st, ok := LockdownFromQuery(q, now)
	if !ok || !st.Active || st.Reason != "Homework first." {
		t.Fatalf("state = %+v ok=%v", st, ok)
	}
	if st.Countdown() != "00:01:00" {
		t.Fatalf("countdown = %q", st.Countdown())
	}

	// Expired end: recognized but inactive, so callers strip the parameters.
	q.Set("end", timeToMillis(now.Add(-time.Second)))
	st, ok = LockdownFromQuery(q, now)
	if !ok || st.Active {
		t.Fatalf("state = %+v ok=%v", st, ok)
	}

	// No end at all: active with a zeroed countdown.
	q.Del("end")
	st, ok = LockdownFromQuery(q, now)
	if !ok || !st.Active || st.Until != (time.Time{}) {
		t.Fatalf("state = %+v ok=%v", st, ok)
	}
}

func timeToMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
