package engine

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultAdminSecret guards lockdown arm/clear. A fixed shared secret compared
// by plain string equality is a known weakness of the launcher, carried over
// deliberately; the config file can override the value but not the mechanism.
const DefaultAdminSecret = "loyal"

const defaultLockdownReason = "Locked by admin."

// ErrBadSecret is returned when the supplied admin secret does not match.
// Attempts are unlimited; there is no throttling.
var ErrBadSecret = errors.New("incorrect admin password")

// lockdownRecord is the persisted global lockdown state.
type lockdownRecord struct {
	Until  int64  `json:"until"` // unix milliseconds
	Reason string `json:"reason"`
}

// LockdownState is the evaluated gate state. While Active, every other
// interactive operation is suspended; there is no partial mode.
type LockdownState struct {
	Active    bool
	Reason    string
	Until     time.Time
	Remaining time.Duration
}

// Countdown renders the remaining time as HH:MM:SS.
func (st LockdownState) Countdown() string {
	return FormatClock(st.Remaining)
}

func tickLockdown(rec lockdownRecord, now time.Time) LockdownState {
	if rec.Until == 0 {
		return LockdownState{}
	}
	until := time.UnixMilli(rec.Until)
	remaining := until.Sub(now)
	if remaining <= 0 {
		return LockdownState{}
	}
	reason := rec.Reason
	if reason == "" {
		reason = defaultLockdownReason
	}
	return LockdownState{Active: true, Reason: reason, Until: until, Remaining: remaining}
}

// Lockdown evaluates the persisted gate. Expired state is removed here, on
// read; there is no background job.
func (s *Service) Lockdown(ctx context.Context) (LockdownState, error) {
	rec, err := readJSON[lockdownRecord](ctx, s.store, keyLockdown)
	if err != nil {
		return LockdownState{}, err
	}
	state := tickLockdown(rec, s.now())
	if !state.Active && rec.Until != 0 {
		if err := s.store.Remove(ctx, keyLockdown); err != nil {
			return LockdownState{}, err
		}
	}
	return state, nil
}

// ArmLockdown activates the persisted gate for the given number of minutes
// after checking the admin secret. The reason defaults when blank.
func (s *Service) ArmLockdown(ctx context.Context, secret string, minutes int, reason string) (LockdownState, error) {
	if err := s.checkSecret(secret); err != nil {
		return LockdownState{}, err
	}
	if minutes <= 0 {
		return LockdownState{}, fmt.Errorf("lockdown minutes must be positive, got %d", minutes)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultLockdownReason
	}
	rec := lockdownRecord{
		Until:  s.now().Add(time.Duration(minutes) * time.Minute).UnixMilli(),
		Reason: reason,
	}
	if err := writeJSON(ctx, s.store, keyLockdown, rec); err != nil {
		return LockdownState{}, err
	}
	return tickLockdown(rec, s.now()), nil
}

// ClearLockdown forces the gate inactive regardless of remaining time, via the
// same clearing path natural expiry uses.
func (s *Service) ClearLockdown(ctx context.Context, secret string) error {
	if err := s.checkSecret(secret); err != nil {
		return err
	}
	return s.store.Remove(ctx, keyLockdown)
}

// checkSecret trims surrounding whitespace from the input and compares
// case-sensitively.
func (s *Service) checkSecret(input string) error {
	if strings.TrimSpace(input) != s.secret {
		return ErrBadSecret
	}
	return nil
}

// LockdownFromQuery builds the transient, non-persisted gate state from URL
// query parameters (lockdown=1, msg, end as epoch milliseconds). The second
// return is false when the parameters do not request a lockdown at all; an
// expired end time yields an inactive state with ok=true so callers can strip
// the stale parameters.
func LockdownFromQuery(q url.Values, now time.Time) (LockdownState, bool) {
	if q.Get("lockdown") != "1" {
		return LockdownState{}, false
	}
	reason := q.Get("msg")
	if reason == "" {
		reason = "This site is locked."
	}
	end, err := strconv.ParseInt(q.Get("end"), 10, 64)
	if err != nil || end <= 0 {
		// Lockdown with no usable end: active with no countdown.
		return LockdownState{Active: true, Reason: reason}, true
	}
	state := tickLockdown(lockdownRecord{Until: end, Reason: reason}, now)
	return state, true
}
