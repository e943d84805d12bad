package engine

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as HH:MM:SS, floored to whole seconds.
// Non-positive durations render as "00:00:00".
func FormatClock(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
