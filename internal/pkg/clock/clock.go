package clock

import (
	"fmt"
	"time"
)

// Now is an injectable time source. Components that need the current time
// take a Now instead of calling time.Now directly, so tests can pin it.
type Now func() time.Time

// System returns the real wall clock.
func System() Now {
	return time.Now
}

// Fixed returns a Now that always reports t.
func Fixed(t time.Time) Now {
	return func() time.Time { return t }
}

// ParseClock parses a wall-clock time of day in "HH:MM" or "HH:MM:SS"
// format and returns minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
