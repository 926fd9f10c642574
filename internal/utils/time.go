package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/smartsched/internal/constants"
)

// ParseClock parses a wall-clock time string in the standard format (HH:MM).
func ParseClock(s string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, s)
}

// ClockToMinutes parses a time string (HH:MM) and returns minutes from midnight.
func ClockToMinutes(s string) (int, error) {
	t, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDeadline parses a deadline from the command line. Both
// "YYYY-MM-DD HH:MM" and "YYYY-MM-DD" (end of day) are accepted.
func ParseDeadline(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(constants.DeadlineFormat, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q (expected %q or %q)",
			s, constants.DeadlineFormat, constants.DateFormat)
	}
	return t.Add(23*time.Hour + 59*time.Minute), nil
}
