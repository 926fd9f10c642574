package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/smartsched/internal/constants"
)

type DayOfWeek string

const (
	DayMonday    DayOfWeek = "Monday"
	DayTuesday   DayOfWeek = "Tuesday"
	DayWednesday DayOfWeek = "Wednesday"
	DayThursday  DayOfWeek = "Thursday"
	DayFriday    DayOfWeek = "Friday"
	DaySaturday  DayOfWeek = "Saturday"
	DaySunday    DayOfWeek = "Sunday"
)

// Days lists the seven weekdays in display order (week starts on Monday).
var Days = []DayOfWeek{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// ParseDay parses a weekday name. Full names and three-letter
// abbreviations are accepted, case-insensitively.
func ParseDay(s string) (DayOfWeek, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Days {
		name := strings.ToLower(string(d))
		if key == name || (len(key) == 3 && key == name[:3]) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}

// Weekday maps a DayOfWeek onto the stdlib weekday.
func (d DayOfWeek) Weekday() time.Weekday {
	switch d {
	case DayMonday:
		return time.Monday
	case DayTuesday:
		return time.Tuesday
	case DayWednesday:
		return time.Wednesday
	case DayThursday:
		return time.Thursday
	case DayFriday:
		return time.Friday
	case DaySaturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

// Course is a recurring weekly timetable entry. Courses repeat every week
// indefinitely; there are no recurrence exceptions or term boundaries.
type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Day       DayOfWeek `json:"day"`
	StartTime string    `json:"startTime"` // HH:MM
	EndTime   string    `json:"endTime"`   // HH:MM
	Color     string    `json:"color"`     // palette name
}

// Validate checks field well-formedness. It deliberately does not reject
// StartTime >= EndTime or overlapping sessions; co-requisite courses may
// legitimately share a time block. Ordering is checked at the input boundary.
func (c Course) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("course id must not be empty")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("course name must not be empty")
	}
	if _, err := ParseDay(string(c.Day)); err != nil {
		return err
	}
	if _, err := time.Parse(constants.TimeFormat, c.StartTime); err != nil {
		return fmt.Errorf("invalid start time %q (expected HH:MM)", c.StartTime)
	}
	if _, err := time.Parse(constants.TimeFormat, c.EndTime); err != nil {
		return fmt.Errorf("invalid end time %q (expected HH:MM)", c.EndTime)
	}
	if c.Color != "" && !constants.IsPaletteColor(c.Color) {
		return fmt.Errorf("unknown color %q", c.Color)
	}
	return nil
}
