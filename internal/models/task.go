package models

import (
	"fmt"
	"strings"
	"time"
)

// Quadrant is one of the four fixed urgency/importance classification
// buckets. Every task belongs to exactly one, determined solely by its
// two booleans.
type Quadrant int

const (
	QuadrantDoFirst   Quadrant = iota // urgent and important
	QuadrantSchedule                  // important, not urgent
	QuadrantDelegate                  // urgent, not important
	QuadrantEliminate                 // neither
)

// Quadrants lists all four buckets in display order.
var Quadrants = []Quadrant{
	QuadrantDoFirst, QuadrantSchedule, QuadrantDelegate, QuadrantEliminate,
}

func (q Quadrant) String() string {
	switch q {
	case QuadrantDoFirst:
		return "Do First"
	case QuadrantSchedule:
		return "Schedule"
	case QuadrantDelegate:
		return "Delegate"
	case QuadrantEliminate:
		return "Eliminate"
	default:
		return "Unknown"
	}
}

// Task is a one-off deadline-bound to-do item. Tasks have no completion
// state; they persist until deleted.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Deadline    time.Time `json:"deadline"`
	IsUrgent    bool      `json:"isUrgent"`
	IsImportant bool      `json:"isImportant"`
}

// Quadrant classifies the task. Pure function of the two booleans; the
// bucket is never stored.
func (t Task) Quadrant() Quadrant {
	switch {
	case t.IsUrgent && t.IsImportant:
		return QuadrantDoFirst
	case t.IsImportant:
		return QuadrantSchedule
	case t.IsUrgent:
		return QuadrantDelegate
	default:
		return QuadrantEliminate
	}
}

func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task id must not be empty")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title must not be empty")
	}
	if t.Deadline.IsZero() {
		return fmt.Errorf("task deadline must be set")
	}
	return nil
}
