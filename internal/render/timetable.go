// Package render draws the read-only views: the weekly timetable grid,
// the urgency/importance matrix, the deadline calendar, and the advisor
// report. Both the view subcommands and the TUI consume it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartsched/internal/constants"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/schedule"
)

// Timetable renders one column per weekday with each course as a colored
// card, sorted by start time. Overlapping sessions simply stack.
func Timetable(courses []models.Course) string {
	if len(courses) == 0 {
		return dimStyle.Render("No courses yet. Add one with 'smartsched course add'.")
	}

	var columns []string
	for _, day := range models.Days {
		dayCourses := schedule.CoursesOn(courses, day)
		if len(dayCourses) == 0 {
			continue
		}

		parts := []string{dayHeaderStyle.Render(string(day))}
		for _, c := range dayCourses {
			body := fmt.Sprintf("%s\n%s–%s", c.Name, c.StartTime, c.EndTime)
			if c.Location != "" {
				body += "\n" + dimStyle.Render(c.Location)
			}
			parts = append(parts, cardStyle.BorderForeground(colorFor(c.Color)).Render(body))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	title := fmt.Sprintf("Weekly Timetable (%02d:00–%02d:00)",
		constants.DayStartHour, constants.DayEndHour)
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	)
}

// CourseLine formats a single course for list output.
func CourseLine(c models.Course, showID bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  [%s] %s: %s %s–%s", c.Color, c.Name, c.Day, c.StartTime, c.EndTime)
	if c.Location != "" {
		fmt.Fprintf(&b, " @ %s", c.Location)
	}
	if showID {
		fmt.Fprintf(&b, " (ID: %s)", c.ID)
	}
	return b.String()
}
