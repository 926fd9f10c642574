package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartsched/internal/constants"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/schedule"
)

var quadrantColors = map[models.Quadrant]lipgloss.Color{
	models.QuadrantDoFirst:   lipgloss.Color("#ef4444"),
	models.QuadrantSchedule:  lipgloss.Color("#3b82f6"),
	models.QuadrantDelegate:  lipgloss.Color("#f59e0b"),
	models.QuadrantEliminate: lipgloss.Color("#6b7280"),
}

var quadrantHints = map[models.Quadrant]string{
	models.QuadrantDoFirst:   "urgent & important",
	models.QuadrantSchedule:  "important, not urgent",
	models.QuadrantDelegate:  "urgent, not important",
	models.QuadrantEliminate: "neither",
}

// Matrix renders the four-quadrant urgency/importance grid.
func Matrix(tasks []models.Task) string {
	if len(tasks) == 0 {
		return dimStyle.Render("No tasks yet. Add one with 'smartsched task add'.")
	}

	panes := make([]string, 0, 4)
	for _, q := range models.Quadrants {
		panes = append(panes, quadrantPane(q, schedule.TasksInQuadrant(tasks, q)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Task Matrix"),
		lipgloss.JoinHorizontal(lipgloss.Top, panes[0], panes[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, panes[2], panes[3]),
	)
}

func quadrantPane(q models.Quadrant, tasks []models.Task) string {
	title := quadrantTitleStyle.Foreground(quadrantColors[q]).Render(q.String())
	body := title + " " + dimStyle.Render("("+quadrantHints[q]+")")
	if len(tasks) == 0 {
		body += "\n" + dimStyle.Render("empty")
	}
	for _, t := range tasks {
		body += fmt.Sprintf("\n• %s\n  %s", t.Title,
			dimStyle.Render("due "+t.Deadline.Format(constants.DeadlineFormat)))
	}
	return quadrantStyle.BorderForeground(quadrantColors[q]).Render(body)
}

// TaskLine formats a single task for list output.
func TaskLine(t models.Task, showID bool) string {
	line := fmt.Sprintf("  %s - due %s", t.Title,
		t.Deadline.Format(constants.DeadlineFormat))
	if showID {
		line += fmt.Sprintf(" (ID: %s)", t.ID)
	}
	return line
}
