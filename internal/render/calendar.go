package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/smartsched/internal/constants"
	"github.com/julianstephens/smartsched/internal/models"
)

// Calendar renders a month grid with deadline days highlighted, followed
// by the month's tasks in deadline order.
func Calendar(tasks []models.Task, year int, month time.Month) string {
	deadlineDays := make(map[int]int)
	var monthTasks []models.Task
	for _, t := range tasks {
		if t.Deadline.Year() == year && t.Deadline.Month() == month {
			deadlineDays[t.Deadline.Day()]++
			monthTasks = append(monthTasks, t)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n Mo  Tu  We  Th  Fr  Sa  Su\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Week starts Monday; shift Sunday to the last column.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", offset))

	daysInMonth := first.AddDate(0, 1, -1).Day()
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%3d ", day)
		if deadlineDays[day] > 0 {
			cell = deadlineDayStyle.Render(fmt.Sprintf("%3d", day)) + "*"
		}
		b.WriteString(cell)
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}

	if len(monthTasks) == 0 {
		b.WriteString(dimStyle.Render("\nNo deadlines this month."))
		return b.String()
	}

	b.WriteString("\nDeadlines:\n")
	for _, t := range sortByDeadline(monthTasks) {
		b.WriteString(fmt.Sprintf("  %s  %s (%s)\n",
			t.Deadline.Format(constants.DeadlineFormat), t.Title, t.Quadrant()))
	}
	return strings.TrimRight(b.String(), "\n")
}

func sortByDeadline(tasks []models.Task) []models.Task {
	out := append([]models.Task(nil), tasks...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Deadline.Before(out[j-1].Deadline); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Analysis renders the advisor's cached report.
func Analysis(result *models.AnalysisResult) string {
	if result == nil {
		return dimStyle.Render("No analysis cached. Run 'smartsched analyze'.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Schedule Analysis"))
	b.WriteString("\n" + result.Summary + "\n")

	if len(result.HeavyDays) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Findings") + "\n")
		for _, d := range result.HeavyDays {
			b.WriteString("  • " + d + "\n")
		}
	}
	if len(result.Suggestions) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Suggestions") + "\n")
		for _, s := range result.Suggestions {
			b.WriteString("  • " + s + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
