package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartsched/internal/render"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.state {
	case StateTimetable:
		b.WriteString(render.Timetable(m.store.GetCourses()))
	case StateMatrix:
		b.WriteString(render.Matrix(m.store.GetTasks()))
	case StateCalendar:
		b.WriteString(render.Calendar(m.store.GetTasks(), m.year, m.month))
	case StateAnalysis:
		b.WriteString(render.Analysis(m.store.GetAnalysis()))
	}

	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("sync: " + m.sync.State().String()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, 4)
	for s := StateTimetable; s <= StateAnalysis; s++ {
		style := inactiveTabStyle
		if s == m.state {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(stateNames[s]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
