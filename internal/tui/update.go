package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.NextView):
			m.state = (m.state + 1) % 4
		case key.Matches(msg, m.keys.Timetable):
			m.state = StateTimetable
		case key.Matches(msg, m.keys.Matrix):
			m.state = StateMatrix
		case key.Matches(msg, m.keys.Calendar):
			m.state = StateCalendar
		case key.Matches(msg, m.keys.Analysis):
			m.state = StateAnalysis
		case key.Matches(msg, m.keys.Reload):
			// Re-read the store so edits from another terminal show up.
			_ = m.store.Load()
		case key.Matches(msg, m.keys.PrevMonth):
			if m.state == StateCalendar {
				m.month--
				if m.month < 1 {
					m.month = 12
					m.year--
				}
			}
		case key.Matches(msg, m.keys.NextMonth):
			if m.state == StateCalendar {
				m.month++
				if m.month > 12 {
					m.month = 1
					m.year++
				}
			}
		}
	}

	return m, nil
}
