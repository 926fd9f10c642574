package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextView  key.Binding
	Timetable key.Binding
	Matrix    key.Binding
	Calendar  key.Binding
	Analysis  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Timetable: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "timetable"),
		),
		Matrix: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "matrix"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "calendar"),
		),
		Analysis: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "analysis"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next month"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Reload, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Timetable, k.Matrix, k.Calendar, k.Analysis},
		{k.NextView, k.PrevMonth, k.NextMonth},
		{k.Reload, k.Help, k.Quit},
	}
}
