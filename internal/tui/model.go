package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/smartsched/internal/storage"
	"github.com/julianstephens/smartsched/internal/syncer"
)

type SessionState int

const (
	StateTimetable SessionState = iota
	StateMatrix
	StateCalendar
	StateAnalysis
)

var stateNames = map[SessionState]string{
	StateTimetable: "Timetable",
	StateMatrix:    "Matrix",
	StateCalendar:  "Calendar",
	StateAnalysis:  "Analysis",
}

type Model struct {
	store storage.Provider
	sync  *syncer.Coordinator

	state SessionState
	keys  KeyMap
	help  help.Model

	// calendar navigation
	year  int
	month time.Month

	width  int
	height int
}

func NewModel(store storage.Provider, sync *syncer.Coordinator) Model {
	now := time.Now()
	return Model{
		store: store,
		sync:  sync,
		state: StateTimetable,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		year:  now.Year(),
		month: now.Month(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
