package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartsched/internal/constants"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	dayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			Width(20)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(20)

	quadrantStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(38)

	quadrantTitleStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	deadlineDayStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

// colorFor resolves a palette name to its rendering color, falling back
// to the terminal default for unknown names.
func colorFor(name string) lipgloss.Color {
	if hex, ok := constants.PaletteHex[name]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color("7")
}
