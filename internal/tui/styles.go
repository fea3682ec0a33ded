package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	emptyStyle = lipgloss.NewStyle().Faint(true).Italic(true)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	helpStyle = lipgloss.NewStyle().Faint(true)
)
