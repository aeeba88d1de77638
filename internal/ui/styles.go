package ui

import "github.com/charmbracelet/lipgloss"

var (
	BorderColor = lipgloss.Color("8")

	StatusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	EchoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	CursorStyle = lipgloss.NewStyle().Reverse(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			PaddingLeft(1)
)
