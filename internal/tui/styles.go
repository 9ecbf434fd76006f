package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder())
	titleStyle   = lipgloss.NewStyle().Bold(true)
	accountStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true)
)
