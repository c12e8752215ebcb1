package ui

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes, so the help follows the operator's terminal theme.
const (
	ansiGreen  = "2"
	ansiYellow = "3"
	ansiCyan   = "6"
	ansiGray   = "8"
)

var (
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiCyan)).Bold(true).MarginBottom(1)
	UsageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiGreen))
	CommandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiGreen)).Bold(true)
	FlagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiYellow))

	// DescStyle is dimmed so names stand out in long command lists
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiGray))
)
