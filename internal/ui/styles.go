package ui

import "github.com/charmbracelet/lipgloss"

// Color constants for the brag TUI theme
const (
	colorPrimaryText   = "#E8E3D9" // headers, selected rows
	colorSecondaryText = "#A8A29A" // unselected rows
	colorMutedText     = "240"     // help and status lines
	colorAccent        = "#D97706" // cursor, active heading
	colorDone          = "#22C55E" // completed tasks
	colorPartial       = "#F59E0B" // partially completed tasks
	colorError         = "#EF4444" // failure messages
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimaryText))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSecondaryText))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDone))

	partialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPartial))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMutedText))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMutedText))
)
