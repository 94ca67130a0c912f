package app

import "github.com/charmbracelet/lipgloss"

var spinnerFrames = []string{"◰", "◳", "◲", "◱"}

const divider = "-------------------"

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")) // Pinkish

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")) // Purplish
)
