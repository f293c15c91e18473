package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.
const (
	// ColorActive highlights the running stage.
	ColorActive lipgloss.Color = "2" // Green
	// ColorWarning marks the active stage once remaining time drops
	// below the warning threshold, and the paused indicator.
	ColorWarning lipgloss.Color = "3" // Yellow
	// ColorMuted dims stages that are not currently running.
	ColorMuted lipgloss.Color = "8" // Gray (bright black)
	// ColorText is the default content color.
	ColorText lipgloss.Color = "7" // White/default
)

// Base styles for the timer view
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	ActiveLabelStyle = lipgloss.NewStyle().
				Foreground(ColorActive).
				Bold(true)

	WarningLabelStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	MutedLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// StageColor returns the color for a stage's bar and label.
// Inactive stages are muted; the active stage is green, or yellow once
// inside the warning threshold.
func StageColor(active, warning bool) lipgloss.Color {
	switch {
	case !active:
		return ColorMuted
	case warning:
		return ColorWarning
	default:
		return ColorActive
	}
}

// StageLabelStyle returns the label style matching StageColor.
func StageLabelStyle(active, warning bool) lipgloss.Style {
	switch {
	case !active:
		return MutedLabelStyle
	case warning:
		return WarningLabelStyle
	default:
		return ActiveLabelStyle
	}
}

// Monochrome reports whether the terminal offers no color support, in
// which case the bars fall back to plain fill characters.
func Monochrome() bool {
	return termenv.ColorProfile() == termenv.Ascii
}
