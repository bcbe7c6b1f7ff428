package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used by the CLI and solutions.

var (
	// Day headers in multi-day runs
	dayHeaderStyle = lipgloss.NewStyle().Bold(true)

	// Solution answers
	resultStyle = lipgloss.NewStyle().Bold(true)

	// Progress notes such as "benching"
	noteStyle = lipgloss.NewStyle().Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Gray

	// Benchmark diffs
	fasterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	slowerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// DisableColor forces plain output for every style.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ConfigureColor disables styling when requested or when NO_COLOR is set.
// Otherwise lipgloss keeps the profile it detected for stdout.
func ConfigureColor(noColor bool) {
	if noColor || termenv.EnvNoColor() {
		DisableColor()
	}
}

func DayHeader(title string) string {
	return dayHeaderStyle.Render(title)
}

func Result(s string) string {
	return resultStyle.Render(s)
}

func Note(s string) string {
	return noteStyle.Render(s)
}

func Success(s string) string {
	return successStyle.Render(s)
}

func Error(s string) string {
	return errorStyle.Render(s)
}

func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Diff colours a percentage change: negative (faster) green, positive red.
func Diff(s string, pct float64) string {
	switch {
	case pct < 0:
		return fasterStyle.Render(s)
	case pct > 0:
		return slowerStyle.Render(s)
	default:
		return s
	}
}
