package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, commands.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "written" file status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" directory status.
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for the "removed" file status.
	colorRed = lipgloss.Color("196")

	// colorBoldRed matches the ERROR log level.
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths, commands).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (creating, installing, configuring).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleError styles the top-level error line.
	StyleError = lipgloss.NewStyle().Foreground(colorBoldRed)
)

// File status constants.
const (
	StatusWritten     = "written"
	StatusRemoved     = "removed"
	StatusOverwritten = "overwritten"
	StatusUnchanged   = "unchanged"
	statusFailed      = "failed"
)

// statusStyle returns the lipgloss style for a file status.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusWritten:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(colorRed)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 36

// FormatFileLine renders a project-relative path with a right-aligned,
// color-coded status suffix.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") +
		StyleNoun.Render(path) +
		strings.Repeat(" ", padding) +
		statusStyle(status).Render(status)
}

// FormatCommand renders a shell command the user is expected to run.
func FormatCommand(cmd string) string {
	return StyleDim.Render("$ ") + StyleNoun.Render(cmd)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}
