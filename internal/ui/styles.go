package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the login, borders
	ColorDanger    = "196" // Red - for the error banner
	ColorMuted     = "241" // Gray - for labels, hints
	ColorText      = "252" // Light gray - for normal text
	ColorLink      = "39"  // Blue - for URLs
)

// Styles contains shared style definitions used across the search view.
var Styles = struct {
	Title  lipgloss.Style // Bold accent color - screen title
	Card   lipgloss.Style // Profile card box (highlight border)
	Banner lipgloss.Style // Error banner box (danger border)
	Input  lipgloss.Style // Search form frame
	Button lipgloss.Style // Submit control
	Login  lipgloss.Style // Username line on the card
	Label  lipgloss.Style // Field labels
	Value  lipgloss.Style // Field values
	Link   lipgloss.Style // URLs
	Status lipgloss.Style // Loading indicator
	Empty  lipgloss.Style // Empty state text (muted, italic)
	Hint   lipgloss.Style // Help/hint text (muted color)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		MarginTop(1),
	Banner: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true).
		Padding(0, 2).
		MarginTop(1),
	Input: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Padding(0, 1),
	Login: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLink)).
		Underline(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		MarginTop(1),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true).
		MarginTop(1),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
