package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the pre-configured lipgloss styles used by the app.
type Styles struct {
	// Title style for the header line.
	Title lipgloss.Style

	// Selected highlights the active suggestion or filter value.
	Selected lipgloss.Style

	// Muted is for secondary text such as city and state lines.
	Muted lipgloss.Style

	// Label styles filter dimension names.
	Label lipgloss.Style

	// Error styles failure messages.
	Error lipgloss.Style

	// Help styles the key binding hints at the bottom.
	Help lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
		Help: lipgloss.NewStyle().
			Faint(true),
	}
}
