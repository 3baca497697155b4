// Package ui implements the interactive export form.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#2196F3")
	muted       = lipgloss.Color("#8a8f98")
	success     = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
)

// Styles holds the form's styles.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Label:    lipgloss.NewStyle().Bold(true),
		Value:    lipgloss.NewStyle().Foreground(accent),
		Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(muted),
		Success: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(success).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(destructive).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
	}
}
