// Package themes holds the color schemes of the interactive dashboard.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Bold       lipgloss.Style
	Income     lipgloss.Style
	Expense    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Muted      lipgloss.Style
	Active     lipgloss.Style
	Panel      lipgloss.Style
	Primary    lipgloss.Color
	Border     lipgloss.Color
	Foreground lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary:    lipgloss.Color("#7c3aed"),
	Border:     lipgloss.Color("#404040"),
	Foreground: lipgloss.Color("#fafafa"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#7c3aed")).
		Padding(0, 1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Width(10),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Income: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	Expense: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Active: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a78bfa")).
		Bold(true),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
}
