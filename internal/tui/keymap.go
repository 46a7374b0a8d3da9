package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Window and chart
	NextWindow  key.Binding
	PrevWindow  key.Binding
	ToggleChart key.Binding

	// Filters
	CycleAccount    key.Binding
	CycleType       key.Binding
	CycleRecurrence key.Binding
	Search          key.Binding
	ClearFilters    key.Binding

	// Search input
	Submit key.Binding
	Cancel key.Binding

	// Application
	Refresh    key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextWindow: key.NewBinding(
			key.WithKeys("]", "l", "right"),
			key.WithHelp("]/→", "longer window"),
		),
		PrevWindow: key.NewBinding(
			key.WithKeys("[", "h", "left"),
			key.WithHelp("[/←", "shorter window"),
		),
		ToggleChart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "line/bar chart"),
		),

		CycleAccount: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "next account"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "income/expense"),
		),
		CycleRecurrence: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recurring"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "reload"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextWindow, k.ToggleChart, k.Search, k.ToggleHelp, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextWindow, k.PrevWindow, k.ToggleChart},
		{k.CycleAccount, k.CycleType, k.CycleRecurrence},
		{k.Search, k.ClearFilters, k.Refresh},
		{k.ToggleHelp, k.Quit, k.ForceQuit},
	}
}
