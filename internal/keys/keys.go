package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// View switching
	Schedule  key.Binding
	Analytics key.Binding
	Vault     key.Binding
	Savings   key.Binding

	// Task actions
	Toggle key.Binding
	New    key.Binding
	Delete key.Binding

	// Alarm
	Dismiss key.Binding

	// AI
	Command   key.Binding
	Summarize key.Binding
	Analyze   key.Binding

	// Settings toggles
	ToggleSound         key.Binding
	ToggleAlarms        key.Binding
	ToggleNotifications key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Schedule: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "schedule"),
		),
		Analytics: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "stats"),
		),
		Vault: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "vault"),
		),
		Savings: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "savings"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d", "enter", "esc"),
			key.WithHelp("d", "dismiss alarm"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "ai command"),
		),
		Summarize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "summarize note"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "analyze schedule"),
		),
		ToggleSound: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "sound on/off"),
		),
		ToggleAlarms: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "alarms on/off"),
		),
		ToggleNotifications: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "notifications on/off"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
