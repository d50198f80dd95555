package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the board keybindings.
type KeyMap struct {
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Home        key.Binding
	Today       key.Binding
	Next        key.Binding
	Prev        key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	Undo        key.Binding
	Redo        key.Binding
	Delete      key.Binding
	Export      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "scroll right"),
		),
		Home: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "start of range"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Next: key.NewBinding(
			key.WithKeys("j", "down", "tab"),
			key.WithHelp("j", "next slot"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k", "up", "shift+tab"),
			key.WithHelp("k", "prev slot"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "move right"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "extend"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shorten"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("U", "ctrl+r"),
			key.WithHelp("U", "redo"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpEntries returns the footer help in display order.
func (k KeyMap) helpEntries() []key.Binding {
	return []key.Binding{
		k.ScrollLeft, k.ScrollRight, k.Next, k.Prev,
		k.MoveLeft, k.MoveRight, k.Grow, k.Shrink,
		k.Undo, k.Redo, k.Delete, k.Export, k.Quit,
	}
}
