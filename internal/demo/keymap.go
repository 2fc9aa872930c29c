package demo

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo keybindings.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	FlingUp   key.Binding
	FlingDown key.Binding
	Select    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		FlingUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "fling up"),
		),
		FlingDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "space"),
			key.WithHelp("pgdn/space", "fling down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "tap center"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.FlingUp, k.FlingDown, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.FlingUp, k.FlingDown},
		{k.Select, k.Quit},
	}
}
