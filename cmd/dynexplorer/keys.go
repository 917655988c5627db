package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Array operations
	Append      key.Binding
	Emplace     key.Binding
	Pop         key.Binding
	ShiftRemove key.Binding
	SwapRemove  key.Binding
	Clear       key.Binding
	Release     key.Binding
	Reserve     key.Binding

	// Commands
	Yank key.Binding
	Esc  key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous slot"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next slot"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first slot"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last slot"),
		),

		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "push back"),
		),
		Emplace: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "emplace back"),
		),
		Pop: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pop back"),
		),
		ShiftRemove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "shift-remove"),
		),
		SwapRemove: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "swap-remove"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Release: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "release storage"),
		),
		Reserve: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "double capacity"),
		),

		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy element"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Append,
		k.Pop,
		k.ShiftRemove,
		k.SwapRemove,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns all key bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Append, k.Emplace, k.Pop, k.ShiftRemove},
		{k.SwapRemove, k.Clear, k.Reserve, k.Release},
		{k.Yank, k.Help, k.Quit},
	}
}
