// Package ui provides the Bubble Tea TUI for the seller dashboard.
package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Up       key.Binding
	Down     key.Binding
	Group    key.Binding
	Detail   key.Binding
	Search   key.Binding
	Export   key.Binding
	Reload   key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "sair"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "página anterior"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "próxima página"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "anúncio anterior"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "próximo anúncio"),
		),
		Group: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "agrupado"),
		),
		Detail: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "detalhado"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "buscar"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "exportar"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recarregar"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ajuda"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.PrevPage, k.NextPage, k.Group, k.Detail, k.Search, k.Export}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.PrevPage, k.NextPage, k.Up, k.Down},
		{k.Group, k.Detail, k.Search, k.Export, k.Reload},
	}
}
