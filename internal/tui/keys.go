package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"pitchdeck/internal/navigator"
)

// KeyMap holds the view-level bindings; navigation keys belong to the
// controller.
type KeyMap struct {
	nav navigator.KeyMap

	CTA  key.Binding
	Help key.Binding
	Quit key.Binding
}

func newKeyMap(nav navigator.KeyMap) KeyMap {
	return KeyMap{
		nav: nav,
		CTA: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "contact"),
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

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nav.Prev, k.nav.Next, k.nav.AutoPlay, k.CTA, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nav.Prev, k.nav.Next, k.nav.Jump},
		{k.nav.AutoPlay, k.nav.Stop},
		{k.CTA, k.Help, k.Quit},
	}
}
