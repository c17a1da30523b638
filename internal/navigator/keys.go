package navigator

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the navigation bindings.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	AutoPlay key.Binding
	Stop     key.Binding
	Jump     key.Binding
}

// DefaultKeyMap returns the bindings for a variant. The flat variant has no
// autoplay shortcuts.
func DefaultKeyMap(v Variant) KeyMap {
	km := KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", " ", "space"),
			key.WithHelp("→/space", "next"),
		),
		AutoPlay: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "autoplay"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
	}
	if v == Flat {
		km.AutoPlay.SetEnabled(false)
		km.Stop.SetEnabled(false)
	}
	return km
}

// Keys returns the active key map, for help rendering.
func (c *Controller) Keys() KeyMap {
	return c.keys
}

// HandleKey dispatches a key press. It reports whether the key was consumed,
// in which case the view must not act on it further.
func (c *Controller) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Prev):
		c.navigate((c.index-1+c.Len())%c.Len(), CauseKey)
		return true, nil

	case key.Matches(msg, c.keys.Next):
		c.navigate((c.index+1)%c.Len(), CauseKey)
		return true, nil

	case key.Matches(msg, c.keys.AutoPlay):
		return true, c.ToggleAutoPlay()

	case key.Matches(msg, c.keys.Stop):
		c.StopAutoPlay()
		return true, nil

	case key.Matches(msg, c.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil || n > c.Len() {
			return false, nil
		}
		c.goTo(n-1, CauseKey)
		return true, nil
	}

	return false, nil
}
