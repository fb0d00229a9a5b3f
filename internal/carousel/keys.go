package carousel

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds keys to navigation intents.
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
	Jump key.Binding
}

// DefaultKeyMap uses arrows, h/l and the digits 1-9.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
	}
}

// Intent maps msg to a navigation intent.
func (k KeyMap) Intent(msg tea.KeyMsg) (Intent, bool) {
	switch {
	case key.Matches(msg, k.Prev):
		return Backward(), true
	case key.Matches(msg, k.Next):
		return Forward(), true
	case key.Matches(msg, k.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return Intent{}, false
		}
		return Target(n - 1), true
	}
	return Intent{}, false
}

// ShortHelp lists the bindings for a help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump}
}
