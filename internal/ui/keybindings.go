package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Key Helpers ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

// navKeys are the list movement bindings. Vim mode adds j/k.
type navKeys struct {
	Up   key.Binding
	Down key.Binding
}

func newNavKeys(vim bool) navKeys {
	up := []string{"up"}
	down := []string{"down"}
	if vim {
		up = append(up, "k")
		down = append(down, "j")
	}
	return navKeys{
		Up:   key.NewBinding(key.WithKeys(up...), key.WithHelp("↑", "up")),
		Down: key.NewBinding(key.WithKeys(down...), key.WithHelp("↓", "down")),
	}
}

func (k navKeys) isUp(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Up)
}

func (k navKeys) isDown(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Down)
}

func tabIndexForKey(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	idx := int(s[0] - '1')
	if idx >= tabCount {
		return 0, false
	}
	return idx, true
}
