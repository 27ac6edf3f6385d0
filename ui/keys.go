package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the keys the UI handles itself. Every other key goes to the
// Session when bound.
type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// keyToString names a key the way slide.bind expects it.
func keyToString(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return ""
		}
		if msg.Alt {
			return "alt+" + string(msg.Runes)
		}
		return string(msg.Runes)
	case tea.KeySpace:
		return "space"
	}
	// bubbletea already names the rest: "enter", "esc", "ctrl+d", "f1", "up"...
	return msg.String()
}
