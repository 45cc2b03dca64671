package carousel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the carousel key bindings.
type KeyMap struct {
	Previous       key.Binding
	Next           key.Binding
	ToggleAutoplay key.Binding
	Jump           key.Binding
}

// DefaultKeyMap returns the default carousel bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next slide"),
		),
		ToggleAutoplay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle autoplay"),
		),
		Jump: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1..9", "Jump to slide"),
		),
	}
}

// jumpIndex maps alt+<digit> to a zero based slide index.
func jumpIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) == 0 {
		return 0, false
	}
	d := s[len(s)-1]
	if d < '1' || d > '9' {
		return 0, false
	}
	return int(d - '1'), true
}
