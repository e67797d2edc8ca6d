// Package keys declares the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/cellquest/internal/ui/layout"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	)
	Left = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Prev"),
	)
	Right = key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Next"),
	)
	Select = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Toggle = key.NewBinding(
		key.WithKeys("space"),
		key.WithHelp("Space", "Toggle"),
	)
	Yes = key.NewBinding(
		key.WithKeys("y", "t"),
		key.WithHelp("Y", "Trigger"),
	)
	No = key.NewBinding(
		key.WithKeys("n", "s"),
		key.WithHelp("N", "Safe"),
	)
	Check = key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("C", "Check"),
	)
	Submit = key.NewBinding(
		key.WithKeys("ctrl+s", "S"),
		key.WithHelp("S", "Submit"),
	)
	Restart = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Restart"),
	)
	Tour = key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("T", "Tour"),
	)
	Find = key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Find"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// Hints converts bindings to footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// WithDesc returns a copy of b with a different help description.
func WithDesc(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
