// Package screen defines what the router stacks and the messages the lesson
// engines send to screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cellquest/internal/ui/layout"
)

// Screen is one page of the terminal lesson.
type Screen interface {
	// Init runs when the screen becomes active for the first time.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the body only; the app adds the header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that start timed activities. The router
// calls Close when the screen leaves the stack.
type Closer interface {
	Close()
}

// InputCapturer is implemented by screens with a text field. While
// CapturingInput is true the app hands Esc to the screen.
type InputCapturer interface {
	CapturingInput() bool
}
