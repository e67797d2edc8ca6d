package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with CellQuest styling. Input is
// normalised to lowercase letters, digits and dashes so it can name a diagram
// part such as "mitochondria2".
type TextInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Characters that cannot appear in a part name are
// dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		k := kmsg.String()
		if len([]rune(k)) == 1 && !partRune([]rune(k)[0]) {
			return t, nil
		}
	}

	t.submitted = false
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func partRune(r rune) bool {
	return r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("?")
		}
	}
	return view
}

// Value returns the trimmed, lowercased input.
func (t TextInput) Value() string {
	return strings.ToLower(strings.TrimSpace(t.Model.Value()))
}

// Submit marks the input as submitted. valid reports whether the value named
// a known part exactly.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Clear empties the input.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
	t.submitted = false
}
