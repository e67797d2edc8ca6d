package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// ChecklistOption is one choice in a checklist.
type ChecklistOption struct {
	Value string
	Text  string
}

// Checklist is a lettered option picker. In single mode choosing an option
// clears the others; in multi mode each option toggles independently.
type Checklist struct {
	Prompt   string
	Options  []ChecklistOption
	Multi    bool
	Cursor   int
	chosen   map[string]bool
	reviewed bool
	correct  map[string]bool
}

// NewChecklist creates a checklist over opts.
func NewChecklist(prompt string, opts []ChecklistOption, multi bool) Checklist {
	return Checklist{
		Prompt:  prompt,
		Options: opts,
		Multi:   multi,
		chosen:  make(map[string]bool),
	}
}

// Update handles cursor movement and toggling. Letter keys choose directly.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if c.reviewed {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		if c.Cursor > 0 {
			c.Cursor--
		}
	case key.Matches(kmsg, keys.Down):
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case key.Matches(kmsg, keys.Toggle):
		c.toggle(c.Cursor)
	default:
		s := kmsg.String()
		if len(s) == 1 && s[0] >= 'a' && int(s[0]-'a') < len(c.Options) {
			c.Cursor = int(s[0] - 'a')
			c.toggle(c.Cursor)
		}
	}
	return c, nil
}

func (c *Checklist) toggle(i int) {
	if i < 0 || i >= len(c.Options) {
		return
	}
	v := c.Options[i].Value
	if c.Multi {
		c.chosen[v] = !c.chosen[v]
		return
	}
	clear(c.chosen)
	c.chosen[v] = true
}

// Values returns the chosen option values in option order.
func (c Checklist) Values() []string {
	var out []string
	for _, o := range c.Options {
		if c.chosen[o.Value] {
			out = append(out, o.Value)
		}
	}
	return out
}

// Review freezes the checklist and highlights the expected values.
func (c *Checklist) Review(expected []string) {
	c.reviewed = true
	c.correct = make(map[string]bool, len(expected))
	for _, v := range expected {
		c.correct[v] = true
	}
}

// Reset clears choices and review state.
func (c *Checklist) Reset() {
	c.chosen = make(map[string]bool)
	c.correct = nil
	c.reviewed = false
	c.Cursor = 0
}

// View renders the prompt and lettered options.
func (c Checklist) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt))
	if c.Multi {
		b.WriteString(theme.Hint.Render("  (choose all that apply)"))
	}
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && !c.reviewed {
			prefix = "▸ "
		}
		box := "( )"
		if c.Multi {
			box = "[ ]"
		}
		if c.chosen[opt.Value] {
			box = "(•)"
			if c.Multi {
				box = "[x]"
			}
		}
		line := fmt.Sprintf("%s%s %c)  %s", prefix, box, 'A'+i, opt.Text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case c.reviewed && c.correct[opt.Value]:
			style = theme.Correct
		case c.reviewed && c.chosen[opt.Value]:
			style = theme.Incorrect
		case c.reviewed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
