package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label    string
	Hint     string // status shown dim after the label
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions. Up and down wrap around and skip
// disabled items; digits 1-9 jump to and run an item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// move steps the selection by dir until it lands on an enabled item.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	it := m.Items[i]
	if it.Disabled || it.Action == nil {
		return nil
	}
	return it.Action()
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		m.move(-1)
	case key.Matches(kmsg, keys.Down):
		m.move(1)
	case key.Matches(kmsg, keys.Select):
		return m, m.activate(m.Selected)
	default:
		if s := kmsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			i := int(s[0] - '1')
			if i < len(m.Items) && !m.Items[i].Disabled {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

// View draws the items as arcade rows; the selection is a highlighted bar.
func (m Menu) View() string {
	selected := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
	normal := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := make([]string, len(m.Items))
	for i, it := range m.Items {
		switch {
		case i == m.Selected:
			lines[i] = selected.Render(" ▸ " + it.Label + " ")
		case it.Disabled:
			lines[i] = dim.Render("   " + it.Label)
		default:
			lines[i] = normal.Render("   " + it.Label)
		}
		if it.Hint != "" {
			lines[i] += " " + dim.Render(it.Hint)
		}
	}
	return strings.Join(lines, "\n")
}
