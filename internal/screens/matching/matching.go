// Package matching is the match-the-parts game screen.
package matching

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/lesson"
	game "github.com/abhisek/cellquest/internal/matching"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/layout"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// MatchingScreen shows parts on the left and jobs on the right.
type MatchingScreen struct {
	doc      *lesson.Document
	columns  [2][]game.Item
	col, row int
	feedback string
	success  bool
	complete bool
}

var _ screen.Screen = (*MatchingScreen)(nil)
var _ screen.KeyHintProvider = (*MatchingScreen)(nil)

// New lays out the board. Jobs are listed in reverse so rows do not line up
// with their parts.
func New(doc *lesson.Document) *MatchingScreen {
	m := &MatchingScreen{doc: doc}
	for _, it := range doc.Matching().Items() {
		if it.Role == game.RolePrompt {
			m.columns[0] = append(m.columns[0], it)
		} else {
			m.columns[1] = append([]game.Item{it}, m.columns[1]...)
		}
	}
	m.complete = doc.Matching().Complete()
	return m
}

func (m *MatchingScreen) Init() tea.Cmd { return nil }

func (m *MatchingScreen) Title() string { return "Match the Parts" }

func (m *MatchingScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.WithDesc(keys.Right, "Column"), keys.WithDesc(keys.Down, "Row"),
		keys.Select, keys.WithDesc(keys.Restart, "Reset"), keys.Back)
}

func (m *MatchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ChangedMsg:
		// Redraw after a wrong pair clears.
		return m, nil
	case screen.CompletedMsg:
		if msg.Activity == lesson.ActivityMatching {
			m.complete = true
		}
		return m, nil
	case tea.KeyMsg:
		m.handleKey(msg)
	}
	return m, nil
}

func (m *MatchingScreen) handleKey(msg tea.KeyMsg) {
	rows := len(m.columns[m.col])
	switch {
	case key.Matches(msg, keys.Left, keys.Right):
		m.col = 1 - m.col
		m.row = min(m.row, max(len(m.columns[m.col])-1, 0))
	case key.Matches(msg, keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, keys.Down):
		if m.row < rows-1 {
			m.row++
		}
	case key.Matches(msg, keys.Select, keys.Toggle):
		if rows == 0 {
			return
		}
		out, err := m.doc.SelectItem(m.columns[m.col][m.row].ID)
		if err != nil {
			return
		}
		if out.Message != "" {
			m.feedback, m.success = out.Message, out.Success()
		}
		if out.Kind == game.Completed {
			m.complete = true
		}
	case key.Matches(msg, keys.Restart):
		_ = m.doc.Restart(lesson.ActivityMatching)
		m.feedback, m.complete = "", false
	}
}

func (m *MatchingScreen) renderItem(it game.Item, focused bool, w int) string {
	g := m.doc.Matching()
	border := theme.Border
	fg := theme.Text
	switch g.Status(it.ID) {
	case game.Selected:
		border, fg = theme.Primary, theme.Primary
	case game.Correct:
		border, fg = theme.Success, theme.Success
	case game.Incorrect:
		border, fg = theme.Error, theme.Error
	}
	if focused {
		border = theme.ArcadeYellow
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(fg).
		Width(w).
		Render(it.Label)
}

func (m *MatchingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	colW := (cw - 4) / 2

	var cols [2]string
	for c := range m.columns {
		var cells []string
		head := "Cell part"
		if c == 1 {
			head = "Its job"
		}
		cells = append(cells, theme.Hint.Render(head))
		for r, it := range m.columns[c] {
			cells = append(cells, m.renderItem(it, c == m.col && r == m.row, colW))
		}
		cols[c] = lipgloss.JoinVertical(lipgloss.Left, cells...)
	}

	g := m.doc.Matching()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(
		fmt.Sprintf("Matched %d of %d", g.CorrectCount()/2, len(m.columns[0]))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols[0], "  ", cols[1]))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(components.Feedback(m.feedback, m.success)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
