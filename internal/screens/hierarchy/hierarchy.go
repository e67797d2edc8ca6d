// Package hierarchy is the build-the-body ordering screen. Cards are picked
// up from the pool and dropped into slots with the keyboard.
package hierarchy

import (
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/layout"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

const (
	colPool = iota
	colSlots
)

// HierarchyScreen shows the card pool beside the ordered slots.
type HierarchyScreen struct {
	doc      *lesson.Document
	col, row int
	held     string // card value being carried
	failed   map[string]bool
	feedback string
	valid    bool
}

var _ screen.Screen = (*HierarchyScreen)(nil)
var _ screen.KeyHintProvider = (*HierarchyScreen)(nil)

// New creates the ordering screen.
func New(doc *lesson.Document) *HierarchyScreen {
	return &HierarchyScreen{doc: doc}
}

func (h *HierarchyScreen) Init() tea.Cmd { return nil }

func (h *HierarchyScreen) Title() string { return "Build the Body" }

func (h *HierarchyScreen) KeyHints() []layout.KeyHint {
	action := "Pick up"
	if h.held != "" {
		action = "Drop"
	}
	return keys.Hints(keys.WithDesc(keys.Right, "Column"), keys.WithDesc(keys.Select, action),
		keys.Check, keys.WithDesc(keys.Restart, "Reset"), keys.Back)
}

func (h *HierarchyScreen) pool() []content.HierarchyItem {
	var out []content.HierarchyItem
	for _, it := range h.doc.Hierarchy().Available() {
		if it.Value != h.held {
			out = append(out, it)
		}
	}
	return out
}

func (h *HierarchyScreen) rows() int {
	if h.col == colPool {
		return len(h.pool())
	}
	return len(h.doc.Hierarchy().Slots())
}

func (h *HierarchyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch {
	case key.Matches(kmsg, keys.Left, keys.Right):
		h.col = 1 - h.col
		h.clampRow()
	case key.Matches(kmsg, keys.Up):
		if h.row > 0 {
			h.row--
		}
	case key.Matches(kmsg, keys.Down):
		if h.row < h.rows()-1 {
			h.row++
		}
	case key.Matches(kmsg, keys.Select, keys.Toggle):
		h.activate()
	case key.Matches(kmsg, keys.Check):
		r := h.doc.CheckHierarchy()
		h.feedback, h.valid = r.Message, r.Valid
		h.failed = make(map[string]bool, len(r.Failed))
		for _, id := range r.Failed {
			h.failed[id] = true
		}
	case key.Matches(kmsg, keys.Restart):
		_ = h.doc.Restart(lesson.ActivityHierarchy)
		h.held, h.feedback, h.failed = "", "", nil
		h.clampRow()
	}
	return h, nil
}

func (h *HierarchyScreen) activate() {
	if h.col == colPool {
		pool := h.pool()
		if h.row < len(pool) {
			h.held = pool[h.row].Value
			h.col, h.row = colSlots, 0
		}
		return
	}

	slots := h.doc.Hierarchy().Slots()
	if h.row >= len(slots) {
		return
	}
	slot := slots[h.row].ID
	occupant, occupied := h.doc.Hierarchy().Occupant(slot)

	switch {
	case h.held != "":
		if _, err := h.doc.Place(h.held, slot); err == nil {
			h.held = ""
			delete(h.failed, slot)
		}
	case occupied:
		h.doc.Unplace(occupant.Value)
		h.held = occupant.Value
	}
}

func (h *HierarchyScreen) clampRow() {
	h.row = min(h.row, max(h.rows()-1, 0))
}

func (h *HierarchyScreen) label(value string) string {
	for _, it := range h.doc.Registry().Hierarchy().Items {
		if it.Value == value {
			return it.Label
		}
	}
	return value
}

func (h *HierarchyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	colW := (cw - 4) / 2
	card := func(text string, border, fg color.Color) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(fg).
			Width(colW).
			Render(text)
	}

	poolCells := []string{theme.Hint.Render("Cards")}
	for i, it := range h.pool() {
		border := theme.Border
		if h.col == colPool && i == h.row {
			border = theme.ArcadeYellow
		}
		poolCells = append(poolCells, card(it.Label, border, theme.Text))
	}

	slotCells := []string{theme.Hint.Render("Smallest → Largest")}
	for i, s := range h.doc.Hierarchy().Slots() {
		text := s.Label + ": " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("(empty)")
		fg := theme.Text
		if it, ok := h.doc.Hierarchy().Occupant(s.ID); ok {
			text = s.Label + ": " + it.Label
		}
		border := theme.Border
		switch {
		case h.col == colSlots && i == h.row:
			border = theme.ArcadeYellow
		case h.failed[s.ID]:
			border, fg = theme.Error, theme.Error
		case h.valid:
			border = theme.Success
		}
		slotCells = append(slotCells, card(text, border, fg))
	}

	var b strings.Builder
	if h.held != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("Carrying: " + h.label(h.held)))
	} else {
		b.WriteString(theme.Hint.Render("Pick a card, then choose its slot."))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, poolCells...), "  ",
		lipgloss.JoinVertical(lipgloss.Left, slotCells...)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(components.Feedback(h.feedback, h.valid)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
