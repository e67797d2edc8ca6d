// Package explorer shows the cell diagram, organelle info, and the guided
// tour.
package explorer

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/sequencer"
	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/layout"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// ExplorerScreen is the interactive cell diagram.
type ExplorerScreen struct {
	doc     *lesson.Document
	cursor  int
	info    content.Topic
	hasInfo bool
	lit     content.Key
	status  string

	finding bool
	finder  components.TextInput
}

var _ screen.Screen = (*ExplorerScreen)(nil)
var _ screen.KeyHintProvider = (*ExplorerScreen)(nil)
var _ screen.InputCapturer = (*ExplorerScreen)(nil)
var _ screen.Closer = (*ExplorerScreen)(nil)

// New creates the explorer over doc.
func New(doc *lesson.Document) *ExplorerScreen {
	return &ExplorerScreen{doc: doc}
}

func (e *ExplorerScreen) Init() tea.Cmd { return nil }

func (e *ExplorerScreen) Title() string { return "Cell Explorer" }

func (e *ExplorerScreen) CapturingInput() bool { return e.finding }

// Close cancels a running tour so the next visit starts clean.
func (e *ExplorerScreen) Close() { e.doc.Tour().Cancel() }

func (e *ExplorerScreen) KeyHints() []layout.KeyHint {
	if e.finding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Look up"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return keys.Hints(keys.WithDesc(keys.Right, "Part"), keys.WithDesc(keys.Select, "Info"),
		keys.Find, keys.Tour, keys.Back)
}

func (e *ExplorerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.HighlightMsg:
		e.lit = msg.Target
		e.info, e.hasInfo = msg.Topic, true
		return e, nil
	case screen.UnhighlightMsg:
		if e.lit == msg.Target {
			e.lit = content.Key{}
		}
		return e, nil
	case screen.CompletedMsg:
		if msg.Activity == lesson.ActivityTour {
			e.lit = content.Key{}
			e.status = msg.Message
		}
		return e, nil
	case tea.KeyMsg:
		if e.finding {
			return e, e.updateFinder(msg)
		}
		return e, e.handleKey(msg)
	}
	return e, nil
}

func (e *ExplorerScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Right, keys.Down):
		e.cursor = (e.cursor + 1) % len(parts)
	case key.Matches(msg, keys.Left, keys.Up):
		e.cursor = (e.cursor + len(parts) - 1) % len(parts)
	case key.Matches(msg, keys.Select):
		e.show(parts[e.cursor].id)
	case key.Matches(msg, keys.Tour):
		err := e.doc.StartTour()
		switch {
		case errors.Is(err, sequencer.ErrActive):
			e.status = "The tour is already running."
		case err != nil:
			e.status = err.Error()
		default:
			e.status = "🚶 Touring the cell..."
		}
	case key.Matches(msg, keys.Find):
		e.finding = true
		e.finder = components.NewTextInput("e.g. mitochondria2", 24)
		return e.finder.Init()
	}
	return nil
}

func (e *ExplorerScreen) updateFinder(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		e.finding = false
		return nil
	case key.Matches(msg, keys.Select):
		name := e.finder.Value()
		if name == "" {
			return nil
		}
		t := e.show(name)
		e.finder.Submit(t.Key.Name == partName(name))
		for i, p := range parts {
			if p.id == name {
				e.cursor = i
			}
		}
		return nil
	}
	var cmd tea.Cmd
	e.finder, cmd = e.finder.Update(msg)
	return cmd
}

// show resolves a part ID and displays its topic. Unknown parts show the
// cytoplasm.
func (e *ExplorerScreen) show(partID string) content.Topic {
	t := e.doc.Registry().CellPart(partID)
	e.info, e.hasInfo = t, true
	return t
}

func (e *ExplorerScreen) resolve(id string) content.Key {
	return e.doc.Registry().CellPart(id).Key
}

func (e *ExplorerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	diagram := renderDiagram(diagramState{
		cursor:    parts[e.cursor].id,
		lit:       e.lit,
		resolveFn: e.resolve,
	})

	var b strings.Builder
	b.WriteString(diagram)
	b.WriteString("\n\n")

	if e.finding {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Find a part: "))
		b.WriteString(e.finder.View())
		b.WriteString("\n\n")
	}
	if e.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(e.status))
		b.WriteString("\n\n")
	}
	if e.hasInfo {
		b.WriteString(components.ArcadeCard(components.TopicCard(e.info, cw-8), cw))
	} else {
		b.WriteString(theme.Hint.Render("Pick a part and press Enter, or press T for a guided tour."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
