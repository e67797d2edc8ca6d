// Package reader shows the lesson sections one page at a time.
package reader

import (
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

// extras lists the subtopics shown under each section.
var extras = map[content.Key][]content.Key{
	content.SectionCellsBasics:    content.KeysOf(content.KindZoom),
	content.SectionHealthyAirways: content.KeysOf(content.KindLungPart),
	content.SectionAsthmaEffects:  {content.GobletCell, content.SmoothMuscle, content.Cilia},
	content.SectionInteractive:    {content.Pollen, content.Exercise, content.ColdAir, content.Smoke},
}

// ReaderScreen pages through the lesson sections.
type ReaderScreen struct {
	doc    *lesson.Document
	cursor int // selected subtopic, -1 for none
}

var _ screen.Screen = (*ReaderScreen)(nil)
var _ screen.KeyHintProvider = (*ReaderScreen)(nil)

// New opens the reader at the navigator's current section.
func New(doc *lesson.Document) *ReaderScreen {
	return &ReaderScreen{doc: doc, cursor: -1}
}

func (r *ReaderScreen) Init() tea.Cmd { return nil }

func (r *ReaderScreen) Title() string { return "Lesson" }

func (r *ReaderScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Left, keys.Right, keys.WithDesc(keys.Down, "Explore"), keys.Back)
}

func (r *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	nav := r.doc.Navigator()
	switch {
	case key.Matches(kmsg, keys.Right):
		if nav.Next() {
			r.cursor = -1
		}
	case key.Matches(kmsg, keys.Left):
		if nav.Prev() {
			r.cursor = -1
		}
	case key.Matches(kmsg, keys.Down):
		if r.cursor < len(r.subtopics())-1 {
			r.cursor++
		}
	case key.Matches(kmsg, keys.Up):
		if r.cursor >= 0 {
			r.cursor--
		}
	}
	return r, nil
}

func (r *ReaderScreen) subtopics() []content.Topic {
	var out []content.Topic
	for _, k := range extras[r.doc.Navigator().Current()] {
		if t, ok := r.doc.Registry().Topic(k); ok {
			out = append(out, t)
		}
	}
	return out
}

func (r *ReaderScreen) View(width, height int) string {
	nav := r.doc.Navigator()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.NewProgressBar("Sections", nav.Index(), nav.Len(), true, cw).View())
	b.WriteString("\n\n")

	if t, ok := r.doc.Registry().Topic(nav.Current()); ok {
		b.WriteString(components.TopicCard(t, cw))
		b.WriteString("\n")
	}

	subs := r.subtopics()
	if len(subs) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("── Learn more ──"))
		b.WriteString("\n")
		for i, t := range subs {
			if i == r.cursor {
				b.WriteString(theme.Selected.Render("▸ "+t.Heading()) + "\n")
			} else {
				b.WriteString(theme.Unselected.Render("  "+t.Heading()) + "\n")
			}
		}
		if r.cursor >= 0 && r.cursor < len(subs) {
			b.WriteString("\n")
			b.WriteString(components.ArcadeCard(components.TopicCard(subs[r.cursor], cw-8), cw))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
