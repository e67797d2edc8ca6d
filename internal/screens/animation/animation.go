// Package animation plays the staged airway animations.
package animation

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	anim "github.com/abhisek/cellquest/internal/animation"
	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/sequencer"
	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/layout"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// AnimationScreen lets the reader pick and play an animation.
type AnimationScreen struct {
	doc      *lesson.Document
	list     []content.Animation
	selected int
	frame    *anim.Frame
	status   string
}

var _ screen.Screen = (*AnimationScreen)(nil)
var _ screen.KeyHintProvider = (*AnimationScreen)(nil)
var _ screen.Closer = (*AnimationScreen)(nil)

// New creates the animation screen.
func New(doc *lesson.Document) *AnimationScreen {
	return &AnimationScreen{doc: doc, list: doc.Registry().Animations()}
}

func (a *AnimationScreen) Init() tea.Cmd { return nil }

func (a *AnimationScreen) Title() string { return "Animations" }

func (a *AnimationScreen) Close() { a.doc.Animations().StopAll() }

func (a *AnimationScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.WithDesc(keys.Right, "Choose"), keys.WithDesc(keys.Select, "Play"),
		keys.WithDesc(keys.Restart, "Stop"), keys.Back)
}

func (a *AnimationScreen) current() content.Animation {
	return a.list[a.selected]
}

func (a *AnimationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if len(a.list) == 0 {
		return a, nil
	}
	switch msg := msg.(type) {
	case screen.StageMsg:
		if msg.Frame.Animation == a.current().Name {
			f := msg.Frame
			a.frame = &f
		}
	case screen.CompletedMsg:
		if msg.Activity == lesson.ActivityAnimation && msg.Message == a.current().Name {
			a.status = "✓ Finished. Press Enter to watch again."
		}
	case tea.KeyMsg:
		a.handleKey(msg)
	}
	return a, nil
}

func (a *AnimationScreen) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Right):
		a.choose((a.selected + 1) % len(a.list))
	case key.Matches(msg, keys.Left):
		a.choose((a.selected + len(a.list) - 1) % len(a.list))
	case key.Matches(msg, keys.Select):
		err := a.doc.StartAnimation(a.current().Name)
		switch {
		case errors.Is(err, sequencer.ErrActive):
			a.status = "Already playing."
		case err != nil:
			a.status = err.Error()
		default:
			a.status = "▶ Playing..."
		}
	case key.Matches(msg, keys.Restart):
		if a.doc.Animations().Stop(a.current().Name) {
			a.status = "■ Stopped."
		}
	}
}

func (a *AnimationScreen) choose(i int) {
	a.selected = i
	a.frame = nil
	a.status = ""
}

func (a *AnimationScreen) View(width, height int) string {
	if len(a.list) == 0 {
		return theme.Hint.Render("No animations in this content pack.")
	}
	cw := components.ContentWidth(width)
	cur := a.current()

	var tabs []string
	for i, an := range a.list {
		if i == a.selected {
			tabs = append(tabs, theme.Selected.Render("[ "+an.Title+" ]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render("  "+an.Title+"  "))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	title, desc := cur.Title, "Press Enter to start."
	var airway content.Airway
	if len(cur.Stages) > 0 {
		airway = cur.Stages[0].Airway
	}
	if a.frame != nil {
		title, desc, airway = a.frame.Title, a.frame.Desc, a.frame.Airway
		b.WriteString(components.NewProgressBar("Stage", a.frame.Index, a.frame.Count, true, cw).View())
		b.WriteString("\n\n")
	}

	rows := 13
	if layout.IsShort(height) {
		rows = 9
	}
	b.WriteString(components.RenderAirway(airway, rows))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ToneColor(airway.Tone)).Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(desc))
	if a.status != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(a.status))
	}
	if a.doc.Animations().Playing(cur.Name) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%s)", cur.Name)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
