// Package scenario is the "trigger or not?" game screen.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/lesson"
	sc "github.com/abhisek/cellquest/internal/scenario"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/layout"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// ScenarioScreen presents one situation at a time.
type ScenarioScreen struct {
	doc    *lesson.Document
	result *sc.Result
	done   bool
}

var _ screen.Screen = (*ScenarioScreen)(nil)
var _ screen.KeyHintProvider = (*ScenarioScreen)(nil)

// New creates the scenario screen, resuming wherever the deck is.
func New(doc *lesson.Document) *ScenarioScreen {
	s := &ScenarioScreen{doc: doc}
	_, err := doc.CurrentScenario()
	s.done = errors.Is(err, sc.ErrDeckExhausted)
	return s
}

func (s *ScenarioScreen) Init() tea.Cmd { return nil }

func (s *ScenarioScreen) Title() string { return "Trigger or Not?" }

func (s *ScenarioScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.done:
		return keys.Hints(keys.WithDesc(keys.Restart, "Play again"), keys.Back)
	case s.result != nil:
		return keys.Hints(keys.WithDesc(keys.Select, "Next"), keys.Back)
	default:
		return keys.Hints(keys.Yes, keys.No, keys.Back)
	}
}

func (s *ScenarioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Restart):
		_ = s.doc.Restart(lesson.ActivityScenario)
		s.result, s.done = nil, false
	case s.done:
	case s.result == nil && key.Matches(kmsg, keys.Yes):
		s.judge(true)
	case s.result == nil && key.Matches(kmsg, keys.No):
		s.judge(false)
	case s.result != nil && key.Matches(kmsg, keys.Select):
		s.result = nil
		if _, err := s.doc.NextScenario(); errors.Is(err, sc.ErrDeckExhausted) {
			s.done = true
		}
	}
	return s, nil
}

func (s *ScenarioScreen) judge(isTrigger bool) {
	r, err := s.doc.SubmitJudgement(isTrigger)
	if err != nil {
		return
	}
	s.result = &r
}

func (s *ScenarioScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.done {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.viewFinal(cw))
	}

	idx, total, score := s.doc.ScenarioProgress()
	cur, err := s.doc.CurrentScenario()
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(components.NewProgressBar("Scenario", idx, total, true, cw-12).View())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(fmt.Sprintf("  ★ %d", score)))
	b.WriteString("\n\n")
	b.WriteString(components.ArcadeCard(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(cur.Situation), cw))
	b.WriteString("\n\n")

	if s.result == nil {
		b.WriteString(theme.Body.Render("Is this an asthma trigger?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			components.ArcadeButton("Y  Trigger", false, 16), "  ",
			components.ArcadeButton("N  Safe", false, 16)))
	} else {
		b.WriteString(s.viewResult(cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *ScenarioScreen) viewResult(cw int) string {
	r := s.result
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(components.Feedback(r.Feedback, r.Correct)))
	b.WriteString("\n\n")

	if r.Tier != content.SeverityNone {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.SeverityColor(r.Tier)).Bold(true).
			Render("Airway reaction: " + strings.ToUpper(string(r.Tier))))
		b.WriteString("\n")
		if p, ok := s.doc.Registry().Profile(r.Trigger); ok && !r.Trigger.IsZero() {
			b.WriteString(components.RenderAirway(p.Airway, 7))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("Airways stay calm and open."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Press Enter for the next one."))
	return b.String()
}

func (s *ScenarioScreen) viewFinal(cw int) string {
	f := s.doc.ScenarioFinal()
	body := fmt.Sprintf("%s\n\n%s\n\nYou got %d of %d right (%d%%)",
		lipgloss.NewStyle().Bold(true).Render(f.Badge+" Trigger Detective"),
		f.Message, f.Score, f.Total, f.Percent)
	return components.ArcadeCard(body, cw) + "\n\n" + theme.Hint.Render("Press R to play again.")
}
