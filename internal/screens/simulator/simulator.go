// Package simulator is the trigger lab: pick a trigger and watch the airway
// respond.
package simulator

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

// SimulatorScreen shows the trigger list beside the airway.
type SimulatorScreen struct {
	doc      *lesson.Document
	triggers []content.Key
	cursor   int
}

var _ screen.Screen = (*SimulatorScreen)(nil)
var _ screen.KeyHintProvider = (*SimulatorScreen)(nil)

// New creates the trigger lab.
func New(doc *lesson.Document) *SimulatorScreen {
	var triggers []content.Key
	for _, p := range doc.Registry().Profiles() {
		triggers = append(triggers, p.Trigger)
	}
	return &SimulatorScreen{doc: doc, triggers: triggers}
}

func (s *SimulatorScreen) Init() tea.Cmd { return nil }

func (s *SimulatorScreen) Title() string { return "Trigger Lab" }

func (s *SimulatorScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.WithDesc(keys.Select, "Expose"),
		keys.WithDesc(keys.Restart, "Reset"), keys.Back)
}

func (s *SimulatorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.triggers) == 0 {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(kmsg, keys.Down):
		if s.cursor < len(s.triggers)-1 {
			s.cursor++
		}
	case key.Matches(kmsg, keys.Select):
		_, _ = s.doc.Simulate(s.triggers[s.cursor])
	case key.Matches(kmsg, keys.Restart):
		_ = s.doc.Restart(lesson.ActivitySimulator)
	}
	return s, nil
}

func (s *SimulatorScreen) View(width, height int) string {
	reg := s.doc.Registry()
	active, profile := s.doc.SimulatorState()

	var list strings.Builder
	list.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Triggers"))
	list.WriteString("\n\n")
	for i, k := range s.triggers {
		label := k.Name
		if t, ok := reg.Topic(k); ok {
			label = t.Heading()
		}
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}
		style := theme.Unselected
		switch {
		case k == active:
			style = lipgloss.NewStyle().Foreground(theme.ToneColor(profile.Airway.Tone)).Bold(true)
		case i == s.cursor:
			style = theme.Selected
		}
		list.WriteString(style.Render(prefix+label) + "\n")
	}

	rows := 13
	if layout.IsShort(height) {
		rows = 9
	}
	textWidth := max(components.ContentWidth(width)-24, 30)

	var detail strings.Builder
	detail.WriteString(components.RenderAirway(profile.Airway, rows))
	detail.WriteString("\n\n")
	detail.WriteString(lipgloss.NewStyle().Foreground(theme.ToneColor(profile.Airway.Tone)).Bold(true).Render(profile.Headline))
	detail.WriteString("\n\n")
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth)
	detail.WriteString(theme.Hint.Render("What happens"))
	detail.WriteString("\n")
	detail.WriteString(body.Render(profile.WhatHappens))
	detail.WriteString("\n\n")
	detail.WriteString(theme.Hint.Render("Inside the cells"))
	detail.WriteString("\n")
	detail.WriteString(body.Render(profile.CellularEffects))

	page := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(24).Render(list.String()),
		detail.String(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, page)
}
