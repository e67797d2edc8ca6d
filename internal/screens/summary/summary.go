// Package summary shows what the learner has done this session.
package summary

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/router"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/store"
	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/layout"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

const recentLimit = 6

type resultsLoadedMsg struct {
	Tallies []store.ActivityTally
	Recent  []store.ActivityEvent
	Err     error
}

var activityNames = map[string]string{
	lesson.ActivityScenario:  "Trigger or Not?",
	lesson.ActivityMatching:  "Match the Parts",
	lesson.ActivityHierarchy: "Build the Body",
	lesson.ActivityQuiz:      "Final Quiz",
	lesson.ActivityTour:      "Cell Tour",
	lesson.ActivityAnimation: "Animations",
	lesson.ActivitySimulator: "Trigger Lab",
}

// SummaryScreen displays the session's journal tallies and scores.
type SummaryScreen struct {
	doc     *lesson.Document
	tallies []store.ActivityTally
	recent  []store.ActivityEvent
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a results screen for doc.
func New(doc *lesson.Document) *SummaryScreen {
	return &SummaryScreen{doc: doc}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return s.load
}

func (s *SummaryScreen) load() tea.Msg {
	ctx := context.Background()
	tallies, err := s.doc.Summary(ctx)
	if err != nil {
		return resultsLoadedMsg{Err: err}
	}
	recent, err := s.doc.Recent(ctx, recentLimit)
	if err != nil {
		return resultsLoadedMsg{Tallies: tallies}
	}
	return resultsLoadedMsg{Tallies: tallies, Recent: recent}
}

func (s *SummaryScreen) Title() string {
	return "My Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.WithDesc(keys.Restart, "Refresh"), keys.WithDesc(keys.Select, "Home"), keys.Back)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.tallies, s.recent = msg.Tallies, msg.Recent
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Select):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keys.Restart):
			return s, s.load
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading results...")
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(s.viewScores(cw))
	b.WriteString("\n\n")
	b.WriteString(s.viewTallies(cw))
	if len(s.recent) > 0 {
		b.WriteString("\n\n")
		b.WriteString(s.viewRecent())
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *SummaryScreen) viewScores(cw int) string {
	var lines []string

	if r, ok := s.doc.QuizReport(); ok {
		lines = append(lines, fmt.Sprintf("Quiz       %s  %d / %d  (%d%%)  %s",
			r.Band.Emoji, r.Score, r.Total, r.Percent, r.Band.Message))
	} else {
		lines = append(lines, "Quiz       not taken yet")
	}

	idx, total, _ := s.doc.ScenarioProgress()
	if idx >= total {
		f := s.doc.ScenarioFinal()
		lines = append(lines, fmt.Sprintf("Scenarios  %s  %d / %d  (%d%%)", f.Badge, f.Score, f.Total, f.Percent))
	} else {
		lines = append(lines, fmt.Sprintf("Scenarios  %d of %d judged", idx, total))
	}

	g := s.doc.Matching()
	lines = append(lines, fmt.Sprintf("Matching   %d of %d pairs", g.CorrectCount()/2, len(g.Items())/2))

	return components.ArcadeCard(strings.Join(lines, "\n"), cw)
}

func (s *SummaryScreen) viewTallies(cw int) string {
	if len(s.tallies) == 0 {
		return theme.Hint.Render("Nothing recorded yet. Try an activity!")
	}

	head := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	row := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(head.Render(fmt.Sprintf("%-18s %7s %8s %8s", "ACTIVITY", "ACTIONS", "CORRECT", "MISSED")))
	for _, t := range s.tallies {
		name, ok := activityNames[t.Activity]
		if !ok {
			name = t.Activity
		}
		b.WriteString("\n")
		b.WriteString(row.Render(fmt.Sprintf("%-18s %7d ", name, t.Events)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%8d", t.Correct)))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("%8d", t.Incorrect)))
	}
	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func (s *SummaryScreen) viewRecent() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Latest"))
	for _, e := range s.recent {
		line := fmt.Sprintf("  %s  %s %s", e.Timestamp.Local().Format("15:04:05"), e.Activity, e.Action)
		if e.Subject != "" {
			line += " " + e.Subject
		}
		style := theme.Hint
		switch e.Outcome {
		case store.OutcomeCorrect:
			line += " ✓"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case store.OutcomeIncorrect:
			line += " ✗"
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("\n")
		b.WriteString(style.Render(line))
	}
	return b.String()
}
