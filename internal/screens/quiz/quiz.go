// Package quiz is the final quiz screen.
package quiz

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/lesson"
	q "github.com/abhisek/cellquest/internal/quiz"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/layout"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// QuizScreen shows one question at a time and grades them together.
type QuizScreen struct {
	doc       *lesson.Document
	questions []q.Question
	lists     []components.Checklist
	current   int
	report    *q.Report
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. A quiz submitted earlier in the session opens
// in review.
func New(doc *lesson.Document) *QuizScreen {
	s := &QuizScreen{doc: doc, questions: doc.QuizQuestions()}
	for _, question := range s.questions {
		opts := make([]components.ChecklistOption, len(question.Options))
		for i, o := range question.Options {
			opts[i] = components.ChecklistOption{Value: o.Value, Text: o.Text}
		}
		s.lists = append(s.lists, components.NewChecklist(question.Prompt, opts, question.Multi))
	}
	if r, ok := doc.QuizReport(); ok {
		s.review(r)
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string { return "Final Quiz" }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.report != nil {
		return keys.Hints(keys.Left, keys.Right, keys.WithDesc(keys.Restart, "Retry"), keys.Back)
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Choose"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.questions) == 0 {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Right):
		s.current = min(s.current+1, len(s.questions)-1)
	case key.Matches(kmsg, keys.Left):
		s.current = max(s.current-1, 0)
	case s.report != nil:
		if key.Matches(kmsg, keys.Restart) {
			s.retry()
		}
	case key.Matches(kmsg, keys.Submit):
		s.submit()
	case key.Matches(kmsg, keys.Select):
		if s.current == len(s.questions)-1 {
			s.submit()
		} else {
			s.current++
		}
	default:
		s.lists[s.current], _ = s.lists[s.current].Update(msg)
	}
	return s, nil
}

func (s *QuizScreen) submit() {
	answers := make(q.Answers, len(s.questions))
	for i, question := range s.questions {
		if v := s.lists[i].Values(); len(v) > 0 {
			answers[question.ID] = v
		}
	}
	r, err := s.doc.SubmitQuizAnswers(answers)
	if err != nil {
		if prev, ok := s.doc.QuizReport(); ok {
			r = prev
		} else {
			return
		}
	}
	s.review(r)
}

func (s *QuizScreen) review(r q.Report) {
	s.report = &r
	for i, question := range s.questions {
		s.lists[i].Review(question.Key.Values)
	}
	s.current = 0
}

func (s *QuizScreen) retry() {
	_ = s.doc.Restart(lesson.ActivityQuiz)
	s.report = nil
	for i := range s.lists {
		s.lists[i].Reset()
	}
	s.current = 0
}

func (s *QuizScreen) answered() int {
	n := 0
	for _, l := range s.lists {
		if len(l.Values()) > 0 {
			n++
		}
	}
	return n
}

func (s *QuizScreen) View(width, height int) string {
	if len(s.questions) == 0 {
		return theme.Hint.Render("This content pack has no quiz.")
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	if s.report != nil {
		r := s.report
		b.WriteString(components.ArcadeCard(fmt.Sprintf("%s  %d / %d  (%d%%)\n%s",
			r.Band.Emoji, r.Score, r.Total, r.Percent, r.Band.Message), cw))
		b.WriteString("\n\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("Answered %d of %d", s.answered(), len(s.questions))))
		b.WriteString("\n")
	}

	b.WriteString(components.NewProgressBar(fmt.Sprintf("Question %d", s.current+1),
		s.current, len(s.questions), true, cw).View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(s.lists[s.current].View()))

	if s.report != nil && s.current < len(s.report.Results) {
		res := s.report.Results[s.current]
		b.WriteString("\n")
		if res.Correct {
			b.WriteString(theme.Correct.Render("✓ Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("✗ Correct answer: " + res.AnswerText))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
