package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/router"
	"github.com/abhisek/cellquest/internal/screen"
	animscreen "github.com/abhisek/cellquest/internal/screens/animation"
	"github.com/abhisek/cellquest/internal/screens/explorer"
	hierarchyscreen "github.com/abhisek/cellquest/internal/screens/hierarchy"
	matchingscreen "github.com/abhisek/cellquest/internal/screens/matching"
	quizscreen "github.com/abhisek/cellquest/internal/screens/quiz"
	"github.com/abhisek/cellquest/internal/screens/reader"
	scenarioscreen "github.com/abhisek/cellquest/internal/screens/scenario"
	simscreen "github.com/abhisek/cellquest/internal/screens/simulator"
	"github.com/abhisek/cellquest/internal/screens/summary"
	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/layout"
)

// passPercent is the quiz score at which the mascot celebrates.
const passPercent = 70

// Menu positions of the activities that show a status hint.
const (
	itemScenario = 4
	itemMatching = 5
	itemQuiz     = 7
)

// HomeScreen is the activity menu.
type HomeScreen struct {
	doc  *lesson.Document
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over doc.
func New(doc *lesson.Document) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: "READ THE LESSON", Action: push(func() screen.Screen { return reader.New(doc) })},
		{Label: "CELL EXPLORER", Action: push(func() screen.Screen { return explorer.New(doc) })},
		{Label: "ANIMATIONS", Action: push(func() screen.Screen { return animscreen.New(doc) })},
		{Label: "TRIGGER LAB", Action: push(func() screen.Screen { return simscreen.New(doc) })},
		{Label: "TRIGGER OR NOT?", Action: push(func() screen.Screen { return scenarioscreen.New(doc) })},
		{Label: "MATCH THE PARTS", Action: push(func() screen.Screen { return matchingscreen.New(doc) })},
		{Label: "BUILD THE BODY", Action: push(func() screen.Screen { return hierarchyscreen.New(doc) })},
		{Label: "FINAL QUIZ", Action: push(func() screen.Screen { return quizscreen.New(doc) })},
		{Label: "MY RESULTS", Action: push(func() screen.Screen { return summary.New(doc) })},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{doc: doc, menu: components.NewMenu(items)}
}

// refreshHints shows how far the learner got in the scored activities.
func (h *HomeScreen) refreshHints() {
	items := h.menu.Items

	items[itemScenario].Hint = ""
	if idx, total, _ := h.doc.ScenarioProgress(); idx >= total {
		items[itemScenario].Hint = "✓ " + h.doc.ScenarioFinal().Badge
	} else if idx > 0 {
		items[itemScenario].Hint = fmt.Sprintf("%d/%d", idx, total)
	}

	g := h.doc.Matching()
	items[itemMatching].Hint = ""
	if g.Complete() {
		items[itemMatching].Hint = "✓"
	} else if n := g.CorrectCount() / 2; n > 0 {
		items[itemMatching].Hint = fmt.Sprintf("%d/%d", n, len(g.Items())/2)
	}

	items[itemQuiz].Hint = ""
	if r, ok := h.doc.QuizReport(); ok {
		items[itemQuiz].Hint = fmt.Sprintf("%d/%d", r.Score, r.Total)
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)

	nav := h.doc.Navigator()
	quizScore := ""
	report, taken := h.doc.QuizReport()
	if taken {
		quizScore = fmt.Sprintf("%d/%d %s", report.Score, report.Total, report.Band.Emoji)
	}
	mood := moodFor(report.Percent, taken)

	var sections []string
	sections = append(sections, renderTitle(cw))
	if !compact {
		sections = append(sections, renderMascotBox(mood, cw))
	}
	sections = append(sections, renderStatsBar(nav.Index(), nav.Len(), quizScore, cw, compact))
	h.refreshHints()
	sections = append(sections, renderMenu(h.menu, cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
