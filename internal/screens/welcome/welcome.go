// Package welcome is the splash screen: a breathing cell mascot, then the
// banner. Any key moves on to the home screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/router"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	breathEvery  = 8 // ticks per inhale or exhale
	bubblesAt    = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// The cell mascot, drawn relaxed and mid-breath.
var mascotFrames = [2]string{
	`    ╭─────────────╮
  ╭─╯  ·    ·     ╰─╮
  │   ╭───────╮  ·  │
  │ · │ ◉   ◉ │     │
  │   │   ▽   │ ·   │
  │   ╰───────╯     │
  ╰─╮  ·    ~~~   ╭─╯
    ╰─────────────╯`,
	`   ╭───────────────╮
 ╭─╯   ·     ·     ╰─╮
 │    ╭───────╮   ·  │
 │ ·  │ ◉   ◉ │      │
 │    │   ○   │  ·   │
 │    ╰───────╯      │
 ╰─╮   ·    ~~~    ╭─╯
   ╰───────────────╯`,
}

// Air bubbles drift beside the mascot on these rows.
var bubbleRows = []int{0, 3, 6}

var bubbleGlyphs = []string{"°", "o", "O", "o"}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen plays the splash until a key is pressed.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	ticks   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the splash. next builds the screen that replaces it.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.ticks++
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		return w, tick()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

// leave builds the next screen once; later presses do nothing.
func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (w *WelcomeScreen) mascot() string {
	art := mascotFrames[(w.ticks/breathEvery)%len(mascotFrames)]
	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(art)
	if w.elapsed < bubblesAt {
		return rendered
	}

	left := lipgloss.NewStyle().Foreground(theme.AirFlow)
	right := lipgloss.NewStyle().Foreground(theme.Secondary)
	lines := strings.Split(rendered, "\n")
	for i, row := range bubbleRows {
		if row >= len(lines) {
			break
		}
		g := bubbleGlyphs[(w.ticks+i)%len(bubbleGlyphs)]
		lines[row] = left.Render(g) + "  " + lines[row] + "  " + right.Render(g)
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	parts := []string{w.mascot()}

	if w.elapsed >= bannerAt {
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Let's explore cells and airways!"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}
