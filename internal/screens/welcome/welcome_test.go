package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cellquest/internal/router"
	"github.com/abhisek/cellquest/internal/screen"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                           { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                    { return "home" }
func (h *homeStub) Title() string                           { return "Home" }

func newCounted() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &homeStub{}
	}), &built
}

func advance(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

const tagline = "explore cells and airways"

func TestWelcome_InitTicks(t *testing.T) {
	w, _ := newCounted()
	assert.NotNil(t, w.Init())
	assert.Empty(t, w.Title())
}

func TestWelcome_Phases(t *testing.T) {
	w, _ := newCounted()
	assert.NotContains(t, w.View(80, 24), tagline)
	assert.NotContains(t, w.View(80, 24), "°")

	advance(w, 5)
	assert.Equal(t, bubblesAt, w.elapsed)
	assert.NotContains(t, w.View(80, 24), tagline)

	advance(w, 10)
	assert.Equal(t, bannerAt, w.elapsed)
	assert.Contains(t, w.View(80, 24), tagline)
	assert.Contains(t, w.View(80, 24), "any key")
}

func TestWelcome_ElapsedCapped(t *testing.T) {
	w, built := newCounted()
	cmd := advance(w, 60)
	assert.NotNil(t, cmd, "ticks keep the bubbles moving")
	assert.Equal(t, totalDur, w.elapsed)
	assert.Equal(t, 0, *built, "no transition without a key")
}

func TestWelcome_MascotBreathes(t *testing.T) {
	w, _ := newCounted()
	first := w.mascot()
	advance(w, breathEvery)
	assert.NotEqual(t, first, w.mascot())
}

func TestWelcome_AnyKeyReplaces(t *testing.T) {
	for _, k := range []tea.KeyPressMsg{{Code: ' '}, {Code: 'q', Text: "q"}, {Code: tea.KeyEnter}} {
		w, built := newCounted()
		advance(w, 2)

		_, cmd := w.Update(k)
		require.NotNil(t, cmd)
		msg, ok := cmd().(router.ReplaceScreenMsg)
		require.True(t, ok)
		assert.Equal(t, "Home", msg.Screen.Title())
		assert.Equal(t, 1, *built)
	}
}

func TestWelcome_TransitionsOnce(t *testing.T) {
	w, built := newCounted()
	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *built)
}

func TestRenderBanner_CompactWhenNarrow(t *testing.T) {
	assert.Contains(t, RenderBanner(40), bannerCompact)
	assert.NotContains(t, RenderBanner(bannerWidth+10), bannerCompact)
}
