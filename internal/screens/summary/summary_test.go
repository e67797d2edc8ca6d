package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/router"
	"github.com/abhisek/cellquest/internal/screens/screentest"
)

func load(t *testing.T, s *SummaryScreen) {
	t.Helper()
	msg := screentest.Run(s.Init())
	require.IsType(t, resultsLoadedMsg{}, msg)
	s.Update(msg)
}

func TestSummaryScreen_Title(t *testing.T) {
	f := screentest.New(t, nil)
	assert.Equal(t, "My Results", New(f.Doc).Title())
}

func TestSummaryScreen_LoadingBeforeInit(t *testing.T) {
	f := screentest.New(t, nil)
	assert.Contains(t, New(f.Doc).View(80, 24), "Loading results")
}

func TestSummaryScreen_EmptyJournal(t *testing.T) {
	f := screentest.New(t, nil)
	s := New(f.Doc)
	load(t, s)

	view := s.View(80, 30)
	assert.Contains(t, view, "Nothing recorded yet")
	assert.Contains(t, view, "not taken yet")
	assert.Contains(t, view, "0 of")
	assert.Contains(t, view, "pairs")
}

func TestSummaryScreen_TalliesAfterPlay(t *testing.T) {
	f := screentest.New(t, nil)
	sc, err := f.Doc.CurrentScenario()
	require.NoError(t, err)
	_, err = f.Doc.SubmitJudgement(sc.IsTrigger)
	require.NoError(t, err)
	_, err = f.Doc.SubmitQuizAnswers(nil)
	require.NoError(t, err)

	s := New(f.Doc)
	load(t, s)
	require.Len(t, s.tallies, 2)
	assert.Equal(t, lesson.ActivityScenario, s.tallies[0].Activity)
	assert.Equal(t, 1, s.tallies[0].Correct)
	assert.NotEmpty(t, s.recent)

	view := s.View(100, 40)
	assert.Contains(t, view, "Trigger or Not?")
	assert.Contains(t, view, "Final Quiz")
	assert.Contains(t, view, "judged")
	assert.Contains(t, view, "✗")
}

func TestSummaryScreen_RefreshReloads(t *testing.T) {
	f := screentest.New(t, nil)
	s := New(f.Doc)
	load(t, s)
	assert.Empty(t, s.tallies)

	require.NoError(t, f.Doc.StartTour())
	_, cmd := s.Update(screentest.Key('r'))
	s.Update(screentest.Run(cmd))
	require.Len(t, s.tallies, 1)
	assert.Equal(t, lesson.ActivityTour, s.tallies[0].Activity)
}

func TestSummaryScreen_EnterPops(t *testing.T) {
	f := screentest.New(t, nil)
	s := New(f.Doc)
	_, cmd := s.Update(screentest.Special(tea.KeyEnter))
	assert.IsType(t, router.PopScreenMsg{}, screentest.Run(cmd))
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	f := screentest.New(t, nil)
	hints := New(f.Doc).KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "Refresh", hints[0].Description)
}
