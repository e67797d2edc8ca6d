package scenario

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cellquest/internal/screens/screentest"
)

func TestScenarioScreen_PlayThrough(t *testing.T) {
	f := screentest.New(t, nil)
	s := New(f.Doc)
	require.False(t, s.done)

	deck := f.Doc.Registry().Scenarios()
	for _, sc := range deck {
		key := 'n'
		if sc.IsTrigger {
			key = 'y'
		}
		s.Update(screentest.Key(key))
		require.NotNil(t, s.result)
		assert.True(t, s.result.Correct, sc.ID)
		assert.Contains(t, s.View(100, 60), "Press Enter")
		s.Update(screentest.Special(tea.KeyEnter))
	}

	assert.True(t, s.done)
	assert.Contains(t, s.View(100, 40), "🏆")

	s.Update(screentest.Key('r'))
	assert.False(t, s.done)
	idx, _, score := f.Doc.ScenarioProgress()
	assert.Zero(t, idx)
	assert.Zero(t, score)
}

func TestScenarioScreen_JudgeOnce(t *testing.T) {
	f := screentest.New(t, nil)
	s := New(f.Doc)

	s.Update(screentest.Key('y'))
	first := s.result
	s.Update(screentest.Key('n'))
	assert.Same(t, first, s.result)
	_, _, score := f.Doc.ScenarioProgress()
	assert.Equal(t, 1, score)
}
