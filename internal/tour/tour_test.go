package tour

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/schedule"
	"github.com/abhisek/cellquest/internal/sequencer"
)

type events struct {
	log      []string
	complete string
}

func newTour(t *testing.T, presence Presence) (*Controller, *schedule.Manual, *events) {
	t.Helper()
	return newTourAt(t, 1, presence)
}

func newTourAt(t *testing.T, speed float64, presence Presence) (*Controller, *schedule.Manual, *events) {
	t.Helper()
	reg, err := content.LoadEmbedded()
	require.NoError(t, err)

	clock := schedule.NewManual()
	ev := &events{}
	c := New(reg, clock, speed, presence, Hooks{
		Highlight:   func(target content.Key, _ content.Topic) { ev.log = append(ev.log, "+"+target.Name) },
		Unhighlight: func(target content.Key) { ev.log = append(ev.log, "-"+target.Name) },
		Complete:    func(msg string) { ev.complete = msg },
	})
	return c, clock, ev
}

func TestTour_VisitsEveryStop(t *testing.T) {
	c, clock, ev := newTour(t, nil)
	require.NoError(t, c.Start())
	assert.Equal(t, content.Nucleus, c.Highlighted())

	clock.Advance(20 * time.Second)

	assert.Equal(t, []string{
		"+nucleus", "-nucleus",
		"+membrane", "-membrane",
		"+mitochondria", "-mitochondria",
		"+cytoplasm", "-cytoplasm",
		"+cilia", "-cilia",
	}, ev.log)
	assert.Contains(t, ev.complete, "Tour complete")
	assert.True(t, c.Highlighted().IsZero())
	assert.False(t, c.Active())
}

func TestTour_SkipsMissingTargets(t *testing.T) {
	present := PresenceFunc(func(k content.Key) bool { return k != content.Membrane && k != content.Cilia })
	c, clock, ev := newTour(t, present)
	require.NoError(t, c.Start())

	// nucleus 4s, mitochondria 4s, cytoplasm 4s
	clock.Advance(8 * time.Second)
	assert.Equal(t, content.Cytoplasm, c.Highlighted())
	assert.Empty(t, ev.complete)

	clock.Advance(4 * time.Second)
	assert.NotEmpty(t, ev.complete)
	assert.NotContains(t, ev.log, "+membrane")
	assert.NotContains(t, ev.log, "+cilia")
}

func TestTour_StartWhileActive(t *testing.T) {
	c, clock, _ := newTour(t, nil)
	require.NoError(t, c.Start())
	clock.Advance(4 * time.Second)

	err := c.Start()
	assert.True(t, errors.Is(err, sequencer.ErrActive))
	assert.Equal(t, content.Membrane, c.Highlighted())
}

func TestTour_Cancel(t *testing.T) {
	c, clock, ev := newTour(t, nil)
	require.NoError(t, c.Start())
	c.Cancel()

	assert.False(t, c.Active())
	assert.True(t, c.Highlighted().IsZero())
	clock.Advance(time.Minute)
	assert.Equal(t, []string{"+nucleus", "-nucleus"}, ev.log)
	assert.Empty(t, ev.complete)
}

func TestTour_Speed(t *testing.T) {
	tests := []struct {
		name    string
		speed   float64
		advance time.Duration
		want    content.Key
	}{
		{"double speed halves each stop", 2, 2 * time.Second, content.Membrane},
		{"quadruple speed reaches the last stop", 4, 4 * time.Second, content.Cilia},
		{"zero speed falls back to normal", 0, 4 * time.Second, content.Membrane},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock, _ := newTourAt(t, tt.speed, nil)
			require.NoError(t, c.Start())
			clock.Advance(tt.advance)
			assert.Equal(t, tt.want, c.Highlighted())
		})
	}
}

func TestTour_SpeedFinishesEarly(t *testing.T) {
	c, clock, ev := newTourAt(t, 4, nil)
	require.NoError(t, c.Start())

	clock.Advance(5 * time.Second)
	assert.Contains(t, ev.complete, "Tour complete")
	assert.False(t, c.Active())
}
