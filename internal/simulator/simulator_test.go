package simulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cellquest/internal/content"
)

func TestSimulate(t *testing.T) {
	reg, err := content.LoadEmbedded()
	require.NoError(t, err)
	s := New(reg)

	cur, p := s.Current()
	assert.Equal(t, content.Normal, cur)
	assert.Equal(t, 80, p.Airway.Inner)

	smoke, err := s.Simulate(content.Smoke)
	require.NoError(t, err)
	assert.Equal(t, 50, smoke.Airway.Inner)
	assert.Less(t, smoke.Airway.Openness(), p.Airway.Openness())

	_, err = s.Simulate(content.Nucleus)
	assert.True(t, errors.Is(err, ErrUnknownTrigger))
	cur, _ = s.Current()
	assert.Equal(t, content.Smoke, cur)

	assert.Len(t, s.Triggers(), 5)
}
