package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentWidth(t *testing.T) {
	tests := []struct {
		frame, want int
	}{
		{10, 20},
		{26, 20},
		{60, 54},
		{78, 72},
		{200, 72},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentWidth(tt.frame), "frame %d", tt.frame)
	}
}

func TestFeedback(t *testing.T) {
	assert.Empty(t, Feedback("", true))
	assert.Contains(t, Feedback("Nice", true), "✓ Nice")
	assert.Contains(t, Feedback("Nope", false), "✗ Nope")
}

func TestArcadeButton_SelectedMarker(t *testing.T) {
	assert.Contains(t, ArcadeButton("Y  Trigger", true, 16), "▸ Y  Trigger")
	assert.NotContains(t, ArcadeButton("Y  Trigger", false, 16), "▸")
}
