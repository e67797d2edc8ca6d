package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/cellquest/internal/content"
)

func TestTopicCard(t *testing.T) {
	card := TopicCard(content.Topic{
		Emoji:      "🧠",
		Title:      "Nucleus",
		Facts:      []string{"Holds DNA"},
		Note:       "Like a brain",
		Connection: "Tells cells to make mucus",
	}, 50)

	assert.Contains(t, card, "🧠 Nucleus")
	assert.Contains(t, card, "Holds DNA")
	assert.Contains(t, card, "Like a brain")
	assert.Contains(t, card, "Tells cells to make mucus")
}

func TestTopicCard_OmitsEmptyParts(t *testing.T) {
	card := TopicCard(content.Topic{Title: "Bare"}, 40)
	assert.NotContains(t, card, "💡")
	assert.NotContains(t, card, "•")
}
