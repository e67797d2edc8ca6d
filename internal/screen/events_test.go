package screen

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cellquest/internal/content"
)

type collector struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *collector) send(msg tea.Msg) {
	c.mu.Lock()
	c.msgs = append(c.msgs, msg)
	c.mu.Unlock()
}

func (c *collector) snapshot() []tea.Msg {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]tea.Msg(nil), c.msgs...)
}

func TestBridge_PostDoesNotBlockWithoutRunner(t *testing.T) {
	b := NewBridge()
	for range 100 {
		b.Changed("matching")
	}
	assert.Len(t, b.drain(), 100)
}

func TestBridge_DeliversInOrder(t *testing.T) {
	b := NewBridge()
	c := &collector{}

	b.Highlighted(content.Nucleus, content.Topic{Title: "Nucleus"})
	b.Unhighlighted(content.Nucleus)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx, c.send)
		close(done)
	}()

	b.Feedback("quiz", "ok", true)
	b.Completed("tour", "bye")

	require.Eventually(t, func() bool { return len(c.snapshot()) == 4 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	msgs := c.snapshot()
	assert.Equal(t, HighlightMsg{Target: content.Nucleus, Topic: content.Topic{Title: "Nucleus"}}, msgs[0])
	assert.Equal(t, UnhighlightMsg{Target: content.Nucleus}, msgs[1])
	assert.Equal(t, FeedbackMsg{Activity: "quiz", Message: "ok", Success: true}, msgs[2])
	assert.Equal(t, CompletedMsg{Activity: "tour", Message: "bye"}, msgs[3])
}
