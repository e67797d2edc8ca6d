package screen

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cellquest/internal/animation"
	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/lesson"
)

// Lesson engines fire their callbacks from timer goroutines. Bridge turns
// each callback into one of these messages and posts it to the program.

// StageMsg carries a rendered animation frame.
type StageMsg struct{ Frame animation.Frame }

// HighlightMsg reports a tour stop coming into focus.
type HighlightMsg struct {
	Target content.Key
	Topic  content.Topic
}

// UnhighlightMsg reports a tour stop leaving focus.
type UnhighlightMsg struct{ Target content.Key }

// FeedbackMsg carries a transient result message for an activity.
type FeedbackMsg struct {
	Activity string
	Message  string
	Success  bool
}

// CompletedMsg reports that an activity finished.
type CompletedMsg struct {
	Activity string
	Message  string
}

// ChangedMsg asks the screen showing an activity to redraw.
type ChangedMsg struct{ Activity string }

// Bridge implements lesson.Listener by queueing tea messages. Callbacks
// can fire inside Update on the program goroutine, so post never blocks;
// Run drains the queue in order.
type Bridge struct {
	mu    sync.Mutex
	queue []tea.Msg
	wake  chan struct{}
}

var _ lesson.Listener = (*Bridge)(nil)

// NewBridge returns an empty bridge.
func NewBridge() *Bridge {
	return &Bridge{wake: make(chan struct{}, 1)}
}

// Run forwards queued messages to send until ctx is done.
func (b *Bridge) Run(ctx context.Context, send func(tea.Msg)) {
	for {
		for _, msg := range b.drain() {
			send(msg)
		}
		select {
		case <-ctx.Done():
			return
		case <-b.wake:
		}
	}
}

func (b *Bridge) drain() []tea.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.queue
	b.queue = nil
	return out
}

func (b *Bridge) post(msg tea.Msg) {
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Bridge) StageRendered(f animation.Frame) { b.post(StageMsg{Frame: f}) }

func (b *Bridge) Highlighted(target content.Key, topic content.Topic) {
	b.post(HighlightMsg{Target: target, Topic: topic})
}

func (b *Bridge) Unhighlighted(target content.Key) { b.post(UnhighlightMsg{Target: target}) }

func (b *Bridge) Feedback(activity, message string, success bool) {
	b.post(FeedbackMsg{Activity: activity, Message: message, Success: success})
}

func (b *Bridge) Completed(activity, message string) {
	b.post(CompletedMsg{Activity: activity, Message: message})
}

func (b *Bridge) Changed(activity string) { b.post(ChangedMsg{Activity: activity}) }
