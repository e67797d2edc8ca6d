// Package tour runs the guided organelle tour: each stop highlights a part of
// the cell diagram and shows its topic for a fixed time.
package tour

import (
	"sync"
	"time"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/schedule"
	"github.com/abhisek/cellquest/internal/sequencer"
)

// Presence reports which targets the presentation layer can show.
type Presence interface {
	Has(target content.Key) bool
}

// PresenceFunc adapts a function to Presence.
type PresenceFunc func(target content.Key) bool

func (f PresenceFunc) Has(target content.Key) bool { return f(target) }

// Hooks receive tour events.
type Hooks struct {
	Highlight   func(target content.Key, topic content.Topic)
	Unhighlight func(target content.Key)
	Complete    func(message string)
}

type stop struct {
	target content.Key
	topic  content.Topic
	ok     bool
}

// Controller plays the itinerary over a stage sequencer.
type Controller struct {
	mu          sync.Mutex
	seq         *sequencer.Sequencer[stop]
	hooks       Hooks
	presence    Presence
	stages      []sequencer.Stage[stop]
	message     string
	highlighted content.Key
}

// New builds a controller for the registry's itinerary. Speed divides each
// stop's duration; non-positive speed means 1. A nil presence treats every
// target as present.
func New(reg *content.Registry, s schedule.Scheduler, speed float64, presence Presence, hooks Hooks) *Controller {
	if speed <= 0 {
		speed = 1
	}
	c := &Controller{
		hooks:    hooks,
		presence: presence,
		message:  reg.Messages().TourComplete,
	}
	for _, ts := range reg.Tour() {
		topic, ok := reg.Topic(ts.Content)
		c.stages = append(c.stages, sequencer.Stage[stop]{
			Payload:  stop{target: ts.Target, topic: topic, ok: ok},
			Duration: time.Duration(float64(ts.Duration()) / speed),
		})
	}
	c.seq = sequencer.New(s, sequencer.Hooks[stop]{
		Render:   c.render,
		Complete: c.complete,
	})
	return c
}

// Start begins the tour. It returns sequencer.ErrActive while a tour is running.
func (c *Controller) Start() error {
	return c.seq.Start(c.stages)
}

// Cancel stops the tour and clears the highlight.
func (c *Controller) Cancel() {
	if c.seq.Cancel() {
		c.clearHighlight()
	}
}

// Active reports whether the tour is running.
func (c *Controller) Active() bool {
	return c.seq.Active()
}

// Highlighted returns the currently highlighted target, or the zero key.
func (c *Controller) Highlighted() content.Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highlighted
}

func (c *Controller) render(_ int, s stop) bool {
	if !s.ok || (c.presence != nil && !c.presence.Has(s.target)) {
		return false
	}
	c.clearHighlight()

	c.mu.Lock()
	c.highlighted = s.target
	c.mu.Unlock()

	if c.hooks.Highlight != nil {
		c.hooks.Highlight(s.target, s.topic)
	}
	return true
}

func (c *Controller) complete() {
	c.clearHighlight()
	if c.hooks.Complete != nil {
		c.hooks.Complete(c.message)
	}
}

func (c *Controller) clearHighlight() {
	c.mu.Lock()
	prev := c.highlighted
	c.highlighted = content.Key{}
	c.mu.Unlock()

	if !prev.IsZero() && c.hooks.Unhighlight != nil {
		c.hooks.Unhighlight(prev)
	}
}
