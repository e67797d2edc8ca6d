// Package sequencer plays an ordered list of timed stages. A sequencer runs at
// most one session at a time and keeps at most one pending advancement.
package sequencer

import (
	"errors"
	"sync"
	"time"

	"github.com/abhisek/cellquest/internal/schedule"
)

var (
	// ErrActive is returned by Start while a session is playing.
	ErrActive = errors.New("sequencer: already active")
	// ErrNoStages is returned by Start with an empty stage list.
	ErrNoStages = errors.New("sequencer: no stages")
)

// Stage is one timed unit of a sequence.
type Stage[T any] struct {
	Payload  T
	Duration time.Duration
}

// Hooks receive sequencer events. Hooks are called without internal locks
// held, so they may call back into the sequencer.
type Hooks[T any] struct {
	// Render shows a stage. Returning false skips it: the sequencer moves on
	// to the next stage without waiting.
	Render func(index int, payload T) bool
	// Complete runs once after the last stage's duration has elapsed.
	Complete func()
}

// Sequencer drives one session at a time over a scheduler.
type Sequencer[T any] struct {
	mu      sync.Mutex
	slot    *schedule.Slot
	hooks   Hooks[T]
	stages  []Stage[T]
	current int
	active  bool
	token   uint64
}

// New creates an idle sequencer. A nil scheduler uses the wall clock.
func New[T any](s schedule.Scheduler, hooks Hooks[T]) *Sequencer[T] {
	return &Sequencer[T]{
		slot:    schedule.NewSlot(s),
		hooks:   hooks,
		current: -1,
	}
}

// Start renders stage 0 immediately and schedules the rest. It is rejected
// with ErrActive while a session is playing; the running session is untouched.
func (q *Sequencer[T]) Start(stages []Stage[T]) error {
	q.mu.Lock()
	if q.active {
		q.mu.Unlock()
		return ErrActive
	}
	if len(stages) == 0 {
		q.mu.Unlock()
		return ErrNoStages
	}
	q.stages = append([]Stage[T](nil), stages...)
	q.active = true
	q.current = -1
	q.token++
	token := q.token
	q.mu.Unlock()

	q.enter(token, 0)
	return nil
}

// Cancel stops the session without rendering further stages. Safe to call
// when idle. Returns true if a session was active.
func (q *Sequencer[T]) Cancel() bool {
	q.mu.Lock()
	wasActive := q.active
	q.active = false
	q.token++
	q.mu.Unlock()

	q.slot.Cancel()
	return wasActive
}

// Active reports whether a session is playing.
func (q *Sequencer[T]) Active() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.active
}

// Index returns the index of the stage last entered, or -1 before the first
// start.
func (q *Sequencer[T]) Index() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// Len returns the number of stages in the current or last session.
func (q *Sequencer[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.stages)
}

// enter renders stage i of the session identified by token, skipping stages
// the render hook declines, and schedules the next step.
func (q *Sequencer[T]) enter(token uint64, i int) {
	for {
		q.mu.Lock()
		if !q.active || q.token != token {
			q.mu.Unlock()
			return
		}
		if i >= len(q.stages) {
			q.active = false
			q.mu.Unlock()
			if q.hooks.Complete != nil {
				q.hooks.Complete()
			}
			return
		}
		q.current = i
		stage := q.stages[i]
		q.mu.Unlock()

		shown := true
		if q.hooks.Render != nil {
			shown = q.hooks.Render(i, stage.Payload)
		}
		if !shown {
			i++
			continue
		}

		q.mu.Lock()
		if !q.active || q.token != token {
			q.mu.Unlock()
			return
		}
		next := i + 1
		q.slot.Schedule(stage.Duration, func() { q.enter(token, next) })
		q.mu.Unlock()
		return
	}
}
