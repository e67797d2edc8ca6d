// Package schedule provides delayed callbacks behind an interface so timed
// engines can run on the wall clock in the app and on a manual clock in tests.
package schedule

import (
	"sync"
	"time"
)

// Timer is a handle to a pending callback.
type Timer interface {
	// Stop prevents the callback from running. Returns false if the callback
	// already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real schedules callbacks with time.AfterFunc. Callbacks run on their own
// goroutine.
type Real struct{}

var _ Scheduler = Real{}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Slot holds at most one pending callback. Scheduling into a busy slot
// replaces the previous callback. A cancelled or replaced callback never runs,
// even if its underlying timer already fired.
type Slot struct {
	mu    sync.Mutex
	sched Scheduler
	timer Timer
	gen   uint64
}

// NewSlot creates an empty slot on the given scheduler.
func NewSlot(s Scheduler) *Slot {
	if s == nil {
		s = Real{}
	}
	return &Slot{sched: s}
}

// Schedule arranges for f to run after d, replacing any pending callback.
func (s *Slot) Schedule(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.gen++
	gen := s.gen
	s.timer = s.sched.AfterFunc(d, func() {
		s.mu.Lock()
		if s.gen != gen {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.mu.Unlock()
		f()
	})
}

// Cancel drops the pending callback. Returns true if one was pending.
func (s *Slot) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.timer != nil
	s.stopLocked()
	s.gen++
	return pending
}

// Pending reports whether a callback is waiting to run.
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *Slot) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
