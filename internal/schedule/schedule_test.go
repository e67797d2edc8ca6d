package schedule

import (
	"testing"
	"time"
)

func TestManual_RunsInDueOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.AfterFunc(3*time.Second, func() { got = append(got, "c") })
	m.AfterFunc(1*time.Second, func() { got = append(got, "a") })
	m.AfterFunc(2*time.Second, func() { got = append(got, "b") })

	m.Advance(2 * time.Second)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("after 2s got %v, want [a b]", got)
	}

	m.Advance(time.Second)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("after 3s got %v, want [a b c]", got)
	}
	if m.Now() != 3*time.Second {
		t.Errorf("Now() = %v, want 3s", m.Now())
	}
}

func TestManual_ChainedCallbacksWithinWindow(t *testing.T) {
	m := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			m.AfterFunc(time.Second, tick)
		}
	}
	m.AfterFunc(time.Second, tick)

	m.Advance(3 * time.Second)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	m.Advance(10 * time.Second)
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
}

func TestManual_StopPreventsRun(t *testing.T) {
	m := NewManual()
	ran := false
	timer := m.AfterFunc(time.Second, func() { ran = true })

	if !timer.Stop() {
		t.Error("first Stop() should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}
	m.Advance(time.Minute)
	if ran {
		t.Error("stopped callback ran")
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}
}

func TestSlot_ScheduleReplacesPending(t *testing.T) {
	m := NewManual()
	s := NewSlot(m)
	var got []string

	s.Schedule(time.Second, func() { got = append(got, "first") })
	s.Schedule(2*time.Second, func() { got = append(got, "second") })

	m.Advance(5 * time.Second)
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("got %v, want [second]", got)
	}
	if s.Pending() {
		t.Error("slot should be empty after firing")
	}
}

func TestSlot_Cancel(t *testing.T) {
	m := NewManual()
	s := NewSlot(m)
	ran := false

	if s.Cancel() {
		t.Error("Cancel() on empty slot should return false")
	}

	s.Schedule(time.Second, func() { ran = true })
	if !s.Pending() {
		t.Fatal("expected pending callback")
	}
	if !s.Cancel() {
		t.Error("Cancel() should report a pending callback")
	}
	m.Advance(time.Minute)
	if ran {
		t.Error("cancelled callback ran")
	}
}

// stuckTimer simulates a timer that already fired and cannot be stopped.
type stuckTimer struct{}

func (stuckTimer) Stop() bool { return false }

type captureScheduler struct {
	fns []func()
}

func (c *captureScheduler) AfterFunc(_ time.Duration, f func()) Timer {
	c.fns = append(c.fns, f)
	return stuckTimer{}
}

func TestSlot_CancelledCallbackSuppressedAfterFire(t *testing.T) {
	c := &captureScheduler{}
	s := NewSlot(c)
	ran := false

	s.Schedule(time.Second, func() { ran = true })
	s.Cancel()

	// The underlying timer fires anyway.
	c.fns[0]()
	if ran {
		t.Error("callback ran after Cancel")
	}
}
