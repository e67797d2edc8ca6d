// Package animation plays the named airway animations such as the six-stage
// asthma attack and the breathing cycle.
package animation

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/schedule"
	"github.com/abhisek/cellquest/internal/sequencer"
)

// ErrUnknownAnimation is returned for a name the registry does not have.
var ErrUnknownAnimation = errors.New("animation: unknown animation")

// Frame is one rendered stage.
type Frame struct {
	Animation string
	Index     int
	Count     int
	Title     string
	Desc      string
	Airway    content.Airway
}

// Hooks receive playback events.
type Hooks struct {
	Frame    func(Frame)
	Complete func(name string)
}

// Player owns one sequencer per animation so different animations can run
// side by side while each rejects a second start.
type Player struct {
	mu    sync.Mutex
	reg   *content.Registry
	sched schedule.Scheduler
	speed float64
	hooks Hooks
	seqs  map[string]*sequencer.Sequencer[Frame]
}

// NewPlayer creates a player. Speed scales stage durations: 2 plays twice as
// fast. Non-positive speed means 1.
func NewPlayer(reg *content.Registry, s schedule.Scheduler, speed float64, hooks Hooks) *Player {
	if speed <= 0 {
		speed = 1
	}
	return &Player{
		reg:   reg,
		sched: s,
		speed: speed,
		hooks: hooks,
		seqs:  make(map[string]*sequencer.Sequencer[Frame]),
	}
}

// Start plays the named animation. It returns sequencer.ErrActive if that
// animation is already playing.
func (p *Player) Start(name string) error {
	a, ok := p.reg.Animation(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	return p.sequencer(name).Start(p.stages(a))
}

// Stop cancels the named animation. Returns true if it was playing.
func (p *Player) Stop(name string) bool {
	p.mu.Lock()
	seq, ok := p.seqs[name]
	p.mu.Unlock()
	return ok && seq.Cancel()
}

// StopAll cancels every animation.
func (p *Player) StopAll() {
	p.mu.Lock()
	seqs := make([]*sequencer.Sequencer[Frame], 0, len(p.seqs))
	for _, s := range p.seqs {
		seqs = append(seqs, s)
	}
	p.mu.Unlock()

	for _, s := range seqs {
		s.Cancel()
	}
}

// Playing reports whether the named animation is running.
func (p *Player) Playing(name string) bool {
	p.mu.Lock()
	seq, ok := p.seqs[name]
	p.mu.Unlock()
	return ok && seq.Active()
}

func (p *Player) sequencer(name string) *sequencer.Sequencer[Frame] {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq, ok := p.seqs[name]; ok {
		return seq
	}
	seq := sequencer.New(p.sched, sequencer.Hooks[Frame]{
		Render: func(_ int, f Frame) bool {
			if p.hooks.Frame != nil {
				p.hooks.Frame(f)
			}
			return true
		},
		Complete: func() {
			if p.hooks.Complete != nil {
				p.hooks.Complete(name)
			}
		},
	})
	p.seqs[name] = seq
	return seq
}

// stages expands cycles and applies the speed factor.
func (p *Player) stages(a content.Animation) []sequencer.Stage[Frame] {
	cycles := max(a.Cycles, 1)
	count := len(a.Stages) * cycles
	out := make([]sequencer.Stage[Frame], 0, count)
	for c := 0; c < cycles; c++ {
		for _, s := range a.Stages {
			out = append(out, sequencer.Stage[Frame]{
				Payload: Frame{
					Animation: a.Name,
					Index:     len(out),
					Count:     count,
					Title:     s.Title,
					Desc:      s.Description,
					Airway:    s.Airway,
				},
				Duration: time.Duration(float64(s.Duration()) / p.speed),
			})
		}
	}
	return out
}
