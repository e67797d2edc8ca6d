// Package simulator shows how an airway responds to each asthma trigger.
package simulator

import (
	"errors"
	"fmt"

	"github.com/abhisek/cellquest/internal/content"
)

// ErrUnknownTrigger is returned for a trigger with no airway profile.
var ErrUnknownTrigger = errors.New("simulator: unknown trigger")

// Simulator looks up airway profiles.
type Simulator struct {
	reg     *content.Registry
	current content.Key
}

// New starts the simulator on the resting airway.
func New(reg *content.Registry) *Simulator {
	return &Simulator{reg: reg, current: content.Normal}
}

// Simulate switches to trigger and returns its profile.
func (s *Simulator) Simulate(trigger content.Key) (content.AirwayProfile, error) {
	p, ok := s.reg.Profile(trigger)
	if !ok {
		return content.AirwayProfile{}, fmt.Errorf("%w: %s", ErrUnknownTrigger, trigger)
	}
	s.current = trigger
	return p, nil
}

// Current returns the trigger on display and its profile.
func (s *Simulator) Current() (content.Key, content.AirwayProfile) {
	p, _ := s.reg.Profile(s.current)
	return s.current, p
}

// Triggers returns every trigger with a profile, in pack order.
func (s *Simulator) Triggers() []content.Key {
	var out []content.Key
	for _, p := range s.reg.Profiles() {
		out = append(out, p.Trigger)
	}
	return out
}
