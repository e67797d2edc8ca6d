// Package content holds the lesson's static material: topic pages, animation
// stages, exercise decks, and the quiz. Content is loaded once from a YAML
// pack and is read-only afterwards.
package content

import (
	"strings"
	"unicode"
)

// Registry indexes a validated pack for lookup by key.
type Registry struct {
	pack       Pack
	topics     map[Key]Topic
	animations map[string]Animation
	profiles   map[Key]AirwayProfile
}

// NewRegistry validates p and builds its indices.
func NewRegistry(p *Pack) (*Registry, error) {
	if err := validatePack(p); err != nil {
		return nil, err
	}

	r := &Registry{
		pack:       *p,
		topics:     make(map[Key]Topic, len(p.Topics)),
		animations: make(map[string]Animation, len(p.Animations)),
		profiles:   make(map[Key]AirwayProfile, len(p.Simulator)),
	}
	for _, t := range p.Topics {
		r.topics[t.Key] = t
	}
	for _, a := range p.Animations {
		r.animations[a.Name] = a
	}
	for _, sp := range p.Simulator {
		r.profiles[sp.Trigger] = sp
	}
	return r, nil
}

// Topic returns the topic for k.
func (r *Registry) Topic(k Key) (Topic, bool) {
	t, ok := r.topics[k]
	return t, ok
}

// Topics returns the topics of a kind in display order.
func (r *Registry) Topics(kind Kind) []Topic {
	var out []Topic
	for _, k := range catalog[kind] {
		if t, ok := r.topics[k]; ok {
			out = append(out, t)
		}
	}
	return out
}

// CellPart resolves a diagram part ID such as "mitochondria2" to its organelle
// topic. Unknown parts fall back to the cytoplasm, which fills the rest of the cell.
func (r *Registry) CellPart(partID string) Topic {
	name := strings.TrimRightFunc(strings.ToLower(partID), unicode.IsDigit)
	for _, k := range catalog[KindOrganelle] {
		if k.Name == name {
			return r.topics[k]
		}
	}
	return r.topics[Cytoplasm]
}

// Animation returns the named animation.
func (r *Registry) Animation(name string) (Animation, bool) {
	a, ok := r.animations[name]
	return a, ok
}

// Animations returns every animation in pack order.
func (r *Registry) Animations() []Animation {
	return r.pack.Animations
}

// Profile returns the simulator profile for a trigger.
func (r *Registry) Profile(trigger Key) (AirwayProfile, bool) {
	p, ok := r.profiles[trigger]
	return p, ok
}

// Profiles returns every simulator profile in pack order.
func (r *Registry) Profiles() []AirwayProfile {
	return r.pack.Simulator
}

// Scenarios returns the judge-the-trigger deck in play order.
func (r *Registry) Scenarios() []Scenario {
	return r.pack.Scenarios
}

// MatchPairs returns the matching game pairs.
func (r *Registry) MatchPairs() []MatchPair {
	return r.pack.Matching
}

// Hierarchy returns the ordering exercise.
func (r *Registry) Hierarchy() Hierarchy {
	return r.pack.Hierarchy
}

// Quiz returns the quiz questions in order.
func (r *Registry) Quiz() []QuizQuestion {
	return r.pack.Quiz
}

// Tour returns the guided tour itinerary.
func (r *Registry) Tour() []TourStop {
	return r.pack.Tour
}

// Messages returns the fixed engine messages.
func (r *Registry) Messages() Messages {
	return r.pack.Messages
}
