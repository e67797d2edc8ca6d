package content

import (
	"fmt"
	"slices"
	"strings"
)

// validatePack performs the cross-reference checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validatePack(p *Pack) error {
	var errs []string

	// Every declared key has exactly one topic.
	seen := make(map[Key]bool, len(p.Topics))
	for _, t := range p.Topics {
		if seen[t.Key] {
			errs = append(errs, fmt.Sprintf("duplicate topic %q", t.Key))
		}
		seen[t.Key] = true
	}
	for _, kind := range AllKinds() {
		for _, k := range catalog[kind] {
			if !seen[k] {
				errs = append(errs, fmt.Sprintf("missing topic %q", k))
			}
		}
	}

	// Animations
	animNames := make(map[string]bool)
	for _, a := range p.Animations {
		if animNames[a.Name] {
			errs = append(errs, fmt.Sprintf("duplicate animation %q", a.Name))
		}
		animNames[a.Name] = true
		for i, s := range a.Stages {
			if s.Airway.Inner > s.Airway.Outer {
				errs = append(errs, fmt.Sprintf("animation %q stage %d: inner radius exceeds outer", a.Name, i))
			}
		}
	}

	// Scenarios
	scenarioIDs := make(map[string]bool)
	for _, s := range p.Scenarios {
		if scenarioIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate scenario %q", s.ID))
		}
		scenarioIDs[s.ID] = true
		if !s.Trigger.IsZero() && s.Trigger.Kind != KindTrigger {
			errs = append(errs, fmt.Sprintf("scenario %q: trigger %q is not a trigger key", s.ID, s.Trigger))
		}
		if !s.IsTrigger && s.Severity != SeverityNone {
			errs = append(errs, fmt.Sprintf("scenario %q: non-trigger must have severity none", s.ID))
		}
	}

	// Matching pairs
	matchKeys := make(map[string]bool)
	for _, m := range p.Matching {
		if matchKeys[m.Key] {
			errs = append(errs, fmt.Sprintf("duplicate matching pair %q", m.Key))
		}
		matchKeys[m.Key] = true
	}

	// Hierarchy: every slot's required value is a known card, cards are unique.
	values := make(map[string]bool)
	for _, it := range p.Hierarchy.Items {
		if values[it.Value] {
			errs = append(errs, fmt.Sprintf("duplicate hierarchy item %q", it.Value))
		}
		values[it.Value] = true
	}
	slotIDs := make(map[string]bool)
	for _, s := range p.Hierarchy.Slots {
		if slotIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate hierarchy slot %q", s.ID))
		}
		slotIDs[s.ID] = true
		if !values[s.Required] {
			errs = append(errs, fmt.Sprintf("hierarchy slot %q requires unknown item %q", s.ID, s.Required))
		}
	}

	// Quiz
	questionIDs := make(map[string]bool)
	for _, q := range p.Quiz {
		if questionIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question %q", q.ID))
		}
		questionIDs[q.ID] = true
		var opts []string
		for _, o := range q.Options {
			opts = append(opts, o.Value)
		}
		for _, a := range q.Answer {
			if !slices.Contains(opts, a) {
				errs = append(errs, fmt.Sprintf("question %q: answer %q is not an option", q.ID, a))
			}
		}
		if !q.Multi && len(q.Answer) != 1 {
			errs = append(errs, fmt.Sprintf("question %q: single-answer question has %d answers", q.ID, len(q.Answer)))
		}
	}

	// Tour
	for i, s := range p.Tour {
		if s.Target.Kind != KindOrganelle {
			errs = append(errs, fmt.Sprintf("tour stop %d: target %q is not an organelle", i, s.Target))
		}
	}

	// Simulator profiles cover triggers at most once.
	profiles := make(map[Key]bool)
	for _, sp := range p.Simulator {
		if sp.Trigger.Kind != KindTrigger {
			errs = append(errs, fmt.Sprintf("simulator profile %q is not a trigger key", sp.Trigger))
		}
		if profiles[sp.Trigger] {
			errs = append(errs, fmt.Sprintf("duplicate simulator profile %q", sp.Trigger))
		}
		profiles[sp.Trigger] = true
	}
	for _, s := range p.Scenarios {
		if !s.Trigger.IsZero() && !profiles[s.Trigger] {
			errs = append(errs, fmt.Sprintf("scenario %q: no simulator profile for %q", s.ID, s.Trigger))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
