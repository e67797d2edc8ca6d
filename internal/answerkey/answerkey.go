// Package answerkey maps question identifiers to their expected answers.
package answerkey

import (
	"fmt"
	"slices"
	"sort"

	"github.com/abhisek/cellquest/internal/content"
)

// Rule selects how a submission is compared to the expected values.
type Rule int

const (
	// Exact requires the single expected value.
	Exact Rule = iota
	// Set requires the same set of values, in any order, with nothing extra.
	Set
)

func (r Rule) String() string {
	switch r {
	case Exact:
		return "exact"
	case Set:
		return "set"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// Answer is the expected response to one question.
type Answer struct {
	ID     string
	Values []string
	Rule   Rule
	Text   string // canonical answer shown after grading
}

// Matches reports whether submitted satisfies the answer. A missing
// submission never matches.
func (a Answer) Matches(submitted []string) bool {
	if len(submitted) == 0 {
		return false
	}
	switch a.Rule {
	case Exact:
		return len(submitted) == 1 && len(a.Values) == 1 && submitted[0] == a.Values[0]
	case Set:
		if len(submitted) != len(a.Values) {
			return false
		}
		for _, v := range submitted {
			if !slices.Contains(a.Values, v) {
				return false
			}
		}
		for _, v := range a.Values {
			if !slices.Contains(submitted, v) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// HierarchyID returns the answer ID for a hierarchy slot.
func HierarchyID(slotID string) string {
	return "hierarchy/" + slotID
}

// Store is the immutable answer key for one content pack.
type Store struct {
	answers map[string]Answer
}

// New builds the store from the quiz and the hierarchy exercise.
func New(reg *content.Registry) *Store {
	s := &Store{answers: make(map[string]Answer)}
	for _, q := range reg.Quiz() {
		rule := Exact
		if q.Multi {
			rule = Set
		}
		s.answers[q.ID] = Answer{
			ID:     q.ID,
			Values: slices.Clone(q.Answer),
			Rule:   rule,
			Text:   q.AnswerText,
		}
	}
	for _, slot := range reg.Hierarchy().Slots {
		id := HierarchyID(slot.ID)
		s.answers[id] = Answer{ID: id, Values: []string{slot.Required}, Rule: Exact, Text: slot.Required}
	}
	return s
}

// Lookup returns the answer for id.
func (s *Store) Lookup(id string) (Answer, bool) {
	a, ok := s.answers[id]
	return a, ok
}

// IDs returns every answer ID in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.answers))
	for id := range s.answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
