// Package progress tracks how far through the lesson the reader is.
package progress

import (
	"fmt"

	"github.com/abhisek/cellquest/internal/content"
)

// Fraction returns (current+1)/total clamped to [0, 1]. A non-positive total
// yields 0.
func Fraction(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(current+1) / float64(total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Navigator moves through the ordered lesson sections.
type Navigator struct {
	sections []content.Key
	current  int
}

// NewNavigator starts at the first section.
func NewNavigator(sections []content.Key) *Navigator {
	return &Navigator{sections: append([]content.Key(nil), sections...)}
}

// Show jumps to a section.
func (n *Navigator) Show(section content.Key) error {
	for i, s := range n.sections {
		if s == section {
			n.current = i
			return nil
		}
	}
	return fmt.Errorf("progress: unknown section %q", section)
}

// Next moves forward, stopping at the last section. Returns false at the end.
func (n *Navigator) Next() bool {
	if n.current >= len(n.sections)-1 {
		return false
	}
	n.current++
	return true
}

// Prev moves back, stopping at the first section. Returns false at the start.
func (n *Navigator) Prev() bool {
	if n.current <= 0 {
		return false
	}
	n.current--
	return true
}

// Current returns the section on screen.
func (n *Navigator) Current() content.Key {
	if len(n.sections) == 0 {
		return content.Key{}
	}
	return n.sections[n.current]
}

// Index returns the position of the current section.
func (n *Navigator) Index() int { return n.current }

// Len returns the number of sections.
func (n *Navigator) Len() int { return len(n.sections) }

// Fraction returns the progress bar fill for the current section.
func (n *Navigator) Fraction() float64 {
	return Fraction(n.current, len(n.sections))
}
