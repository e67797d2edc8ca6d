// Package hierarchy implements the ordering exercise: place the cards
// cell, tissue, organ and system into slots from smallest to largest.
package hierarchy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/cellquest/internal/answerkey"
	"github.com/abhisek/cellquest/internal/content"
)

var (
	ErrUnknownItem = errors.New("hierarchy: unknown item")
	ErrUnknownSlot = errors.New("hierarchy: unknown slot")
)

const (
	MsgValid   = "🎉 Perfect! You got it right! Cell → Tissue → Organ → System is the correct biological hierarchy!"
	MsgInvalid = "❌ Not quite right. Try again! Hint: Start with the smallest (Cell) and work your way up to the largest (System)."
)

// Report is the result of CheckAll.
type Report struct {
	Valid   bool
	Failed  []string // slot IDs that are empty or hold the wrong card
	Message string
}

// Board holds slot assignments and the pool of unplaced cards.
type Board struct {
	slots     []content.HierarchySlot
	items     []content.HierarchyItem
	keys      *answerkey.Store
	occupant  map[string]string // slot ID -> item value
	placement map[string]string // item value -> slot ID
}

// New creates an empty board. Expected values come from keys.
func New(h content.Hierarchy, keys *answerkey.Store) *Board {
	return &Board{
		slots:     slices.Clone(h.Slots),
		items:     slices.Clone(h.Items),
		keys:      keys,
		occupant:  make(map[string]string),
		placement: make(map[string]string),
	}
}

// Place puts item into slot. A card already in the slot goes back to the
// pool; a card placed elsewhere moves. Returns the displaced card, if any.
func (b *Board) Place(item, slot string) (string, error) {
	if !b.hasItem(item) {
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	if !b.hasSlot(slot) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}

	if from, ok := b.placement[item]; ok {
		if from == slot {
			return "", nil
		}
		delete(b.occupant, from)
	}
	displaced := b.occupant[slot]
	if displaced != "" {
		delete(b.placement, displaced)
	}
	b.occupant[slot] = item
	b.placement[item] = slot
	return displaced, nil
}

// Remove returns a placed card to the pool.
func (b *Board) Remove(item string) {
	if slot, ok := b.placement[item]; ok {
		delete(b.occupant, slot)
		delete(b.placement, item)
	}
}

// Occupant returns the card in slot.
func (b *Board) Occupant(slot string) (content.HierarchyItem, bool) {
	v, ok := b.occupant[slot]
	if !ok {
		return content.HierarchyItem{}, false
	}
	return b.item(v), true
}

// Available returns the cards not placed in any slot, in pack order.
func (b *Board) Available() []content.HierarchyItem {
	var out []content.HierarchyItem
	for _, it := range b.items {
		if _, placed := b.placement[it.Value]; !placed {
			out = append(out, it)
		}
	}
	return out
}

// Slots returns the slots in order.
func (b *Board) Slots() []content.HierarchySlot {
	return b.slots
}

// CheckAll is valid only when every slot holds its expected card.
func (b *Board) CheckAll() Report {
	var failed []string
	for _, s := range b.slots {
		v, ok := b.occupant[s.ID]
		if !ok || !b.expects(s, v) {
			failed = append(failed, s.ID)
		}
	}
	if len(failed) > 0 {
		return Report{Failed: failed, Message: MsgInvalid}
	}
	return Report{Valid: true, Message: MsgValid}
}

// Reset empties every slot.
func (b *Board) Reset() {
	clear(b.occupant)
	clear(b.placement)
}

func (b *Board) expects(s content.HierarchySlot, value string) bool {
	if b.keys != nil {
		if a, ok := b.keys.Lookup(answerkey.HierarchyID(s.ID)); ok {
			return a.Matches([]string{value})
		}
	}
	return value == s.Required
}

func (b *Board) hasItem(v string) bool {
	return slices.ContainsFunc(b.items, func(it content.HierarchyItem) bool { return it.Value == v })
}

func (b *Board) hasSlot(id string) bool {
	return slices.ContainsFunc(b.slots, func(s content.HierarchySlot) bool { return s.ID == id })
}

func (b *Board) item(v string) content.HierarchyItem {
	for _, it := range b.items {
		if it.Value == v {
			return it
		}
	}
	return content.HierarchyItem{Value: v, Label: v}
}
