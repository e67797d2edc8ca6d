// Package matching implements the cell-part matching game: pick a part and
// its job; a correct pair locks, a wrong pair flashes and then clears.
package matching

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/schedule"
)

// ErrUnknownItem is returned when selecting an ID that is not on the board.
var ErrUnknownItem = errors.New("matching: unknown item")

const (
	MsgMatch    = "✅ Perfect match! Great job!"
	MsgMismatch = "❌ Not a match. Try again!"
	MsgComplete = "🎉 Congratulations! You matched all the cell parts with their functions!"
)

// Role says which side of a pair an item sits on.
type Role int

const (
	RolePrompt Role = iota
	RoleAnswer
)

// Status is the display state of an item.
type Status int

const (
	Unselected Status = iota
	Selected
	Correct
	Incorrect // transient, reverts to Unselected after the revert delay
)

func (s Status) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case Selected:
		return "selected"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Item is one card on the board. Key links a prompt to its answer.
type Item struct {
	ID    string
	Role  Role
	Key   string
	Label string
}

// Kind classifies the result of a selection.
type Kind int

const (
	Ignored Kind = iota
	Picked
	Unpicked
	Matched
	Mismatched
	Completed
)

// Outcome describes what a selection did.
type Outcome struct {
	Kind    Kind
	Message string
	Pair    [2]string // set for Matched, Mismatched and Completed
}

// Success reports whether the outcome should be shown as positive feedback.
func (o Outcome) Success() bool {
	return o.Kind == Matched || o.Kind == Completed
}

// Config tunes the game.
type Config struct {
	RevertDelay time.Duration
}

// DefaultConfig returns the standard one-second flash.
func DefaultConfig() Config {
	return Config{RevertDelay: time.Second}
}

// Game is one matching board.
type Game struct {
	mu       sync.Mutex
	cfg      Config
	slot     *schedule.Slot
	onRevert func(ids []string)

	items    []Item
	index    map[string]int
	status   map[string]Status
	buffer   []string
	flashing []string
	flashGen uint64
	correct  int
}

// PromptID and AnswerID name the two cards of a pair.
func PromptID(key string) string { return "prompt:" + key }
func AnswerID(key string) string { return "answer:" + key }

// New lays out prompts first, then answers. onRevert, if set, is called after
// a flashed pair clears.
func New(pairs []content.MatchPair, s schedule.Scheduler, cfg Config, onRevert func(ids []string)) *Game {
	g := &Game{
		cfg:      cfg,
		slot:     schedule.NewSlot(s),
		onRevert: onRevert,
		index:    make(map[string]int),
		status:   make(map[string]Status),
	}
	for _, p := range pairs {
		g.add(Item{ID: PromptID(p.Key), Role: RolePrompt, Key: p.Key, Label: p.Prompt})
	}
	for _, p := range pairs {
		g.add(Item{ID: AnswerID(p.Key), Role: RoleAnswer, Key: p.Key, Label: p.Answer})
	}
	return g
}

func (g *Game) add(it Item) {
	g.index[it.ID] = len(g.items)
	g.items = append(g.items, it)
	g.status[it.ID] = Unselected
}

// Select toggles an item and evaluates the pair once two are selected.
func (g *Game) Select(id string) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}

	switch g.status[id] {
	case Correct:
		return Outcome{Kind: Ignored}, nil
	case Incorrect:
		g.flushLocked()
	case Selected:
		g.status[id] = Unselected
		for i, b := range g.buffer {
			if b == id {
				g.buffer = append(g.buffer[:i], g.buffer[i+1:]...)
				break
			}
		}
		return Outcome{Kind: Unpicked}, nil
	}

	g.status[id] = Selected
	g.buffer = append(g.buffer, id)
	if len(g.buffer) < 2 {
		return Outcome{Kind: Picked}, nil
	}
	return g.evaluateLocked(), nil
}

func (g *Game) evaluateLocked() Outcome {
	a, b := g.items[g.index[g.buffer[0]]], g.items[g.index[g.buffer[1]]]
	g.buffer = g.buffer[:0]
	pair := [2]string{a.ID, b.ID}

	if a.Role != b.Role && a.Key == b.Key {
		g.status[a.ID] = Correct
		g.status[b.ID] = Correct
		g.correct += 2
		if g.correct == len(g.items) {
			return Outcome{Kind: Completed, Message: MsgComplete, Pair: pair}
		}
		return Outcome{Kind: Matched, Message: MsgMatch, Pair: pair}
	}

	g.flushLocked()
	g.status[a.ID] = Incorrect
	g.status[b.ID] = Incorrect
	g.flashing = []string{a.ID, b.ID}
	g.flashGen++
	gen := g.flashGen
	g.slot.Schedule(g.cfg.RevertDelay, func() { g.revert(gen) })
	return Outcome{Kind: Mismatched, Message: MsgMismatch, Pair: pair}
}

func (g *Game) revert(gen uint64) {
	g.mu.Lock()
	if gen != g.flashGen {
		g.mu.Unlock()
		return
	}
	ids := g.clearFlashLocked()
	g.mu.Unlock()

	if len(ids) > 0 && g.onRevert != nil {
		g.onRevert(ids)
	}
}

// flushLocked applies a pending reversion now.
func (g *Game) flushLocked() {
	if len(g.flashing) == 0 {
		return
	}
	g.slot.Cancel()
	g.flashGen++
	g.clearFlashLocked()
}

func (g *Game) clearFlashLocked() []string {
	ids := g.flashing
	for _, id := range ids {
		if g.status[id] == Incorrect {
			g.status[id] = Unselected
		}
	}
	g.flashing = nil
	return ids
}

// Reset clears every status and the selection.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.slot.Cancel()
	g.flashGen++
	g.flashing = nil
	g.buffer = g.buffer[:0]
	g.correct = 0
	for id := range g.status {
		g.status[id] = Unselected
	}
}

// Items returns the board layout.
func (g *Game) Items() []Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Item(nil), g.items...)
}

// Status returns the display state of id.
func (g *Game) Status(id string) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status[id]
}

// Selection returns the IDs currently in the selection buffer.
func (g *Game) Selection() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.buffer...)
}

// CorrectCount returns how many items are locked as correct.
func (g *Game) CorrectCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.correct
}

// Complete reports whether every item has been matched.
func (g *Game) Complete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.items) > 0 && g.correct == len(g.items)
}
