// Package scenario runs the judge-the-trigger game: the player reads a
// situation and decides whether it would set off asthma.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/abhisek/cellquest/internal/content"
)

var (
	// ErrDeckExhausted signals that every scenario has been presented.
	ErrDeckExhausted = errors.New("scenario: deck exhausted")
	// ErrAlreadyJudged is returned when the current scenario was already answered.
	ErrAlreadyJudged = errors.New("scenario: already judged")
)

// Result is the outcome of one judgement.
type Result struct {
	ScenarioID string
	Correct    bool
	Feedback   string
	Tier       content.Severity
	Trigger    content.Key
}

// Final is the end-of-deck summary.
type Final struct {
	Score   int
	Total   int
	Percent int
	Badge   string
	Message string
}

type tier struct {
	min     float64
	badge   string
	message string
}

var finalTiers = []tier{
	{100, "🏆", "Perfect score! You're a Trigger Detective Champion!"},
	{85, "🥇", "Amazing! You can spot almost every trigger!"},
	{70, "🥈", "Great work! You know your triggers well!"},
	{50, "🥉", "Good effort! Keep practicing to spot more triggers."},
	{0, "🔍", "Keep exploring! Review the triggers and try again."},
}

// Engine owns one pass through a scenario deck.
type Engine struct {
	deck     []content.Scenario
	index    int
	score    int
	answered int
	judged   bool
}

// New starts an engine at the top of deck.
func New(deck []content.Scenario) *Engine {
	return &Engine{deck: append([]content.Scenario(nil), deck...)}
}

// Load returns the scenario at index. At or beyond the end of the deck it
// returns ErrDeckExhausted and the caller should show Final.
func (e *Engine) Load(index int) (content.Scenario, error) {
	if index < 0 {
		return content.Scenario{}, fmt.Errorf("scenario: index %d out of range", index)
	}
	if index >= len(e.deck) {
		return content.Scenario{}, ErrDeckExhausted
	}
	return e.deck[index], nil
}

// Current returns the scenario awaiting judgement.
func (e *Engine) Current() (content.Scenario, error) {
	return e.Load(e.index)
}

// Submit judges the current scenario. Each scenario can be judged once.
func (e *Engine) Submit(isTrigger bool) (Result, error) {
	s, err := e.Current()
	if err != nil {
		return Result{}, err
	}
	if e.judged {
		return Result{}, ErrAlreadyJudged
	}

	e.judged = true
	e.answered++
	correct := isTrigger == s.IsTrigger
	feedback := s.IncorrectFeedback
	if correct {
		e.score++
		feedback = s.CorrectFeedback
	}
	return Result{
		ScenarioID: s.ID,
		Correct:    correct,
		Feedback:   feedback,
		Tier:       DisplayTier(s),
		Trigger:    s.Trigger,
	}, nil
}

// Advance moves to the next scenario. It returns ErrDeckExhausted once the
// deck is done.
func (e *Engine) Advance() (content.Scenario, error) {
	if e.index < len(e.deck) {
		e.index++
	}
	e.judged = false
	return e.Current()
}

// Restart clears position, score and answered count.
func (e *Engine) Restart() {
	e.index = 0
	e.score = 0
	e.answered = 0
	e.judged = false
}

// Index returns the current position.
func (e *Engine) Index() int { return e.index }

// Len returns the deck size.
func (e *Engine) Len() int { return len(e.deck) }

// Score returns the number of correct judgements.
func (e *Engine) Score() int { return e.score }

// Answered returns the number of judgements made.
func (e *Engine) Answered() int { return e.answered }

// Judged reports whether the current scenario has been answered.
func (e *Engine) Judged() bool { return e.judged }

// Final computes the summary over the whole deck. The badge is picked from
// the rounded percentage the learner sees.
func (e *Engine) Final() Final {
	var pct int
	if len(e.deck) > 0 {
		pct = int(math.Round(float64(e.score) / float64(len(e.deck)) * 100))
	}
	t := tierFor(float64(pct))
	return Final{
		Score:   e.score,
		Total:   len(e.deck),
		Percent: pct,
		Badge:   t.badge,
		Message: t.message,
	}
}

func tierFor(pct float64) tier {
	for _, t := range finalTiers {
		if pct >= t.min {
			return t
		}
	}
	return finalTiers[len(finalTiers)-1]
}

// DisplayTier derives how strongly the airway reacts on screen. Non-triggers
// show no reaction; a combination trigger reads one level worse.
func DisplayTier(s content.Scenario) content.Severity {
	if !s.IsTrigger {
		return content.SeverityNone
	}
	levels := []content.Severity{content.SeverityMild, content.SeverityModerate, content.SeveritySevere}
	i := 0
	switch s.Severity {
	case content.SeverityModerate:
		i = 1
	case content.SeveritySevere:
		i = 2
	}
	if s.Combination && i < len(levels)-1 {
		i++
	}
	return levels[i]
}
