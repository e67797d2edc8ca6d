// Package lesson ties every engine of one reading session together behind a
// single document object.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/cellquest/internal/animation"
	"github.com/abhisek/cellquest/internal/answerkey"
	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/hierarchy"
	"github.com/abhisek/cellquest/internal/matching"
	"github.com/abhisek/cellquest/internal/progress"
	"github.com/abhisek/cellquest/internal/quiz"
	"github.com/abhisek/cellquest/internal/scenario"
	"github.com/abhisek/cellquest/internal/schedule"
	"github.com/abhisek/cellquest/internal/simulator"
	"github.com/abhisek/cellquest/internal/store"
	"github.com/abhisek/cellquest/internal/tour"
)

// ErrUnknownActivity is returned by Restart for an unrecognised activity.
var ErrUnknownActivity = errors.New("lesson: unknown activity")

// Options configures a Document. Zero values are usable.
type Options struct {
	Scheduler schedule.Scheduler // nil uses the wall clock
	Speed     float64            // animation and tour speed factor, default 1
	Journal   store.EventRepo    // nil disables the activity journal
	Listener  Listener
	Presence  tour.Presence // targets the cell diagram can show; nil means all
	Matching  matching.Config
	Logger    *slog.Logger
}

// Document is one reading session over a content pack.
type Document struct {
	mu       sync.Mutex
	id       string
	reg      *content.Registry
	keys     *answerkey.Store
	journal  store.EventRepo
	listener Listener
	logger   *slog.Logger

	nav       *progress.Navigator
	scenarios *scenario.Engine
	match     *matching.Game
	board     *hierarchy.Board
	quiz      *quiz.Session
	tour      *tour.Controller
	anims     *animation.Player
	sim       *simulator.Simulator
}

// New builds a document with fresh engine state.
func New(reg *content.Registry, opts Options) *Document {
	d := &Document{
		id:       uuid.NewString(),
		reg:      reg,
		keys:     answerkey.New(reg),
		journal:  opts.Journal,
		listener: opts.Listener,
		logger:   opts.Logger,
	}
	if d.listener == nil {
		d.listener = NopListener{}
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.logger = d.logger.With("session", d.id)

	if opts.Matching.RevertDelay <= 0 {
		opts.Matching = matching.DefaultConfig()
	}

	d.nav = progress.NewNavigator(content.KeysOf(content.KindSection))
	d.scenarios = scenario.New(reg.Scenarios())
	d.match = matching.New(reg.MatchPairs(), opts.Scheduler, opts.Matching, func([]string) {
		d.listener.Changed(ActivityMatching)
	})
	d.board = hierarchy.New(reg.Hierarchy(), d.keys)
	d.quiz = quiz.NewSession(quiz.Questions(reg, d.keys))
	d.tour = tour.New(reg, opts.Scheduler, opts.Speed, opts.Presence, tour.Hooks{
		Highlight: func(target content.Key, topic content.Topic) {
			d.listener.Highlighted(target, topic)
		},
		Unhighlight: func(target content.Key) {
			d.listener.Unhighlighted(target)
		},
		Complete: func(msg string) {
			d.record(ActivityTour, "complete", "", "", 0, 0, "")
			d.listener.Completed(ActivityTour, msg)
		},
	})
	d.anims = animation.NewPlayer(reg, opts.Scheduler, opts.Speed, animation.Hooks{
		Frame: func(f animation.Frame) { d.listener.StageRendered(f) },
		Complete: func(name string) {
			d.record(ActivityAnimation, "complete", name, "", 0, 0, "")
			d.listener.Completed(ActivityAnimation, name)
		},
	})
	d.sim = simulator.New(reg)

	d.logger.Info("document opened",
		"scenarios", d.scenarios.Len(),
		"questions", len(reg.Quiz()))
	return d
}

// ID returns the session identifier.
func (d *Document) ID() string { return d.id }

// Registry returns the content the document reads from.
func (d *Document) Registry() *content.Registry { return d.reg }

// Navigator returns the section navigator.
func (d *Document) Navigator() *progress.Navigator { return d.nav }

// Matching returns the matching board.
func (d *Document) Matching() *matching.Game { return d.match }

// Hierarchy returns the ordering board.
func (d *Document) Hierarchy() *hierarchy.Board { return d.board }

// Tour returns the tour controller.
func (d *Document) Tour() *tour.Controller { return d.tour }

// Animations returns the animation player.
func (d *Document) Animations() *animation.Player { return d.anims }

// QuizQuestions returns the quiz in order.
func (d *Document) QuizQuestions() []quiz.Question { return d.quiz.Questions() }

// SelectItem selects a card in the matching game.
func (d *Document) SelectItem(id string) (matching.Outcome, error) {
	out, err := d.match.Select(id)
	if err != nil {
		d.logger.Warn("select item", "item", id, "error", err)
		return out, err
	}

	switch out.Kind {
	case matching.Matched, matching.Completed:
		d.record(ActivityMatching, "select", out.Pair[0]+"|"+out.Pair[1], store.OutcomeCorrect,
			d.match.CorrectCount()/2, len(d.reg.MatchPairs()), "")
		d.listener.Feedback(ActivityMatching, out.Message, true)
		if out.Kind == matching.Completed {
			d.listener.Completed(ActivityMatching, out.Message)
		}
	case matching.Mismatched:
		d.record(ActivityMatching, "select", out.Pair[0]+"|"+out.Pair[1], store.OutcomeIncorrect,
			d.match.CorrectCount()/2, len(d.reg.MatchPairs()), "")
		d.listener.Feedback(ActivityMatching, out.Message, false)
	}
	return out, nil
}

// Place puts a hierarchy card into a slot. Returns the displaced card.
func (d *Document) Place(item, slot string) (string, error) {
	d.mu.Lock()
	displaced, err := d.board.Place(item, slot)
	d.mu.Unlock()
	if err != nil {
		d.logger.Warn("place", "item", item, "slot", slot, "error", err)
		return "", err
	}
	d.record(ActivityHierarchy, "place", item+"->"+slot, "", 0, 0, displaced)
	return displaced, nil
}

// Unplace returns a hierarchy card to the pool.
func (d *Document) Unplace(item string) {
	d.mu.Lock()
	d.board.Remove(item)
	d.mu.Unlock()
	d.record(ActivityHierarchy, "remove", item, "", 0, 0, "")
}

// CheckHierarchy grades the ordering board.
func (d *Document) CheckHierarchy() hierarchy.Report {
	d.mu.Lock()
	r := d.board.CheckAll()
	d.mu.Unlock()

	outcome := store.OutcomeIncorrect
	if r.Valid {
		outcome = store.OutcomeCorrect
	}
	total := len(d.board.Slots())
	d.record(ActivityHierarchy, "check", "", outcome, total-len(r.Failed), total, "")
	d.listener.Feedback(ActivityHierarchy, r.Message, r.Valid)
	if r.Valid {
		d.listener.Completed(ActivityHierarchy, r.Message)
	}
	return r
}

// CurrentScenario returns the scenario awaiting judgement.
func (d *Document) CurrentScenario() (content.Scenario, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scenarios.Current()
}

// ScenarioProgress returns the position in the deck and the deck size.
func (d *Document) ScenarioProgress() (index, total, score int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scenarios.Index(), d.scenarios.Len(), d.scenarios.Score()
}

// SubmitJudgement answers the current scenario.
func (d *Document) SubmitJudgement(isTrigger bool) (scenario.Result, error) {
	d.mu.Lock()
	r, err := d.scenarios.Submit(isTrigger)
	score, answered := d.scenarios.Score(), d.scenarios.Answered()
	d.mu.Unlock()
	if err != nil {
		return r, err
	}

	outcome := store.OutcomeIncorrect
	if r.Correct {
		outcome = store.OutcomeCorrect
	}
	d.record(ActivityScenario, "judge", r.ScenarioID, outcome, score, answered, string(r.Tier))
	d.listener.Feedback(ActivityScenario, r.Feedback, r.Correct)
	return r, nil
}

// NextScenario advances the deck. When the deck runs out it returns
// scenario.ErrDeckExhausted and reports the final result to the listener once.
func (d *Document) NextScenario() (content.Scenario, error) {
	d.mu.Lock()
	wasDone := d.scenarios.Index() >= d.scenarios.Len()
	s, err := d.scenarios.Advance()
	final := d.scenarios.Final()
	d.mu.Unlock()

	if errors.Is(err, scenario.ErrDeckExhausted) && !wasDone {
		d.record(ActivityScenario, "complete", "", "", final.Score, final.Total, final.Badge)
		d.listener.Completed(ActivityScenario, fmt.Sprintf("%s %s", final.Badge, final.Message))
	}
	return s, err
}

// ScenarioFinal returns the deck summary.
func (d *Document) ScenarioFinal() scenario.Final {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scenarios.Final()
}

// SubmitQuizAnswers grades the quiz once. Further submissions return
// quiz.ErrAlreadySubmitted until Restart("quiz").
func (d *Document) SubmitQuizAnswers(answers quiz.Answers) (quiz.Report, error) {
	r, err := d.quiz.Submit(answers)
	if err != nil {
		return r, err
	}
	for _, res := range r.Results {
		outcome := store.OutcomeIncorrect
		if res.Correct {
			outcome = store.OutcomeCorrect
		}
		d.record(ActivityQuiz, "answer", res.QuestionID, outcome, 0, 0, "")
	}
	d.record(ActivityQuiz, "submit", "", "", r.Score, r.Total, r.Band.Emoji)
	d.listener.Completed(ActivityQuiz, fmt.Sprintf("%s %d / %d %s", r.Band.Emoji, r.Score, r.Total, r.Band.Message))
	return r, nil
}

// QuizReport returns the graded quiz, if it has been submitted.
func (d *Document) QuizReport() (quiz.Report, bool) {
	return d.quiz.Report()
}

// StartTour begins the guided tour.
func (d *Document) StartTour() error {
	if err := d.tour.Start(); err != nil {
		d.logger.Debug("tour start rejected", "error", err)
		return err
	}
	d.record(ActivityTour, "start", "", "", 0, 0, "")
	return nil
}

// StartAnimation plays a named animation.
func (d *Document) StartAnimation(name string) error {
	if err := d.anims.Start(name); err != nil {
		d.logger.Debug("animation start rejected", "animation", name, "error", err)
		return err
	}
	d.record(ActivityAnimation, "start", name, "", 0, 0, "")
	return nil
}

// Simulate shows the airway response to a trigger.
func (d *Document) Simulate(trigger content.Key) (content.AirwayProfile, error) {
	d.mu.Lock()
	p, err := d.sim.Simulate(trigger)
	d.mu.Unlock()
	if err != nil {
		return p, err
	}
	d.record(ActivitySimulator, "simulate", trigger.Name, "", 0, 0, "")
	return p, nil
}

// SimulatorState returns the trigger on display and its profile.
func (d *Document) SimulatorState() (content.Key, content.AirwayProfile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sim.Current()
}

// Restart resets one activity to its initial state.
func (d *Document) Restart(activity string) error {
	switch activity {
	case ActivityScenario:
		d.mu.Lock()
		d.scenarios.Restart()
		d.mu.Unlock()
	case ActivityMatching:
		d.match.Reset()
	case ActivityHierarchy:
		d.mu.Lock()
		d.board.Reset()
		d.mu.Unlock()
	case ActivityQuiz:
		d.quiz.Reset()
	case ActivityTour:
		d.tour.Cancel()
	case ActivityAnimation:
		d.anims.StopAll()
	case ActivitySimulator:
		d.mu.Lock()
		_, err := d.sim.Simulate(content.Normal)
		d.mu.Unlock()
		if err != nil {
			d.logger.Warn("simulator reset failed", "error", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownActivity, activity)
	}
	d.record(activity, "restart", "", "", 0, 0, "")
	return nil
}

// Summary tallies the journal for this session. Without a journal it
// returns nil.
func (d *Document) Summary(ctx context.Context) ([]store.ActivityTally, error) {
	if d.journal == nil {
		return nil, nil
	}
	return d.journal.ActivitySummary(ctx, d.id)
}

// Recent returns this session's latest journal entries, newest first.
func (d *Document) Recent(ctx context.Context, limit int) ([]store.ActivityEvent, error) {
	if d.journal == nil {
		return nil, nil
	}
	return d.journal.QueryActivity(ctx, d.id, store.QueryOpts{Limit: limit})
}

// Close stops every timer the document owns.
func (d *Document) Close() {
	d.tour.Cancel()
	d.anims.StopAll()
	d.match.Reset()
	d.logger.Info("document closed")
}

// record appends to the journal. Failures are logged, not returned.
func (d *Document) record(activity, action, subject, outcome string, score, total int, detail string) {
	if d.journal == nil {
		return
	}
	err := d.journal.AppendActivity(context.Background(), store.ActivityEventData{
		SessionID: d.id,
		Activity:  activity,
		Action:    action,
		Subject:   subject,
		Outcome:   outcome,
		Score:     score,
		Total:     total,
		Detail:    detail,
	})
	if err != nil {
		d.logger.Warn("journal append failed", "activity", activity, "action", action, "error", err)
	}
}
