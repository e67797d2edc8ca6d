package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// Outcome values for graded events.
const (
	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
)

// ActivityEventData captures one learner action.
type ActivityEventData struct {
	SessionID string
	Activity  string // scenario, matching, hierarchy, quiz, tour, animation, simulator
	Action    string // judge, select, place, check, submit, start, complete, restart
	Subject   string // scenario, item, slot or question id
	Outcome   string // OutcomeCorrect, OutcomeIncorrect or empty
	Score     int
	Total     int
	Detail    string
}

// ActivityEvent is a stored ActivityEventData.
type ActivityEvent struct {
	ActivityEventData
	Sequence  int64
	Timestamp time.Time
}

// ActivityTally summarises one activity within a session.
type ActivityTally struct {
	Activity  string
	Events    int
	Correct   int
	Incorrect int
}

// EventRepo provides append and query access to the activity journal.
type EventRepo interface {
	// AppendActivity records a learner action.
	AppendActivity(ctx context.Context, data ActivityEventData) error

	// QueryActivity returns a session's events, newest first.
	QueryActivity(ctx context.Context, sessionID string, opts QueryOpts) ([]ActivityEvent, error)

	// ActivitySummary tallies a session's events per activity.
	ActivitySummary(ctx context.Context, sessionID string) ([]ActivityTally, error)
}
