package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const tableActivityEvents = "activity_events"

var activityColumns = []string{
	"sequence", "timestamp", "session_id", "activity", "action",
	"subject", "outcome", "score", "total", "detail",
}

type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendActivity(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableActivityEvents).
		Columns(activityColumns...).
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Activity, data.Action,
			data.Subject, data.Outcome, data.Score, data.Total, data.Detail).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryActivity(ctx context.Context, sessionID string, opts QueryOpts) ([]ActivityEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(activityColumns...).
		From(entsql.Table(tableActivityEvents)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy(entsql.Desc("sequence"))
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}
	defer rows.Close()

	var records []ActivityEvent
	for rows.Next() {
		var e ActivityEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.SessionID, &e.Activity, &e.Action,
			&e.Subject, &e.Outcome, &e.Score, &e.Total, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *eventRepo) ActivitySummary(ctx context.Context, sessionID string) ([]ActivityTally, error) {
	countOutcome := func(outcome string) entsql.Querier {
		return entsql.Expr("SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END)", outcome)
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Select("activity", entsql.Count("*")).
		AppendSelectExpr(countOutcome(OutcomeCorrect), countOutcome(OutcomeIncorrect)).
		From(entsql.Table(tableActivityEvents)).
		Where(entsql.EQ("session_id", sessionID)).
		GroupBy("activity").
		OrderBy("MIN(sequence)").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("summarise activity: %w", err)
	}
	defer rows.Close()

	var out []ActivityTally
	for rows.Next() {
		var t ActivityTally
		if err := rows.Scan(&t.Activity, &t.Events, &t.Correct, &t.Incorrect); err != nil {
			return nil, fmt.Errorf("scan tally: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
