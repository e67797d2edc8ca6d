package store

import (
	"context"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const tableJournalSequence = "journal_sequence"

// sequenceCounter numbers journal events across all activities so two events
// written in the same clock tick still have a defined order.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

const createSequenceTable = `CREATE TABLE IF NOT EXISTS journal_sequence (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	next INTEGER NOT NULL
)`

func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	if err := drv.Exec(ctx, createSequenceTable, []any{}, nil); err != nil {
		return nil, fmt.Errorf("init sequence: %w", err)
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableJournalSequence).
		Columns("id", "next").
		Values(1, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next returns the next sequence number, starting at 1.
func (c *sequenceCounter) Next(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	query, args := entsql.Dialect(dialect.SQLite).
		Update(tableJournalSequence).
		Add("next", 1).
		Where(entsql.EQ("id", 1)).
		Returning("next").
		Query()

	var rows entsql.Rows
	if err := c.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	var next int64
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("next sequence: %w", err)
		}
		return 0, fmt.Errorf("next sequence: counter row missing")
	}
	if err := rows.Scan(&next); err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return next - 1, nil
}
