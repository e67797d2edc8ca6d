package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='activity_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "activity_events" {
		t.Errorf("table name = %q, want 'activity_events'", name)
	}
}

func TestAppendAndQueryActivity(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ActivityEventData{
		{SessionID: "s1", Activity: "scenario", Action: "judge", Subject: "park-pollen", Outcome: OutcomeCorrect},
		{SessionID: "s1", Activity: "scenario", Action: "judge", Subject: "drink-water", Outcome: OutcomeIncorrect},
		{SessionID: "s1", Activity: "quiz", Action: "submit", Score: 9, Total: 10},
		{SessionID: "s2", Activity: "matching", Action: "select", Subject: "prompt:nucleus"},
	}
	for _, e := range events {
		if err := repo.AppendActivity(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryActivity(ctx, "s1", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[0].Activity != "quiz" || got[0].Score != 9 {
		t.Errorf("newest event = %+v, want quiz submit", got[0])
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("events not newest first: %d then %d", got[0].Sequence, got[1].Sequence)
	}
	if got[2].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	limited, err := repo.QueryActivity(ctx, "s1", QueryOpts{Limit: 1, Before: got[0].Sequence})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Subject != "drink-water" {
		t.Errorf("limited = %+v, want drink-water only", limited)
	}
}

func TestActivitySummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, o := range []string{OutcomeCorrect, OutcomeCorrect, OutcomeIncorrect} {
		if err := repo.AppendActivity(ctx, ActivityEventData{SessionID: "s", Activity: "scenario", Action: "judge", Outcome: o}); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.AppendActivity(ctx, ActivityEventData{SessionID: "s", Activity: "tour", Action: "start"}); err != nil {
		t.Fatal(err)
	}

	tallies, err := repo.ActivitySummary(ctx, "s")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(tallies) != 2 {
		t.Fatalf("got %d tallies, want 2", len(tallies))
	}
	sc := tallies[0]
	if sc.Activity != "scenario" || sc.Events != 3 || sc.Correct != 2 || sc.Incorrect != 1 {
		t.Errorf("scenario tally = %+v", sc)
	}
	if tallies[1].Activity != "tour" || tallies[1].Events != 1 {
		t.Errorf("tour tally = %+v", tallies[1])
	}
}

func TestSequenceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for range 3 {
		if err := s.EventRepo().AppendActivity(ctx, ActivityEventData{SessionID: "s", Activity: "tour", Action: "start"}); err != nil {
			t.Fatal(err)
		}
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if seq != 4 {
		t.Errorf("sequence after reopen = %d, want 4", seq)
	}
}

func TestQueryActivityAfter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, subject := range []string{"a", "b", "c"} {
		if err := repo.AppendActivity(ctx, ActivityEventData{SessionID: "s", Activity: "hierarchy", Action: "place", Subject: subject}); err != nil {
			t.Fatal(err)
		}
	}
	all, err := repo.QueryActivity(ctx, "s", QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}

	got, err := repo.QueryActivity(ctx, "s", QueryOpts{After: all[2].Sequence})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Subject != "c" || got[1].Subject != "b" {
		t.Errorf("after %d = %+v, want c then b", all[2].Sequence, got)
	}
}
