// Package screentest builds lesson documents for screen tests.
package screentest

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/schedule"
	"github.com/abhisek/cellquest/internal/store"
)

// Fixture is a document on a manual clock with an in-memory journal.
type Fixture struct {
	Doc   *lesson.Document
	Clock *schedule.Manual
	Store *store.Store
}

// New opens a fresh document over the embedded pack.
func New(t *testing.T, listener lesson.Listener) *Fixture {
	t.Helper()
	reg, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	clock := schedule.NewManual()
	doc := lesson.New(reg, lesson.Options{
		Scheduler: clock,
		Journal:   st.EventRepo(),
		Listener:  listener,
	})
	t.Cleanup(func() {
		doc.Close()
		_ = st.Close()
	})
	return &Fixture{Doc: doc, Clock: clock, Store: st}
}

// Key builds a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special builds a non-printable key press such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Run executes cmd and returns its message, or nil.
func Run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
