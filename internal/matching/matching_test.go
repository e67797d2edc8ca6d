package matching

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/schedule"
)

var pairs = []content.MatchPair{
	{Key: "nucleus", Prompt: "Nucleus", Answer: "Control center"},
	{Key: "mitochondria", Prompt: "Mitochondria", Answer: "Energy"},
}

func newGame() (*Game, *schedule.Manual, *[][]string) {
	clock := schedule.NewManual()
	var reverted [][]string
	g := New(pairs, clock, DefaultConfig(), func(ids []string) { reverted = append(reverted, ids) })
	return g, clock, &reverted
}

func TestMatch_EitherOrder(t *testing.T) {
	for _, order := range [][2]string{
		{PromptID("nucleus"), AnswerID("nucleus")},
		{AnswerID("nucleus"), PromptID("nucleus")},
	} {
		g, _, _ := newGame()
		if _, err := g.Select(order[0]); err != nil {
			t.Fatal(err)
		}
		out, err := g.Select(order[1])
		if err != nil {
			t.Fatal(err)
		}
		if out.Kind != Matched || out.Message != MsgMatch {
			t.Errorf("order %v: outcome = %+v, want Matched", order, out)
		}
		for _, id := range order {
			if g.Status(id) != Correct {
				t.Errorf("status(%s) = %s, want correct", id, g.Status(id))
			}
			again, _ := g.Select(id)
			if again.Kind != Ignored {
				t.Errorf("reselect %s: kind = %d, want Ignored", id, again.Kind)
			}
		}
		if len(g.Selection()) != 0 {
			t.Errorf("selection = %v, want empty", g.Selection())
		}
	}
}

func TestMismatch_RevertsAfterDelay(t *testing.T) {
	g, clock, reverted := newGame()
	p, a := PromptID("nucleus"), AnswerID("mitochondria")
	_, _ = g.Select(p)
	out, _ := g.Select(a)

	if out.Kind != Mismatched || out.Success() {
		t.Fatalf("outcome = %+v, want Mismatched", out)
	}
	if len(g.Selection()) != 0 {
		t.Error("buffer not cleared after evaluation")
	}
	if g.Status(p) != Incorrect || g.Status(a) != Incorrect {
		t.Error("expected both items flagged incorrect")
	}

	clock.Advance(999 * time.Millisecond)
	if g.Status(p) != Incorrect {
		t.Error("reverted too early")
	}
	clock.Advance(time.Millisecond)
	if g.Status(p) != Unselected || g.Status(a) != Unselected {
		t.Error("expected both items unselected after delay")
	}
	if len(*reverted) != 1 {
		t.Errorf("revert callbacks = %d, want 1", len(*reverted))
	}
}

func TestToggleDeselect(t *testing.T) {
	g, _, _ := newGame()
	id := PromptID("nucleus")
	_, _ = g.Select(id)
	out, _ := g.Select(id)
	if out.Kind != Unpicked {
		t.Errorf("kind = %d, want Unpicked", out.Kind)
	}
	if g.Status(id) != Unselected || len(g.Selection()) != 0 {
		t.Error("toggle did not clear selection")
	}
}

func TestSelectFlashingItem_FlushesReversion(t *testing.T) {
	g, clock, _ := newGame()
	p, a := PromptID("nucleus"), AnswerID("mitochondria")
	_, _ = g.Select(p)
	_, _ = g.Select(a)

	out, _ := g.Select(p)
	if out.Kind != Picked {
		t.Fatalf("kind = %d, want Picked", out.Kind)
	}
	if g.Status(a) != Unselected {
		t.Errorf("partner status = %s, want unselected", g.Status(a))
	}

	clock.Advance(5 * time.Second)
	if g.Status(p) != Selected {
		t.Errorf("stale reversion cleared the new selection: %s", g.Status(p))
	}
}

func TestComplete_DerivedFromBoardSize(t *testing.T) {
	g, _, _ := newGame()
	_, _ = g.Select(PromptID("nucleus"))
	_, _ = g.Select(AnswerID("nucleus"))
	_, _ = g.Select(PromptID("mitochondria"))
	out, _ := g.Select(AnswerID("mitochondria"))

	if out.Kind != Completed || out.Message != MsgComplete {
		t.Errorf("outcome = %+v, want Completed", out)
	}
	if !g.Complete() {
		t.Error("Complete() = false")
	}
}

func TestUnknownItem(t *testing.T) {
	g, _, _ := newGame()
	if _, err := g.Select("prompt:ribosome"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

func TestReset(t *testing.T) {
	g, clock, reverted := newGame()
	_, _ = g.Select(PromptID("nucleus"))
	_, _ = g.Select(AnswerID("nucleus"))
	_, _ = g.Select(PromptID("mitochondria"))
	_, _ = g.Select(AnswerID("nucleus"))
	g.Reset()

	for _, it := range g.Items() {
		if g.Status(it.ID) != Unselected {
			t.Errorf("status(%s) = %s after reset", it.ID, g.Status(it.ID))
		}
	}
	if g.CorrectCount() != 0 {
		t.Errorf("correct = %d, want 0", g.CorrectCount())
	}
	clock.Advance(time.Minute)
	if len(*reverted) != 0 {
		t.Error("reversion fired after reset")
	}
}

func TestRandomSelections_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, clock, _ := newGame()
	items := g.Items()

	prev := 0
	for i := 0; i < 500; i++ {
		out, err := g.Select(items[rng.Intn(len(items))].ID)
		if err != nil {
			t.Fatal(err)
		}
		switch out.Kind {
		case Matched, Mismatched, Completed:
			if n := len(g.Selection()); n != 0 {
				t.Fatalf("step %d: buffer = %d after evaluation", i, n)
			}
		}
		if n := len(g.Selection()); n > 1 {
			t.Fatalf("step %d: buffer = %d", i, n)
		}
		c := g.CorrectCount()
		if c < prev || c > len(items) {
			t.Fatalf("step %d: correct went %d -> %d", i, prev, c)
		}
		prev = c
		if rng.Intn(3) == 0 {
			clock.Advance(time.Second)
		}
	}
}
