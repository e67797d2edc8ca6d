package progress

import (
	"testing"

	"github.com/abhisek/cellquest/internal/content"
)

func TestFraction(t *testing.T) {
	tests := []struct {
		current, total int
		want           float64
	}{
		{0, 7, 1.0 / 7},
		{6, 7, 1},
		{3, 4, 1},
		{9, 4, 1},
		{-5, 4, 0},
		{0, 0, 0},
		{0, -1, 0},
	}
	for _, tt := range tests {
		if got := Fraction(tt.current, tt.total); got != tt.want {
			t.Errorf("Fraction(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestNavigator(t *testing.T) {
	n := NewNavigator(content.KeysOf(content.KindSection))
	if n.Current() != content.SectionIntro {
		t.Errorf("Current() = %v, want intro", n.Current())
	}
	if n.Prev() {
		t.Error("Prev() at start = true")
	}
	if !n.Next() || n.Current() != content.SectionCellsBasics {
		t.Errorf("Next() -> %v, want cells-basics", n.Current())
	}
	if err := n.Show(content.SectionResources); err != nil {
		t.Fatal(err)
	}
	if n.Next() {
		t.Error("Next() at end = true")
	}
	if n.Fraction() != 1 {
		t.Errorf("Fraction() = %v, want 1", n.Fraction())
	}
	if err := n.Show(content.Nucleus); err == nil {
		t.Error("Show(non-section) succeeded")
	}
}
