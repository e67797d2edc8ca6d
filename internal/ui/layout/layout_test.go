package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader_ShowsSectionProgress(t *testing.T) {
	h := RenderHeader("Quiz", 5, 7, 100)
	if !strings.Contains(h, "§ 6/7") {
		t.Errorf("header missing section counter: %q", h)
	}
	if !strings.Contains(h, "CellQuest") {
		t.Error("header missing app name")
	}
}

func TestRenderHeader_NoSections(t *testing.T) {
	h := RenderHeader("Home", 0, 0, 100)
	if strings.Contains(h, "§") {
		t.Error("header shows a counter without sections")
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 90)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "Back") {
		t.Errorf("footer = %q", f)
	}
}

func TestIsCompact(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want bool
	}{
		{"roomy", 120, 30, false},
		{"narrow", 90, 30, true},
		{"short body", 120, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCompact(tt.w, tt.h); got != tt.want {
				t.Errorf("IsCompact(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	frame := RenderFrame("head", "body", "foot", 40, 10)
	lines := strings.Split(frame, "\n")
	if len(lines) != 10 {
		t.Fatalf("frame has %d lines, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[0], "head") || !strings.HasPrefix(lines[9], "foot") {
		t.Errorf("frame = %q", frame)
	}
}
