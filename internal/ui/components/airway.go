package components

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// airwayScale is the largest outer radius in content units.
const airwayScale = 135.0

type cell uint8

const (
	cellEmpty cell = iota
	cellWall
	cellMuscle
	cellSwollen
	cellMucus
	cellAir
	cellParticle
)

var cellGlyph = map[cell]string{
	cellEmpty:    " ",
	cellWall:     "█",
	cellMuscle:   "▓",
	cellSwollen:  "▒",
	cellMucus:    "●",
	cellAir:      " ",
	cellParticle: "*",
}

// airwayGrid lays out an airway cross-section on a rows x (2*rows+1) grid.
func airwayGrid(a content.Airway, rows int) [][]cell {
	if rows < 5 {
		rows = 5
	}
	if rows%2 == 0 {
		rows++
	}
	cols := rows*2 + 1
	cy, cx := rows/2, cols/2
	unit := airwayScale / float64(rows/2)

	outer := float64(a.Outer)
	inner := float64(a.Inner)
	swollen := inner + float64(a.Swelling)*2

	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			dx := float64(x-cx) / 2
			dy := float64(y - cy)
			d := math.Hypot(dx, dy) * unit
			switch {
			case d > outer:
				grid[y][x] = cellEmpty
			case d <= inner:
				grid[y][x] = cellAir
			case d <= swollen:
				grid[y][x] = cellSwollen
			case a.Swelling > 0 && d > outer-unit:
				grid[y][x] = cellMuscle
			default:
				grid[y][x] = cellWall
			}
		}
	}

	// Mucus collects along the inside of the wall.
	ringR := (inner - unit/2) / unit
	placeOnRing(grid, cx, cy, ringR, a.Mucus, 0.3, cellMucus)
	// Particles drift through the middle of the passage.
	placeOnRing(grid, cx, cy, ringR/2, a.Particles, 1.1, cellParticle)
	return grid
}

func placeOnRing(grid [][]cell, cx, cy int, r float64, n int, phase float64, c cell) {
	if n <= 0 || r <= 0 {
		return
	}
	for i := range n {
		angle := phase + 2*math.Pi*float64(i)/float64(n)
		x := cx + int(math.Round(math.Cos(angle)*r*2))
		y := cy + int(math.Round(math.Sin(angle)*r))
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			continue
		}
		if grid[y][x] == cellAir {
			grid[y][x] = c
		}
	}
}

// RenderAirway draws a colored cross-section with its mood and label below.
func RenderAirway(a content.Airway, rows int) string {
	grid := airwayGrid(a, rows)
	tone := theme.ToneColor(a.Tone)

	colors := map[cell]color.Color{
		cellWall:     theme.Tissue,
		cellMuscle:   theme.Muscle,
		cellSwollen:  tone,
		cellMucus:    theme.Mucus,
		cellParticle: theme.Accent,
	}

	var b strings.Builder
	for y, row := range grid {
		// Render runs of the same cell type with one style.
		for x := 0; x < len(row); {
			end := x
			for end < len(row) && row[end] == row[x] {
				end++
			}
			run := strings.Repeat(cellGlyph[row[x]], end-x)
			if fg, ok := colors[row[x]]; ok {
				run = lipgloss.NewStyle().Foreground(fg).Render(run)
			}
			b.WriteString(run)
			x = end
		}
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}

	caption := a.Label
	if a.Mood != "" {
		caption = a.Mood + "  " + caption
	}
	switch a.Flow {
	case "in":
		caption += "  ⟶ air in"
	case "out":
		caption += "  ⟵ air out"
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(tone).Bold(true).Render(caption))
	return b.String()
}
