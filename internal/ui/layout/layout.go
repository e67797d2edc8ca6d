// Package layout draws the frame around every screen: a header bar, the
// screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below these sizes screens drop decorations such as the mascot.
	compactWidth      = 100
	compactBodyHeight = 22
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal cannot fit the lesson.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsShort reports whether a screen body of this height should be condensed.
func IsShort(bodyHeight int) bool {
	return bodyHeight < compactBodyHeight
}

// IsCompact reports whether a screen body should be condensed in either direction.
func IsCompact(width, bodyHeight int) bool {
	return width < compactWidth || IsShort(bodyHeight)
}

// RenderMinSizeMessage asks the learner to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader puts the app name on the left, the screen title in the middle
// and, when sections > 0, the reader's position as "§ n/N" on the right.
// section is zero-based.
func RenderHeader(title string, section, sections int, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  CellQuest")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	counter := ""
	if sections > 0 {
		counter = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).
			Render(fmt.Sprintf("§ %d/%d", section+1, sections))
	}

	inner := max(width-4, 0)
	nw, mw, cw := lipgloss.Width(name), lipgloss.Width(mid), lipgloss.Width(counter)
	gapL := max((inner-mw)/2-nw, 1)
	gapR := max(inner-nw-gapL-mw-cw, 1)

	return bar(width).Render(name + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + counter)
}

// RenderFooter lists key hints left to right.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, body and footer, padding the body so the
// footer sits on the last rows.
func RenderFrame(header, body, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(body),
		footer,
	)
}
