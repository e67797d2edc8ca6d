package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/ui/theme"
)

// ContentWidth is the width of boxed sections inside a frame of frameWidth,
// clamped to 20..72.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// CabinetFrame centres content inside a double border filling width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard boxes content at content width cw.
func ArcadeCard(content string, cw int) string {
	return ArcadeCardColored(content, cw, theme.Border)
}

// ArcadeCardColored is ArcadeCard with its own border colour, used to tint
// cards by match or placement status.
func ArcadeCardColored(content string, cw int, border color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Padding(1, 2).
		Align(lipgloss.Center).
		Render(content)
}

// ArcadeButton draws a bordered choice of fixed width. A selected button is
// filled and marked with ▸.
func ArcadeButton(label string, selected bool, width int) string {
	fg, border := theme.Text, theme.Border
	if selected {
		fg, border = theme.BgDark, theme.ArcadeYellow
		label = "▸ " + label
	}
	style := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Align(lipgloss.Center).
		Foreground(fg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
	if selected {
		style = style.Bold(true).Background(theme.ArcadeYellow)
	}
	return style.Render(label)
}

// Feedback marks msg with ✓ or ✗. An empty msg renders nothing.
func Feedback(msg string, success bool) string {
	switch {
	case msg == "":
		return ""
	case success:
		return theme.Correct.Render("✓ " + msg)
	default:
		return theme.Incorrect.Render("✗ " + msg)
	}
}
