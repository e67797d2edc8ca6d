package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/ui/components"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

const arcadeTitle = "C · E · L · L · Q · U · E · S · T"

// renderTitle returns the styled title line.
func renderTitle(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(arcadeTitle)
}

// renderStatsBar renders reading and quiz progress in a bordered box.
func renderStatsBar(section, sections int, quizScore string, cw int, compact bool) string {
	readStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	quizStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	quiz := dimStyle.Render("? NOT TAKEN")
	if quizScore != "" {
		quiz = quizStyle.Render("? " + quizScore)
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			readStyle.Render(fmt.Sprintf("§%d/%d", section+1, sections)),
			quiz)
	} else {
		stats = fmt.Sprintf("%s  %s",
			readStyle.Render(fmt.Sprintf("§ SECTION %d OF %d", section+1, sections)),
			quiz)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu centres the menu block at content width.
func renderMenu(m components.Menu, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(m.View())
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(mood Mood, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(mood))
}
