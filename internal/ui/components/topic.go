package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// TopicCard renders a topic's heading, description, facts, and notes
// wrapped to width.
func TopicCard(t content.Topic, width int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(t.Heading()))
	b.WriteString("\n\n")
	if t.Description != "" {
		b.WriteString(body.Render(t.Description))
		b.WriteString("\n")
	}
	if len(t.Facts) > 0 {
		b.WriteString("\n")
		bullet := lipgloss.NewStyle().Foreground(theme.Secondary).Render("•")
		for _, f := range t.Facts {
			b.WriteString(bullet + " " + body.Width(width-2).Render(f) + "\n")
		}
	}
	if t.Note != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Width(width).Render("💡 " + t.Note))
		b.WriteString("\n")
	}
	if t.Connection != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Width(width).Render("🫁 " + t.Connection))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
