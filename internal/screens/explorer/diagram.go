package explorer

import (
	"image/color"
	"strings"
	"unicode"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/ui/theme"
)

// part is one selectable region of the cell drawing. IDs follow the diagram
// convention where repeated organelles carry a numeric suffix.
type part struct {
	id    string
	label string
	color color.Color
}

var parts = []part{
	{id: "membrane", label: "membrane", color: theme.Secondary},
	{id: "nucleus", label: "nucleus", color: theme.Primary},
	{id: "mitochondria1", label: "mitochondria", color: theme.Accent},
	{id: "mitochondria2", label: "mitochondria", color: theme.Accent},
	{id: "cytoplasm", label: "cytoplasm", color: theme.ArcadeCyan},
	{id: "ribosome", label: "ribosome", color: theme.TextDim},
}

// partName strips the numeric suffix from a part ID.
func partName(id string) string {
	return strings.TrimRightFunc(strings.ToLower(id), unicode.IsDigit)
}

// Shows reports whether the drawing has a part for target. The tour skips
// stops whose target is not drawn.
func Shows(target content.Key) bool {
	if target.Kind != content.KindOrganelle {
		return false
	}
	for _, p := range parts {
		if partName(p.id) == target.Name {
			return true
		}
	}
	return false
}

// diagramState says how each part should be drawn.
type diagramState struct {
	cursor    string      // part under the cursor
	lit       content.Key // tour highlight
	resolveFn func(id string) content.Key
}

func (d diagramState) style(p part) lipgloss.Style {
	k := d.resolveFn(p.id)
	switch {
	case !d.lit.IsZero() && k == d.lit:
		return lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
	case p.id == d.cursor:
		return lipgloss.NewStyle().Foreground(p.color).Bold(true).Underline(true)
	default:
		return lipgloss.NewStyle().Foreground(p.color)
	}
}

func (d diagramState) label(id string) string {
	for _, p := range parts {
		if p.id == id {
			text := p.label
			if id == d.cursor {
				text = "▸" + text
			}
			return d.style(p).Render(text)
		}
	}
	return ""
}

func (d diagramState) borderColor(id string, fallback color.Color) color.Color {
	for _, p := range parts {
		if p.id != id {
			continue
		}
		k := d.resolveFn(p.id)
		if !d.lit.IsZero() && k == d.lit {
			return theme.ArcadeYellow
		}
		if p.id == d.cursor {
			return theme.Text
		}
	}
	return fallback
}

// renderDiagram draws the cell with its labelled parts.
func renderDiagram(d diagramState) string {
	dots := lipgloss.NewStyle().Foreground(theme.TextDim)

	nucleus := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.borderColor("nucleus", theme.Primary)).
		Padding(1, 2).
		Render(d.label("nucleus") + "\n" + dots.Render(" ~DNA~ "))

	mito := lipgloss.JoinVertical(lipgloss.Left,
		"⬭ "+d.label("mitochondria1"),
		"",
		"",
		"   ⬭ "+d.label("mitochondria2"),
	)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		dots.Render("·   ·    ")+d.label("cytoplasm")+dots.Render("    ·   ·"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, nucleus, "     ", mito),
		"",
		dots.Render("·    ")+"∘ "+d.label("ribosome")+dots.Render("     ·     ·"),
	)

	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.borderColor("membrane", theme.Secondary)).
		Padding(1, 3).
		Render(inner)

	return cell + "\n" + lipgloss.PlaceHorizontal(lipgloss.Width(cell), lipgloss.Center, d.label("membrane"))
}
