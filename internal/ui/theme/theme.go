// Package theme holds the palette and shared text styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/content"
)

// Color palette: bright, friendly, readable on dark terminals.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Airway tissue colors.
var (
	Tissue  = lipgloss.Color("#FDA4AF") // pink airway wall
	Muscle  = lipgloss.Color("#E11D48") // tightened muscle band
	Mucus   = lipgloss.Color("#A3E635") // yellow-green mucus
	AirFlow = lipgloss.Color("#7DD3FC") // light blue air
)

// ToneColor maps an airway tone to its accent color.
func ToneColor(t content.Tone) color.Color {
	switch t {
	case content.ToneCalm:
		return Success
	case content.ToneIrritated:
		return ArcadeYellow
	case content.ToneInflamed:
		return Accent
	case content.ToneCold:
		return ArcadeCyan
	case content.ToneSmoky:
		return TextDim
	case content.ToneAlarm:
		return Error
	default:
		return Text
	}
}

// SeverityColor maps a scenario display tier to a color.
func SeverityColor(s content.Severity) color.Color {
	switch s {
	case content.SeverityMild:
		return ArcadeYellow
	case content.SeverityModerate:
		return Accent
	case content.SeveritySevere:
		return Error
	default:
		return Success
	}
}

// Typography
var (
	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
