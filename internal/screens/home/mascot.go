package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/ui/theme"
)

// Mood picks the cell mascot's face from the learner's quiz result.
type Mood int

const (
	MoodCurious   Mood = iota // quiz not taken yet
	MoodCheering              // quiz passed
	MoodWheezy                // quiz taken, score below the pass mark
)

type mascotLook struct {
	art string
	fg  color.Color
}

var mascots = map[Mood]mascotLook{
	MoodCurious: {`╭─·───────·─╮
│ · ◉   ◉ · │
│     ▽     │
╰─·───────·─╯`, theme.Primary},
	MoodCheering: {`  \ ★   ★ /
╭─·───────·─╮
│ · ★   ★ · │
│     ◡     │
╰─·───────·─╯`, theme.ArcadeYellow},
	MoodWheezy: {`╭─·───────·─╮  ~
│ · ◉   ◉ · │ ~
│     o     │
╰─·───────·─╯`, theme.Accent},
}

// moodFor maps a quiz percentage to a mood. taken is false before the first
// submission.
func moodFor(percent int, taken bool) Mood {
	switch {
	case !taken:
		return MoodCurious
	case percent >= passPercent:
		return MoodCheering
	default:
		return MoodWheezy
	}
}

// RenderMascot draws the mascot for mood.
func RenderMascot(mood Mood) string {
	look, ok := mascots[mood]
	if !ok {
		look = mascots[MoodCurious]
	}
	return lipgloss.NewStyle().Foreground(look.fg).Render(look.art)
}
