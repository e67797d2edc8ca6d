package lesson

import (
	"github.com/abhisek/cellquest/internal/animation"
	"github.com/abhisek/cellquest/internal/content"
)

// Activity names used in listener callbacks and the journal.
const (
	ActivityScenario  = "scenario"
	ActivityMatching  = "matching"
	ActivityHierarchy = "hierarchy"
	ActivityQuiz      = "quiz"
	ActivityTour      = "tour"
	ActivityAnimation = "animation"
	ActivitySimulator = "simulator"
)

// Activities lists every activity that can be restarted.
func Activities() []string {
	return []string{
		ActivityScenario, ActivityMatching, ActivityHierarchy, ActivityQuiz,
		ActivityTour, ActivityAnimation, ActivitySimulator,
	}
}

// Listener receives render callbacks from the document. Timed callbacks
// (stages, highlights, delayed reversions) arrive on timer goroutines.
type Listener interface {
	StageRendered(f animation.Frame)
	Highlighted(target content.Key, topic content.Topic)
	Unhighlighted(target content.Key)
	Feedback(activity, message string, success bool)
	Completed(activity, message string)
	// Changed reports state that changed without user input, such as a
	// mismatched pair clearing.
	Changed(activity string)
}

// NopListener ignores every callback. Embed it to implement a subset.
type NopListener struct{}

func (NopListener) StageRendered(animation.Frame)          {}
func (NopListener) Highlighted(content.Key, content.Topic) {}
func (NopListener) Unhighlighted(content.Key)              {}
func (NopListener) Feedback(string, string, bool)          {}
func (NopListener) Completed(string, string)               {}
func (NopListener) Changed(string)                         {}
