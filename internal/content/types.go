package content

import "time"

// Topic is one page of narrative content.
type Topic struct {
	Key         Key      `yaml:"key"`
	Emoji       string   `yaml:"emoji"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Facts       []string `yaml:"facts"`
	Note        string   `yaml:"note"`       // fun fact or analogy
	Connection  string   `yaml:"connection"` // link to asthma, optional
}

// Heading returns the emoji-prefixed title.
func (t Topic) Heading() string {
	if t.Emoji == "" {
		return t.Title
	}
	return t.Emoji + " " + t.Title
}

// Tone colours an airway drawing.
type Tone string

const (
	ToneCalm      Tone = "calm"
	ToneIrritated Tone = "irritated"
	ToneInflamed  Tone = "inflamed"
	ToneCold      Tone = "cold"
	ToneSmoky     Tone = "smoky"
	ToneAlarm     Tone = "alarm"
)

// Airway describes a cross-section of an airway. Radii are in the units of the
// original 500x300 drawing (outer ring 100-135, open passage 40-80).
type Airway struct {
	Outer     int    `yaml:"outer"`
	Inner     int    `yaml:"inner"`
	Swelling  int    `yaml:"swelling"` // extra wall thickness from muscle or inflammation
	Particles int    `yaml:"particles"`
	Mucus     int    `yaml:"mucus"`
	Mood      string `yaml:"mood"`
	Label     string `yaml:"label"`
	Tone      Tone   `yaml:"tone"`
	Flow      string `yaml:"flow"` // "in", "out" or empty
}

// Openness returns the open passage as a fraction of the outer ring.
func (a Airway) Openness() float64 {
	if a.Outer <= 0 {
		return 0
	}
	return float64(a.Inner) / float64(a.Outer)
}

// AnimationStage is one timed frame of a named animation.
type AnimationStage struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	DurationMS  int    `yaml:"duration_ms"`
	Airway      Airway `yaml:"airway"`
}

// Duration returns the stage duration.
func (s AnimationStage) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// Animation is a named staged sequence.
type Animation struct {
	Name   string           `yaml:"name"`
	Title  string           `yaml:"title"`
	Cycles int              `yaml:"cycles"` // stages repeat this many times; 0 means once
	Stages []AnimationStage `yaml:"stages"`
}

// Severity grades how strongly a scenario affects the airways.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Scenario is one judge-the-trigger exercise item.
type Scenario struct {
	ID                string   `yaml:"id"`
	Situation         string   `yaml:"situation"`
	IsTrigger         bool     `yaml:"is_trigger"`
	CorrectFeedback   string   `yaml:"correct_feedback"`
	IncorrectFeedback string   `yaml:"incorrect_feedback"`
	Severity          Severity `yaml:"severity"`
	Combination       bool     `yaml:"combination"`
	Trigger           Key      `yaml:"trigger"` // optional simulator profile
}

// MatchPair links a cell part to its job in the matching game.
type MatchPair struct {
	Key    string `yaml:"key"`
	Prompt string `yaml:"prompt"`
	Answer string `yaml:"answer"`
}

// HierarchySlot is one ordered drop zone.
type HierarchySlot struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Required string `yaml:"required"`
}

// HierarchyItem is one draggable card.
type HierarchyItem struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Hierarchy is the drag-and-drop ordering exercise.
type Hierarchy struct {
	Slots []HierarchySlot `yaml:"slots"`
	Items []HierarchyItem `yaml:"items"`
}

// QuizOption is one selectable answer.
type QuizOption struct {
	Value string `yaml:"value"`
	Text  string `yaml:"text"`
}

// QuizQuestion is a question with its answer key.
type QuizQuestion struct {
	ID         string       `yaml:"id"`
	Prompt     string       `yaml:"prompt"`
	Multi      bool         `yaml:"multi"`
	Options    []QuizOption `yaml:"options"`
	Answer     []string     `yaml:"answer"`
	AnswerText string       `yaml:"answer_text"`
}

// TourStop is one entry of the guided organelle tour.
type TourStop struct {
	Target     Key `yaml:"target"`
	Content    Key `yaml:"content"`
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns how long the tour pauses on this stop.
func (s TourStop) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// AirwayProfile is the simulator response to one trigger.
type AirwayProfile struct {
	Trigger         Key    `yaml:"trigger"`
	Airway          Airway `yaml:"airway"`
	Headline        string `yaml:"headline"`
	WhatHappens     string `yaml:"what_happens"`
	CellularEffects string `yaml:"cellular_effects"`
}

// Messages holds fixed strings the engines emit.
type Messages struct {
	TourComplete string `yaml:"tour_complete"`
}

// Pack is the full decoded content bundle.
type Pack struct {
	Topics     []Topic         `yaml:"topics"`
	Animations []Animation     `yaml:"animations"`
	Scenarios  []Scenario      `yaml:"scenarios"`
	Matching   []MatchPair     `yaml:"matching"`
	Hierarchy  Hierarchy       `yaml:"hierarchy"`
	Quiz       []QuizQuestion  `yaml:"quiz"`
	Tour       []TourStop      `yaml:"tour"`
	Simulator  []AirwayProfile `yaml:"simulator"`
	Messages   Messages        `yaml:"messages"`
}
