// Package quiz grades the end-of-lesson quiz.
package quiz

import (
	"errors"
	"math"
	"sync"

	"github.com/abhisek/cellquest/internal/answerkey"
	"github.com/abhisek/cellquest/internal/content"
)

// ErrAlreadySubmitted is returned by Session.Submit until Reset is called.
var ErrAlreadySubmitted = errors.New("quiz: already submitted")

// Question pairs the displayed question with its answer key entry.
type Question struct {
	content.QuizQuestion
	Key answerkey.Answer
}

// Questions joins the registry's quiz with the answer key. Questions without
// a key entry are kept and always graded incorrect.
func Questions(reg *content.Registry, keys *answerkey.Store) []Question {
	qs := reg.Quiz()
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		a, _ := keys.Lookup(q.ID)
		out = append(out, Question{QuizQuestion: q, Key: a})
	}
	return out
}

// Answers maps question ID to the submitted option values.
type Answers map[string][]string

// Result is the grade for one question.
type Result struct {
	QuestionID string
	Number     int
	Correct    bool
	Submitted  []string
	AnswerText string // canonical answer, shown when wrong
}

// Band is the message shown for a score range.
type Band struct {
	Emoji   string
	Message string
}

// Report is the full grade.
type Report struct {
	Results []Result
	Score   int
	Total   int
	Percent int
	Band    Band
}

var bands = []struct {
	min int
	Band
}{
	{90, Band{"🌟", "Outstanding! You're an asthma expert!"}},
	{80, Band{"🎉", "Great job! You really understand asthma!"}},
	{70, Band{"👍", "Good work! You've learned a lot!"}},
	{60, Band{"📚", "Not bad! Review the material to improve!"}},
	{0, Band{"💪", "Keep learning! Try reviewing the sections again!"}},
}

// BandFor returns the band for a percentage.
func BandFor(percent int) Band {
	for _, b := range bands {
		if percent >= b.min {
			return b.Band
		}
	}
	return bands[len(bands)-1].Band
}

// Grade scores answers against questions. It has no side effects.
func Grade(questions []Question, answers Answers) Report {
	r := Report{Total: len(questions)}
	for i, q := range questions {
		submitted := answers[q.ID]
		ok := q.Key.Matches(submitted)
		if ok {
			r.Score++
		}
		r.Results = append(r.Results, Result{
			QuestionID: q.ID,
			Number:     i + 1,
			Correct:    ok,
			Submitted:  append([]string(nil), submitted...),
			AnswerText: q.Key.Text,
		})
	}
	// Bands compare the exact ratio; Percent is rounded for display.
	exact := 0
	if r.Total > 0 {
		exact = r.Score * 100 / r.Total
		r.Percent = int(math.Round(float64(r.Score) * 100 / float64(r.Total)))
	}
	r.Band = BandFor(exact)
	return r
}

// Session locks the quiz after one submission until Reset.
type Session struct {
	mu        sync.Mutex
	questions []Question
	report    *Report
}

// NewSession creates an open session.
func NewSession(questions []Question) *Session {
	return &Session{questions: questions}
}

// Questions returns the questions in order.
func (s *Session) Questions() []Question {
	return s.questions
}

// Submit grades answers once.
func (s *Session) Submit(answers Answers) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.report != nil {
		return *s.report, ErrAlreadySubmitted
	}
	r := Grade(s.questions, answers)
	s.report = &r
	return r, nil
}

// Report returns the graded report, if submitted.
func (s *Session) Report() (Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.report == nil {
		return Report{}, false
	}
	return *s.report, true
}

// Reset reopens the session for a retry.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = nil
}
