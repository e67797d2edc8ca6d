package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cellquest/internal/config"
	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/quiz"
)

func TestParseChoices(t *testing.T) {
	single := quiz.Question{QuizQuestion: content.QuizQuestion{
		Options: []content.QuizOption{{Value: "x", Text: "X"}, {Value: "y", Text: "Y"}, {Value: "z", Text: "Z"}},
	}}
	multi := single
	multi.Multi = true

	tests := []struct {
		name string
		line string
		q    quiz.Question
		want []string
	}{
		{"single letter", "b", single, []string{"y"}},
		{"single keeps first", "cb", single, []string{"z"}},
		{"upper case", "A", single, []string{"x"}},
		{"multi separated", "a, c", multi, []string{"x", "z"}},
		{"multi dedup", "aa", multi, []string{"x"}},
		{"out of range", "q", multi, nil},
		{"empty", "", single, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChoices(tt.line, tt.q))
		})
	}
}

func TestAskQuiz_StopsAtEOF(t *testing.T) {
	doc, err := newDocument(config.DefaultConfig())
	require.NoError(t, err)
	defer doc.Close()
	qs := doc.QuizQuestions()
	require.Greater(t, len(qs), 2)

	var out bytes.Buffer
	answers := askQuiz(bufio.NewScanner(strings.NewReader("a\nb\n")), &out, qs)
	assert.Len(t, answers, 2)
	assert.Contains(t, out.String(), "1. "+qs[0].Prompt)
	assert.Contains(t, out.String(), "a) "+qs[0].Options[0].Text)
}

func TestPrintQuizReport(t *testing.T) {
	r := quiz.Report{
		Results: []quiz.Result{
			{Number: 1, Correct: true},
			{Number: 2, Correct: false, AnswerText: "Mitochondria"},
		},
		Score: 1, Total: 2, Percent: 50, Band: quiz.BandFor(50),
	}
	var out bytes.Buffer
	printQuizReport(&out, r)
	assert.Contains(t, out.String(), "✓ Correct!")
	assert.Contains(t, out.String(), "✗ Correct answer: Mitochondria")
	assert.Contains(t, out.String(), "1 / 2  (50%)")
}

func TestPlayScenarios_AllCorrect(t *testing.T) {
	doc, err := newDocument(config.DefaultConfig())
	require.NoError(t, err)
	defer doc.Close()

	var input strings.Builder
	for _, s := range doc.Registry().Scenarios() {
		if s.IsTrigger {
			input.WriteString("maybe\ny\n")
		} else {
			input.WriteString("n\n")
		}
	}

	var out bytes.Buffer
	require.NoError(t, playScenarios(bufio.NewScanner(strings.NewReader(input.String())), &out, doc))
	n := len(doc.Registry().Scenarios())
	assert.Contains(t, out.String(), "(100%)")
	assert.Equal(t, n, strings.Count(out.String(), "✓ "))
	assert.Equal(t, 100, doc.ScenarioFinal().Percent)
}

func TestPlayScenarios_EOFStopsEarly(t *testing.T) {
	doc, err := newDocument(config.DefaultConfig())
	require.NoError(t, err)
	defer doc.Close()

	var out bytes.Buffer
	require.NoError(t, playScenarios(bufio.NewScanner(strings.NewReader("y\n")), &out, doc))
	idx, _, _ := doc.ScenarioProgress()
	assert.Equal(t, 1, idx)
	assert.NotContains(t, out.String(), "You got")
}

func TestTopicsList(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"topics", "list", "--kind", "organelle"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Organelle")
	assert.Contains(t, out.String(), "nucleus")
	assert.Contains(t, out.String(), "topics")
}

func TestTopicsList_UnknownKind(t *testing.T) {
	rootCmd.SetArgs([]string{"topics", "list", "--kind", "planet"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	assert.Error(t, rootCmd.Execute())
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "cellquest (devel)\n", out.String())
}
