package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cellquest/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the final quiz in plain text",
	Long:  "Prints each question and reads the answer letters from stdin, e.g. \"b\" or \"a c\" for multi-select questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(cmd)
		if err != nil {
			return err
		}
		defer doc.Close()

		out := cmd.OutOrStdout()
		answers := askQuiz(bufio.NewScanner(cmd.InOrStdin()), out, doc.QuizQuestions())

		report, err := doc.SubmitQuizAnswers(answers)
		if err != nil {
			return fmt.Errorf("grade quiz: %w", err)
		}
		printQuizReport(out, report)
		return nil
	},
}

func askQuiz(in *bufio.Scanner, out io.Writer, questions []quiz.Question) quiz.Answers {
	answers := make(quiz.Answers, len(questions))
	for i, q := range questions {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Prompt)
		if q.Multi {
			fmt.Fprintln(out, "   (choose all that apply)")
		}
		for j, o := range q.Options {
			fmt.Fprintf(out, "   %c) %s\n", 'a'+j, o.Text)
		}
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			break
		}
		answers[q.ID] = parseChoices(in.Text(), q)
	}
	fmt.Fprintln(out)
	return answers
}

// parseChoices maps answer letters to option values. Unknown letters are
// ignored and only the first letter counts for single-answer questions.
func parseChoices(line string, q quiz.Question) []string {
	var values []string
	seen := make(map[string]bool)
	for _, r := range strings.ToLower(line) {
		idx := int(r - 'a')
		if idx < 0 || idx >= len(q.Options) {
			continue
		}
		v := q.Options[idx].Value
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
		if !q.Multi {
			break
		}
	}
	return values
}

func printQuizReport(out io.Writer, r quiz.Report) {
	for _, res := range r.Results {
		if res.Correct {
			fmt.Fprintf(out, "  %2d. ✓ Correct!\n", res.Number)
		} else {
			fmt.Fprintf(out, "  %2d. ✗ Correct answer: %s\n", res.Number, res.AnswerText)
		}
	}
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintf(out, "%s  %d / %d  (%d%%)\n%s\n", r.Band.Emoji, r.Score, r.Total, r.Percent, r.Band.Message)
}
