package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Play \"trigger or not?\" in plain text",
	Long:  "Prints each situation and reads y (trigger) or n (safe) from stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(cmd)
		if err != nil {
			return err
		}
		defer doc.Close()

		return playScenarios(bufio.NewScanner(cmd.InOrStdin()), cmd.OutOrStdout(), doc)
	},
}

func playScenarios(in *bufio.Scanner, out io.Writer, doc *lesson.Document) error {
	for {
		s, err := doc.CurrentScenario()
		if errors.Is(err, scenario.ErrDeckExhausted) {
			break
		}
		if err != nil {
			return err
		}
		idx, total, _ := doc.ScenarioProgress()
		fmt.Fprintf(out, "\n[%d/%d] %s\n", idx+1, total, s.Situation)

		isTrigger, ok := askTrigger(in, out)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		r, err := doc.SubmitJudgement(isTrigger)
		if err != nil {
			return fmt.Errorf("judge scenario: %w", err)
		}
		mark := "✗"
		if r.Correct {
			mark = "✓"
		}
		fmt.Fprintf(out, "%s %s\n", mark, r.Feedback)
		if r.Tier != content.SeverityNone {
			fmt.Fprintf(out, "  Airway reaction: %s\n", strings.ToUpper(string(r.Tier)))
		}
		if _, err := doc.NextScenario(); err != nil && !errors.Is(err, scenario.ErrDeckExhausted) {
			return err
		}
	}

	f := doc.ScenarioFinal()
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintf(out, "%s %s\nYou got %d of %d right (%d%%)\n", f.Badge, f.Message, f.Score, f.Total, f.Percent)
	return nil
}

// askTrigger reads until it gets a yes or no. ok is false at end of input.
func askTrigger(in *bufio.Scanner, out io.Writer) (isTrigger, ok bool) {
	for {
		fmt.Fprint(out, "Trigger? [y/n] > ")
		if !in.Scan() {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "y", "yes", "t", "trigger":
			return true, true
		case "n", "no", "s", "safe":
			return false, true
		}
	}
}
