package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/cellquest/internal/content"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Browse the lesson topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics (optionally filtered by kind)",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		kinds := content.AllKinds()
		if kind != "" {
			if !slices.Contains(kinds, content.Kind(kind)) {
				return fmt.Errorf("unknown kind %q", kind)
			}
			kinds = []content.Kind{content.Kind(kind)}
		}

		doc, err := openDocument(cmd)
		if err != nil {
			return err
		}
		defer doc.Close()

		out := cmd.OutOrStdout()
		title := cases.Title(language.English)
		n := 0
		for _, k := range kinds {
			topics := doc.Registry().Topics(k)
			if len(topics) == 0 {
				continue
			}
			fmt.Fprintf(out, "%s\n", title.String(strings.ReplaceAll(string(k), "-", " ")))
			fmt.Fprintln(out, strings.Repeat("─", 60))
			for _, t := range topics {
				fmt.Fprintf(out, "  %-22s  %s\n", t.Key.Name, t.Heading())
				n++
			}
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "%d topics\n", n)
		return nil
	},
}

func init() {
	topicsListCmd.Flags().String("kind", "", "Filter by kind (section, organelle, zoom, lung-part, trigger)")

	topicsCmd.AddCommand(topicsListCmd)
}
