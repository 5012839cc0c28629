package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/skills"
	"github.com/abhisek/mathdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics of recorded answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sum, err := st.AttemptRepo().Summary(cmd.Context())
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), sum)
		return nil
	},
}

func printSummary(w io.Writer, sum store.Summary) {
	if sum.Attempts == 0 {
		fmt.Fprintln(w, "No answers recorded yet.")
		return
	}
	fmt.Fprintf(w, "Answers:        %d\n", sum.Attempts)
	fmt.Fprintf(w, "Sessions:       %d\n", sum.Sessions)
	fmt.Fprintf(w, "Exactly right:  %d\n", sum.Perfect)
	fmt.Fprintf(w, "Mean score:     %.0f%%\n", sum.MeanScore*100)

	fmt.Fprintln(w, "\nMistakes by dimension:")
	for _, d := range diagnosis.AllDimensions() {
		fmt.Fprintf(w, "  %-10s %d\n", d, sum.Misses[d])
	}

	fmt.Fprintln(w, "\nMean score by skill:")
	for _, tag := range skills.AllTags() {
		ss, ok := sum.BySkill[tag]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-12s %3.0f%%  (%d answers)\n", tag, ss.MeanScore*100, ss.Attempts)
	}
}
