package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/store"
)

func newRunsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored benchmark runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}
			return writeRuns(cmd.OutOrStdout(), runs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "newest runs to list")

	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Show one run with its rounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.GetRun(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}
			return writeRun(cmd.OutOrStdout(), run)
		},
	})
	return cmd
}

func writeRuns(w io.Writer, runs []store.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tLABEL\tROUNDS\tACCURACY\tAVG GUESSES")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f%%\t%.3f\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Label, r.Rounds, r.Accuracy()*100, r.AvgGuesses())
	}
	return tw.Flush()
}

func writeRun(w io.Writer, r *store.Run) error {
	fmt.Fprintf(w, "Run %s (%s)\n", r.ID, r.Label)
	fmt.Fprintf(w, "betas (%.2f, %.2f), seed %d, %s\n", r.BetaBigram, r.BetaTrigram, r.Seed, r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "%d/%d won (%.2f%%), %.3f guesses on average, %d exhausted\n",
		r.Wins, r.Rounds, r.Accuracy()*100, r.AvgGuesses(), r.Exhausted)
	if len(r.Results) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tRESULT\tGUESSES")
	for _, rd := range r.Results {
		result := "lost"
		switch {
		case rd.Won:
			result = "won"
		case rd.Exhausted:
			result = "exhausted"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rd.Target, result, strings.Join(rd.Sequence, " "))
	}
	return tw.Flush()
}
