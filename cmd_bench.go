package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/bench"
)

// reportFlags are the output options shared by bench and grid.
type reportFlags struct {
	csvPath     string
	metricsPath string
	quiet       bool
	metrics     *bench.Metrics
}

func (r *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.csvPath, "csv", "", "write summaries as CSV to this file")
	cmd.Flags().StringVar(&r.metricsPath, "metrics-file", "", "write Prometheus metrics in text format to this file")
	cmd.Flags().BoolVarP(&r.quiet, "quiet", "q", false, "no progress bar")
}

func (r *reportFlags) options(a *app, cmd *cobra.Command) bench.Options {
	if r.metricsPath != "" {
		r.metrics = bench.NewMetrics()
	}
	return bench.Options{
		Rounds:   a.cfg.Rounds,
		Seed:     a.cfg.Seed,
		Progress: progressOut(cmd, r.quiet),
		Metrics:  r.metrics,
		Logger:   a.log,
	}
}

// finish writes the optional CSV and metrics files and records sums.
func (r *reportFlags) finish(ctx context.Context, a *app, sums []bench.Summary) error {
	if r.csvPath != "" {
		if err := writeFile(r.csvPath, func(w io.Writer) error { return bench.WriteCSV(w, sums) }); err != nil {
			return err
		}
	}
	if r.metrics != nil {
		if err := r.metrics.WriteTextfile(r.metricsPath); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return a.saveRuns(ctx, sums)
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		rep        reportFlags
		printTable bool
		label      string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the solver on random targets",
		Long: `Lets the solver play --rounds rounds against targets drawn with --seed and
prints "accuracy%,avg_guesses,seconds". With --print a table is shown instead.

Examples:
  wordle bench --rounds 500
  wordle bench --beta-bigram 0 --beta-trigram 0 --print
  wordle bench --db ./data/runs.db --metrics-file bench.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := rep.options(a, cmd)
			opts.KeepRounds = a.cfg.ResultsDB != ""

			cfg := a.cfg.Solver()
			if label == "" {
				label = bench.ConfigLabel(cfg)
			}
			sum, err := bench.PlayRounds(ctx, a.model, label, cfg, opts)
			if err != nil {
				return err
			}
			if printTable {
				if err := bench.WriteTable(cmd.OutOrStdout(), []bench.Summary{sum}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), bench.CSVLine(sum))
			}
			return rep.finish(ctx, a, []bench.Summary{sum})
		},
	}
	cmd.Flags().IntVar(&a.cfg.Rounds, "rounds", a.cfg.Rounds, "rounds to play")
	cmd.Flags().BoolVar(&printTable, "print", false, "print a table instead of a CSV line")
	cmd.Flags().StringVar(&label, "label", "", "name stored with the run")
	rep.register(cmd)
	return cmd
}

func newGridCmd(a *app) *cobra.Command {
	var (
		rep        reportFlags
		betas      []float64
		tuneRounds int
		evalRounds int
		top        int
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Search n-gram weights, then compare the best against entropy alone",
		Long: `Benchmarks every (beta-bigram, beta-trigram) pair from --betas for --rounds rounds,
--workers at a time, and prints the best --top configurations. The best one is
then compared with entropy only and with the configured weights over
--eval-rounds rounds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(betas) == 0 {
				return errors.New("--betas: need at least one weight")
			}
			if tuneRounds < 1 || evalRounds < 1 {
				return errors.New("--rounds and --eval-rounds must be at least 1")
			}
			if top < 1 {
				return errors.New("--top must be at least 1")
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			opts := rep.options(a, cmd)
			opts.Rounds = tuneRounds

			grid, err := bench.GridSearch(ctx, a.model, betas, a.cfg.Workers, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Top configurations over %d rounds:\n", tuneRounds)
			if err := bench.WriteTable(out, grid[:min(top, len(grid))]); err != nil {
				return err
			}

			opts.Rounds = evalRounds
			opts.KeepRounds = a.cfg.ResultsDB != ""
			cmp, err := bench.Compare(ctx, a.model, bench.ImportanceConfigs(a.cfg.Solver(), grid[0].Config), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nN-gram importance over %d rounds:\n", evalRounds)
			if err := bench.WriteTable(out, cmp); err != nil {
				return err
			}
			return rep.finish(ctx, a, append(grid, cmp...))
		},
	}
	cmd.Flags().Float64SliceVar(&betas, "betas", bench.DefaultBetas, "weights tried for both n-gram terms")
	cmd.Flags().IntVar(&tuneRounds, "rounds", 150, "rounds per grid configuration")
	cmd.Flags().IntVar(&evalRounds, "eval-rounds", a.cfg.Rounds, "rounds per compared configuration")
	cmd.Flags().IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "configurations run in parallel")
	cmd.Flags().IntVar(&top, "top", 10, "grid configurations to print")
	rep.register(cmd)
	return cmd
}

// saveRuns records sums in the results store. Per-round details are kept only
// when they were collected.
func (a *app) saveRuns(ctx context.Context, sums []bench.Summary) error {
	if a.cfg.ResultsDB == "" {
		return nil
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	for _, s := range sums {
		run := s.Run()
		if err := st.SaveRun(ctx, &run); err != nil {
			return fmt.Errorf("save run %q: %w", s.Label, err)
		}
		a.log.Info().Str("id", run.ID).Str("label", run.Label).Msg("run saved")
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
