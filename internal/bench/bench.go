// internal/bench/bench.go
//
// Benchmark harness: the solver plays the game for many rounds.
//
// Responsibilities:
//   - PlayRound: one solver/game round, recording the guess sequence.
//   - PlayRounds: N rounds for one configuration, with progress and metrics.
//   - GridSearch: every (beta_bigram, beta_trigram) pair, run in parallel.
//   - Compare: fixed list of labeled configurations on the same targets.
//
// Every configuration gets its own Solver and Game; only the Model is shared.
// Targets come from a Picker seeded per configuration, so all configurations
// of one search face the same sequence of answers.

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
)

// DefaultBetas is the grid searched by default.
var DefaultBetas = []float64{0.0, 0.3, 0.6, 0.9, 1.2, 1.5}

// RoundResult is the outcome of one round.
type RoundResult struct {
	Target    string
	Guesses   int
	Won       bool
	Exhausted bool
	Sequence  []string
}

// Summary aggregates the rounds played with one configuration.
type Summary struct {
	Label        string
	Config       solver.Config
	Seed         uint64
	Rounds       int
	Wins         int
	TotalGuesses int
	Exhausted    int
	Elapsed      time.Duration
	Results      []RoundResult // only with Options.KeepRounds
}

// Accuracy is the fraction of rounds won.
func (s Summary) Accuracy() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// AvgGuesses is the mean number of guesses per round.
func (s Summary) AvgGuesses() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.TotalGuesses) / float64(s.Rounds)
}

// Run converts the summary into a storable run.
func (s Summary) Run() store.Run {
	r := store.Run{
		Label:        s.Label,
		BetaBigram:   s.Config.BetaBigram,
		BetaTrigram:  s.Config.BetaTrigram,
		Seed:         s.Seed,
		Rounds:       s.Rounds,
		Wins:         s.Wins,
		TotalGuesses: s.TotalGuesses,
		Exhausted:    s.Exhausted,
		Elapsed:      s.Elapsed,
	}
	for _, rr := range s.Results {
		r.Results = append(r.Results, store.Round{
			Target:    rr.Target,
			Guesses:   rr.Guesses,
			Won:       rr.Won,
			Exhausted: rr.Exhausted,
			Sequence:  rr.Sequence,
		})
	}
	return r
}

// Options control a benchmark run.
type Options struct {
	Rounds     int
	Seed       uint64
	Picker     func() game.Picker // overrides Seed when set; called once per configuration
	KeepRounds bool
	Progress   io.Writer // nil disables the progress bar
	Metrics    *Metrics  // may be nil
	Logger     zerolog.Logger
}

func (o Options) picker() game.Picker {
	if o.Picker != nil {
		return o.Picker()
	}
	return game.NewSeededPicker(o.Seed)
}

// PlayRound restarts s and plays the current round of g until the game ends
// or the solver runs out of candidates.
func PlayRound(s *solver.Solver, g *game.Game, m *Metrics) (RoundResult, error) {
	s.Restart()
	res := RoundResult{Target: g.Answer()}

	fb := ""
	for {
		start := time.Now()
		guess, err := s.NextGuess(fb)
		m.observeGuess(time.Since(start))
		if errors.Is(err, solver.ErrNoCandidates) {
			res.Exhausted = true
			m.observeRound(res)
			return res, nil
		}
		if err != nil {
			return res, err
		}

		r, err := g.CheckGuess(guess)
		if err != nil {
			return res, fmt.Errorf("bench: game rejected %q: %w", guess, err)
		}
		res.Guesses++
		res.Sequence = append(res.Sequence, guess)
		if r.Over {
			res.Won = r.Won
			m.observeRound(res)
			return res, nil
		}
		fb = r.Pattern.String()
	}
}

// PlayRounds benchmarks one configuration over opts.Rounds rounds.
func PlayRounds(ctx context.Context, model *solver.Model, label string, cfg solver.Config, opts Options) (Summary, error) {
	sum := Summary{Label: label, Config: cfg, Seed: opts.Seed}
	s, err := solver.New(model, cfg, solver.WithLogger(opts.Logger))
	if err != nil {
		return sum, err
	}
	g := game.New(model.Corpus(), opts.picker())

	bar := newBar(opts.Progress, opts.Rounds, label)
	defer bar.Finish()

	start := time.Now()
	for i := 0; i < opts.Rounds; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if i > 0 {
			g.Restart()
		}
		rr, err := PlayRound(s, g, opts.Metrics)
		if err != nil {
			return sum, fmt.Errorf("round %d (target %s): %w", i, rr.Target, err)
		}
		sum.Rounds++
		sum.TotalGuesses += rr.Guesses
		if rr.Won {
			sum.Wins++
		}
		if rr.Exhausted {
			sum.Exhausted++
			opts.Logger.Warn().Str("target", rr.Target).Strs("guesses", rr.Sequence).Msg("solver ran out of candidates")
		}
		if opts.KeepRounds {
			sum.Results = append(sum.Results, rr)
		}
		_ = bar.Add(1)
	}
	sum.Elapsed = time.Since(start)

	opts.Logger.Debug().
		Str("label", label).
		Float64("accuracy", sum.Accuracy()).
		Float64("avg_guesses", sum.AvgGuesses()).
		Dur("elapsed", sum.Elapsed).
		Msg("configuration done")
	return sum, nil
}

// GridSearch benchmarks every (bigram, trigram) pair from betas, at most
// workers at a time, and returns the summaries sorted by accuracy desc,
// average guesses asc, time asc.
func GridSearch(ctx context.Context, model *solver.Model, betas []float64, workers int, opts Options) ([]Summary, error) {
	var configs []solver.Config
	for _, bb := range betas {
		for _, bt := range betas {
			configs = append(configs, solver.Config{BetaBigram: bb, BetaTrigram: bt})
		}
	}

	bar := newBar(opts.Progress, len(configs), "grid")
	defer bar.Finish()

	inner := opts
	inner.Progress = nil

	out := make([]Summary, len(configs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i, cfg := range configs {
		eg.Go(func() error {
			sum, err := PlayRounds(ctx, model, ConfigLabel(cfg), cfg, inner)
			if err != nil {
				return err
			}
			out[i] = sum
			_ = bar.Add(1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	Rank(out)
	return out, nil
}

// Labeled is a named solver configuration.
type Labeled struct {
	Label  string
	Config solver.Config
}

// Compare benchmarks each configuration in order.
func Compare(ctx context.Context, model *solver.Model, configs []Labeled, opts Options) ([]Summary, error) {
	out := make([]Summary, 0, len(configs))
	for _, c := range configs {
		sum, err := PlayRounds(ctx, model, c.Label, c.Config, opts)
		if err != nil {
			return out, err
		}
		out = append(out, sum)
	}
	return out, nil
}

// ImportanceConfigs returns the configurations used to judge the n-gram terms:
// entropy only, the configured weights, and best.
func ImportanceConfigs(configured, best solver.Config) []Labeled {
	return []Labeled{
		{Label: "Entropy only", Config: solver.Config{}},
		{Label: "Configured " + pair(configured), Config: configured},
		{Label: "Best tuned " + pair(best), Config: best},
	}
}

// Rank sorts summaries by accuracy desc, average guesses asc, time asc.
func Rank(sums []Summary) {
	sort.SliceStable(sums, func(i, j int) bool {
		a, b := sums[i], sums[j]
		if a.Accuracy() != b.Accuracy() {
			return a.Accuracy() > b.Accuracy()
		}
		if a.AvgGuesses() != b.AvgGuesses() {
			return a.AvgGuesses() < b.AvgGuesses()
		}
		return a.Elapsed < b.Elapsed
	})
}

// ConfigLabel names a configuration by its weights.
func ConfigLabel(c solver.Config) string {
	return "betas " + pair(c)
}

func pair(c solver.Config) string {
	return fmt.Sprintf("(%.2f, %.2f)", c.BetaBigram, c.BetaTrigram)
}

func newBar(w io.Writer, n int, desc string) *progressbar.ProgressBar {
	if w == nil {
		return progressbar.DefaultSilent(int64(n), desc)
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
}
