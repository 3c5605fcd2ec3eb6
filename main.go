// main.go
//
// Entry point for the wordle command.
// Responsibilities:
//   - Load configuration (.env + environment) before flags are declared, so
//     flag defaults show the effective configuration.
//   - Configure the global zerolog logger (console output on a terminal).
//   - Build the word corpus and solver model once for every subcommand.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by all subcommands.
type app struct {
	cfg   config.Config
	log   zerolog.Logger
	model *solver.Model
}

func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:          "wordle",
		Short:        "Entropy-based Wordle solver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.cfg.WordsFile, "words", cfg.WordsFile, "word list (.txt or .yaml); embedded list if empty")
	pf.Float64Var(&a.cfg.BetaBigram, "beta-bigram", cfg.BetaBigram, "bigram weight (0 disables)")
	pf.Float64Var(&a.cfg.BetaTrigram, "beta-trigram", cfg.BetaTrigram, "trigram weight (0 disables)")
	pf.Uint64Var(&a.cfg.Seed, "seed", cfg.Seed, "seed for target selection")
	pf.StringVar(&a.cfg.ResultsDB, "db", cfg.ResultsDB, "SQLite file for benchmark runs; runs are not kept if empty")

	root.AddCommand(
		newPlayCmd(a),
		newAssistCmd(a),
		newBenchCmd(a),
		newGridCmd(a),
		newRunsCmd(a),
	)
	return root
}

// setup validates the final configuration and builds the logger and model.
func (a *app) setup(logOut io.Writer) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = newLogger(a.cfg.LogLevel, logOut)
	log.Logger = a.log

	corpus, err := words.Load(a.cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	if a.model, err = solver.NewModel(corpus); err != nil {
		return err
	}
	a.log.Debug().
		Int("words", corpus.Len()).
		Str("first_guess", a.model.FirstGuess()).
		Msg("model ready")
	return nil
}

// openStore opens the results database, or an in-memory store when none is configured.
func (a *app) openStore() (store.Store, error) {
	if a.cfg.ResultsDB == "" {
		a.log.Warn().Msg("no results database configured (--db / RESULTS_DB); runs are not persisted")
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenSQLite(a.cfg.ResultsDB)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.cfg.ResultsDB, err)
	}
	return st, nil
}

// newLogger writes JSON logs, or human-readable ones when w is a terminal.
func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := w
	if isTerminal(w) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// progressOut returns where progress bars go: stderr when it is a terminal.
func progressOut(cmd *cobra.Command, quiet bool) io.Writer {
	if quiet || !isTerminal(cmd.ErrOrStderr()) {
		return nil
	}
	return cmd.ErrOrStderr()
}
