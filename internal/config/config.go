// internal/config/config.go
//
// Process configuration from the environment.
//
// A .env file in the working directory is loaded first (development); real
// environment variables win over it. Command-line flags override the result.
//
// Environment variables:
//   LOG_LEVEL=info                zerolog level
//   WORDS_FILE=/path/words.txt    corpus file (.txt or .yaml); embedded list if unset
//   SOLVER_BETA_BIGRAM=0.3        bigram weight (0 disables)
//   SOLVER_BETA_TRIGRAM=0.3       trigram weight (0 disables)
//   GAME_SEED=42                  seed for target selection
//   DAILY_SALT=local_dev_salt     salt for the word of the day
//   RESULTS_DB=./data/runs.db     SQLite file for benchmark runs; in-memory if unset
//   BENCH_ROUNDS=500              rounds per benchmark configuration
//   BENCH_WORKERS=4               configurations benchmarked in parallel

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Config holds all tunables.
type Config struct {
	LogLevel    string  `validate:"oneof=trace debug info warn error fatal panic disabled"`
	WordsFile   string  `validate:"omitempty,file"`
	BetaBigram  float64 `validate:"gte=0"`
	BetaTrigram float64 `validate:"gte=0"`
	Seed        uint64
	DailySalt   string `validate:"required"`
	ResultsDB   string
	Rounds      int `validate:"gte=1"`
	Workers     int `validate:"gte=1,lte=256"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:    "info",
		BetaBigram:  solver.DefaultBeta,
		BetaTrigram: solver.DefaultBeta,
		Seed:        42,
		DailySalt:   "local_dev_salt",
		Rounds:      500,
		Workers:     4,
	}
}

// Load reads .env (if present) and the environment over the defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup for each variable.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	get := func(k string) (string, bool) {
		v, ok := lookup(k)
		return v, ok && v != ""
	}

	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("WORDS_FILE"); ok {
		c.WordsFile = v
	}
	if v, ok := get("DAILY_SALT"); ok {
		c.DailySalt = v
	}
	if v, ok := get("RESULTS_DB"); ok {
		c.ResultsDB = v
	}

	var err error
	if v, ok := get("SOLVER_BETA_BIGRAM"); ok {
		if c.BetaBigram, err = strconv.ParseFloat(v, 64); err != nil {
			return c, fmt.Errorf("config: SOLVER_BETA_BIGRAM: %w", err)
		}
	}
	if v, ok := get("SOLVER_BETA_TRIGRAM"); ok {
		if c.BetaTrigram, err = strconv.ParseFloat(v, 64); err != nil {
			return c, fmt.Errorf("config: SOLVER_BETA_TRIGRAM: %w", err)
		}
	}
	if v, ok := get("GAME_SEED"); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return c, fmt.Errorf("config: GAME_SEED: %w", err)
		}
	}
	if v, ok := get("BENCH_ROUNDS"); ok {
		if c.Rounds, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("config: BENCH_ROUNDS: %w", err)
		}
	}
	if v, ok := get("BENCH_WORKERS"); ok {
		if c.Workers, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("config: BENCH_WORKERS: %w", err)
		}
	}
	return c, c.Validate()
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Solver returns the solver weights.
func (c Config) Solver() solver.Config {
	return solver.Config{BetaBigram: c.BetaBigram, BetaTrigram: c.BetaTrigram}
}
