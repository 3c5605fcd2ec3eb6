package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	c, err := FromLookup(lookup(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.InDelta(t, 0.3, c.Solver().BetaBigram, 1e-12)
}

func TestOverrides(t *testing.T) {
	words := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(words, []byte("crane\n"), 0o644))

	c, err := FromLookup(lookup(map[string]string{
		"LOG_LEVEL":           "debug",
		"WORDS_FILE":          words,
		"SOLVER_BETA_BIGRAM":  "0",
		"SOLVER_BETA_TRIGRAM": "1.5",
		"GAME_SEED":           "7",
		"RESULTS_DB":          "runs.db",
		"BENCH_ROUNDS":        "150",
		"BENCH_WORKERS":       "2",
	}))
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, words, c.WordsFile)
	assert.Zero(t, c.BetaBigram)
	assert.InDelta(t, 1.5, c.BetaTrigram, 1e-12)
	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, "runs.db", c.ResultsDB)
	assert.Equal(t, 150, c.Rounds)
	assert.Equal(t, 2, c.Workers)
}

func TestParseErrors(t *testing.T) {
	for _, k := range []string{"SOLVER_BETA_BIGRAM", "SOLVER_BETA_TRIGRAM", "GAME_SEED", "BENCH_ROUNDS", "BENCH_WORKERS"} {
		_, err := FromLookup(lookup(map[string]string{k: "x"}))
		assert.ErrorContains(t, err, k)
	}
}

func TestValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"negative beta": {"SOLVER_BETA_BIGRAM": "-0.1"},
		"bad level":     {"LOG_LEVEL": "loud"},
		"zero rounds":   {"BENCH_ROUNDS": "0"},
		"missing words": {"WORDS_FILE": filepath.Join(t.TempDir(), "missing.txt")},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(lookup(env))
			assert.Error(t, err)
		})
	}
}
