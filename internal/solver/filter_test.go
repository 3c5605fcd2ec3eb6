package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func TestFilterNarrowsToConsistentWords(t *testing.T) {
	var c Constraints
	update(t, &c, "trace", "brace")

	in := []string{"crane", "slate", "trace", "brace"}
	out := Filter(in, &c, []string{"trace"})
	assert.Equal(t, []string{"brace"}, out)
	assert.Equal(t, []string{"crane", "slate", "trace", "brace"}, in, "input untouched")
}

func TestFilterDropsTried(t *testing.T) {
	var c Constraints
	out := Filter([]string{"crane", "slate", "trace"}, &c, []string{"slate"})
	assert.Equal(t, []string{"crane", "trace"}, out)
}

func TestFilterKeepsOrder(t *testing.T) {
	var c Constraints
	p, err := feedback.Parse("-++++")
	require.NoError(t, err)
	c.Update(p, "crane")

	out := Filter([]string{"cloth", "touch", "civic", "bench", "lucky"}, &c, nil)
	assert.Equal(t, []string{"touch", "civic", "lucky"}, out)
}

func TestFilterMonotoneAndIdempotent(t *testing.T) {
	corpus, err := words.Default()
	require.NoError(t, err)
	all := corpus.Words()

	for _, tc := range []struct{ guess, target string }{
		{"crane", "sweet"},
		{"eater", "sweet"},
		{"slate", "those"},
		{"geese", "those"},
		{"about", "youth"},
	} {
		var c Constraints
		update(t, &c, tc.guess, tc.target)
		tried := []string{tc.guess}

		once := Filter(all, &c, tried)
		twice := Filter(once, &c, tried)
		assert.LessOrEqual(t, len(once), len(all))
		assert.Equal(t, once, twice)
		if tc.target != tc.guess && corpus.Contains(tc.target) {
			assert.Contains(t, once, tc.target)
		}
	}
}
