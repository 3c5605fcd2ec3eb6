package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/words"
)

func corpus(t *testing.T) *words.Corpus {
	t.Helper()
	c, err := words.New([]string{"crane", "slate", "trace", "brace", "about", "youth", "sweet"})
	require.NoError(t, err)
	return c
}

func TestWinningGuess(t *testing.T) {
	g := New(corpus(t), Fixed("brace"))

	res, err := g.CheckGuess("trace")
	require.NoError(t, err)
	assert.Equal(t, "+race", res.Pattern.String())
	assert.False(t, res.Over)
	assert.Equal(t, "playing", g.State())

	res, err = g.CheckGuess(" BRACE ")
	require.NoError(t, err)
	assert.True(t, res.Over)
	assert.True(t, res.Won)
	assert.True(t, res.Pattern.Solved())
	assert.Equal(t, "brace", res.Pattern.String())
	assert.Equal(t, "won", g.State())

	_, err = g.CheckGuess("crane")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestInvalidGuessesDoNotCount(t *testing.T) {
	g := New(corpus(t), Fixed("brace"))

	_, err := g.CheckGuess("cr4ne")
	assert.ErrorIs(t, err, ErrNotAlpha)
	_, err = g.CheckGuess("cran")
	assert.ErrorIs(t, err, ErrLength)

	_, err = g.CheckGuess("crane")
	require.NoError(t, err)
	_, err = g.CheckGuess("crane")
	assert.ErrorIs(t, err, ErrAlreadyTried)

	assert.Equal(t, []string{"crane"}, g.Guesses())
}

func TestLossAfterMaxAttempts(t *testing.T) {
	g := New(corpus(t), Fixed("brace"))
	tries := []string{"aaaaa", "bbbbb", "ccccc", "ddddd", "eeeee", "fffff"}
	require.Len(t, tries, MaxAttempts)

	for i, w := range tries {
		res, err := g.CheckGuess(w)
		require.NoError(t, err)
		assert.Equal(t, i == MaxAttempts-1, res.Over, w)
		assert.False(t, res.Won)
	}
	assert.Equal(t, "lost", g.State())
	assert.Equal(t, "brace", g.Answer())
}

func TestRestart(t *testing.T) {
	g := New(corpus(t), &Sequence{})
	assert.Equal(t, "crane", g.Answer())
	_, err := g.CheckGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, "won", g.State())

	g.Restart()
	assert.Equal(t, "slate", g.Answer())
	assert.Equal(t, "playing", g.State())
	assert.Empty(t, g.Guesses())
}

func TestSeededPickerReproducible(t *testing.T) {
	c := corpus(t)
	a, b := NewSeededPicker(42), NewSeededPicker(42)
	for range 20 {
		assert.Equal(t, a.Pick(c), b.Pick(c))
	}
}

func TestSequenceWraps(t *testing.T) {
	c := corpus(t)
	s := &Sequence{}
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, c.At(i), s.Pick(c))
	}
	assert.Equal(t, c.At(0), s.Pick(c))
}

func TestPickerFunc(t *testing.T) {
	p := PickerFunc(func(c *words.Corpus) string { return c.At(c.Len() - 1) })
	assert.Equal(t, "sweet", p.Pick(corpus(t)))
}
