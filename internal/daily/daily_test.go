package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/words"
)

func corpus(t *testing.T) *words.Corpus {
	t.Helper()
	c, err := words.Default()
	require.NoError(t, err)
	return c
}

func TestKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", Key(d))
}

func TestWordStableWithinDay(t *testing.T) {
	c := corpus(t)
	morning := time.Date(2026, 10, 16, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)

	w := Word(c, "salt", morning)
	assert.True(t, c.Contains(w))
	assert.Equal(t, w, Word(c, "salt", evening))
}

func TestWordDependsOnSaltAndDate(t *testing.T) {
	c := corpus(t)
	day := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	// over a month, a different salt or a different day must change the pick at least once
	saltDiffers, dayDiffers := false, false
	for i := 0; i < 30; i++ {
		d := day.AddDate(0, 0, i)
		if Word(c, "a", d) != Word(c, "b", d) {
			saltDiffers = true
		}
		if Word(c, "a", d) != Word(c, "a", d.AddDate(0, 0, 1)) {
			dayDiffers = true
		}
	}
	assert.True(t, saltDiffers)
	assert.True(t, dayDiffers)
}

func TestSingleWordCorpus(t *testing.T) {
	c, err := words.New([]string{"crane"})
	require.NoError(t, err)
	assert.Equal(t, "crane", Word(c, "any", time.Now()))
}

func TestPicker(t *testing.T) {
	c := corpus(t)
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	p := Picker{Salt: "s", Now: func() time.Time { return day }}
	assert.Equal(t, Word(c, "s", day), p.Pick(c))
	assert.Equal(t, p.Pick(c), p.Pick(c))
}
