package game

import (
	"math/rand/v2"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// Picker chooses the hidden answer for a round.
type Picker interface {
	Pick(c *words.Corpus) string
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(c *words.Corpus) string

func (f PickerFunc) Pick(c *words.Corpus) string { return f(c) }

// SeededPicker picks uniformly at random from an explicitly seeded source,
// so a benchmark run is reproducible from its seed.
type SeededPicker struct {
	r *rand.Rand
}

// NewSeededPicker returns a picker driven by a PCG source seeded with seed.
func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *SeededPicker) Pick(c *words.Corpus) string {
	return c.At(p.r.IntN(c.Len()))
}

// Fixed always picks word. Useful for tests and replaying a specific target.
type Fixed string

func (f Fixed) Pick(*words.Corpus) string { return string(f) }

// Sequence walks the corpus in order, wrapping around. It is used to
// benchmark against every word exactly once.
type Sequence struct {
	next int
}

func (s *Sequence) Pick(c *words.Corpus) string {
	w := c.At(s.next % c.Len())
	s.next++
	return w
}
