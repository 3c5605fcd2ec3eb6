// internal/solver/model.go
//
// Frequency models built once from the corpus:
//   - letter frequency: occurrences / total letters (repeats counted)
//   - bigram and trigram counts over overlapping substrings
//   - per-n normalization maxima (largest per-word n-gram sum in the corpus)
//   - the fixed opening guess
//
// A Model is immutable after NewModel and may be shared by any number of
// Solvers, including Solvers running on different goroutines.

package solver

import (
	"errors"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// ErrEmptyCorpus is returned when a model is built without words.
var ErrEmptyCorpus = errors.New("solver: corpus is empty")

const (
	alphabet    = 26
	bigramSize  = alphabet * alphabet
	trigramSize = alphabet * alphabet * alphabet
)

// Model holds the corpus and its precomputed statistics.
type Model struct {
	corpus *words.Corpus

	letterFreq [alphabet]float64
	bigrams    [bigramSize]int
	trigrams   [trigramSize]int
	maxBigram  int
	maxTrigram int

	firstGuess string
}

// NewModel computes all tables for c.
func NewModel(c *words.Corpus) (*Model, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	m := &Model{corpus: c}

	var letters [alphabet]int
	total := 0
	for i := 0; i < c.Len(); i++ {
		w := c.At(i)
		for j := 0; j < len(w); j++ {
			letters[w[j]-'a']++
			total++
		}
		for j := 0; j+2 <= len(w); j++ {
			m.bigrams[bigramIndex(w[j:])]++
		}
		for j := 0; j+3 <= len(w); j++ {
			m.trigrams[trigramIndex(w[j:])]++
		}
	}
	for l, n := range letters {
		m.letterFreq[l] = float64(n) / float64(total)
	}

	// maxima need the complete tables, hence a second pass
	for i := 0; i < c.Len(); i++ {
		b, t := m.rawNGrams(c.At(i))
		m.maxBigram = max(m.maxBigram, b)
		m.maxTrigram = max(m.maxTrigram, t)
	}

	best := -1.0
	for i := 0; i < c.Len(); i++ {
		w := c.At(i)
		if s := m.letterScore(w); s > best {
			best, m.firstGuess = s, w
		}
	}
	return m, nil
}

func bigramIndex(s string) int {
	return int(s[0]-'a')*alphabet + int(s[1]-'a')
}

func trigramIndex(s string) int {
	return (int(s[0]-'a')*alphabet+int(s[1]-'a'))*alphabet + int(s[2]-'a')
}

// rawNGrams sums the table counts of w's overlapping bigrams and trigrams.
func (m *Model) rawNGrams(w string) (bigram, trigram int) {
	for j := 0; j+2 <= len(w); j++ {
		bigram += m.bigrams[bigramIndex(w[j:])]
	}
	for j := 0; j+3 <= len(w); j++ {
		trigram += m.trigrams[trigramIndex(w[j:])]
	}
	return bigram, trigram
}

// letterScore sums the frequencies of the distinct letters of w.
func (m *Model) letterScore(w string) float64 {
	var seen [alphabet]bool
	s := 0.0
	for j := 0; j < len(w); j++ {
		l := w[j] - 'a'
		if seen[l] {
			continue
		}
		seen[l] = true
		s += m.letterFreq[l]
	}
	return s
}

// Corpus returns the corpus the model was built from.
func (m *Model) Corpus() *words.Corpus { return m.corpus }

// FirstGuess is the corpus word with the highest distinct-letter frequency sum,
// earliest in corpus order on ties.
func (m *Model) FirstGuess() string { return m.firstGuess }

// LetterFrequency returns the relative frequency of letter l (a–z).
func (m *Model) LetterFrequency(l byte) float64 {
	if l < 'a' || l > 'z' {
		return 0
	}
	return m.letterFreq[l-'a']
}

// Bigram returns the corpus count of a two-letter string.
func (m *Model) Bigram(s string) int {
	if len(s) != 2 || !words.IsAlpha(s) {
		return 0
	}
	return m.bigrams[bigramIndex(s)]
}

// Trigram returns the corpus count of a three-letter string.
func (m *Model) Trigram(s string) int {
	if len(s) != 3 || !words.IsAlpha(s) {
		return 0
	}
	return m.trigrams[trigramIndex(s)]
}

// MaxNGrams returns the bigram and trigram normalization maxima.
func (m *Model) MaxNGrams() (bigram, trigram int) { return m.maxBigram, m.maxTrigram }

// NGramScore returns w's bigram and trigram sums normalized to [0,1]
// by the corpus maxima. A zero maximum yields 0.
func (m *Model) NGramScore(w string) (bigram, trigram float64) {
	b, t := m.rawNGrams(w)
	if m.maxBigram > 0 {
		bigram = float64(b) / float64(m.maxBigram)
	}
	if m.maxTrigram > 0 {
		trigram = float64(t) / float64(m.maxTrigram)
	}
	return bigram, trigram
}
