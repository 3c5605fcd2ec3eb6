package solver

import (
	"math"

	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// Entropy is the Shannon entropy, in bits, of the feedback patterns guess
// would produce against each candidate. It is 0 for an empty set.
func Entropy(guess string, candidates []string) float64 {
	if len(candidates) == 0 {
		return 0
	}
	var buckets [feedback.NumCodes]int
	for _, target := range candidates {
		buckets[feedback.Compute(guess, target).Code()]++
	}

	total := float64(len(candidates))
	h := 0.0
	for _, n := range buckets {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		h -= p * math.Log2(p)
	}
	return h
}

// Score combines the entropy of word over candidates with its normalized
// n-gram frequencies. The n-gram terms are scaled by |candidates| / |corpus|
// so they fade as the search narrows.
func (m *Model) Score(word string, candidates []string, betaBigram, betaTrigram float64) float64 {
	bigram, trigram := m.NGramScore(word)
	factor := float64(len(candidates)) / float64(m.corpus.Len())
	return Entropy(word, candidates) +
		betaBigram*factor*bigram +
		betaTrigram*factor*trigram
}

// Best returns the highest scoring candidate and its score. Ties go to the
// earliest candidate. ok is false when candidates is empty.
func (m *Model) Best(candidates []string, betaBigram, betaTrigram float64) (word string, score float64, ok bool) {
	for _, w := range candidates {
		s := m.Score(w, candidates, betaBigram, betaTrigram)
		if !ok || s > score {
			word, score, ok = w, s, true
		}
	}
	return word, score, ok
}
