// internal/feedback/feedback.go
//
// Feedback patterns for five-letter guesses.
//
// A Pattern holds one symbol per guess position:
//   - the guessed letter itself: exact match (green)
//   - '-': letter is in the target at another position (yellow)
//   - '+': letter is absent, or all its occurrences are already accounted for (gray)
//
// The string form of a solved pattern is therefore the guessed word.
// Compute implements the two-pass scoring used by both the game and the solver.

package feedback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// Symbols for non-exact positions.
const (
	Present byte = '-'
	Absent  byte = '+'
)

// NumCodes is the number of distinct pattern classes for a fixed guess (3^5).
const NumCodes = 243

var (
	ErrLength   = errors.New("feedback: pattern must have 5 symbols")
	ErrSymbol   = errors.New("feedback: invalid symbol")
	ErrMismatch = errors.New("feedback: exact symbol does not match guess")
)

// Mark is the evaluation of a single tile.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Pattern is the feedback for one guess.
type Pattern [words.Length]byte

// Compute scores guess against target.
//
// Pass 1 marks exact matches and counts the target letters they did not consume.
// Pass 2 marks a non-exact guess letter present while unconsumed copies remain,
// absent otherwise. Both words must be valid five-letter lowercase words.
func Compute(guess, target string) Pattern {
	var p Pattern
	var counts [26]int

	for i := 0; i < words.Length; i++ {
		if guess[i] == target[i] {
			p[i] = guess[i]
		} else {
			counts[target[i]-'a']++
		}
	}

	for i := 0; i < words.Length; i++ {
		if p[i] != 0 {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			p[i] = Present
			counts[j]--
		} else {
			p[i] = Absent
		}
	}
	return p
}

// Parse reads a pattern from its string form. It checks shape and symbols only;
// use Validate to check exact symbols against the guess.
func Parse(s string) (Pattern, error) {
	var p Pattern
	if len(s) != words.Length {
		return p, fmt.Errorf("%w: got %d", ErrLength, len(s))
	}
	for i := 0; i < words.Length; i++ {
		c := s[i]
		if c != Present && c != Absent && (c < 'a' || c > 'z') {
			return p, fmt.Errorf("%w: %q at position %d", ErrSymbol, c, i)
		}
		p[i] = c
	}
	return p, nil
}

// Validate checks that every exact symbol repeats the guessed letter at its position.
func (p Pattern) Validate(guess string) error {
	if len(guess) != words.Length {
		return fmt.Errorf("%w: guess %q", ErrLength, guess)
	}
	for i, c := range p {
		switch {
		case c == Present || c == Absent:
		case c >= 'a' && c <= 'z':
			if c != guess[i] {
				return fmt.Errorf("%w: %q at position %d, guess has %q", ErrMismatch, c, i, guess[i])
			}
		default:
			return fmt.Errorf("%w: %q at position %d", ErrSymbol, c, i)
		}
	}
	return nil
}

// Exact reports whether position i is an exact match.
func (p Pattern) Exact(i int) bool { return p[i] != Present && p[i] != Absent }

// Solved reports whether every position is an exact match.
func (p Pattern) Solved() bool {
	for i := range p {
		if !p.Exact(i) {
			return false
		}
	}
	return true
}

// Code maps the pattern to a base-3 class index in [0, NumCodes):
// absent=0, present=1, exact=2, first position most significant.
// For a fixed guess, distinct patterns have distinct codes.
func (p Pattern) Code() int {
	code := 0
	for _, c := range p {
		d := 2
		switch c {
		case Absent:
			d = 0
		case Present:
			d = 1
		}
		code = code*3 + d
	}
	return code
}

// Marks converts the pattern to per-tile marks.
func (p Pattern) Marks() []Mark {
	out := make([]Mark, len(p))
	for i, c := range p {
		switch c {
		case Present:
			out[i] = MarkPresent
		case Absent:
			out[i] = MarkMiss
		default:
			out[i] = MarkHit
		}
	}
	return out
}

func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, c := range p {
		b.WriteByte(c)
	}
	return b.String()
}
