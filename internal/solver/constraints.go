package solver

import (
	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Constraints accumulates what feedback has proven about the target during a round.
//
// Invariants:
//   - confirmed[i] is 0 when position i is unknown, otherwise the letter there.
//   - misplaced[l] is a bitmask of positions letter l is known not to occupy;
//     present[l] is set once l has been seen as misplaced.
//   - minCount[l] never decreases within a round.
//   - excluded[l] implies minCount[l] == 0.
//   - conflict is set once two different letters were confirmed at one
//     position; no word is allowed after that.
type Constraints struct {
	conflict  bool
	confirmed [words.Length]byte
	misplaced [alphabet]uint8
	present   [alphabet]bool
	excluded  [alphabet]bool
	minCount  [alphabet]int
}

// Reset clears all constraints for a new round.
func (c *Constraints) Reset() { *c = Constraints{} }

// Update folds the feedback p for guess into the constraints.
// p must already be validated against guess.
func (c *Constraints) Update(p feedback.Pattern, guess string) {
	var tally [alphabet]int
	for i := 0; i < words.Length; i++ {
		l := guess[i] - 'a'
		switch {
		case p[i] == feedback.Present:
			c.present[l] = true
			c.misplaced[l] |= 1 << i
			tally[l]++
		case p[i] == feedback.Absent:
		default:
			if c.confirmed[i] != 0 && c.confirmed[i] != guess[i] {
				c.conflict = true
			}
			c.confirmed[i] = guess[i]
			tally[l]++
		}
	}

	for l, n := range tally {
		if n > c.minCount[l] {
			c.minCount[l] = n
		}
		if c.minCount[l] > 0 {
			c.excluded[l] = false
		}
	}

	// An absent tile only rules a letter out when no other tile of this
	// guess proved it present.
	for i := 0; i < words.Length; i++ {
		l := guess[i] - 'a'
		if p[i] == feedback.Absent && tally[l] == 0 && c.minCount[l] == 0 {
			c.excluded[l] = true
		}
	}
}

// Allows reports whether w satisfies every positional and letter constraint.
func (c *Constraints) Allows(w string) bool {
	if c.conflict {
		return false
	}
	var counts [alphabet]int
	for i := 0; i < words.Length; i++ {
		if c.confirmed[i] != 0 && w[i] != c.confirmed[i] {
			return false
		}
		counts[w[i]-'a']++
	}

	for l := 0; l < alphabet; l++ {
		if counts[l] < c.minCount[l] {
			return false
		}
		if c.excluded[l] && counts[l] > 0 {
			return false
		}
		if c.present[l] && !c.placeable(w, byte(l)) {
			return false
		}
	}
	return true
}

// placeable reports whether w holds letter l at a position not ruled out for it.
func (c *Constraints) placeable(w string, l byte) bool {
	for i := 0; i < words.Length; i++ {
		if w[i]-'a' == l && c.misplaced[l]&(1<<i) == 0 {
			return true
		}
	}
	return false
}

// Confirmed returns the letter known at position i, or 0.
func (c *Constraints) Confirmed(i int) byte { return c.confirmed[i] }

// MinCount returns the proven minimum number of occurrences of l.
func (c *Constraints) MinCount(l byte) int { return c.minCount[l-'a'] }

// Excluded reports whether l is known to be absent from the target.
func (c *Constraints) Excluded(l byte) bool { return c.excluded[l-'a'] }

// Misplaced returns the positions where l is known not to be, in increasing order.
func (c *Constraints) Misplaced(l byte) []int {
	var out []int
	mask := c.misplaced[l-'a']
	for i := 0; i < words.Length; i++ {
		if mask&(1<<i) != 0 {
			out = append(out, i)
		}
	}
	return out
}
