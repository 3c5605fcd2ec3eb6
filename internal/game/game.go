// internal/game/game.go
//
// Feedback game used to exercise the solver.
// Responsibilities:
//   - Pick a hidden answer per round through a caller-supplied Picker.
//   - Validate guesses (alphabetic, five letters, not already tried).
//   - Score guesses with the two-pass algorithm from the feedback package.
//   - Track state transitions: playing → won/lost after MaxAttempts guesses.
//
// Guesses are not checked against the corpus; any five-letter word is accepted.

package game

import (
	"errors"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// MaxAttempts is the number of guesses allowed per round.
const MaxAttempts = 6

var (
	ErrNotAlpha     = errors.New("game: please enter only letters")
	ErrLength       = errors.New("game: please enter a five-letter word")
	ErrAlreadyTried = errors.New("game: you have already tried that word")
	ErrFinished     = errors.New("game: round is over")
)

// Result is the outcome of one accepted guess.
type Result struct {
	Pattern feedback.Pattern
	Over    bool // round ended with this guess
	Won     bool // guess matched the answer
}

// Game holds the state of the current round.
type Game struct {
	corpus *words.Corpus
	picker Picker

	answer   string
	guesses  []string
	finished bool
	won      bool
}

// New returns a game with its first round already started.
func New(c *words.Corpus, p Picker) *Game {
	g := &Game{corpus: c, picker: p}
	g.Restart()
	return g
}

// Restart begins a new round with a freshly picked answer.
func (g *Game) Restart() {
	g.answer = g.picker.Pick(g.corpus)
	g.guesses = g.guesses[:0]
	g.finished, g.won = false, false
}

// CheckGuess validates and scores a guess.
//
// Invalid guesses return an error and do not consume an attempt.
// A winning guess yields a solved pattern whose string form is the answer.
func (g *Game) CheckGuess(guess string) (Result, error) {
	if g.finished {
		return Result{Over: true, Won: g.won}, ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if !words.IsAlpha(guess) {
		return Result{}, ErrNotAlpha
	}
	if len(guess) != words.Length {
		return Result{}, ErrLength
	}
	for _, t := range g.guesses {
		if t == guess {
			return Result{}, ErrAlreadyTried
		}
	}

	g.guesses = append(g.guesses, guess)
	res := Result{Pattern: feedback.Compute(guess, g.answer)}
	if guess == g.answer {
		g.finished, g.won = true, true
	} else if len(g.guesses) >= MaxAttempts {
		g.finished = true
	}
	res.Over, res.Won = g.finished, g.won
	return res, nil
}

// Answer returns the hidden word of the current round.
func (g *Game) Answer() string { return g.answer }

// Guesses returns a copy of the accepted guesses this round.
func (g *Game) Guesses() []string { return append([]string(nil), g.guesses...) }

// State reports "playing", "won" or "lost".
func (g *Game) State() string {
	if g.finished {
		if g.won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}
