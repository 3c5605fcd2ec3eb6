// internal/store/store.go
//
// Persistence for benchmark runs.
//
// Two implementations share the Store interface:
//   - memory: map-backed, process lifetime only (tests, runs without --db).
//   - sqlite: durable file store with embedded migrations.
//
// A Run records the solver configuration, the aggregate outcome and,
// optionally, every round played.

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a run ID is unknown.
var ErrNotFound = errors.New("store: run not found")

// Round is the outcome of one benchmark round.
type Round struct {
	Target    string
	Guesses   int
	Won       bool
	Exhausted bool     // solver ran out of candidates
	Sequence  []string // guesses in play order
}

// Run is one benchmark run for a single solver configuration.
type Run struct {
	ID           string
	Label        string
	BetaBigram   float64
	BetaTrigram  float64
	Seed         uint64
	Rounds       int
	Wins         int
	TotalGuesses int
	Exhausted    int
	Elapsed      time.Duration
	CreatedAt    time.Time
	Results      []Round // nil in listings
}

// Accuracy is the fraction of rounds won.
func (r Run) Accuracy() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Rounds)
}

// AvgGuesses is the mean number of guesses per round.
func (r Run) AvgGuesses() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.TotalGuesses) / float64(r.Rounds)
}

// Store persists benchmark runs.
type Store interface {
	// SaveRun persists r. An empty ID is replaced with a new UUID and a zero
	// CreatedAt with the current time; both are written back into r.
	SaveRun(ctx context.Context, r *Run) error

	// GetRun retrieves a run with its rounds.
	// Returns ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, id string) (*Run, error)

	// ListRuns returns the most recent runs first, without rounds.
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	Close() error
}
