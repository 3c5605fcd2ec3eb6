// internal/solver/solver.go
//
// Guess selection for one round at a time.
//
// Round lifecycle:
//   - Restart: candidates = full corpus, no constraints, nothing tried.
//   - First NextGuess: returns the model's fixed opening guess.
//   - Later NextGuess calls: fold the feedback for the previous guess into the
//     constraints, narrow the candidates, and return the best scoring one.
//
// A Solver is not safe for concurrent use. Run independent rounds in parallel
// with one Solver each over a shared Model.

package solver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// DefaultBeta is the default weight of each n-gram term.
const DefaultBeta = 0.3

var (
	ErrMalformedFeedback = errors.New("solver: malformed feedback")
	ErrNoCandidates      = errors.New("solver: no candidates remain")
	ErrInvalidConfig     = errors.New("solver: invalid config")
)

// Config weights the n-gram terms of the score. Zero disables a term.
type Config struct {
	BetaBigram  float64 `yaml:"beta_bigram" json:"betaBigram"`
	BetaTrigram float64 `yaml:"beta_trigram" json:"betaTrigram"`
}

// DefaultConfig returns the default weights.
func DefaultConfig() Config {
	return Config{BetaBigram: DefaultBeta, BetaTrigram: DefaultBeta}
}

// State is the position of a Solver within a round.
type State int

const (
	StateStart     State = iota // no guess made yet
	StateScoring                // awaiting feedback for the last guess
	StateExhausted              // no candidate fits the feedback; Restart required
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateScoring:
		return "scoring"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for per-guess debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// Solver plays rounds against feedback supplied by the caller.
type Solver struct {
	model *Model
	cfg   Config
	log   zerolog.Logger

	state       State
	constraints Constraints
	candidates  []string
	tried       []string
}

// New returns a Solver over m, ready for its first round.
func New(m *Model, cfg Config, opts ...Option) (*Solver, error) {
	if m == nil {
		return nil, ErrEmptyCorpus
	}
	if cfg.BetaBigram < 0 || cfg.BetaTrigram < 0 {
		return nil, fmt.Errorf("%w: negative beta (%g, %g)", ErrInvalidConfig, cfg.BetaBigram, cfg.BetaTrigram)
	}
	s := &Solver{model: m, cfg: cfg, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	s.Restart()
	return s, nil
}

// Restart resets all round state.
func (s *Solver) Restart() {
	s.state = StateStart
	s.constraints.Reset()
	s.candidates = s.model.corpus.Words()
	s.tried = s.tried[:0]
}

// NextGuess returns the next word to play.
//
// On the first call of a round fb is ignored. Afterwards fb must be the
// feedback for the previous guess; malformed feedback is rejected with
// ErrMalformedFeedback and leaves the round untouched. ErrNoCandidates is
// returned when no word fits everything seen this round.
func (s *Solver) NextGuess(fb string) (string, error) {
	switch s.state {
	case StateStart:
		guess := s.model.firstGuess
		s.tried = append(s.tried, guess)
		s.state = StateScoring
		s.log.Debug().Str("guess", guess).Int("candidates", len(s.candidates)).Msg("opening guess")
		return guess, nil
	case StateExhausted:
		return "", ErrNoCandidates
	}

	last := s.tried[len(s.tried)-1]
	p, err := feedback.Parse(fb)
	if err == nil {
		err = p.Validate(last)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedFeedback, err)
	}

	s.constraints.Update(p, last)
	before := len(s.candidates)
	s.candidates = Filter(s.candidates, &s.constraints, s.tried)
	if len(s.candidates) == 0 {
		s.state = StateExhausted
		s.log.Debug().Str("last", last).Str("feedback", fb).Int("before", before).Msg("candidates exhausted")
		return "", ErrNoCandidates
	}

	guess, score, _ := s.model.Best(s.candidates, s.cfg.BetaBigram, s.cfg.BetaTrigram)
	s.tried = append(s.tried, guess)
	s.log.Debug().
		Str("guess", guess).
		Float64("score", score).
		Int("before", before).
		Int("candidates", len(s.candidates)).
		Msg("scored guess")
	return guess, nil
}

// State returns the round state.
func (s *Solver) State() State { return s.state }

// Config returns the solver weights.
func (s *Solver) Config() Config { return s.cfg }

// Tried returns a copy of the words guessed this round.
func (s *Solver) Tried() []string { return append([]string(nil), s.tried...) }

// Candidates returns a copy of the words still consistent with this round's feedback.
func (s *Solver) Candidates() []string { return append([]string(nil), s.candidates...) }

// Constraints returns the accumulated constraints. The value must not be modified.
func (s *Solver) Constraints() *Constraints { return &s.constraints }
