package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects benchmark counters on a private registry. A nil *Metrics
// records nothing.
type Metrics struct {
	reg          *prometheus.Registry
	rounds       *prometheus.CounterVec
	guesses      prometheus.Histogram
	guessSeconds prometheus.Histogram
}

// NewMetrics registers the benchmark collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_rounds_total",
			Help: "Rounds played, by outcome (won, lost, exhausted).",
		}, []string{"outcome"}),
		guesses: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_guesses_per_round",
			Help:    "Guesses made per round.",
			Buckets: prometheus.LinearBuckets(1, 1, 6),
		}),
		guessSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_guess_seconds",
			Help:    "Time spent choosing one guess.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes the current values in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

func (m *Metrics) observeGuess(d time.Duration) {
	if m == nil {
		return
	}
	m.guessSeconds.Observe(d.Seconds())
}

func (m *Metrics) observeRound(r RoundResult) {
	if m == nil {
		return
	}
	outcome := "lost"
	switch {
	case r.Won:
		outcome = "won"
	case r.Exhausted:
		outcome = "exhausted"
	}
	m.rounds.WithLabelValues(outcome).Inc()
	m.guesses.Observe(float64(r.Guesses))
}
