// Package stats exposes solve-time metrics in the style of the
// teacher's pkg/metrics package: package-level collectors constructed
// at init time and registered through a single Register call, with
// small package-level functions wrapping the updates callers actually
// perform.
package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	solveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "revlife_solve_duration_seconds",
			Help:    "Wall-clock time spent in a single SAT solver Solve call",
			Buckets: prometheus.DefBuckets,
		},
	)

	clauseCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "revlife_clause_count",
			Help:    "Number of CNF clauses generated for a reduction",
			Buckets: prometheus.ExponentialBuckets(64, 4, 10),
		},
	)

	predecessorsFound = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "revlife_predecessors_found_total",
			Help: "Monotonic count of predecessor grids yielded by the enumerator",
		},
	)

	outcomeCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revlife_outcomes_total",
			Help: "Count of solve outcomes by result",
		},
		[]string{"outcome"},
	)
)

// Register adds every collector in this package to the default
// Prometheus registry. Callers that expose a /metrics endpoint should
// call this once at startup.
func Register() {
	prometheus.MustRegister(solveDuration)
	prometheus.MustRegister(clauseCount)
	prometheus.MustRegister(predecessorsFound)
	prometheus.MustRegister(outcomeCount)
}

// ObserveSolve records the duration of one SAT solver Solve call.
func ObserveSolve(d time.Duration) {
	solveDuration.Observe(d.Seconds())
}

// ObserveClauseCount records the size of a generated CNF.
func ObserveClauseCount(n int) {
	clauseCount.Observe(float64(n))
}

// AddPredecessorsFound increments the predecessor counter by n.
func AddPredecessorsFound(n int) {
	predecessorsFound.Add(float64(n))
}

// ObserveOutcome increments the outcome counter for the given label
// ("sat", "unsat", "unknown").
func ObserveOutcome(outcome string) {
	outcomeCount.WithLabelValues(outcome).Inc()
}
