package satbackend

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/rrumana/game-of-life-reverse/internal/encode"
)

// Sequential wraps a single *gini.Gini instance: single-threaded,
// deterministic given identical clause input.
type Sequential struct {
	g    *gini.Gini
	opts Options
}

var _ Backend = (*Sequential)(nil)

// NewSequential returns a Sequential backend configured with opts.
func NewSequential(opts Options) *Sequential {
	s := &Sequential{g: gini.New()}
	s.Configure(opts)
	return s
}

func (s *Sequential) Configure(opts Options) {
	// Threads is meaningless for a single solver instance; gini
	// exposes no runtime preprocessing toggle, so Preprocessing and
	// Verbosity are recorded for callers to inspect but otherwise
	// unused here. Seed is likewise a no-op: there is only one search
	// path to run, so there is nothing for a seed to diversify (see
	// Portfolio, which does use it).
	s.opts = opts.resolveEffort()
}

func (s *Sequential) AddClause(literals encode.Clause) error {
	if len(literals) == 0 {
		return ErrEmptyClause
	}
	for _, lit := range literals {
		s.g.Add(z.Dimacs2Lit(int(lit)))
	}
	s.g.Add(z.LitNull)
	return nil
}

func (s *Sequential) Solve() (Outcome, error) {
	var res int
	if s.opts.Timeout > 0 {
		res = s.g.Try(s.opts.Timeout)
	} else {
		res = s.g.Solve()
	}
	return outcomeOf(res), nil
}

func (s *Sequential) Value(v int) bool {
	return s.g.Value(z.Dimacs2Lit(v))
}

func (s *Sequential) Reset() {
	opts := s.opts
	s.g = gini.New()
	s.opts = opts
}

func outcomeOf(res int) Outcome {
	switch {
	case res > 0:
		return Sat
	case res < 0:
		return Unsat
	default:
		return Unknown
	}
}
