// Package enumerate implements the Enumerator: driving a SAT backend,
// already loaded with the generator's clauses, to produce up to K
// models that are pairwise distinct at t=0, via the clause-blocking
// protocol of spec §4.D.
package enumerate

import (
	"context"

	"github.com/rrumana/game-of-life-reverse/internal/encode"
	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/satbackend"
	"github.com/rrumana/game-of-life-reverse/internal/variables"
)

// Option configures an Enumerator.
type Option func(*config)

type config struct {
	symmetryBreaking bool
}

// WithSymmetryBreaking enables the spec §9 Open Question resolution:
// among rotation/reflection-equivalent predecessors, only the
// lexicographically smallest representative is returned. Off by
// default, since it is semantically lossy (it restricts the reported
// set to one representative per symmetry class).
func WithSymmetryBreaking() Option {
	return func(c *config) { c.symmetryBreaking = true }
}

// Result is the outcome of a full enumeration run.
type Result struct {
	Predecessors []*grid.Grid
	// Truncated reports whether enumeration stopped before K solutions
	// or Unsat were reached: either the backend returned Unknown, per
	// spec §7's "Unknown is recovered locally by the enumerator (emit
	// partial list).", or ctx was done before the next Solve call.
	Truncated bool
}

// Enumerate drives backend, which must already hold the generator's
// clauses, to collect up to k pairwise-t=0-distinct predecessor grids.
func Enumerate(ctx context.Context, backend satbackend.Backend, vars variables.Manager, boundary grid.Boundary, w, h, k int) (Result, error) {
	return EnumerateWithOptions(ctx, backend, vars, boundary, w, h, k)
}

// EnumerateWithOptions is Enumerate with optional behavior toggles.
func EnumerateWithOptions(ctx context.Context, backend satbackend.Backend, vars variables.Manager, boundary grid.Boundary, w, h, k int, opts ...Option) (Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var result Result
	seenCanonical := make(map[string]bool)

	for len(result.Predecessors) < k {
		select {
		case <-ctx.Done():
			result.Truncated = true
			return result, ctx.Err()
		default:
		}

		outcome, err := backend.Solve()
		if err != nil {
			return result, err
		}

		switch outcome {
		case satbackend.Unsat:
			return result, nil
		case satbackend.Unknown:
			result.Truncated = true
			return result, nil
		}

		p, block, err := extractAndBlock(backend, vars, boundary, w, h)
		if err != nil {
			return result, err
		}
		if err := backend.AddClause(block); err != nil {
			return result, err
		}

		if cfg.symmetryBreaking {
			canon := canonicalForm(p)
			key := gridKey(canon)
			if seenCanonical[key] {
				continue
			}
			seenCanonical[key] = true
			result.Predecessors = append(result.Predecessors, canon)
			continue
		}

		result.Predecessors = append(result.Predecessors, p)
	}

	return result, nil
}

// extractAndBlock reads the t=0 assignment out of the backend's most
// recent model and builds the blocking clause that forbids any future
// model from agreeing with it on every t=0 cell.
func extractAndBlock(backend satbackend.Backend, vars variables.Manager, boundary grid.Boundary, w, h int) (*grid.Grid, encode.Clause, error) {
	p := grid.New(w, h, boundary)
	block := make(encode.Clause, 0, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := vars.Var(x, y, 0)
			if err != nil {
				return nil, nil, err
			}
			alive := backend.Value(v)
			p.Set(x, y, alive)
			if alive {
				block = append(block, encode.Literal(-v))
			} else {
				block = append(block, encode.Literal(v))
			}
		}
	}

	return p, block, nil
}

func gridKey(g *grid.Grid) string {
	buf := make([]byte, 0, g.W*g.H)
	for _, row := range g.Rows() {
		for _, v := range row {
			if v {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
	}
	return string(buf)
}
