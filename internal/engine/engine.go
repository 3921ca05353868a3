// Package engine orchestrates the core reduction pipeline described
// across spec §4: Variable Manager, Generator, SAT Backend, and
// Enumerator wired together behind a single Reduce entry point, with
// the Validator and Solution packages used to turn each raw model
// into a reported result. Sentinel errors here follow the teacher's
// layered style (solver.Incomplete, solver.NotSatisfiable as named
// values returned from Solve).
package engine

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/rrumana/game-of-life-reverse/internal/config"
	"github.com/rrumana/game-of-life-reverse/internal/encode"
	"github.com/rrumana/game-of-life-reverse/internal/enumerate"
	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/satbackend"
	"github.com/rrumana/game-of-life-reverse/internal/solution"
	"github.com/rrumana/game-of-life-reverse/internal/stats"
	"github.com/rrumana/game-of-life-reverse/internal/validate"
	"github.com/rrumana/game-of-life-reverse/internal/variables"
)

// ErrUnsatisfiable is returned when the SAT backend proves no
// predecessor exists for the given target, generations, and boundary.
var ErrUnsatisfiable = errors.New("engine: no predecessor exists")

// Report is the outcome of one Reduce call.
type Report struct {
	Solutions []solution.Solution
	// Incomplete mirrors enumerate.Result.Truncated: the backend
	// returned Unknown, or ctx was done, before MaxSolutions or Unsat,
	// so Solutions may be a strict subset of what exists.
	Incomplete bool
}

// Reduce runs the full pipeline for one target grid under cfg: build
// variables, generate clauses, load the backend, enumerate up to
// cfg.MaxSolutions predecessors, then validate and package each one
// as a Solution.
func Reduce(ctx context.Context, target *grid.Grid, cfg config.Config, opts ...enumerate.Option) (Report, error) {
	w, h := target.W, target.H
	vars := variables.NewDenseManager(w, h, cfg.Generations+1)

	gen := encode.New(vars, cfg.Boundary, cfg.Generations)
	clauses, err := gen.Generate(target)
	if err != nil {
		return Report{}, pkgerrors.Wrap(err, "engine: generating clauses")
	}
	stats.ObserveClauseCount(len(clauses))

	backend := satbackend.New(cfg.Backend, cfg.BackendOptions())
	for _, c := range clauses {
		if err := backend.AddClause(c); err != nil {
			return Report{}, pkgerrors.Wrap(err, "engine: loading clauses")
		}
	}

	timedBackend := &timingBackend{Backend: backend}

	result, err := enumerate.EnumerateWithOptions(ctx, timedBackend, vars, cfg.Boundary, w, h, cfg.MaxSolutions, opts...)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return Report{}, pkgerrors.Wrap(err, "engine: enumerating predecessors")
	}

	report := Report{Incomplete: result.Truncated}

	if len(result.Predecessors) == 0 && !result.Truncated {
		stats.ObserveOutcome("unsat")
		return report, ErrUnsatisfiable
	}

	for i, p := range result.Predecessors {
		vr, err := validate.Validate(p, target, cfg.Generations)
		if err != nil {
			return Report{}, pkgerrors.Wrap(err, "engine: validating candidate")
		}
		if !vr.Valid {
			// The direct encoding guarantees every backend-returned
			// candidate re-simulates to the target, so this is a
			// backend/encoder disagreement, not an expected outcome.
			// Report it as data on the Solution rather than failing
			// the whole Reduce call, per the Validator's non-fatal
			// gating contract.
			log.WithFields(log.Fields{
				"candidate":  i,
				"violations": len(vr.Violations),
			}).Warn("engine: candidate failed re-simulation validation")
		}
		elapsed := timedBackend.elapsed(i)
		sol, err := solution.New(p, target, cfg.Generations, vr, elapsed)
		if err != nil {
			return Report{}, pkgerrors.Wrap(err, "engine: packaging solution")
		}
		report.Solutions = append(report.Solutions, sol)
	}

	if report.Incomplete {
		stats.ObserveOutcome("unknown")
	} else {
		stats.ObserveOutcome("sat")
	}
	stats.AddPredecessorsFound(len(report.Solutions))

	return report, nil
}

// timingBackend wraps a Backend to record the wall-clock duration of
// each Solve call, so each reported Solution carries its own
// SolveTimeMS rather than the pipeline's aggregate time.
type timingBackend struct {
	satbackend.Backend
	durations []time.Duration
}

func (t *timingBackend) Solve() (satbackend.Outcome, error) {
	start := time.Now()
	outcome, err := t.Backend.Solve()
	d := time.Since(start)
	stats.ObserveSolve(d)
	t.durations = append(t.durations, d)
	return outcome, err
}

func (t *timingBackend) elapsed(i int) time.Duration {
	if i < 0 || i >= len(t.durations) {
		return 0
	}
	return t.durations[i]
}

