// Package solution defines the Solution record returned to
// collaborators (spec §3, §6) and the stable identifier derived from
// each predecessor's cell contents.
package solution

import (
	"fmt"
	"time"

	"github.com/mitchellh/hashstructure"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/validate"
)

// Solution is the tuple (P, trace, meta) of spec §3: the extracted
// predecessor, its deterministic forward evolution to the target, and
// purely informational metadata.
type Solution struct {
	ID            string
	Predecessor   *grid.Grid
	Target        *grid.Grid
	Generations   int
	EvolutionPath []*grid.Grid
	SolveTimeMS   int64
	LiveCellCount int
	// Valid and Violations carry the Validator's re-simulation gate
	// (spec §4.E) through to the reported Solution, rather than being
	// read and discarded at the call site: the direct encoding
	// guarantees Valid==true for every candidate the backend returns,
	// but a disagreeing backend should be visible as data, not hidden.
	Valid      bool
	Violations []validate.Violation
}

// hashInput is the subset of a predecessor's identity that the stable
// ID is derived from, per spec §6: "(predecessor.cells, W, H)".
type hashInput struct {
	W, H  int
	Cells [][]bool
}

// identifierOf computes the stable hex id for a predecessor grid using
// structural hashing, matching the teacher's use of
// github.com/mitchellh/hashstructure to fingerprint install plans.
func identifierOf(p *grid.Grid) (string, error) {
	h, err := hashstructure.Hash(hashInput{W: p.W, H: p.H, Cells: p.Rows()}, nil)
	if err != nil {
		return "", fmt.Errorf("solution: hashing predecessor: %w", err)
	}
	return fmt.Sprintf("%016x", h), nil
}

// New builds a Solution from a validated candidate. solveTime is the
// per-call elapsed time of the backend.Solve() invocation that
// produced this predecessor, per spec §9's resolved Open Question on
// the SolveTimeMS field's meaning.
func New(p, target *grid.Grid, generations int, result validate.Result, solveTime time.Duration) (Solution, error) {
	id, err := identifierOf(p)
	if err != nil {
		return Solution{}, err
	}
	return Solution{
		ID:            id,
		Predecessor:   p,
		Target:        target,
		Generations:   generations,
		EvolutionPath: result.Trace,
		SolveTimeMS:   solveTime.Milliseconds(),
		LiveCellCount: p.LiveCount(),
		Valid:         result.Valid,
		Violations:    result.Violations,
	}, nil
}
