// Package validate implements the Validator: re-simulating each
// candidate predecessor forward and gating it against the target,
// per spec §4.E.
package validate

import (
	"fmt"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
)

// Violation records a single cell whose next state disagreed with
// next(current, neighborCount) during re-simulation: a defensive
// check against a buggy backend returning an inconsistent model.
type Violation struct {
	Step int
	X, Y int
	Want bool
	Got  bool
}

func (v Violation) String() string {
	return fmt.Sprintf("step %d, cell (%d,%d): want %v, got %v", v.Step, v.X, v.Y, v.Want, v.Got)
}

// Result is the outcome of validating one candidate predecessor.
type Result struct {
	Valid      bool
	Trace      []*grid.Grid
	Violations []Violation
}

// DimensionMismatchError is returned when the predecessor's dimensions
// disagree with the target's.
type DimensionMismatchError struct {
	PW, PH, TW, TH int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("validate: predecessor is %dx%d, target is %dx%d", e.PW, e.PH, e.TW, e.TH)
}

// BoundaryMismatchError is returned when the predecessor and target
// were constructed under different boundary disciplines.
type BoundaryMismatchError struct {
	P, T grid.Boundary
}

func (e *BoundaryMismatchError) Error() string {
	return fmt.Sprintf("validate: predecessor boundary %s does not match target boundary %s", e.P, e.T)
}

// Validate re-simulates p forward generations steps under p's boundary
// discipline and compares the final grid to target cell-by-cell. It additionally
// verifies every intermediate transition against next(c,n), recording
// any disagreement as a Violation without treating it as fatal: rule
// violations are per-candidate warnings, not errors, per spec §7.
func Validate(p, target *grid.Grid, generations int) (Result, error) {
	if p.W != target.W || p.H != target.H {
		return Result{}, &DimensionMismatchError{PW: p.W, PH: p.H, TW: target.W, TH: target.H}
	}
	if p.Boundary != target.Boundary {
		return Result{}, &BoundaryMismatchError{P: p.Boundary, T: target.Boundary}
	}

	trace := grid.EvolveN(p, generations)

	var violations []Violation
	for step := 0; step < generations; step++ {
		cur, next := trace[step], trace[step+1]
		for y := 0; y < cur.H; y++ {
			for x := 0; x < cur.W; x++ {
				want := grid.Next(cur.At(x, y), cur.LiveNeighborCount(x, y))
				got := next.At(x, y)
				if want != got {
					violations = append(violations, Violation{Step: step, X: x, Y: y, Want: want, Got: got})
				}
			}
		}
	}

	final := trace[generations]
	valid := final.Equal(target) && len(violations) == 0

	return Result{Valid: valid, Trace: trace, Violations: violations}, nil
}
