// Package variables implements the Variable Manager: the bijection
// between space-time coordinates (x, y, t) and the positive integer
// SAT variable identifiers the rest of the engine works with.
package variables

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by Manager.Var when a coordinate falls
// outside the declared grid/time extents. Per the engine's error
// taxonomy this is a programmer error: it should never arise from
// valid inputs and is always surfaced immediately.
var ErrOutOfBounds = errors.New("variables: coordinate out of bounds")

// OutOfBoundsError carries the offending coordinate for diagnostics.
type OutOfBoundsError struct {
	X, Y, T int
	W, H, T1 int // T1 is the declared G+1 time extent
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("variables: (x=%d,y=%d,t=%d) outside [0,%d)x[0,%d)x[0,%d)",
		e.X, e.Y, e.T, e.W, e.H, e.T1)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// Manager provides the Var(x,y,t) -> id bijection described in
// spec §4.A. Implementations must be idempotent: repeated calls with
// the same coordinate return the same id, ids are strictly positive,
// and distinct coordinates never share an id within one Manager.
type Manager interface {
	// Var returns the positive integer SAT variable id for (x,y,t),
	// assigning a fresh one on first request. Returns an
	// *OutOfBoundsError if any coordinate is out of range.
	Var(x, y, t int) (int, error)
	// VariableCount returns the largest id issued so far. DenseManager
	// pre-allocates its whole range, so it always returns W*H*(G+1).
	VariableCount() int
	// Dims returns the (W, H, G+1) extents the Manager was created with.
	Dims() (w, h, t1 int)
}

func checkBounds(x, y, t, w, h, t1 int) error {
	if x < 0 || x >= w || y < 0 || y >= h || t < 0 || t >= t1 {
		return &OutOfBoundsError{X: x, Y: y, T: t, W: w, H: h, T1: t1}
	}
	return nil
}
