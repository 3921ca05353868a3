// Package satbackend implements the SAT Backend abstraction of spec
// §4.C: a four-method contract (AddClause, Solve, Value, Configure)
// wrapping the go-air/gini incremental SAT solver, the same library
// the operator-lifecycle-manager dependency resolver uses.
package satbackend

import (
	"errors"
	"fmt"
	"time"

	"github.com/rrumana/game-of-life-reverse/internal/encode"
)

// ErrEmptyClause is returned by AddClause when given a zero-literal
// clause; per spec §7 this is a programmer error.
var ErrEmptyClause = errors.New("satbackend: clause must not be empty")

// BackendError wraps an opaque failure surfaced by the underlying
// solver library during Solve or clause ingestion.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("satbackend: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Outcome is the three-valued verdict of a Solve call.
type Outcome int

const (
	Unknown Outcome = iota
	Sat
	Unsat
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Effort collapses to backend-specific defaults, per spec §4.C.
type Effort int

const (
	Fast Effort = iota
	Balanced
	Thorough
)

// Options configures a Backend. Threads, Seed, and Timeout are
// optional; a zero value means "not set."
type Options struct {
	Threads       int
	Preprocessing bool
	Verbosity     int
	Timeout       time.Duration
	Seed          int64
	Effort        Effort
}

// resolveEffort applies spec §4.C's effort collapse rules on top of
// whatever the caller already set explicitly.
func (o Options) resolveEffort() Options {
	switch o.Effort {
	case Fast:
		if o.Threads == 0 {
			o.Threads = 1
		}
		o.Preprocessing = false
	case Balanced:
		if o.Threads < 2 {
			o.Threads = 2
		}
		o.Preprocessing = true
	case Thorough:
		if o.Threads < 4 {
			o.Threads = 4
		}
		o.Preprocessing = true
		if o.Verbosity < 1 {
			o.Verbosity = 1
		}
	}
	return o
}

// Backend is the four-symbol contract of spec §4.C. Implementations
// additionally provide Reset, which may be implemented as "recreate."
type Backend interface {
	// AddClause adds a clause; literals are nonzero, positive for
	// asserted-true, negative for asserted-false. Returns
	// ErrEmptyClause if literals is empty.
	AddClause(literals encode.Clause) error
	// Solve runs the solver to completion or until the configured
	// timeout expires, returning Sat, Unsat, or Unknown.
	Solve() (Outcome, error)
	// Value returns the truth value assigned to a variable in the
	// most recent Sat model. Undefined if the last Solve did not
	// return Sat.
	Value(v int) bool
	// Configure applies solver options. Safe to call before any
	// clauses are added; behavior of calling it afterward is
	// backend-defined.
	Configure(opts Options)
	// Reset returns the backend to a clause-free Created state.
	// Incremental clauses do not carry over.
	Reset()
}

// Kind selects a concrete Backend implementation.
type Kind int

const (
	// Sequential wraps a single gini solver instance.
	Sequential Kind = iota
	// Portfolio races several gini solver instances concurrently and
	// returns the first definite verdict.
	Portfolio
)

// New constructs a Backend of the given kind.
func New(kind Kind, opts Options) Backend {
	switch kind {
	case Portfolio:
		return NewPortfolio(opts)
	default:
		return NewSequential(opts)
	}
}
