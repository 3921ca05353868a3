// Package encode implements the Constraint Generator: the direct CNF
// encoding of target pinning and the Game of Life transition relation,
// including boundary treatment.
package encode

import "fmt"

// Literal is a nonzero signed SAT variable reference: positive for the
// variable asserted true, negative for asserted false. Identifier 0 is
// reserved and never produced.
type Literal int

// Clause is a non-empty ordered disjunction of literals.
type Clause []Literal

// ErrEmptyClause mirrors the backend-level EmptyClause error; the
// generator never constructs one, but downstream code that feeds
// clauses to a backend should check for it defensively.
var ErrEmptyClause = fmt.Errorf("encode: clause must not be empty")
