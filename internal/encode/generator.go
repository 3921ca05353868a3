package encode

import (
	"fmt"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/variables"
)

// DimensionMismatchError is returned when a target grid disagrees with
// the Variable Manager's declared (W, H).
type DimensionMismatchError struct {
	TargetW, TargetH int
	W, H             int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("encode: target is %dx%d, expected %dx%d", e.TargetW, e.TargetH, e.W, e.H)
}

// Generator emits the CNF encoding of target pinning and the
// transition relation for a fixed (generations, boundary) problem,
// using the direct encoding of spec §4.B: every falsifying
// (cell, neighbor-set) tuple becomes one blocking clause.
type Generator struct {
	vars        variables.Manager
	boundary    grid.Boundary
	generations int
}

// New returns a Generator that will emit clauses over the variables
// produced by vars, for the given number of generations and boundary
// discipline. vars must have been constructed with a time extent of
// generations+1.
func New(vars variables.Manager, boundary grid.Boundary, generations int) *Generator {
	return &Generator{vars: vars, boundary: boundary, generations: generations}
}

// Generate emits the full clause set for a target grid: W*H unit
// clauses pinning t=G, plus the transition relation for every
// t in [0,G) and every cell.
func (g *Generator) Generate(target *grid.Grid) ([]Clause, error) {
	w, h, t1 := g.vars.Dims()
	if target.W != w || target.H != h {
		return nil, &DimensionMismatchError{TargetW: target.W, TargetH: target.H, W: w, H: h}
	}
	if t1 != g.generations+1 {
		return nil, fmt.Errorf("encode: variable manager has time extent %d, expected %d", t1, g.generations+1)
	}

	var clauses []Clause

	pin, err := g.targetPinning(target)
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, pin...)

	trans, err := g.transitionClauses(target)
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, trans...)

	return clauses, nil
}

func (g *Generator) targetPinning(target *grid.Grid) ([]Clause, error) {
	w, h := target.W, target.H
	clauses := make([]Clause, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := g.vars.Var(x, y, g.generations)
			if err != nil {
				return nil, err
			}
			lit := Literal(v)
			if !target.At(x, y) {
				lit = -lit
			}
			clauses = append(clauses, Clause{lit})
		}
	}
	return clauses, nil
}

// neighborhoodGrid is used purely for its boundary-aware Neighbors()
// computation; it shares target's dimensions and boundary but its
// cell contents are irrelevant to clause generation (only coordinates
// are consulted, never liveness, at encoding time).
func (g *Generator) neighborhoodGrid(target *grid.Grid) *grid.Grid {
	return grid.New(target.W, target.H, g.boundary)
}

func (g *Generator) transitionClauses(target *grid.Grid) ([]Clause, error) {
	w, h := target.W, target.H
	shape := g.neighborhoodGrid(target)

	var clauses []Clause
	for t := 0; t < g.generations; t++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				cs, err := g.cellTransitionClauses(shape, x, y, t)
				if err != nil {
					return nil, err
				}
				clauses = append(clauses, cs...)
			}
		}
	}
	return clauses, nil
}

func (g *Generator) cellTransitionClauses(shape *grid.Grid, x, y, t int) ([]Clause, error) {
	neighborCoords := shape.Neighbors(x, y)
	n := len(neighborCoords)

	neighborVars := make([]int, n)
	for i, c := range neighborCoords {
		v, err := g.vars.Var(c[0], c[1], t)
		if err != nil {
			return nil, err
		}
		neighborVars[i] = v
	}

	c, err := g.vars.Var(x, y, t)
	if err != nil {
		return nil, err
	}
	cNext, err := g.vars.Var(x, y, t+1)
	if err != nil {
		return nil, err
	}

	var clauses []Clause
	combinations(n, func(k int, indices []int) {
		pi := projectionClause(neighborVars, indices)

		nextIfAlive := grid.Next(true, k)
		nextIfDead := grid.Next(false, k)

		aliveClause := make(Clause, 0, len(pi)+2)
		aliveClause = append(aliveClause, -Literal(c))
		if nextIfAlive {
			aliveClause = append(aliveClause, Literal(cNext))
		} else {
			aliveClause = append(aliveClause, -Literal(cNext))
		}
		aliveClause = append(aliveClause, pi...)
		clauses = append(clauses, aliveClause)

		deadClause := make(Clause, 0, len(pi)+2)
		deadClause = append(deadClause, Literal(c))
		if nextIfDead {
			deadClause = append(deadClause, Literal(cNext))
		} else {
			deadClause = append(deadClause, -Literal(cNext))
		}
		deadClause = append(deadClause, pi...)
		clauses = append(clauses, deadClause)
	})
	return clauses, nil
}

// projectionClause builds Π(S): -v for v at the given indices (the
// "alive" subset S), +v for every other neighbor variable. The
// returned clause is falsified exactly when the neighbor assignment
// has alive cells exactly at indices.
func projectionClause(neighborVars []int, aliveIndices []int) Clause {
	alive := make(map[int]bool, len(aliveIndices))
	for _, i := range aliveIndices {
		alive[i] = true
	}
	out := make(Clause, len(neighborVars))
	for i, v := range neighborVars {
		if alive[i] {
			out[i] = -Literal(v)
		} else {
			out[i] = Literal(v)
		}
	}
	return out
}
