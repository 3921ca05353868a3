// Package estimate provides a non-authoritative "solvability hint"
// over a target grid: rough density and edge-activity heuristics a
// CLI collaborator can print before committing to an expensive solve.
// It is advisory only and is never consulted by the core encode,
// satbackend, or enumerate packages.
package estimate

import "github.com/rrumana/game-of-life-reverse/internal/grid"

// Hint is an advisory assessment of how expensive a reduction is
// likely to be. It carries no guarantee: a Hint of Easy can still be
// Unsat, and a Hint of Hard can still solve instantly.
type Hint int

const (
	// Easy grids are sparse and interior-heavy.
	Easy Hint = iota
	// Moderate grids have middling density or edge activity.
	Moderate
	// Hard grids are dense or edge-heavy, both of which tend to
	// enlarge the search space for the direct encoding.
	Hard
)

func (h Hint) String() string {
	switch h {
	case Easy:
		return "easy"
	case Moderate:
		return "moderate"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Report summarizes the heuristic signals behind a Hint.
type Report struct {
	Hint        Hint
	Density     float64 // fraction of live cells, in [0,1]
	EdgeDensity float64 // fraction of live cells on the grid border, in [0,1]
}

// Assess computes an advisory Report for the given target grid. An
// empty grid (W*H == 0) yields a zero Report with an Easy Hint.
func Assess(g *grid.Grid) Report {
	total := g.W * g.H
	if total == 0 {
		return Report{Hint: Easy}
	}

	live := g.LiveCount()
	density := float64(live) / float64(total)

	var edgeLive, edgeCells int
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if x != 0 && x != g.W-1 && y != 0 && y != g.H-1 {
				continue
			}
			edgeCells++
			if g.At(x, y) {
				edgeLive++
			}
		}
	}
	var edgeDensity float64
	if edgeCells > 0 {
		edgeDensity = float64(edgeLive) / float64(edgeCells)
	}

	hint := classify(density, edgeDensity)
	return Report{Hint: hint, Density: density, EdgeDensity: edgeDensity}
}

func classify(density, edgeDensity float64) Hint {
	switch {
	case density >= 0.55 || edgeDensity >= 0.6:
		return Hard
	case density >= 0.3 || edgeDensity >= 0.35:
		return Moderate
	default:
		return Easy
	}
}
