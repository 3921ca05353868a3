package enumerate

import "github.com/rrumana/game-of-life-reverse/internal/grid"

// canonicalForm returns the lexicographically smallest grid among g and
// its seven dihedral-group images (four rotations, each optionally
// mirrored). Non-square grids have no rotation symmetry in this
// encoding's coordinate scheme, so they are returned unchanged.
func canonicalForm(g *grid.Grid) *grid.Grid {
	if g.W != g.H {
		return g
	}

	best := g
	bestKey := gridKey(g)

	cur := g
	for i := 0; i < 4; i++ {
		if i > 0 {
			cur = rotate90(cur)
		}
		if key := gridKey(cur); key < bestKey {
			best, bestKey = cur, key
		}
		m := mirrorHorizontal(cur)
		if key := gridKey(m); key < bestKey {
			best, bestKey = m, key
		}
	}
	return best
}

func rotate90(g *grid.Grid) *grid.Grid {
	out := grid.New(g.H, g.W, g.Boundary)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			// (x,y) -> (h-1-y, x) is a 90 degree rotation.
			out.Set(g.H-1-y, x, g.At(x, y))
		}
	}
	return out
}

func mirrorHorizontal(g *grid.Grid) *grid.Grid {
	out := grid.New(g.W, g.H, g.Boundary)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			out.Set(g.W-1-x, y, g.At(x, y))
		}
	}
	return out
}
