// Package grid implements the boundary-aware cell grid that the rest of
// the engine is built around: the Grid type, the three boundary
// disciplines, and the reference forward Game of Life simulator.
package grid

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ErrNonRectangular indicates a construction input was not a rectangle.
var ErrNonRectangular = errors.New("grid: rows must all have equal length")

// Boundary selects how reads outside [0,W)x[0,H) are resolved.
type Boundary int

const (
	// Dead treats every out-of-range coordinate as false.
	Dead Boundary = iota
	// Wrap maps a coordinate into range by modular wraparound.
	Wrap
	// Mirror maps a coordinate into range by reflection at the edges.
	Mirror
)

func (b Boundary) String() string {
	switch b {
	case Dead:
		return "dead"
	case Wrap:
		return "wrap"
	case Mirror:
		return "mirror"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// Offsets lists the eight Moore-neighborhood displacements in the
// deterministic order the rest of the engine relies on for clause
// emission: starting north and proceeding clockwise.
var Offsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Grid is a rectangular boolean cell grid with a fixed boundary
// discipline. Cells are packed into a bitset for cheap cloning and
// equality checks.
type Grid struct {
	W, H     int
	Boundary Boundary
	cells    *bitset.BitSet
}

// New returns a W x H grid, all cells dead, under boundary b.
func New(w, h int, b Boundary) *Grid {
	return &Grid{
		W:        w,
		H:        h,
		Boundary: b,
		cells:    bitset.New(uint(w * h)),
	}
}

// FromRows builds a Grid from a row-major [][]bool of equal-length rows.
// Returns ErrNonRectangular if row lengths disagree.
func FromRows(rows [][]bool, b Boundary) (*Grid, error) {
	h := len(rows)
	if h == 0 {
		return New(0, 0, b), nil
	}
	w := len(rows[0])
	g := New(w, h, b)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if v {
				g.Set(x, y, true)
			}
		}
	}
	return g, nil
}

func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds reports whether (x,y) lies within [0,W)x[0,H).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Set assigns the cell at (x,y), which must be in bounds.
func (g *Grid) Set(x, y int, alive bool) {
	i := uint(g.index(x, y))
	if alive {
		g.cells.Set(i)
	} else {
		g.cells.Clear(i)
	}
}

// At returns the raw (non-boundary-mapped) value of an in-bounds cell.
func (g *Grid) At(x, y int) bool {
	return g.cells.Test(uint(g.index(x, y)))
}

// Read returns the value of (x,y) after applying the grid's boundary
// discipline. Under Dead, out-of-range coordinates read false.
func (g *Grid) Read(x, y int) bool {
	switch g.Boundary {
	case Wrap:
		x = wrap(x, g.W)
		y = wrap(y, g.H)
	case Mirror:
		x = mirror(x, g.W)
		y = mirror(y, g.H)
	default: // Dead
		if !g.InBounds(x, y) {
			return false
		}
	}
	if g.W == 0 || g.H == 0 {
		return false
	}
	return g.At(x, y)
}

func wrap(c, d int) int {
	return ((c % d) + d) % d
}

func mirror(c, d int) int {
	if c < 0 {
		return -c - 1
	}
	if c >= d {
		return d - 1 - (c - d)
	}
	return c
}

// Neighbors returns the boundary-resolved, deduplicated coordinates of
// the Moore neighborhood of (x,y), in the fixed order of Offsets. Under
// Dead, coordinates that fall outside the grid are omitted entirely
// rather than being included and read as false, matching the direct
// encoding's "fewer neighbor variables; smaller clauses" rule.
func (g *Grid) Neighbors(x, y int) [][2]int {
	seen := make(map[[2]int]bool, 8)
	out := make([][2]int, 0, 8)
	for _, d := range Offsets {
		nx, ny := x+d[0], y+d[1]
		switch g.Boundary {
		case Wrap:
			nx, ny = wrap(nx, g.W), wrap(ny, g.H)
		case Mirror:
			nx, ny = mirror(nx, g.W), mirror(ny, g.H)
		default:
			if !g.InBounds(nx, ny) {
				continue
			}
		}
		key := [2]int{nx, ny}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

// LiveNeighborCount counts the distinct live neighbors of (x,y) under
// the grid's boundary discipline.
func (g *Grid) LiveNeighborCount(x, y int) int {
	n := 0
	for _, c := range g.Neighbors(x, y) {
		if g.At(c[0], c[1]) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		W:        g.W,
		H:        g.H,
		Boundary: g.Boundary,
		cells:    g.cells.Clone(),
	}
}

// Equal reports whether two grids have identical dimensions and cells.
// Boundary discipline is not part of cell-for-cell equality.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	return g.cells.Equal(o.cells)
}

// Next computes next(c,n) for a single cell, the rule shared by the
// direct CNF encoding and this reference simulator.
func Next(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

// Rows returns the grid's cells as a row-major [][]bool, for
// serialization and test assertions.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]bool, g.W)
		for x := 0; x < g.W; x++ {
			row[x] = g.At(x, y)
		}
		rows[y] = row
	}
	return rows
}

// LiveCount returns the number of live cells in the grid.
func (g *Grid) LiveCount() int {
	return int(g.cells.Count())
}
