package grid

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Evolve is the pure reference forward simulator: it computes the
// single-step successor of g under g's boundary discipline. Each cell
// is embarrassingly parallel, so computation is dispatched across a
// bounded worker pool of row ranges, matching the resolver's use of
// golang.org/x/sync for bounded concurrent work. Each worker writes
// into its own row-range buffer rather than g's shared *bitset.BitSet:
// bitset words span 64 bit indices, so two workers writing adjacent
// rows of a grid narrower than 64 cells can race on the same word.
// The buffers are merged into out single-threaded after every worker
// has finished.
func Evolve(g *Grid) *Grid {
	out := New(g.W, g.H, g.Boundary)
	if g.H == 0 || g.W == 0 {
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > g.H {
		workers = g.H
	}
	if workers < 1 {
		workers = 1
	}

	rowsPerWorker := (g.H + workers - 1) / workers

	type rowRange struct {
		start, end int
		cells      []bool // row-major, len == (end-start)*g.W
	}
	ranges := make([]rowRange, 0, workers)
	for start := 0; start < g.H; start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > g.H {
			end = g.H
		}
		ranges = append(ranges, rowRange{start: start, end: end, cells: make([]bool, (end-start)*g.W)})
	}

	var eg errgroup.Group
	for i := range ranges {
		r := &ranges[i]
		eg.Go(func() error {
			for y := r.start; y < r.end; y++ {
				for x := 0; x < g.W; x++ {
					n := g.LiveNeighborCount(x, y)
					r.cells[(y-r.start)*g.W+x] = Next(g.At(x, y), n)
				}
			}
			return nil
		})
	}
	// Evolve has no fallible step; the error is always nil.
	_ = eg.Wait()

	for _, r := range ranges {
		for y := r.start; y < r.end; y++ {
			for x := 0; x < g.W; x++ {
				out.Set(x, y, r.cells[(y-r.start)*g.W+x])
			}
		}
	}
	return out
}

// EvolveN applies Evolve g times in sequence, returning the full trace
// [g0, g1, ..., g_n] with len(trace) == n+1.
func EvolveN(g *Grid, n int) []*Grid {
	trace := make([]*Grid, n+1)
	trace[0] = g
	cur := g
	for i := 1; i <= n; i++ {
		cur = Evolve(cur)
		trace[i] = cur
	}
	return trace
}
