package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/variables"
)

func solveClauses(clauses []Clause, assignment map[int]bool) bool {
	for _, c := range clauses {
		satisfied := false
		for _, lit := range c {
			v := int(lit)
			want := v > 0
			if v < 0 {
				v = -v
			}
			if assignment[v] == want {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// TestEncodingSoundnessExhaustive is the spec §8 boundary-specific
// test: for a small grid and one generation, the set of assignments
// satisfying the generated clauses exactly equals the set of (P, T)
// pairs for which evolve(P) == T.
func TestEncodingSoundnessExhaustive(t *testing.T) {
	for _, b := range []grid.Boundary{grid.Dead, grid.Wrap, grid.Mirror} {
		b := b
		t.Run(b.String(), func(t *testing.T) {
			const w, h = 2, 2
			total := 1 << (w * h)
			for tBits := 0; tBits < total; tBits++ {
				target := bitsToGrid(tBits, w, h, b)

				vars := variables.NewLazyManager(w, h, 2)
				gen := New(vars, b, 1)
				clauses, err := gen.Generate(target)
				require.NoError(t, err)

				for pBits := 0; pBits < total; pBits++ {
					p := bitsToGrid(pBits, w, h, b)
					wantSat := grid.Evolve(p).Equal(target)

					assignment := make(map[int]bool)
					for y := 0; y < h; y++ {
						for x := 0; x < w; x++ {
							v0, _ := vars.Var(x, y, 0)
							assignment[v0] = p.At(x, y)
							v1, _ := vars.Var(x, y, 1)
							assignment[v1] = target.At(x, y)
						}
					}
					gotSat := solveClauses(clauses, assignment)
					assert.Equalf(t, wantSat, gotSat,
						"boundary=%s target=%0*b predecessor=%0*b", b, w*h, tBits, w*h, pBits)
				}
			}
		})
	}
}

func bitsToGrid(bits, w, h int, b grid.Boundary) *grid.Grid {
	g := grid.New(w, h, b)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if bits&(1<<uint(i)) != 0 {
				g.Set(x, y, true)
			}
			i++
		}
	}
	return g
}

func TestGenerateDimensionMismatch(t *testing.T) {
	vars := variables.NewLazyManager(3, 3, 2)
	gen := New(vars, grid.Dead, 1)
	target := grid.New(2, 2, grid.Dead)
	_, err := gen.Generate(target)
	require.Error(t, err)
	var dm *DimensionMismatchError
	require.ErrorAs(t, err, &dm)
}

func TestTargetPinningUnitClauses(t *testing.T) {
	target, err := grid.FromRows([][]bool{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	}, grid.Dead)
	require.NoError(t, err)

	vars := variables.NewLazyManager(3, 3, 2)
	gen := New(vars, grid.Dead, 1)
	clauses, err := gen.Generate(target)
	require.NoError(t, err)

	var unit []Clause
	for _, c := range clauses {
		if len(c) == 1 {
			unit = append(unit, c)
		}
	}
	require.Len(t, unit, 9)
}

func TestGenerateIsDeterministic(t *testing.T) {
	target, _ := grid.FromRows([][]bool{{true, false}, {false, true}}, grid.Wrap)
	clausesOf := func() []Clause {
		vars := variables.NewLazyManager(2, 2, 3)
		gen := New(vars, grid.Wrap, 2)
		cs, err := gen.Generate(target)
		require.NoError(t, err)
		return cs
	}
	a, b := clausesOf(), clausesOf()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}
