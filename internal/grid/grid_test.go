package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blinker() *Grid {
	g, _ := FromRows([][]bool{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	}, Dead)
	return g
}

func TestFromRowsRejectsNonRectangular(t *testing.T) {
	_, err := FromRows([][]bool{
		{true, false},
		{true},
	}, Dead)
	require.ErrorIs(t, err, ErrNonRectangular)
}

func TestReadDeadBoundary(t *testing.T) {
	g := blinker()
	assert.False(t, g.Read(-1, -1))
	assert.False(t, g.Read(3, 3))
	assert.True(t, g.Read(1, 1))
}

func TestReadWrapBoundary(t *testing.T) {
	g := blinker()
	g.Boundary = Wrap
	// (−1, 1) wraps to (2, 1), which is alive in the blinker.
	assert.True(t, g.Read(-1, 1))
	assert.Equal(t, g.Read(0, 1), g.Read(3, 1))
}

func TestReadMirrorBoundary(t *testing.T) {
	g := blinker()
	g.Boundary = Mirror
	// (−1, 1) mirrors to (0, 1), alive.
	assert.True(t, g.Read(-1, 1))
	assert.Equal(t, g.Read(0, 0), g.Read(-1, 0))
}

func TestNeighborsDeadOmitsOutOfRange(t *testing.T) {
	g := New(3, 3, Dead)
	ns := g.Neighbors(0, 0)
	assert.Len(t, ns, 3)
}

func TestNeighborsWrapDeduplicatesOnDegenerateGrid(t *testing.T) {
	g := New(1, 1, Wrap)
	ns := g.Neighbors(0, 0)
	assert.Len(t, ns, 1, "a 1x1 wrap grid has exactly one distinct neighbor cell: itself")
}

func TestEvolveBlinkerOscillates(t *testing.T) {
	g := blinker()
	next := Evolve(g)
	want, _ := FromRows([][]bool{
		{false, true, false},
		{false, true, false},
		{false, true, false},
	}, Dead)
	if diff := cmp.Diff(want.Rows(), next.Rows()); diff != "" {
		t.Errorf("blinker one-step evolution mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, Evolve(next).Equal(g))
}

func TestEvolveWrapKillsFullNeighborhood(t *testing.T) {
	g, _ := FromRows([][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}, Wrap)
	next := Evolve(g)
	for _, row := range next.Rows() {
		for _, v := range row {
			assert.False(t, v)
		}
	}
}

func TestEvolveNProducesFullTrace(t *testing.T) {
	g := blinker()
	trace := EvolveN(g, 2)
	require.Len(t, trace, 3)
	assert.True(t, trace[0].Equal(g))
	assert.True(t, trace[2].Equal(g))
}

func TestCloneIsIndependent(t *testing.T) {
	g := blinker()
	c := g.Clone()
	c.Set(0, 0, true)
	assert.False(t, g.At(0, 0))
	assert.True(t, c.At(0, 0))
}
