package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
)

func TestAssessEmptyGrid(t *testing.T) {
	g := grid.New(0, 0, grid.Dead)
	r := Assess(g)
	assert.Equal(t, Easy, r.Hint)
}

func TestAssessSparseInteriorIsEasy(t *testing.T) {
	g, err := grid.FromRows([][]bool{
		{false, false, false, false, false},
		{false, false, false, false, false},
		{false, false, true, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	}, grid.Dead)
	require.NoError(t, err)

	r := Assess(g)
	assert.Equal(t, Easy, r.Hint)
	assert.InDelta(t, 0.04, r.Density, 0.01)
	assert.Equal(t, 0.0, r.EdgeDensity)
}

func TestAssessDenseEdgeHeavyIsHard(t *testing.T) {
	g, err := grid.FromRows([][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}, grid.Dead)
	require.NoError(t, err)

	r := Assess(g)
	assert.Equal(t, Hard, r.Hint)
	assert.Equal(t, 1.0, r.Density)
	assert.Equal(t, 1.0, r.EdgeDensity)
}
