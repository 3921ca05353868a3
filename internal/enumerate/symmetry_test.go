package enumerate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
)

func TestCanonicalFormAgreesAcrossRotations(t *testing.T) {
	base, err := grid.FromRows([][]bool{
		{true, false, false},
		{false, false, false},
		{false, false, false},
	}, grid.Dead)
	require.NoError(t, err)

	r1 := rotate90(base)
	r2 := rotate90(r1)
	r3 := rotate90(r2)
	m := mirrorHorizontal(base)

	want := gridKey(canonicalForm(base))
	for _, g := range []*grid.Grid{r1, r2, r3, m} {
		assert.Equal(t, want, gridKey(canonicalForm(g)))
	}
}

func TestCanonicalFormNonSquareUnchanged(t *testing.T) {
	g, err := grid.FromRows([][]bool{
		{true, false, false},
		{false, false, false},
	}, grid.Dead)
	require.NoError(t, err)

	assert.Equal(t, gridKey(g), gridKey(canonicalForm(g)))
}
