package variables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// managerConstructors lets the conformance suite below run identically
// against every Manager implementation, matching spec §8 invariant 1
// ("variable uniqueness") for each conformant strategy.
var managerConstructors = map[string]func(w, h, t1 int) Manager{
	"lazy":  func(w, h, t1 int) Manager { return NewLazyManager(w, h, t1) },
	"dense": func(w, h, t1 int) Manager { return NewDenseManager(w, h, t1) },
}

func TestManagerConformance(t *testing.T) {
	for name, ctor := range managerConstructors {
		ctor := ctor
		t.Run(name, func(t *testing.T) {
			m := ctor(3, 2, 4)

			t.Run("idempotent", func(t *testing.T) {
				id1, err := m.Var(1, 1, 2)
				require.NoError(t, err)
				id2, err := m.Var(1, 1, 2)
				require.NoError(t, err)
				assert.Equal(t, id1, id2)
			})

			t.Run("positive and unique", func(t *testing.T) {
				seen := make(map[int][3]int)
				for t1 := 0; t1 < 4; t1++ {
					for y := 0; y < 2; y++ {
						for x := 0; x < 3; x++ {
							id, err := m.Var(x, y, t1)
							require.NoError(t, err)
							assert.Greater(t, id, 0)
							if prior, ok := seen[id]; ok {
								t.Fatalf("id %d reused for %v and %v", id, prior, [3]int{x, y, t1})
							}
							seen[id] = [3]int{x, y, t1}
						}
					}
				}
				assert.Equal(t, 3*2*4, m.VariableCount())
			})

			t.Run("out of bounds", func(t *testing.T) {
				for _, c := range [][3]int{{-1, 0, 0}, {3, 0, 0}, {0, -1, 0}, {0, 2, 0}, {0, 0, -1}, {0, 0, 4}} {
					_, err := m.Var(c[0], c[1], c[2])
					require.Error(t, err)
					assert.ErrorIs(t, err, ErrOutOfBounds)
				}
			})
		})
	}
}

func TestDenseManagerClosedForm(t *testing.T) {
	m := NewDenseManager(4, 3, 2)
	id, err := m.Var(2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1+1*4*3+1*4+2, id)
}
