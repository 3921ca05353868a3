package variables

// LazyManager assigns ids in first-request order via a hash map,
// keeping the id space dense even when the caller never requests
// variables the Dead boundary would have read as out of range.
// internal/engine uses DenseManager rather than this type.
type LazyManager struct {
	w, h, t1 int
	ids      map[[3]int]int
	count    int
}

var _ Manager = (*LazyManager)(nil)

// NewLazyManager returns a Manager over coordinates in
// [0,w) x [0,h) x [0,t1).
func NewLazyManager(w, h, t1 int) *LazyManager {
	return &LazyManager{
		w: w, h: h, t1: t1,
		ids: make(map[[3]int]int),
	}
}

func (m *LazyManager) Var(x, y, t int) (int, error) {
	if err := checkBounds(x, y, t, m.w, m.h, m.t1); err != nil {
		return 0, err
	}
	key := [3]int{x, y, t}
	if id, ok := m.ids[key]; ok {
		return id, nil
	}
	m.count++
	m.ids[key] = m.count
	return m.count, nil
}

func (m *LazyManager) VariableCount() int { return m.count }

func (m *LazyManager) Dims() (w, h, t1 int) { return m.w, m.h, m.t1 }
