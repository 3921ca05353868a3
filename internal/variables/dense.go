package variables

// DenseManager pre-allocates ids by the closed form
// id = 1 + t*W*H + y*W + x, eliminating the hash lookup LazyManager
// pays for. Conformant per spec §4.A: "implementations MAY
// pre-allocate... so long as ids are unique positives."
type DenseManager struct {
	w, h, t1 int
}

var _ Manager = (*DenseManager)(nil)

// NewDenseManager returns a Manager over coordinates in
// [0,w) x [0,h) x [0,t1).
func NewDenseManager(w, h, t1 int) *DenseManager {
	return &DenseManager{w: w, h: h, t1: t1}
}

func (m *DenseManager) Var(x, y, t int) (int, error) {
	if err := checkBounds(x, y, t, m.w, m.h, m.t1); err != nil {
		return 0, err
	}
	return 1 + t*m.w*m.h + y*m.w + x, nil
}

func (m *DenseManager) VariableCount() int {
	return m.w * m.h * m.t1
}

func (m *DenseManager) Dims() (w, h, t1 int) { return m.w, m.h, m.t1 }
