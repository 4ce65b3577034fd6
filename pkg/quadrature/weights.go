package quadrature

// Weights holds the GLQ weight for each node in an Abscissas set. Weights
// are computed purely from the unscaled nodes and sum to 2 over [-1, 1];
// the Jacobian for an arbitrary [lo, hi] interval is folded into the
// kernel scale factors rather than into the weights themselves, matching
// how the quadrature tables are consumed by pkg/field.
type Weights struct {
	order  int
	values []float64
}

// NewWeights computes the weight for every node of abs.
func NewWeights(abs *Abscissas) *Weights {
	values := make([]float64, abs.Order())
	for i, x := range abs.Nodes() {
		_, pnPrime := legendre(abs.Order(), x)
		values[i] = 2 / ((1 - x*x) * pnPrime * pnPrime)
	}
	return &Weights{order: abs.Order(), values: values}
}

// Order returns the quadrature order N.
func (w *Weights) Order() int {
	return w.order
}

// Values returns the per-node weights, in the same order as the
// corresponding Abscissas' nodes.
func (w *Weights) Values() []float64 {
	return w.values
}
