package quadrature

import "math"

const (
	maxNewtonIterations = 10000
	newtonTolerance     = 0.000000000000001 // 1e-15
)

// Abscissas holds the N roots of the Legendre polynomial of degree N on
// [-1, 1], found by Newton's method with deflation (Barrera-Figueroa et
// al., 2006). They are the unscaled Gauss-Legendre quadrature nodes.
type Abscissas struct {
	order int
	nodes []float64
}

// NewAbscissas computes the order-N set of Legendre roots. Order must be
// at least 2.
func NewAbscissas(order int) (*Abscissas, error) {
	if order < 2 {
		return nil, ErrOrderTooSmall
	}

	nodes := make([]float64, order)
	n := float64(order)
	for i := 0; i < order; i++ {
		guess := math.Cos(math.Pi * ((float64(i+1) - 0.25) / (n + 0.5)))
		root, _ := newtonRoot(guess, order, nodes[:i])
		nodes[i] = root
	}

	return &Abscissas{order: order, nodes: nodes}, nil
}

// Order returns the quadrature order N.
func (a *Abscissas) Order() int {
	return a.order
}

// Nodes returns the unscaled roots on [-1, 1].
func (a *Abscissas) Nodes() []float64 {
	return a.nodes
}

// Scaled maps the unscaled nodes onto [lo, hi] by the standard affine
// rescaling x' = (hi-lo)/2 * x + (hi+lo)/2.
func (a *Abscissas) Scaled(lo, hi float64) []float64 {
	out := make([]float64, a.order)
	half := (hi - lo) / 2
	mid := (hi + lo) / 2
	for i, x := range a.nodes {
		out[i] = half*x + mid
	}
	return out
}

// legendre evaluates the Legendre polynomial of degree n and its
// derivative at x via the three-term recurrence, returning (Pn, Pn').
func legendre(n int, x float64) (pn, pnPrime float64) {
	p0, p1 := 1.0, x
	if n == 0 {
		return p0, 0
	}
	for k := 2; k <= n; k++ {
		kf := float64(k)
		p2 := ((2*kf-1)*x*p1 - (kf-1)*p0) / kf
		p0, p1 = p1, p2
	}
	pnPrime = float64(n) * (x*p1 - p0) / (x*x - 1)
	return p1, pnPrime
}

// newtonRoot refines an initial guess for the len(priorRoots)-th root of the
// degree-order Legendre polynomial, deflating against the roots already
// found so the iteration does not collapse back onto one of them.
func newtonRoot(guess float64, order int, priorRoots []float64) (float64, error) {
	x0 := guess
	for iterations := 0; ; iterations++ {
		pn, pnPrime := legendre(order, x0)

		deflate := 0.0
		for _, r := range priorRoots {
			deflate += 1 / (x0 - r)
		}

		x1 := x0 - pn/(pnPrime-pn*deflate)
		if math.Abs(x1-x0) <= newtonTolerance {
			return x1, nil
		}
		if iterations >= maxNewtonIterations {
			return x1, ErrStagnatedRoot
		}
		x0 = x1
	}
}
