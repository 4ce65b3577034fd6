package kernel

// Component tags one of the ten field quantities a tesseroid model can
// be evaluated for.
type Component int

const (
	V Component = iota
	Gx
	Gy
	Gz
	Gxx
	Gxy
	Gxz
	Gyy
	Gyz
	Gzz
)

// String returns the component's conventional short name.
func (c Component) String() string {
	switch c {
	case V:
		return "v"
	case Gx:
		return "gx"
	case Gy:
		return "gy"
	case Gz:
		return "gz"
	case Gxx:
		return "gxx"
	case Gxy:
		return "gxy"
	case Gxz:
		return "gxz"
	case Gyy:
		return "gyy"
	case Gyz:
		return "gyz"
	case Gzz:
		return "gzz"
	default:
		return "unknown"
	}
}

// Order returns the differentiation order of the component: 0 for the
// potential, 1 for its gradient, 2 for its gradient tensor. The field
// evaluator uses this to pick the output unit (SI, mGal or Eotvos).
func (c Component) Order() int {
	switch c {
	case V:
		return 0
	case Gx, Gy, Gz:
		return 1
	default:
		return 2
	}
}

// Algorithm tags which quadrature scheme evaluates a component: full
// 3-D GLQ over latitude, longitude and radius, or 2-D GLQ over latitude
// and longitude with the radial integral carried out analytically.
type Algorithm int

const (
	ThreeD Algorithm = iota
	TwoD
)

func (a Algorithm) String() string {
	if a == TwoD {
		return "2D"
	}
	return "3D"
}

// Func3D evaluates one component's pointwise integrand at a single GLQ
// node (a, obsLat/obsLon/obsR observation point; srcLat/srcLon/srcR one
// quadrature node inside the tesseroid). The caller multiplies the
// result by the corresponding GLQ weights and the shared scale factor.
type Func3D func(a Angles, obsR, srcR float64) float64

// Func2D evaluates one component's integrand at a single (lat, lon) GLQ
// node with the radial integral between bottom and top already carried
// out analytically. It returns an unsupportedAlgorithmError when the
// component has no implemented closed form.
type Func2D func(a Angles, obsR, top, bottom float64) (float64, error)

// entry bundles a component's two evaluators.
type entry struct {
	threeD Func3D
	twoD   Func2D
}

var registry = map[Component]entry{
	V:   {threeD: vThreeD, twoD: vTwoD},
	Gx:  {threeD: gxThreeD, twoD: gxTwoD},
	Gy:  {threeD: gyThreeD, twoD: gyTwoD},
	Gz:  {threeD: gzThreeD, twoD: gzTwoD},
	Gxx: {threeD: gxxThreeD, twoD: gxxTwoD},
	Gxy: {threeD: gxyThreeD, twoD: gxyTwoD},
	Gxz: {threeD: gxzThreeD, twoD: gxzTwoD},
	Gyy: {threeD: gyyThreeD, twoD: gyyTwoD},
	Gyz: {threeD: gyzThreeD, twoD: gyzTwoD},
	Gzz: {threeD: gzzThreeD, twoD: gzzTwoD},
}

// Lookup returns the pointwise evaluator pair for a component.
func Lookup(c Component) (Func3D, Func2D, bool) {
	e, ok := registry[c]
	if !ok {
		return nil, nil, false
	}
	return e.threeD, e.twoD, true
}

// Parse resolves a component's conventional short name (case-sensitive,
// e.g. "gzz") back to its Component value, for request bodies and CLI
// arguments that name a component by string.
func Parse(name string) (Component, bool) {
	for c := V; c <= Gzz; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
