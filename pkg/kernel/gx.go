package kernel

// gxThreeD is the north-component kernel, grounded directly on the
// original GxCalculator3D.h: r'^3 cosPhi' * d(cosPsi)/d(phi) / l^3.
func gxThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	return srcR * srcR * srcR * a.CosPhiPrime * a.CosPsiPhi / (l * l * l)
}

// gxTwoD has no implemented analytic-in-r closed form; original_source
// only retrieved a 3-D GLQ implementation of this component. Callers
// needing the 2-D algorithm for gx should request the 3-D variant
// instead; see DESIGN.md.
var gxTwoD = unsupportedTwoD("gx")
