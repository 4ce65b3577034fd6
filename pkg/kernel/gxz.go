package kernel

// gxzThreeD is grounded directly on the original GxzCalculator3D.h,
// simplified algebraically to 3*r'^3*cosPhi'*(r - r'*cosPsi)*cosPsiPhi/l^5.
func gxzThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	l5 := l * l * l * l * l
	return 3 * srcR * srcR * srcR * a.CosPhiPrime * (obsR - srcR*a.CosPsi) * a.CosPsiPhi / l5
}

// gxzTwoD has no implemented analytic-in-r closed form; original_source
// only retrieved a 3-D GLQ implementation of this component. See
// DESIGN.md.
var gxzTwoD = unsupportedTwoD("gxz")
