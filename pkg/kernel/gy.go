package kernel

// gyThreeD is the east-component kernel. Derived the same way as gx
// (local derivative operator (1/(r*cosPhi)) d/dLambda applied to the
// potential kernel): the cosPhi introduced by the operator and the one
// hidden inside d(cosPsi)/d(lambda) cancel, leaving
// -r'^3 cosPhi'^2 sin(deltaLambda) / l^3.
func gyThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	return -srcR * srcR * srcR * a.CosPhiPrime * a.CosPhiPrime * a.SinDeltaLambda / (l * l * l)
}

// gyTwoD has no implemented analytic-in-r closed form; see DESIGN.md.
var gyTwoD = unsupportedTwoD("gy")
