package kernel

// gzzThreeD is the second radial derivative of the potential kernel:
// r'^2 cosPhi' * (3*(r'*cosPsi-r)^2/l^5 - 1/l^3).
func gzzThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	l3 := l * l * l
	l5 := l3 * l * l
	diff := srcR*a.CosPsi - obsR
	return srcR * srcR * a.CosPhiPrime * (3*diff*diff/l5 - 1/l3)
}

// gzzTwoD is grounded directly on the original GzzCalculator2D.h.
func gzzTwoD(a Angles, obsR, top, bottom float64) (float64, error) {
	rs := newRadialShells(obsR, a.CosPsi, top, bottom)
	r1l1 := rs.r1 * rs.r1 * rs.r1 / (2 * rs.l1)
	r2l2 := rs.r2 * rs.r2 * rs.r2 / (2 * rs.l2)
	r2 := obsR * obsR

	kv := r1l1 - r2l2 - rs.r1*rs.l1 + rs.r2*rs.l2 -
		r1l1*(r2-rs.r1*rs.r1)/(rs.l1*rs.l1) +
		r2l2*(r2-rs.r2*rs.r2)/(rs.l2*rs.l2) +
		3*obsR*a.CosPsi*(rs.l2-rs.l1) +
		r2*(3*a.CosPsi*a.CosPsi-1)*rs.ln

	return a.CosPhiPrime * kv / r2, nil
}
