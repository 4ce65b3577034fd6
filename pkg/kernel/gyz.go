package kernel

// gyzThreeD is the east-down tensor kernel: the flat mixed
// lambda-radius derivative of the potential kernel plus the -(1/r)*gy
// connection term (h_lambda = r*cosPhi depends on r); see gxx/gyy for
// the same construction applied to the horizontal-horizontal pairs.
func gyzThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	l3 := l * l * l
	l5 := l3 * l * l
	srcR3 := srcR * srcR * srcR
	bracket := 1/l3 + 3*obsR*(srcR*a.CosPsi-obsR)/l5
	flat := (srcR3 * a.CosPhiPrime * a.CosPsiLambda / (obsR * a.CosPhi)) * bracket
	return flat - gyThreeD(a, obsR, srcR)/obsR
}

// gyzTwoD is grounded directly on the original GyzCalculator2D.h.
func gyzTwoD(a Angles, obsR, top, bottom float64) (float64, error) {
	rs := newRadialShells(obsR, a.CosPsi, top, bottom)
	r := obsR
	r2v := r * r
	cosPsi := a.CosPsi
	cosPsiLamb := a.CosPsiLambda

	r1, r2 := rs.r1, rs.r2
	r1_2, r2_2 := r1*r1, r2*r2
	l1, l2 := rs.l1, rs.l2
	l1_2, l2_2 := l1*l1, l2*l2
	rr1l1 := r * r1 / l1
	rr2l2 := r * r2 / l2
	lntop := l2 + r2 - r*cosPsi
	lnbot := l1 + r1 - r*cosPsi
	cosPsi21 := 3*cosPsi*cosPsi - 1
	ln := rs.ln
	sumt3 := l2 - l1 + cosPsi*(rr1l1-rr2l2)
	sumt6 := (r1+l1)/(l1*lnbot) - (r2+l2)/(l2*lntop)

	base := rr1l1*r1 - rr2l2*r2 + 3*r*sumt3 + 6*r2v*cosPsi*ln + r2v*r*cosPsi21*sumt6
	kvLambR := (cosPsiLamb / r) * (rr1l1*r1*r1_2/l1_2 - rr2l2*r2*r2_2/l2_2 + base)
	kvLamb := 0.5 * cosPsiLamb * base

	kv := a.CosPhiPrime * ((kvLamb/r - kvLambR) / (r * a.CosPhi))
	return kv, nil
}
