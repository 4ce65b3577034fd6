package kernel

// gxyThreeD is the north-east tensor kernel: the flat mixed
// phi-lambda derivative of the potential kernel plus the
// -(tanPhi/r)*gy connection term (h_lambda = r*cosPhi depends on r);
// see gxx for the same construction applied to the other diagonal.
func gxyThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	l3 := l * l * l
	l5 := l3 * l * l
	srcR4 := srcR * srcR * srcR * srcR
	srcR3 := srcR * srcR * srcR
	term := 3*srcR4*a.CosPsiPhi*a.CosPsiLambda/l5 + srcR3*a.CosPsiPhiLambda/(obsR*l3)
	flat := (a.CosPhiPrime / a.CosPhi) * term
	return flat - (a.SinPhi/(obsR*a.CosPhi))*gyThreeD(a, obsR, srcR)
}

// gxyTwoD is grounded directly on the original GxyCalculator2D.h.
func gxyTwoD(a Angles, obsR, top, bottom float64) (float64, error) {
	rs := newRadialShells(obsR, a.CosPsi, top, bottom)
	r := obsR
	r2v := r * r
	cosPsi := a.CosPsi
	cosPsiPhi := a.CosPsiPhi
	cosPsiLamb := a.CosPsiLambda
	cosPsiPhiLamb := a.CosPsiPhiLambda
	cosPsiPhiXLamb := cosPsiPhi * cosPsiLamb

	r1, r2 := rs.r1, rs.r2
	l1, l2 := rs.l1, rs.l2
	l1_2, l2_2 := l1*l1, l2*l2
	rr1l1 := r * r1 / l1
	rr2l2 := r * r2 / l2
	lntop := l2 + r2 - r*cosPsi
	lnbot := l1 + r1 - r*cosPsi
	cosPsi21 := 3*cosPsi*cosPsi - 1
	sumt3 := l2 - l1 + cosPsi*(rr1l1-rr2l2)
	sumt6 := (r1+l1)/(l1*lnbot) - (r2+l2)/(l2*lntop)
	ln := rs.ln

	t1 := (rr2l2 * r2 / l2_2) * (l2_2*cosPsiPhiLamb + r*r2*cosPsiPhiXLamb)
	t2 := (rr1l1 * r1 / l1_2) * (l1_2*cosPsiPhiLamb + r*r1*cosPsiPhiXLamb)
	t3 := 3 * r * cosPsiPhiLamb * sumt3
	t4 := 6 * r2v * ln * (cosPsi*cosPsiPhiLamb + cosPsiPhiXLamb)
	t5 := 3 * r * cosPsiPhiXLamb * (2*(rr1l1-rr2l2) + cosPsi*cosPsiLamb*(rr1l1*rr1l1/l1-rr2l2*rr2l2/l2))
	t6 := r2v * r * (cosPsi21*cosPsiPhiLamb + 12*cosPsi*cosPsiPhiXLamb) * sumt6
	t7 := r2v * r2v * cosPsi21 * cosPsiPhiXLamb * (
		(r1*lnbot-(r1+l1)*(r1/l1*lnbot+r1+l1))/(l1_2*lnbot*lnbot) -
			(r2*lntop-(r2+l2)*(r2/l2*lntop+r2+l2))/(l2_2*lntop*lntop))
	kvPhiLamb := 0.5 * (t2 - t1 + t3 + t4 + t5 + t6 - t7)
	kvLamb := 0.5 * cosPsiLamb * (rr1l1*r1 - rr2l2*r2 + 3*r*sumt3 + 6*r2v*cosPsi*ln + r2v*r*cosPsi21*sumt6)

	kv := a.CosPhiPrime * ((kvPhiLamb + (a.SinPhi/a.CosPhi)*kvLamb) / (r2v * a.CosPhi))
	return kv, nil
}
