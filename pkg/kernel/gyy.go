package kernel

// gyyThreeD is the east-east tensor kernel: the flat second
// lambda-derivative of the potential kernel plus the (1/r)*gz and
// -(tanPhi/r)*gx connection terms the sphere's metric adds (h_lambda =
// r*cosPhi depends on both r and phi). These are the same connection
// terms whose radially-integrated forms are the KVr/KVphi contributions
// of the Gyy 2-D closed form this file's twoD variant transcribes.
func gyyThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	l3 := l * l * l
	l5 := l3 * l * l
	srcR4 := srcR * srcR * srcR * srcR
	srcR3 := srcR * srcR * srcR
	term := 3*srcR4*a.CosPsiLambda*a.CosPsiLambda/l5 + srcR3*a.CosPsiLambdaLambda/(obsR*l3)
	flat := (a.CosPhiPrime / (a.CosPhi * a.CosPhi)) * term
	return flat + gzThreeD(a, obsR, srcR)/obsR - (a.SinPhi/(obsR*a.CosPhi))*gxThreeD(a, obsR, srcR)
}

// gyyTwoD is grounded directly on the original GyyCalculator2D.h.
func gyyTwoD(a Angles, obsR, top, bottom float64) (float64, error) {
	rs := newRadialShells(obsR, a.CosPsi, top, bottom)
	r := obsR
	r2v := r * r
	cosPsi := a.CosPsi
	cosPsiPhi := a.CosPsiPhi
	cosPsiLamb := a.CosPsiLambda
	cosPsiLamb2 := cosPsiLamb * cosPsiLamb
	cosPsiLambLamb := a.CosPsiLambdaLambda

	r1, r2 := rs.r1, rs.r2
	r1_2, r2_2 := r1*r1, r2*r2
	l1, l2 := rs.l1, rs.l2
	r1l1 := r1 / l1
	r2l2 := r2 / l2
	lntop := l2 + r2 - r*cosPsi
	lnbot := l1 + r1 - r*cosPsi
	cosPsi21 := 3*cosPsi*cosPsi - 1
	ln := rs.ln
	sumt6 := (r1+l1)/(l1*lnbot) - (r2+l2)/(l2*lntop)

	t1 := (r * r2l2 * r2l2 / l2) * (r*r2*cosPsiLamb2 + l2*l2*cosPsiLambLamb)
	t2 := (r * r1l1 * r1l1 / l1) * (r*r1*cosPsiLamb2 + l1*l1*cosPsiLambLamb)
	t3 := 3 * r2v * cosPsiLamb2 * (2*(r1l1-r2l2) + r*cosPsi*(r1l1*r1l1/l1-r2l2*r2l2/l2))
	t4 := 3 * r * cosPsiLambLamb * (l2 - l1 + r*cosPsi*(r1l1-r2l2))
	t5 := 6 * r2v * ln * (cosPsiLamb2 + cosPsiLambLamb*cosPsi)
	t6 := r2v * r * (12*cosPsi*cosPsiLamb2 + cosPsiLambLamb*cosPsi21) * sumt6
	t7 := r2v * r2v * cosPsiLamb2 * cosPsi21 * (
		(r1*lnbot-(r1+l1)*(r1l1*lnbot+r1+l1))/(l1*l1*lnbot*lnbot) -
			(r2*lntop-(r2+l2)*(r2l2*lntop+r2+l2))/(l2*l2*lntop*lntop))
	kvLamb2 := 0.5 * (t2 - t1 + t3 + t4 + t5 + t6 - t7)
	kvPhi := (cosPsiPhi / 2) * (r*r1*r1l1 - r*r2*r2l2 + 3*r*(l2-l1+r*cosPsi*(r1l1-r2l2)) + 6*r2v*cosPsi*ln + r2v*r*cosPsi21*sumt6)
	kvR := ((r2*l2)-(r1*l1)+(3*r*cosPsi*(l2-l1))+(r2v*cosPsi21*ln)-(r2l2*r2_2+r1l1*r1_2)) / r

	kv := a.CosPhiPrime * ((kvLamb2 + r*a.CosPhi*a.CosPhi*kvR - a.CosPhi*a.SinPhi*kvPhi) / (r2v * a.CosPhi * a.CosPhi))
	return kv, nil
}
