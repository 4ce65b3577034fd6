package kernel

// vThreeD is the Newtonian potential kernel r'^2 cosPhi' / l, integrated
// by 3-D GLQ over latitude, longitude and radius.
func vThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	return srcR * srcR * a.CosPhiPrime / l
}

// vTwoD carries out the radial integral of vThreeD's integrand
// analytically (completing the square on l^2 and applying the standard
// reductions for integer powers of r' over sqrt(quadratic)), leaving a
// 2-D GLQ over latitude and longitude.
func vTwoD(a Angles, obsR, top, bottom float64) (float64, error) {
	rs := newRadialShells(obsR, a.CosPsi, top, bottom)
	cosPsi2 := 3*a.CosPsi*a.CosPsi - 1
	integral := (rs.r2*rs.l2-rs.r1*rs.l1)/2 +
		1.5*obsR*a.CosPsi*(rs.l2-rs.l1) +
		(obsR*obsR/2)*cosPsi2*rs.ln
	return a.CosPhiPrime * integral, nil
}
