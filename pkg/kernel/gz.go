package kernel

// gzThreeD is the radial-component kernel:
// r'^2 cosPhi' * (r'*cosPsi - r) / l^3, the derivative of the potential
// kernel with respect to the observation radius, so it is positive
// upward (negative for mass below). pkg/field flips the sign so that the
// reported gz is positive downward.
func gzThreeD(a Angles, obsR, srcR float64) float64 {
	l := Distance(obsR, srcR, a.CosPsi)
	return srcR * srcR * a.CosPhiPrime * (srcR*a.CosPsi - obsR) / (l * l * l)
}

// gzTwoD integrates gzThreeD's r'^2*(r'*cosPsi-r)/l^3 integrand over r'
// analytically, by completing the square on l^2 = (r'-r*cosPsi)^2 +
// r^2*(1-cosPsi^2) and applying the standard reductions for integer
// powers of r' over (u^2+b^2)^{3/2}. c is shorthand for cosPsi.
func gzTwoD(a Angles, obsR, top, bottom float64) (float64, error) {
	rs := newRadialShells(obsR, a.CosPsi, top, bottom)
	c := a.CosPsi
	p2 := (rs.r2 - obsR*c) / rs.l2
	p1 := (rs.r1 - obsR*c) / rs.l1

	integral := c*(rs.l2-rs.l1) +
		c*obsR*obsR*(3-4*c*c)*(1/rs.l2-1/rs.l1) -
		obsR*(4*c*c-1)*(p2-p1) +
		obsR*(3*c*c-1)*rs.ln

	return a.CosPhiPrime * integral, nil
}
