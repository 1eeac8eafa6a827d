package litho

import "math"

// zernikeTerm evaluates the Noll-indexed Zernike polynomial (index in
// [4,11]) at normalized polar coordinates (rho, theta).
func zernikeTerm(index int, rho, theta float64) float64 {
	rho2 := rho * rho
	rho3 := rho2 * rho
	rho4 := rho2 * rho2
	switch index {
	case 4: // defocus
		return math.Sqrt(3) * (2*rho2 - 1)
	case 5: // oblique astigmatism
		return math.Sqrt(6) * rho2 * math.Sin(2*theta)
	case 6: // vertical astigmatism
		return math.Sqrt(6) * rho2 * math.Cos(2*theta)
	case 7: // vertical coma
		return math.Sqrt(8) * (3*rho3 - 2*rho) * math.Sin(theta)
	case 8: // horizontal coma
		return math.Sqrt(8) * (3*rho3 - 2*rho) * math.Cos(theta)
	case 9: // spherical
		return math.Sqrt(5) * (6*rho4 - 6*rho2 + 1)
	case 10: // oblique trefoil
		return math.Sqrt(8) * rho3 * math.Sin(3*theta)
	case 11: // vertical trefoil
		return math.Sqrt(8) * rho3 * math.Cos(3*theta)
	}
	return 0
}

// zernikePhaseError returns the sum of coefficient * Zernike(index) in
// units of waves, for Noll indices Z4..Z11. Terms with a zero
// coefficient are skipped.
func zernikePhaseError(rho, theta float64, coeffs ZernikeCoeffs) float64 {
	if !coeffs.hasNonZero() {
		return 0
	}
	sum := 0.0
	vals := coeffs.array()
	for i, c := range vals {
		if c == 0 {
			continue
		}
		sum += c * zernikeTerm(i+4, rho, theta)
	}
	return sum
}
