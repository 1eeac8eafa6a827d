package litho

import (
	"math"
	"math/cmplx"
)

// applyPupilFilter consumes a centered (post-fftshift) n x n spectrum
// in place: a hard circular aperture cutoff combined with a defocus
// quadratic phase and a Zernike aberration phase. Bins outside the
// aperture are zeroed; in-aperture bins with zero total phase are
// left untouched so that a no-aberration, no-defocus run is a
// bit-exact passthrough.
func applyPupilFilter(spectrum []complex128, n int, p PupilParams) {
	fc := p.NA * (1 + p.Sigma) / p.WavelengthNm // cycles/nm
	fc2 := fc * fc
	kDef := math.Pi * p.WavelengthNm * (p.DefocusUm * 1000) // um -> nm

	half := n / 2
	hasZernike := p.Zernike.hasNonZero()

	for r := 0; r < n; r++ {
		fy := float64(r-half) * DeltaF
		for c := 0; c < n; c++ {
			fx := float64(c-half) * DeltaF
			f2 := fx*fx + fy*fy
			idx := r*n + c

			if f2 > fc2 {
				spectrum[idx] = 0
				continue
			}

			phase := kDef * f2
			if hasZernike {
				rho := math.Sqrt(f2) / fc
				theta := math.Atan2(fy, fx)
				phase += 2 * math.Pi * zernikePhaseError(rho, theta, p.Zernike)
			}
			if phase != 0 {
				spectrum[idx] *= cmplx.Exp(complex(0, phase))
			}
		}
	}
}
