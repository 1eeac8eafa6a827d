package litho

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPupilFilterWideOpenIsPassthrough(t *testing.T) {
	n := N
	rng := rand.New(rand.NewSource(7))
	spectrum := make([]complex128, n*n)
	for i := range spectrum {
		spectrum[i] = complex(rng.Float64(), rng.Float64())
	}
	orig := append([]complex128(nil), spectrum...)

	// The no-op invariant holds once NA*(1+Sigma)/WavelengthNm covers the
	// grid's farthest corner frequency, sqrt(2)*(N/2)*DeltaF ~= 0.0362
	// cycles/nm here; ordinary lens parameters never reach that, so this
	// NA is a deliberately unrealistic probe value, not a usable setting.
	params := PupilParams{WavelengthNm: 248, NA: 10, Sigma: 0, DefocusUm: 0}
	applyPupilFilter(spectrum, n, params)

	for i := range spectrum {
		assert.InDelta(t, real(orig[i]), real(spectrum[i]), 1e-9)
		assert.InDelta(t, imag(orig[i]), imag(spectrum[i]), 1e-9)
	}
}

func TestPupilFilterZeroesOutsideAperture(t *testing.T) {
	n := N
	spectrum := make([]complex128, n*n)
	for i := range spectrum {
		spectrum[i] = complex(1, 0)
	}

	params := PupilParams{WavelengthNm: 248, NA: 0.01, Sigma: 0, DefocusUm: 0}
	applyPupilFilter(spectrum, n, params)

	// The grid corners are far outside any reasonable aperture.
	assert.Equal(t, complex(0, 0), spectrum[0])
	assert.Equal(t, complex(0, 0), spectrum[n*n-1])
}

func TestPupilFilterDefocusAddsPhaseWithinAperture(t *testing.T) {
	n := N
	makeSpectrum := func() []complex128 {
		s := make([]complex128, n*n)
		for i := range s {
			s[i] = complex(1, 0)
		}
		return s
	}

	inFocus := makeSpectrum()
	defocused := makeSpectrum()

	params := DefaultPupilParams()
	applyPupilFilter(inFocus, n, params)

	params.DefocusUm = 0.3
	applyPupilFilter(defocused, n, params)

	// Near DC the defocus phase is negligible, but further out within the
	// aperture it should diverge, since defocus scales with f^2. N/16
	// stays inside DefaultPupilParams' aperture radius (~22.7 bins);
	// N/8 would already fall outside it and read back zero either way.
	edgeIdx := (N/2)*n + (N/2 + N/16)
	assert.NotEqual(t, inFocus[edgeIdx], defocused[edgeIdx])
}
