package litho

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZernikeTermDefocusAtCenterIsConstant(t *testing.T) {
	// Z4 (defocus) at rho=0 is -sqrt(3) regardless of theta.
	v1 := zernikeTerm(4, 0, 0)
	v2 := zernikeTerm(4, 0, 2.5)
	assert.InDelta(t, v1, v2, 1e-12)
	assert.InDelta(t, -math.Sqrt(3), v1, 1e-12)
}

func TestZernikeTermUnknownIndexIsZero(t *testing.T) {
	assert.Equal(t, 0.0, zernikeTerm(99, 0.5, 0.5))
}

func TestZernikePhaseErrorSkipsZeroCoefficients(t *testing.T) {
	coeffs := ZernikeCoeffs{Z7: 0.3}
	got := zernikePhaseError(0.6, 1.1, coeffs)
	want := 0.3 * zernikeTerm(7, 0.6, 1.1)
	assert.InDelta(t, want, got, 1e-12)
}

func TestZernikePhaseErrorAllZeroIsZero(t *testing.T) {
	assert.Equal(t, 0.0, zernikePhaseError(0.5, 0.5, ZernikeCoeffs{}))
}

func TestZernikeCoeffsHasNonZero(t *testing.T) {
	assert.False(t, ZernikeCoeffs{}.hasNonZero())
	assert.True(t, ZernikeCoeffs{Z11: 0.01}.hasNonZero())
}
