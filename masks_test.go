package litho

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countOnes(m Mask) int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestImpulseMaskHasExactlyOneOpenPixel(t *testing.T) {
	m := ImpulseMask()
	assert.Equal(t, 1, countOnes(m))
	assert.Equal(t, 1.0, m[N/2][N/2])
}

func TestIsolatedLineMaskIsVerticalAndCentered(t *testing.T) {
	m := IsolatedLineMask(90)
	for r := 0; r < N; r++ {
		assert.Equal(t, m[0][N/2], m[r][N/2])
	}
	assert.Greater(t, countOnes(m), 0)
}

func TestLineSpaceMaskIsPeriodic(t *testing.T) {
	m := LineSpaceMask(90, 90)
	total := countOnes(m)
	assert.Greater(t, total, 0)
	assert.Less(t, total, N*N)
}

func TestLineSpaceMaskZeroPitchIsBlank(t *testing.T) {
	m := LineSpaceMask(0, 0)
	assert.Equal(t, 0, countOnes(m))
}

func TestContactHoleMaskIsCircular(t *testing.T) {
	m := ContactHoleMask(180)
	assert.Equal(t, 1.0, m[N/2][N/2])
	assert.Equal(t, 0.0, m[0][0])
}
