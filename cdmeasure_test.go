package litho

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flatIntensity(value float32) IntensityImage {
	img := newIntensityImage()
	for r := range img {
		for c := range img[r] {
			img[r][c] = value
		}
	}
	return img
}

func TestMeasureCDNoRunReturnsZero(t *testing.T) {
	img := flatIntensity(0)
	assert.Equal(t, 0.0, MeasureCD(img, 1.0))
}

func TestMeasureCDFullRowPrints(t *testing.T) {
	img := flatIntensity(1)
	got := MeasureCD(img, 1.0)
	assert.InDelta(t, float64(N)*PixelSizeNm, got, 1e-9)
}

func TestMeasureCDMonotonicInDose(t *testing.T) {
	img := newIntensityImage()
	row := N / 2
	for c := N/2 - 10; c < N/2+10; c++ {
		img[row][c] = 0.5
	}

	lowDose := MeasureCD(img, 1.0)  // 0.5 * 1.0 < 1.0, nothing printed
	highDose := MeasureCD(img, 3.0) // 0.5 * 3.0 >= 1.0, run prints

	assert.Equal(t, 0.0, lowDose)
	assert.Greater(t, highDose, lowDose)
}

func TestMeasureCDTieBreaksTowardCenter(t *testing.T) {
	img := newIntensityImage()
	row := N / 2
	// Two equal-length runs, one nearer the center column than the other.
	for c := 10; c < 20; c++ {
		img[row][c] = 1
	}
	for c := N/2 - 5; c < N/2+5; c++ {
		img[row][c] = 1
	}

	got := MeasureCD(img, 1.0)
	assert.InDelta(t, 10*PixelSizeNm, got, 1e-9)
}
