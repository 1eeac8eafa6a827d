// Package litho implements the numeric core of an interactive
// partially-coherent optical lithography simulator: a radix-2 FFT, a
// Zernike/defocus pupil filter, the mask -> aerial-image pipeline, CD
// measurement, a Bossung (focus/dose) sweep, and an observable
// parameter store that coalesces edits to display-rate boundaries.
//
// Everything outside this package — mask painting, layout, colormap
// rendering, resist thresholding for display, chart rendering, and
// file/HTTP serving — is a collaborator concern. See cmd/aerialsim-demo
// for a reference driver that plays that role.
package litho

// N is the fixed grid size used throughout the core. The FFT requires
// a power of two; the rest of the pipeline is specified only for 256.
const N = 256

// PixelSizeNm is the physical length represented by one sample of the
// N x N grid, in nanometers. N*PixelSizeNm is the ~5um field of view.
const PixelSizeNm = 19.53125

// DeltaF is the spatial-frequency spacing between adjacent bins of the
// centered spectrum, in cycles/nm.
const DeltaF = 1.0 / (N * PixelSizeNm)

// Mask is an N x N grid of binary (0 or 1) values, row-major.
type Mask [][]float64

// NewMask allocates a zero-filled N x N mask.
func NewMask() Mask {
	m := make(Mask, N)
	for r := range m {
		m[r] = make([]float64, N)
	}
	return m
}

// IntensityImage is an N x N grid of normalized intensities in [0,1].
// Internal computation runs in double precision; this is the
// single-precision form handed to callers, per spec.
type IntensityImage [][]float32

func newIntensityImage() IntensityImage {
	m := make(IntensityImage, N)
	for r := range m {
		m[r] = make([]float32, N)
	}
	return m
}

// ZernikeCoeffs holds the eight Noll-ordered Zernike coefficients
// Z4..Z11, in units of waves.
type ZernikeCoeffs struct {
	Z4, Z5, Z6, Z7, Z8, Z9, Z10, Z11 float64
}

func (c ZernikeCoeffs) array() [8]float64 {
	return [8]float64{c.Z4, c.Z5, c.Z6, c.Z7, c.Z8, c.Z9, c.Z10, c.Z11}
}

func (c ZernikeCoeffs) hasNonZero() bool {
	for _, v := range c.array() {
		if v != 0 {
			return true
		}
	}
	return false
}

// PupilParams describes the optical configuration applied to a single
// pipeline run.
type PupilParams struct {
	WavelengthNm float64 // nm, [193,365]
	NA           float64 // unitless, [0.1,1.4]
	Sigma        float64 // unitless, [0,1]
	DefocusUm    float64 // um, [-2,+2]
	Zernike      ZernikeCoeffs
}

// DefaultPupilParams returns the optical defaults from spec.md section 6.
func DefaultPupilParams() PupilParams {
	return PupilParams{
		WavelengthNm: 248,
		NA:           0.75,
		Sigma:        0.5,
		DefocusUm:    0,
	}
}

// ViewParams holds the view-time (not simulation-time) display knobs.
type ViewParams struct {
	Threshold       float64 // [0,1]
	CrossSectionRow int     // [0,N-1]
}

// DefaultViewParams returns the view defaults from spec.md section 6.
func DefaultViewParams() ViewParams {
	return ViewParams{Threshold: 0.3, CrossSectionRow: 128}
}

// PipelineResult is the output of a single mask -> aerial-image run.
type PipelineResult struct {
	Intensity IntensityImage
	TimeMs    float64
}
