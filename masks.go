package litho

import "math"

// LineSpaceMask returns an N x N mask of vertical lines of the given
// width alternating with spaces of the given width, both in nanometers,
// the periodic pattern named in the end-to-end "line_space mask"
// scenario. A zero or negative pitch (lineWidthNm+spaceWidthNm) yields
// a blank mask.
func LineSpaceMask(lineWidthNm, spaceWidthNm float64) Mask {
	m := NewMask()
	pitch := lineWidthNm + spaceWidthNm
	if pitch <= 0 {
		return m
	}
	for c := 0; c < N; c++ {
		pos := math.Mod(float64(c)*PixelSizeNm, pitch)
		if pos < lineWidthNm {
			for r := 0; r < N; r++ {
				m[r][c] = 1
			}
		}
	}
	return m
}

// IsolatedLineMask returns an N x N mask containing a single vertical
// line of the given width, in nanometers, centered on the grid.
func IsolatedLineMask(lineWidthNm float64) Mask {
	m := NewMask()
	centerNm := float64(N/2) * PixelSizeNm
	halfWidth := lineWidthNm / 2
	for c := 0; c < N; c++ {
		posNm := float64(c) * PixelSizeNm
		if posNm >= centerNm-halfWidth && posNm < centerNm+halfWidth {
			for r := 0; r < N; r++ {
				m[r][c] = 1
			}
		}
	}
	return m
}

// ImpulseMask returns an N x N mask with a single transparent pixel at
// the grid center, used to probe the pipeline's point-spread response.
func ImpulseMask() Mask {
	m := NewMask()
	m[N/2][N/2] = 1
	return m
}

// ContactHoleMask returns an N x N mask containing a single circular
// opening of the given diameter, in nanometers, centered on the grid
// — the generalized-ellipse-with-equal-axes special case of the
// teacher's elliptical aperture test.
func ContactHoleMask(diameterNm float64) Mask {
	m := NewMask()
	radiusNm := diameterNm / 2
	centerNm := float64(N/2) * PixelSizeNm
	for r := 0; r < N; r++ {
		yNm := float64(r)*PixelSizeNm - centerNm
		for c := 0; c < N; c++ {
			xNm := float64(c)*PixelSizeNm - centerNm
			if insideEllipse(xNm, yNm, 0, 0, radiusNm, radiusNm) {
				m[r][c] = 1
			}
		}
	}
	return m
}

// insideEllipse reports whether (x,y) lies inside or on an axis-aligned
// ellipse centered at (x0,y0) with semi-axes (xSemi,ySemi).
func insideEllipse(x, y, x0, y0, xSemi, ySemi float64) bool {
	dx := (x - x0) / xSemi
	dy := (y - y0) / ySemi
	return dx*dx+dy*dy <= 1.0
}
