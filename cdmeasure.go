package litho

// MeasureCD scans the center row of an intensity image for the
// widest contiguous run of "printed" pixels — intensity*dose >= 1.0,
// a threshold fixed at 1.0 in CD units and independent of the
// view-time ViewParams.Threshold slider (spec.md section 4.5, section
// 9 open question 2) — and returns its physical width in nanometers.
// Ties go to the run whose center column is closest to N/2. Zero is
// returned when no run qualifies.
func MeasureCD(intensity IntensityImage, dose float64) float64 {
	row := N / 2

	bestLen := 0
	bestCenterDist := -1.0
	runStart := -1

	consider := func(start, end int) { // [start, end)
		length := end - start
		if length <= 0 {
			return
		}
		center := float64(start+end-1) / 2.0
		dist := center - float64(N)/2.0
		if dist < 0 {
			dist = -dist
		}
		if length > bestLen || (length == bestLen && dist < bestCenterDist) {
			bestLen = length
			bestCenterDist = dist
		}
	}

	for i := 0; i <= N; i++ {
		printed := i < N && float64(intensity[row][i])*dose >= 1.0
		if printed {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			consider(runStart, i)
			runStart = -1
		}
	}

	if bestLen == 0 {
		return 0
	}
	return float64(bestLen) * PixelSizeNm
}
