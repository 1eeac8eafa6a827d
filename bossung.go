package litho

import "time"

// BossungParams configures a focus/dose sweep.
type BossungParams struct {
	FocusMinUm, FocusMaxUm float64
	FocusSteps             int // odd, >= 3 (1 is accepted as a midpoint special case)
	DoseMin, DoseMax       float64
	DoseSteps              int // >= 1
}

// BossungPoint is one (focus, CD) sample on a Bossung curve.
type BossungPoint struct {
	FocusUm float64
	CDNm    float64
}

// BossungCurve is the set of (focus, CD) points measured at a single
// dose.
type BossungCurve struct {
	Dose   float64
	Points []BossungPoint
}

// BossungResult is the output of a focus/dose sweep.
type BossungResult struct {
	FocusValues  []float64
	DoseValues   []float64
	Curves       []BossungCurve
	TimeMs       float64
	PipelineRuns int
}

// linspace mirrors the teacher's numpy-style Linspace: n samples
// evenly spaced over [start,end], with the single-sample case
// returning the midpoint rather than dividing by zero.
func linspace(start, end float64, n int) []float64 {
	if n <= 1 {
		return []float64{(start + end) / 2}
	}
	step := (end - start) / float64(n-1)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = start + float64(i)*step
	}
	return out
}

// RunBossungSweep builds the focus x dose grid and measures CD from
// one aerial image per focus value, reusing that single pipeline
// result across every dose in the grid (spec.md section 4.6): an
// F-step x D-step sweep costs exactly F pipeline runs, never F*D,
// because dose only scales the post-pipeline CD comparison.
func RunBossungSweep(p *Pipeline, mask Mask, base PupilParams, sweep BossungParams) (BossungResult, error) {
	start := time.Now()

	focusValues := linspace(sweep.FocusMinUm, sweep.FocusMaxUm, sweep.FocusSteps)
	doseValues := linspace(sweep.DoseMin, sweep.DoseMax, sweep.DoseSteps)

	curves := make([]BossungCurve, len(doseValues))
	for d, dose := range doseValues {
		curves[d] = BossungCurve{Dose: dose, Points: make([]BossungPoint, 0, len(focusValues))}
	}

	for _, f := range focusValues {
		params := base
		params.DefocusUm = f

		result, err := p.Run(mask, params)
		if err != nil {
			return BossungResult{}, err
		}

		for d, dose := range doseValues {
			cd := MeasureCD(result.Intensity, dose)
			curves[d].Points = append(curves[d].Points, BossungPoint{FocusUm: f, CDNm: cd})
		}
	}

	return BossungResult{
		FocusValues:  focusValues,
		DoseValues:   doseValues,
		Curves:       curves,
		TimeMs:       float64(time.Since(start)) / float64(time.Millisecond),
		PipelineRuns: len(focusValues),
	}, nil
}
