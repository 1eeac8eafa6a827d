package litho

import (
	"fmt"
	"time"
)

// Pipeline owns the single N*N complex scratch buffer used to carry a
// mask through mask -> spectrum -> filtered spectrum -> image ->
// intensity. The buffer is lazily allocated on first use and reused
// on every subsequent Run; it is not safe for concurrent use (spec.md
// section 5 — single-threaded contract, no internal locking).
type Pipeline struct {
	scratch []complex128
	running bool
}

// NewPipeline returns a Pipeline with its scratch buffer not yet
// allocated.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Run executes the mask -> aerial-image sequence from spec.md section
// 4.4: load mask into the scratch grid, forward FFT, shift to center
// DC, apply the pupil filter, shift back, inverse FFT, take
// intensity, and normalize by the peak. It panics if Run is called
// reentrantly while already in progress, since the scratch buffer
// cannot be aliased.
func (p *Pipeline) Run(mask Mask, params PupilParams) (PipelineResult, error) {
	if p.running {
		panic("litho: Pipeline.Run called while a run is already in progress")
	}
	if len(mask) != N {
		return PipelineResult{}, fmt.Errorf("litho: mask has %d rows, want %d", len(mask), N)
	}
	for r, row := range mask {
		if len(row) != N {
			return PipelineResult{}, fmt.Errorf("litho: mask row %d has %d columns, want %d", r, len(row), N)
		}
	}

	p.running = true
	defer func() { p.running = false }()

	start := time.Now()

	if p.scratch == nil {
		p.scratch = make([]complex128, N*N)
	}
	buf := p.scratch

	for r := 0; r < N; r++ {
		base := r * N
		for c := 0; c < N; c++ {
			buf[base+c] = complex(mask[r][c], 0)
		}
	}

	fft2d(buf, N, false)
	fftshift(buf, N)
	applyPupilFilter(buf, N, params)
	fftshift(buf, N)
	fft2d(buf, N, true)

	intensity := make([][]float64, N)
	max := 0.0
	for r := 0; r < N; r++ {
		intensity[r] = make([]float64, N)
		base := r * N
		for c := 0; c < N; c++ {
			v := buf[base+c]
			i := real(v)*real(v) + imag(v)*imag(v)
			intensity[r][c] = i
			if i > max {
				max = i
			}
		}
	}

	out := newIntensityImage()
	if max > 0 {
		inv := 1.0 / max
		for r := 0; r < N; r++ {
			for c := 0; c < N; c++ {
				out[r][c] = float32(intensity[r][c] * inv)
			}
		}
	}
	// max == 0: out is already all zero.

	return PipelineResult{
		Intensity: out,
		TimeMs:    float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}
