// Package render draws the collaborator surfaces SPEC_FULL.md places
// outside the numeric core: resist-pattern PNG export, mask loading
// from PNG, 1-D cross-section extraction and plotting, and Bossung
// chart rendering. Nothing here feeds back into litho; it only
// consumes its public types.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/plot"
	_ "gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	aerialsim "github.com/openlitho/aerialsim"
)

// StepTicks is a fixed-interval tick marker for gonum/plot axes.
type StepTicks struct {
	Step   float64
	Format string
}

func (t StepTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	start := math.Ceil(min/t.Step) * t.Step
	for v := start; v <= max; v += t.Step {
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(t.Format, v)})
	}
	return ticks
}

func styleAxes(p *plot.Plot) {
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)

	p.X.Label.TextStyle.Font.Typeface = "Liberation"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Label.TextStyle.Font.Typeface = "Liberation"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.X.Tick.Label.Font.Typeface = "Liberation"
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = vg.Points(10)

	p.Y.Tick.Label.Font.Typeface = "Liberation"
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = vg.Points(10)
}

func renderToImage(p *plot.Plot, wPx, hPx float64) image.Image {
	const dpi = 96
	width := vg.Length(wPx) * vg.Inch / dpi
	height := vg.Length(hPx) * vg.Inch / dpi
	c := vgimg.New(width, height)
	dc := draw.New(c)
	p.Draw(dc)
	return c.Image()
}

// ExtractCrossSection pulls one row out of an intensity image as an
// (x, intensity) series in nanometers, the 1-D slice operation a
// cross-section view performs on the 2-D aerial image.
func ExtractCrossSection(intensity aerialsim.IntensityImage, row int) (plotter.XYs, error) {
	if row < 0 || row >= len(intensity) {
		return nil, fmt.Errorf("render: cross-section row %d out of range [0,%d)", row, len(intensity))
	}
	pts := make(plotter.XYs, len(intensity[row]))
	for c, v := range intensity[row] {
		pts[c].X = float64(c) * aerialsim.PixelSizeNm
		pts[c].Y = float64(v)
	}
	return pts, nil
}

// PlotCrossSection renders a single intensity row as a line plot.
func PlotCrossSection(intensity aerialsim.IntensityImage, row int, wPx, hPx float64) (image.Image, error) {
	pts, err := ExtractCrossSection(intensity, row)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Y.Min, p.Y.Max = -0.05, 1.1
	styleAxes(p)
	p.Title.Text = fmt.Sprintf("Aerial image cross-section, row %d", row)
	p.X.Label.Text = "position (nm)"
	p.Y.Label.Text = "normalized intensity"
	p.X.Tick.Marker = StepTicks{Step: float64(len(pts)) * aerialsim.PixelSizeNm / 10, Format: "%.0f"}
	p.Y.Tick.Marker = StepTicks{Step: 0.2, Format: "%.1f"}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	return renderToImage(p, wPx, hPx), nil
}

// PlotBossungCurves renders one CD-vs-focus line per dose in a sweep
// result.
func PlotBossungCurves(result aerialsim.BossungResult, wPx, hPx float64) (image.Image, error) {
	if len(result.Curves) == 0 {
		return nil, errors.New("render: bossung result has no curves")
	}

	p := plot.New()
	styleAxes(p)
	p.Title.Text = "Bossung plot"
	p.X.Label.Text = "focus (um)"
	p.Y.Label.Text = "CD (nm)"
	p.Add(plotter.NewGrid())

	palette := []color.RGBA{
		{R: 0, G: 0, B: 255, A: 255},
		{R: 200, G: 0, B: 0, A: 255},
		{R: 0, G: 140, B: 0, A: 255},
		{R: 160, G: 100, B: 0, A: 255},
		{R: 140, G: 0, B: 140, A: 255},
	}

	for i, curve := range result.Curves {
		pts := make(plotter.XYs, len(curve.Points))
		for j, pt := range curve.Points {
			pts[j].X = pt.FocusUm
			pts[j].Y = pt.CDNm
		}
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		col := palette[i%len(palette)]
		line.Color = col
		scatter.Color = col
		scatter.Shape = draw.CircleGlyph{}
		scatter.Radius = vg.Points(2)
		p.Add(line, scatter)
		p.Legend.Add(fmt.Sprintf("dose %.2f", curve.Dose), line)
	}

	return renderToImage(p, wPx, hPx), nil
}

// SaveImagePNG writes img to filename as a PNG file.
func SaveImagePNG(filename string, img image.Image) (err error) {
	f, createErr := os.Create(filename)
	if createErr != nil {
		return fmt.Errorf("render: create %s: %w", filename, createErr)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", filename, err)
	}
	return nil
}

// ResistImage thresholds an aerial image into a binary 8-bit
// grayscale render: printed pixels (intensity >= threshold) are
// black, unprinted are white, matching the teacher's black-on-white
// aperture convention.
func ResistImage(intensity aerialsim.IntensityImage, threshold float64) *image.Gray {
	h := len(intensity)
	w := 0
	if h > 0 {
		w = len(intensity[0])
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if float64(intensity[y][x]) >= threshold {
				img.Pix[row+x] = 0
			} else {
				img.Pix[row+x] = 255
			}
		}
	}
	return img
}

// LoadMaskPNG reads a black-on-white PNG and returns an N x N mask
// with 1 where the source pixel is black (the aperture) and 0
// elsewhere. The image must be exactly N x N.
func LoadMaskPNG(filename string) (mask aerialsim.Mask, err error) {
	f, openErr := os.Open(filename)
	if openErr != nil {
		return nil, fmt.Errorf("render: open %s: %w", filename, openErr)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	img, decodeErr := png.Decode(f)
	if decodeErr != nil {
		return nil, fmt.Errorf("render: decode %s: %w", filename, decodeErr)
	}

	bounds := img.Bounds()
	if bounds.Dx() != aerialsim.N || bounds.Dy() != aerialsim.N {
		return nil, fmt.Errorf("render: mask PNG is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), aerialsim.N, aerialsim.N)
	}

	mask = aerialsim.NewMask()
	for y := 0; y < aerialsim.N; y++ {
		for x := 0; x < aerialsim.N; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if (r+g+b)/3 < 0x8000 {
				mask[y][x] = 1
			}
		}
	}
	return mask, nil
}
