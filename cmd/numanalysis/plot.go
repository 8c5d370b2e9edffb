package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// savePlot draws the data as points and curve over the padded data range.
// The image format follows the file extension.
func savePlot(path, title string, xs, ys []float64, curve func(float64) float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)

	lo, hi := floats.Min(xs), floats.Max(xs)
	pad := 0.05 * (hi - lo)
	if pad == 0 {
		pad = 1
	}
	fn := plotter.NewFunction(curve)
	fn.XMin, fn.XMax = lo-pad, hi+pad
	fn.Samples = 256
	fn.Color = color.RGBA{B: 200, A: 255}
	p.X.Min, p.X.Max = lo-pad, hi+pad

	p.Add(fn, scatter)
	p.Legend.Add("data", scatter)
	p.Legend.Add(title, fn)

	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
