package blockbuilder

import (
	"image"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Quality summarizes how far the chosen blocks are from the pixels they
// stand in for, measured with the metric used for matching.
type Quality struct {
	Cells  int // opaque cells measured
	Mean   float64
	StdDev float64
	Median float64
	Max    float64
}

// Evaluate measures the untruncated distance between every opaque pixel of
// working and the reference color of the block chosen for it in g.
func Evaluate(working *image.NRGBA, g *Grid, palette *Palette, metric Metric) Quality {
	w, h := g.Dimensions()
	b := working.Rect
	dists := make([]float64, 0, w*h)
	for y := range h {
		for x := range w {
			px := working.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if px.A == 0 {
				continue
			}
			ref, ok := palette.ReferenceColor(g.At(x, y))
			if !ok {
				continue
			}
			dists = append(dists, metric(ref, ColorOf(px)))
		}
	}
	if len(dists) == 0 {
		return Quality{}
	}
	slices.Sort(dists)
	q := Quality{
		Cells:  len(dists),
		Mean:   stat.Mean(dists, nil),
		Median: stat.Quantile(0.5, stat.Empirical, dists, nil),
		Max:    floats.Max(dists),
	}
	if len(dists) > 1 {
		q.StdDev = stat.StdDev(dists, nil)
	}
	return q
}
