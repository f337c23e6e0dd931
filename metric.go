package blockbuilder

import "math"

// Metric scores the perceptual difference between a reference color and a
// sample. It must return 0 for identical colors and never a negative value.
type Metric func(ref, sample Color) float64

// Metric returns the distance function of cs. Unknown values fall back to
// CIE2000.
func (cs ColorSpace) Metric() Metric {
	switch cs {
	case CIE76:
		return DistanceCIE76
	case CMC:
		return DistanceCMC
	case Euclidean:
		return DistanceEuclidean
	default:
		return DistanceCIE2000
	}
}

// Distance is shorthand for cs.Metric()(a, b).
func (cs ColorSpace) Distance(a, b Color) float64 {
	return cs.Metric()(a, b)
}

// DistanceEuclidean is the straight RGB distance on the 0-255 scale. It works
// on the raw components so whole-number distances stay exact.
func DistanceEuclidean(a, b Color) float64 {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DistanceCIE76 is the Lab distance (ΔE*ab) with L in [0,100].
func DistanceCIE76(a, b Color) float64 {
	return a.colorful().DistanceCIE76(b.colorful()) * 100.0
}

// DistanceCIE2000 is ΔE*00 with unit weights, in Lab units.
func DistanceCIE2000(a, b Color) float64 {
	return a.colorful().DistanceCIEDE2000(b.colorful()) * 100.0
}

// DistanceCMC is ΔE CMC(2:1). ref is the standard color; the metric is not
// symmetric.
func DistanceCMC(ref, sample Color) float64 {
	return cmc(ref, sample, 2, 1)
}

func cmc(ref, sample Color, l, c float64) float64 {
	l1, a1, b1 := ref.lab()
	l2, a2, b2 := sample.lab()

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	dL := l1 - l2
	dC := c1 - c2
	da := a1 - a2
	db := b1 - b2
	dH2 := max(da*da+db*db-dC*dC, 0)

	h1 := math.Atan2(b1, a1) * 180 / math.Pi
	if h1 < 0 {
		h1 += 360
	}

	c14 := c1 * c1 * c1 * c1
	f := math.Sqrt(c14 / (c14 + 1900))
	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos((h1+168)*math.Pi/180))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos((h1+35)*math.Pi/180))
	}

	sl := 0.511
	if l1 >= 16 {
		sl = 0.040975 * l1 / (1 + 0.01765*l1)
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638
	sh := sc * (f*t + 1 - f)

	tl := dL / (l * sl)
	tc := dC / (c * sc)
	return math.Sqrt(tl*tl + tc*tc + dH2/(sh*sh))
}
