package blockbuilder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = Color{0, 0, 0}
	white = Color{255, 255, 255}
)

func randomColor(r *rand.Rand) Color {
	return Color{float64(r.Intn(256)), float64(r.Intn(256)), float64(r.Intn(256))}
}

func TestDistanceIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, cs := range []ColorSpace{CIE2000, CIE76, CMC, Euclidean} {
		t.Run(cs.String(), func(t *testing.T) {
			metric := cs.Metric()
			for range 200 {
				c := randomColor(r)
				assert.InDelta(t, 0, metric(c, c), 1e-9, "distance(%v, %v)", c, c)
			}
			assert.InDelta(t, 0, metric(black, black), 1e-9)
			assert.InDelta(t, 0, metric(white, white), 1e-9)
		})
	}
}

func TestDistanceNonNegative(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, cs := range []ColorSpace{CIE2000, CIE76, CMC, Euclidean} {
		t.Run(cs.String(), func(t *testing.T) {
			for range 500 {
				a, b := randomColor(r), randomColor(r)
				d := cs.Distance(a, b)
				assert.GreaterOrEqual(t, d, 0.0, "distance(%v, %v)", a, b)
				assert.False(t, math.IsNaN(d), "NaN for %v, %v", a, b)
			}
		})
	}
}

func TestDistanceScale(t *testing.T) {
	assert.InDelta(t, 441.67, DistanceEuclidean(black, white), 0.01)
	assert.InDelta(t, 255.0, DistanceEuclidean(Color{255, 0, 0}, Color{0, 0, 0}), 1e-9)
	assert.InDelta(t, 100.0, DistanceCIE76(black, white), 0.1)
	assert.InDelta(t, 100.0, DistanceCIE2000(black, white), 0.1)
}

func TestDistanceEuclideanWholeNumbers(t *testing.T) {
	tests := []struct {
		a, b Color
		want int
	}{
		{black, Color{0, 21, 28}, 35},
		{black, Color{3, 4, 0}, 5},
		{Color{10, 10, 10}, Color{13, 14, 10}, 5},
		{black, Color{2, 3, 6}, 7},
		{black, Color{255, 0, 0}, 255},
		{Color{100, 50, 0}, Color{136, 98, 0}, 60},
	}
	for _, tt := range tests {
		d := DistanceEuclidean(tt.a, tt.b)
		assert.Equal(t, float64(tt.want), d, "distance(%v, %v)", tt.a, tt.b)
		assert.Equal(t, tt.want, truncate(d), "truncate(distance(%v, %v))", tt.a, tt.b)
	}

	for dg := range 256 {
		for db := range 256 {
			sq := dg*dg + db*db
			root := int(math.Sqrt(float64(sq)))
			if root*root != sq {
				continue
			}
			d := DistanceEuclidean(black, Color{0, float64(dg), float64(db)})
			require.Equal(t, root, truncate(d), "(0,%d,%d)", dg, db)
		}
	}
}

// labColor builds a Color from L*a*b* with L in [0,100]. Out of gamut values
// are kept unclamped so they survive the round trip back to Lab.
func labColor(l, a, b float64) Color {
	c := colorful.Lab(l/100, a/100, b/100)
	return Color{c.R * 255, c.G * 255, c.B * 255}
}

// Sharma, Wu and Dalal (2005), "The CIEDE2000 color-difference formula",
// Table 1.
var ciede2000Pairs = []struct {
	lab1, lab2 [3]float64
	want       float64
}{
	{[3]float64{50, 2.6772, -79.7751}, [3]float64{50, 0, -82.7485}, 2.0425},
	{[3]float64{50, 3.1571, -77.2803}, [3]float64{50, 0, -82.7485}, 2.8615},
	{[3]float64{50, 0, 0}, [3]float64{50, -1, 2}, 2.3669},
	{[3]float64{50, 2.49, -0.001}, [3]float64{50, -2.49, 0.0011}, 7.2195},
	{[3]float64{50, 2.5, 0}, [3]float64{73, 25, -18}, 27.1492},
	{[3]float64{60.2574, -34.0099, 36.2677}, [3]float64{60.4626, -34.1751, 39.4387}, 1.2644},
	{[3]float64{63.0109, -31.0961, -5.8663}, [3]float64{62.8187, -29.7946, -4.0864}, 1.2630},
	{[3]float64{22.7233, 20.0904, -46.6940}, [3]float64{23.0331, 14.9730, -42.5619}, 2.0373},
	{[3]float64{2.0776, 0.0795, -1.1350}, [3]float64{0.9033, -0.0636, -0.5514}, 0.9082},
}

func TestDistanceCIE2000Reference(t *testing.T) {
	for _, tt := range ciede2000Pairs {
		a := labColor(tt.lab1[0], tt.lab1[1], tt.lab1[2])
		b := labColor(tt.lab2[0], tt.lab2[1], tt.lab2[2])
		assert.InDelta(t, tt.want, DistanceCIE2000(a, b), 1e-4, "%v vs %v", tt.lab1, tt.lab2)
		assert.InDelta(t, tt.want, DistanceCIE2000(b, a), 1e-4, "%v vs %v", tt.lab2, tt.lab1)
	}
}

func TestDistanceCMCReference(t *testing.T) {
	tests := []struct {
		ref, sample [3]float64
		want        float64
	}{
		// Achromatic standard: SC = SH = 0.638, so ΔE = sqrt(5) / 0.638.
		{[3]float64{50, 0, 0}, [3]float64{50, -1, 2}, 3.504809},
		{[3]float64{50, 2.5, 0}, [3]float64{73, 25, -18}, 37.923276},
		{[3]float64{60.2574, -34.0099, 36.2677}, [3]float64{60.4626, -34.1751, 39.4387}, 1.420486},
		// Hue in [164, 345], and L below 16 for the last pair.
		{[3]float64{22.7233, 20.0904, -46.6940}, [3]float64{23.0331, 14.9730, -42.5619}, 3.060441},
		{[3]float64{2.0776, 0.0795, -1.1350}, [3]float64{0.9033, -0.0636, -0.5514}, 1.427773},
	}
	for _, tt := range tests {
		ref := labColor(tt.ref[0], tt.ref[1], tt.ref[2])
		sample := labColor(tt.sample[0], tt.sample[1], tt.sample[2])
		assert.InDelta(t, tt.want, DistanceCMC(ref, sample), 1e-5, "%v vs %v", tt.ref, tt.sample)
	}
}

func TestDistanceOrdering(t *testing.T) {
	red := Color{200, 30, 30}
	nearRed := Color{180, 40, 35}
	blue := Color{30, 30, 200}
	for _, cs := range []ColorSpace{CIE2000, CIE76, CMC, Euclidean} {
		assert.Less(t, cs.Distance(red, nearRed), cs.Distance(red, blue), cs.String())
	}
}

func TestParseColorSpace(t *testing.T) {
	for _, cs := range []ColorSpace{CIE2000, CIE76, CMC, Euclidean} {
		got, err := ParseColorSpace(cs.String())
		require.NoError(t, err)
		assert.Equal(t, cs, got)
	}

	got, err := ParseColorSpace(" CIE1976 ")
	require.NoError(t, err)
	assert.Equal(t, CIE76, got)

	_, err = ParseColorSpace("hsv")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestColorSpaceText(t *testing.T) {
	var cs ColorSpace
	require.NoError(t, cs.UnmarshalText([]byte("cmc")))
	assert.Equal(t, CMC, cs)

	text, err := Euclidean.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "euclidean", string(text))

	assert.Error(t, cs.UnmarshalText([]byte("rgb")))
	assert.Equal(t, CMC, cs)
}

func TestDefaultMetricIsCIE2000(t *testing.T) {
	var cs ColorSpace
	a, b := Color{10, 200, 30}, Color{40, 120, 90}
	assert.Equal(t, DistanceCIE2000(a, b), cs.Distance(a, b))
}
