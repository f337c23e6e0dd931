package blockbuilder

import (
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 2, []Block{Stone, Air, Dirt, Dirt, Stone, Dirt})
	require.NoError(t, err)
	w, h := g.Dimensions()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, Dirt, g.At(2, 0))
	assert.Equal(t, Stone, g.At(1, 1))

	_, err = NewGrid(3, 2, []Block{Stone})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewGrid(1, 1, []Block{numBlocks})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewGrid(0, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewGridCopiesCells(t *testing.T) {
	cells := []Block{Stone, Dirt}
	g, err := NewGrid(2, 1, cells)
	require.NoError(t, err)
	cells[0] = Sand
	assert.Equal(t, Stone, g.At(0, 0))
}

func TestCountByVariantSumsToArea(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	src := image.NewNRGBA(image.Rect(0, 0, 30, 20))
	for i := range src.Pix {
		src.Pix[i] = uint8(r.Intn(256))
	}
	for i := 3; i < len(src.Pix); i += 16 {
		src.Pix[i] = 0
	}
	working, err := Resize(src, 13, Triangle)
	require.NoError(t, err)
	g := Match(working, DefaultPalette(), DistanceEuclidean, 0)

	w, h := g.Dimensions()
	total := 0
	for b, n := range g.CountByVariant() {
		assert.True(t, b.Valid())
		assert.Positive(t, n)
		total += n
	}
	assert.Equal(t, w*h, total)
}

func TestMaterials(t *testing.T) {
	g, err := NewGrid(4, 2, []Block{Dirt, Stone, Air, Air, Dirt, Air, Stone, Sand})
	require.NoError(t, err)
	want := []Material{
		{Block: Stone, Count: 2},
		{Block: Dirt, Count: 2},
		{Block: Sand, Count: 1},
	}
	if diff := cmp.Diff(want, g.Materials()); diff != "" {
		t.Errorf("Materials() mismatch (-want +got):\n%s", diff)
	}
}
