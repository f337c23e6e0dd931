package blockbuilder

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"slices"

	"github.com/cenkalti/dominantcolor"
)

// ColorMethod selects how a block's reference color is computed from its
// texture.
type ColorMethod int

const (
	ColorMethodAverage ColorMethod = iota
	ColorMethodDominant
)

func (m ColorMethod) String() string {
	switch m {
	case ColorMethodDominant:
		return "dominant"
	default:
		return "average"
	}
}

// DerivePalette computes the reference color of every block from its sprite
// in assets. Blocks whose sprite is absent from the bundle are not
// candidates of the returned palette.
func DerivePalette(assets fs.FS, method ColorMethod) (*Palette, error) {
	colors := make(map[Block]Color)
	for _, b := range Blocks() {
		if b.Sprite() == "" {
			continue
		}
		img, err := decodeSprite(assets, b)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		c, ok := spriteColor(img, method)
		if !ok {
			continue
		}
		colors[b] = c
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: no usable block sprites in asset bundle", ErrInvalidData)
	}
	return NewPalette(colors), nil
}

func spriteColor(img image.Image, method ColorMethod) (Color, bool) {
	if method == ColorMethodDominant {
		cands := dominantcolor.FindWeight(img, 4)
		if len(cands) > 0 {
			best := slices.MaxFunc(cands, func(a, b dominantcolor.Color) int {
				switch {
				case a.Weight < b.Weight:
					return -1
				case a.Weight > b.Weight:
					return 1
				}
				return 0
			})
			return Color{float64(best.RGBA.R), float64(best.RGBA.G), float64(best.RGBA.B)}, true
		}
	}
	return averageColor(img)
}

// averageColor is the mean of the opaque texels of img.
func averageColor(img image.Image) (Color, bool) {
	b := img.Bounds()
	var r, g, bl float64
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			r += float64(c.R)
			g += float64(c.G)
			bl += float64(c.B)
			n++
		}
	}
	if n == 0 {
		return Color{}, false
	}
	fn := float64(n)
	return Color{r / fn, g / fn, bl / fn}, true
}
