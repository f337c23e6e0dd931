package utils

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/blockbuilder"
)

// luminance is the relative luminance of c in linear RGB.
func luminance(c blockbuilder.Color) float64 {
	r, g, b := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// SortBlocksByBrightness orders blocks from darkest to brightest reference
// color. Blocks without a color in palette go last, in their given order.
func SortBlocksByBrightness(blocks []blockbuilder.Block, palette *blockbuilder.Palette) {
	slices.SortStableFunc(blocks, func(a, b blockbuilder.Block) int {
		ca, oka := palette.ReferenceColor(a)
		cb, okb := palette.ReferenceColor(b)
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return 1
		case !okb:
			return -1
		}
		yi, yj := luminance(ca), luminance(cb)
		if yi < yj {
			return -1
		}
		if yi > yj {
			return 1
		}
		return 0
	})
}

func ReadImage(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	return imgio.Save(filename, img, imgio.PNGEncoder())
}

// SavePalette writes one tileSize square per candidate block of palette,
// darkest first.
func SavePalette(palette *blockbuilder.Palette, tileSize int, filename string) error {
	blocks := palette.Candidates()
	if len(blocks) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	SortBlocksByBrightness(blocks, palette)

	w := tileSize * len(blocks)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for i, b := range blocks {
		c, _ := palette.ReferenceColor(b)
		n := c.NRGBA()
		x0 := i * tileSize
		x1 := x0 + tileSize
		for y := range h {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, color.RGBA{R: n.R, G: n.G, B: n.B, A: 255})
			}
		}
	}

	return SaveImage(img, filename)
}
