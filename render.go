package blockbuilder

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io/fs"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// AssetSize is the side length of the block textures in pixels.
const AssetSize = 16

// Render draws the block sprite of every cell of g onto a transparent canvas
// of (width*spriteSize, height*spriteSize). Sprites are looked up in assets
// by Block.Sprite. A missing or undecodable sprite aborts the render with
// ErrInvalidData.
func Render(g *Grid, assets fs.FS, spriteSize int) (*image.NRGBA, error) {
	if spriteSize < 1 {
		return nil, fmt.Errorf("%w: sprite size %d must be positive", ErrInvalidInput, spriteSize)
	}
	sprites, err := loadSprites(g, assets, spriteSize)
	if err != nil {
		return nil, err
	}

	w, h := g.Dimensions()
	canvas := image.NewNRGBA(image.Rect(0, 0, w*spriteSize, h*spriteSize))
	for y := range h {
		for x := range w {
			sprite := sprites[g.At(x, y)]
			if sprite == nil {
				continue
			}
			r := image.Rect(x*spriteSize, y*spriteSize, (x+1)*spriteSize, (y+1)*spriteSize)
			draw.Draw(canvas, r, sprite, image.Point{}, draw.Over)
		}
	}
	return canvas, nil
}

// RenderSwatches draws each cell as a flat square of its reference color in
// palette. It needs no sprite bundle and is meant for quick previews.
func RenderSwatches(g *Grid, palette *Palette, size int) *image.NRGBA {
	size = max(size, 1)
	w, h := g.Dimensions()
	canvas := image.NewNRGBA(image.Rect(0, 0, w*size, h*size))
	for y := range h {
		for x := range w {
			c, ok := palette.ReferenceColor(g.At(x, y))
			if !ok {
				continue
			}
			r := image.Rect(x*size, y*size, (x+1)*size, (y+1)*size)
			draw.Draw(canvas, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
		}
	}
	return canvas
}

// loadSprites decodes the sprite of every distinct drawable block in g.
func loadSprites(g *Grid, assets fs.FS, size int) (map[Block]image.Image, error) {
	counts := g.CountByVariant()
	var blocks []Block
	for _, b := range Blocks() {
		if counts[b] > 0 && b.Sprite() != "" {
			blocks = append(blocks, b)
		}
	}
	images := make([]image.Image, len(blocks))
	errs := make([]error, len(blocks))
	var eg errgroup.Group
	for i, b := range blocks {
		eg.Go(func() error {
			images[i], errs[i] = loadSprite(assets, b, size)
			return errs[i]
		})
	}
	if eg.Wait() != nil {
		// Report the first failing block in enumeration order.
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}
	out := make(map[Block]image.Image, len(blocks))
	for i, b := range blocks {
		out[b] = images[i]
	}
	return out, nil
}

func loadSprite(assets fs.FS, b Block, size int) (*image.NRGBA, error) {
	img, err := decodeSprite(assets, b)
	if err != nil {
		return nil, err
	}

	// Animated textures are vertical strips of square frames; keep the first.
	sb := img.Bounds()
	side := min(sb.Dx(), sb.Dy())
	if side == 0 {
		return nil, fmt.Errorf("%w: sprite %s of %v is empty", ErrInvalidData, b.Sprite(), b)
	}
	frame := image.Rect(sb.Min.X, sb.Min.Y, sb.Min.X+side, sb.Min.Y+side)

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if side == size {
		draw.Draw(dst, dst.Rect, img, frame.Min, draw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(dst, dst.Rect, img, frame, xdraw.Src, nil)
	}
	return dst, nil
}

func decodeSprite(assets fs.FS, b Block) (image.Image, error) {
	f, err := assets.Open(b.Sprite())
	if err != nil {
		return nil, fmt.Errorf("%w: sprite %s of %v: %w", ErrInvalidData, b.Sprite(), b, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: sprite %s of %v: %w", ErrInvalidData, b.Sprite(), b, err)
	}
	return img, nil
}
