package blockbuilder

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// BuildLimit is the maximum build height of a design.
const BuildLimit = 320

// Filter selects the resampling kernel used when downsampling the source
// image to the build height. The zero value is Nearest.
type Filter int

const (
	Nearest Filter = iota
	Triangle
	CatmullRom
	Lanczos3
)

var filterNames = [...]string{
	Nearest:    "nearest",
	Triangle:   "triangle",
	CatmullRom: "catmullrom",
	Lanczos3:   "lanczos3",
}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// ParseFilter accepts the names printed by String.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range filterNames {
		if name == s {
			return Filter(i), nil
		}
	}
	return Nearest, fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, s)
}

func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Filter) UnmarshalText(text []byte) error {
	v, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// BuildWidth returns the width that keeps the aspect ratio of a
// srcW x srcH image scaled to height, rounded up so no column is lost.
func BuildWidth(srcW, srcH, height int) int {
	return (srcW*height + srcH - 1) / srcH
}

// Resize scales img to the given height, preserving the aspect ratio.
// The result always starts at the origin.
func Resize(img image.Image, height int, filter Filter) (*image.NRGBA, error) {
	if height > BuildLimit {
		return nil, fmt.Errorf("%w: height %d is greater than the build limit %d", ErrInvalidInput, height, BuildLimit)
	}
	if height < 1 {
		return nil, fmt.Errorf("%w: height %d must be positive", ErrInvalidInput, height)
	}
	sb := img.Bounds()
	if sb.Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrInvalidInput)
	}
	width := BuildWidth(sb.Dx(), sb.Dy(), height)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	switch filter {
	case Lanczos3:
		scaled := resize.Resize(uint(width), uint(height), toNRGBA(img), resize.Lanczos3)
		draw.Draw(dst, dst.Rect, scaled, scaled.Bounds().Min, draw.Src)
	default:
		filter.interpolator().Scale(dst, dst.Rect, img, sb, xdraw.Src, nil)
	}
	return dst, nil
}

func (f Filter) interpolator() xdraw.Interpolator {
	switch f {
	case Triangle:
		return xdraw.BiLinear
	case CatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Rect, img, b.Min, draw.Src)
	return m
}
