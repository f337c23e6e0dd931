package blockbuilder

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with components in [0,255].
type Color struct {
	R, G, B float64
}

// ColorOf drops the alpha channel of c.
func ColorOf(c color.NRGBA) Color {
	return Color{float64(c.R), float64(c.G), float64(c.B)}
}

// NRGBA returns c as an opaque 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: clamp8(c.R), G: clamp8(c.G), B: clamp8(c.B), A: 255}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255.0, G: c.G / 255.0, B: c.B / 255.0}
}

// lab returns CIE L*a*b* (D65) with L in [0,100].
func (c Color) lab() (l, a, b float64) {
	l, a, b = c.colorful().Lab()
	return l * 100, a * 100, b * 100
}

func clamp8(v float64) uint8 {
	return uint8(max(0, min(255, math.Round(v))))
}

// ColorSpace selects the distance metric used by the matcher.
// The zero value is CIE2000.
type ColorSpace int

const (
	CIE2000 ColorSpace = iota
	CIE76
	CMC
	Euclidean
)

var colorSpaceNames = [...]string{
	CIE2000:   "cie2000",
	CIE76:     "cie76",
	CMC:       "cmc",
	Euclidean: "euclidean",
}

func (cs ColorSpace) String() string {
	if cs < 0 || int(cs) >= len(colorSpaceNames) {
		return fmt.Sprintf("ColorSpace(%d)", int(cs))
	}
	return colorSpaceNames[cs]
}

// ParseColorSpace accepts the names printed by String. "cie1976" is
// accepted as an alias of CIE76.
func ParseColorSpace(s string) (ColorSpace, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "cie1976" {
		return CIE76, nil
	}
	for i, name := range colorSpaceNames {
		if name == s {
			return ColorSpace(i), nil
		}
	}
	return CIE2000, fmt.Errorf("%w: unknown color space %q", ErrInvalidInput, s)
}

func (cs ColorSpace) MarshalText() ([]byte, error) {
	return []byte(cs.String()), nil
}

func (cs *ColorSpace) UnmarshalText(text []byte) error {
	v, err := ParseColorSpace(string(text))
	if err != nil {
		return err
	}
	*cs = v
	return nil
}
