package litematic

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/setanarut/blockbuilder"
)

var (
	errRegions     = errors.New("litematic: exactly one region is supported")
	errBadSize     = errors.New("litematic: invalid region size")
	errBadPalette  = errors.New("litematic: invalid palette index")
	errNotEnough   = errors.New("litematic: not enough block state data")
	errEmptyStates = errors.New("litematic: empty block state palette")
)

func abs32(v int32) int64 {
	n := int64(v)
	if n < 0 {
		return -n
	}
	return n
}

// regionVolume returns the cell count of a region, or errBadSize when any
// axis is empty or the volume does not fit in an int32.
func regionVolume(size vec3) ([3]int, int, error) {
	x, y, z := abs32(size.X), abs32(size.Y), abs32(size.Z)
	if x == 0 || y == 0 || z == 0 {
		return [3]int{}, 0, errBadSize
	}
	if x > math.MaxInt32/y || x*y > math.MaxInt32/z {
		return [3]int{}, 0, errBadSize
	}
	return [3]int{int(x), int(y), int(z)}, int(x * y * z), nil
}

func toStructure(sch *schematic) (*blockbuilder.Structure, error) {
	if len(sch.Regions) != 1 {
		return nil, errRegions
	}
	var r region
	for _, v := range sch.Regions {
		r = v
	}

	size, n, err := regionVolume(r.Size)
	if err != nil {
		return nil, err
	}
	if len(r.BlockStatePalette) == 0 {
		return nil, errEmptyStates
	}
	if bits := bitsFor(len(r.BlockStatePalette)); n > len(r.BlockStates)*64/bits {
		return nil, errNotEnough
	}

	palette := make([]blockbuilder.Block, len(r.BlockStatePalette))
	for i, st := range r.BlockStatePalette {
		b, err := blockbuilder.ParseBlock(st.Name)
		if err != nil {
			return nil, fmt.Errorf("litematic: %w", err)
		}
		palette[i] = b
	}

	indices, ok := unpackStates(r.BlockStates, n, bitsFor(len(palette)))
	if !ok {
		return nil, errNotEnough
	}
	blocks := make([]blockbuilder.Block, n)
	for i, idx := range indices {
		if idx >= len(palette) {
			return nil, errBadPalette
		}
		blocks[i] = palette[idx]
	}

	return &blockbuilder.Structure{
		Metadata: blockbuilder.Metadata{
			Name:        sch.Metadata.Name,
			Description: sch.Metadata.Description,
			Author:      sch.Metadata.Author,
			Created:     time.UnixMilli(sch.Metadata.TimeCreated),
		},
		Size:   size,
		Blocks: blocks,
	}, nil
}

// Decode reads a gzip compressed Litematica schematic holding a single
// region of known blocks.
func Decode(r io.Reader) (*blockbuilder.Structure, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var sch schematic
	if _, err := nbt.NewDecoder(zr).Decode(&sch); err != nil {
		return nil, err
	}
	return toStructure(&sch)
}
