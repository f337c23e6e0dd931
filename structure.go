package blockbuilder

import "time"

// Metadata describes an exported structure. None of it affects placement.
type Metadata struct {
	Name        string
	Description string
	Author      string
	Created     time.Time
}

// Structure is a single-region placement structure. Size is (x, y, z) with
// y the vertical axis; Blocks is indexed y*X*Z + z*X + x.
type Structure struct {
	Metadata Metadata
	Size     [3]int
	Blocks   []Block
}

// ExportStructure lays g out as one horizontal layer: grid column x maps to
// x, grid row y maps to z, and the region is one block tall.
func ExportStructure(g *Grid, meta Metadata) *Structure {
	w, h := g.Dimensions()
	s := &Structure{
		Metadata: meta,
		Size:     [3]int{w, 1, h},
		Blocks:   make([]Block, w*h),
	}
	for z := range h {
		for x := range w {
			s.Blocks[s.index(x, 0, z)] = g.At(x, z)
		}
	}
	return s
}

func (s *Structure) index(x, y, z int) int {
	return (y*s.Size[2]+z)*s.Size[0] + x
}

// At returns the block placed at (x, y, z).
func (s *Structure) At(x, y, z int) Block {
	return s.Blocks[s.index(x, y, z)]
}

// Volume is the number of positions in the region.
func (s *Structure) Volume() int {
	return s.Size[0] * s.Size[1] * s.Size[2]
}

// TotalBlocks counts the positions that hold something other than Air.
func (s *Structure) TotalBlocks() int {
	n := 0
	for _, b := range s.Blocks {
		if b != Air {
			n++
		}
	}
	return n
}
