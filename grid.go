package blockbuilder

import (
	"fmt"
	"slices"
)

// Grid is the width x height block design produced by Match. Cells are
// stored row-major and never change after construction.
type Grid struct {
	width, height int
	cells         []Block
}

// NewGrid copies cells into a new grid. len(cells) must equal width*height
// and every cell must be a valid block.
func NewGrid(width, height int, cells []Block) (*Grid, error) {
	if width < 1 || height < 1 || len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidInput, len(cells), width, height)
	}
	for i, b := range cells {
		if !b.Valid() {
			return nil, fmt.Errorf("%w: cell %d holds %v", ErrInvalidInput, i, b)
		}
	}
	return &Grid{width: width, height: height, cells: slices.Clone(cells)}, nil
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// At returns the block at column x, row y.
func (g *Grid) At(x, y int) Block {
	return g.cells[y*g.width+x]
}

// CountByVariant counts occurrences of every block present in the grid,
// Air included.
func (g *Grid) CountByVariant() map[Block]int {
	counts := make(map[Block]int)
	for _, b := range g.cells {
		counts[b]++
	}
	return counts
}

// Material is one line of a material list.
type Material struct {
	Block Block
	Count int
}

// Materials lists the placed blocks, most used first. Air is left out and
// equal counts keep enumeration order.
func (g *Grid) Materials() []Material {
	var counts [numBlocks]int
	for _, b := range g.cells {
		counts[b]++
	}
	out := make([]Material, 0, 16)
	for i, n := range counts {
		if n == 0 || Block(i) == Air {
			continue
		}
		out = append(out, Material{Block: Block(i), Count: n})
	}
	slices.SortStableFunc(out, func(a, b Material) int {
		return b.Count - a.Count
	})
	return out
}
