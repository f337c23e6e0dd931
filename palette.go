package blockbuilder

import (
	"fmt"
	"strings"
)

const idNamespace = "minecraft:"

// Blocks returns every block in enumeration order. Air comes first.
func Blocks() []Block {
	out := make([]Block, numBlocks)
	for i := range out {
		out[i] = Block(i)
	}
	return out
}

// String returns the block name without namespace, e.g. "stone".
func (b Block) String() string {
	if b >= numBlocks {
		return fmt.Sprintf("Block(%d)", uint16(b))
	}
	return blockTable[b].name
}

// ID returns the namespaced placement id used by structure exports.
func (b Block) ID() string {
	return idNamespace + b.String()
}

// Sprite returns the file name of the block texture inside an asset bundle,
// or "" for blocks that are never drawn.
func (b Block) Sprite() string {
	if b >= numBlocks {
		return ""
	}
	return blockTable[b].sprite
}

// Valid reports whether b is a member of the enumeration.
func (b Block) Valid() bool {
	return b < numBlocks
}

// ParseBlock resolves a block from its name, with or without namespace.
func ParseBlock(s string) (Block, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), idNamespace)
	for i := range blockTable {
		if blockTable[i].name == name {
			return Block(i), nil
		}
	}
	return Air, fmt.Errorf("%w: unknown block %q", ErrInvalidInput, s)
}

// Palette is an immutable, ordered view over the block enumeration together
// with the reference color of each block. Blocks without a reference color
// can be placed but are never selected by the matcher.
type Palette struct {
	colors  [numBlocks]Color
	colored [numBlocks]bool
}

// DefaultPalette returns the built-in palette using the texture averages
// from the block table.
func DefaultPalette() *Palette {
	p := &Palette{}
	for i, info := range blockTable {
		p.colors[i] = info.color
		p.colored[i] = info.colored
	}
	return p
}

// NewPalette returns a palette in which only the given blocks carry a
// reference color. Air is never colored.
func NewPalette(colors map[Block]Color) *Palette {
	p := &Palette{}
	for b, c := range colors {
		if !b.Valid() || b == Air {
			continue
		}
		p.colors[b] = c
		p.colored[b] = true
	}
	return p
}

// Without returns a copy of p where the given blocks are no longer candidates.
func (p *Palette) Without(blocks ...Block) *Palette {
	dup := *p
	for _, b := range blocks {
		if b.Valid() {
			dup.colored[b] = false
		}
	}
	return &dup
}

// Blocks returns every block of the palette in enumeration order.
func (p *Palette) Blocks() []Block {
	return Blocks()
}

// ReferenceColor returns the color the matcher compares against, and false
// if b is not a candidate.
func (p *Palette) ReferenceColor(b Block) (Color, bool) {
	if !b.Valid() || !p.colored[b] {
		return Color{}, false
	}
	return p.colors[b], true
}

// Candidates returns the colored blocks in enumeration order.
func (p *Palette) Candidates() []Block {
	out := make([]Block, 0, numBlocks)
	for i := range p.colored {
		if p.colored[i] {
			out = append(out, Block(i))
		}
	}
	return out
}
