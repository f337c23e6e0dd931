/*
Package litematic implements an encoder and decoder for Litematica
schematic files.

A schematic is a gzip compressed NBT compound holding metadata and one or
more regions. Each region stores a block state palette, with air at index
zero, and a long array of palette indices packed at a fixed bit width
(at least two bits) that may straddle 64-bit word boundaries. Positions are
indexed y*X*Z + z*X + x.
*/
package litematic

const (
	// Version is the Litematica schematic format version written.
	Version = 6
	// SubVersion is the minor format version written.
	SubVersion = 1
	// DataVersion is the Minecraft data version of 1.20.1, the release the
	// block palette was taken from.
	DataVersion = 3465

	defaultRegion = "Main"
	minBits       = 2
)

type vec3 struct {
	X int32 `nbt:"x"`
	Y int32 `nbt:"y"`
	Z int32 `nbt:"z"`
}

type blockState struct {
	Name string `nbt:"Name"`
}

type compound struct{}

type region struct {
	Position          vec3         `nbt:"Position"`
	Size              vec3         `nbt:"Size"`
	BlockStatePalette []blockState `nbt:"BlockStatePalette"`
	BlockStates       []int64      `nbt:"BlockStates"`
	Entities          []compound   `nbt:"Entities"`
	TileEntities      []compound   `nbt:"TileEntities"`
	PendingBlockTicks []compound   `nbt:"PendingBlockTicks"`
	PendingFluidTicks []compound   `nbt:"PendingFluidTicks"`
}

type metadata struct {
	Name          string `nbt:"Name"`
	Author        string `nbt:"Author"`
	Description   string `nbt:"Description"`
	RegionCount   int32  `nbt:"RegionCount"`
	TotalBlocks   int32  `nbt:"TotalBlocks"`
	TotalVolume   int32  `nbt:"TotalVolume"`
	EnclosingSize vec3   `nbt:"EnclosingSize"`
	TimeCreated   int64  `nbt:"TimeCreated"`
	TimeModified  int64  `nbt:"TimeModified"`
}

type schematic struct {
	MinecraftDataVersion int32             `nbt:"MinecraftDataVersion"`
	Version              int32             `nbt:"Version"`
	SubVersion           int32             `nbt:"SubVersion"`
	Metadata             metadata          `nbt:"Metadata"`
	Regions              map[string]region `nbt:"Regions"`
}

// bitsFor returns the packed width for a palette of n entries.
func bitsFor(n int) int {
	b := 0
	for v := n - 1; v > 0; v >>= 1 {
		b++
	}
	return max(b, minBits)
}

func packStates(indices []int, bits int) []int64 {
	words := make([]uint64, (len(indices)*bits+63)/64)
	mask := uint64(1)<<bits - 1
	for i, v := range indices {
		start := i * bits
		word, off := start>>6, uint(start&63)
		val := uint64(v) & mask
		words[word] |= val << off
		if off+uint(bits) > 64 {
			words[word+1] |= val >> (64 - off)
		}
	}
	out := make([]int64, len(words))
	for i, w := range words {
		out[i] = int64(w)
	}
	return out
}

func unpackStates(packed []int64, n, bits int) ([]int, bool) {
	if len(packed) < (n*bits+63)/64 {
		return nil, false
	}
	mask := uint64(1)<<bits - 1
	out := make([]int, n)
	for i := range n {
		start := i * bits
		word, off := start>>6, uint(start&63)
		v := uint64(packed[word]) >> off
		if off+uint(bits) > 64 {
			v |= uint64(packed[word+1]) << (64 - off)
		}
		out[i] = int(v & mask)
	}
	return out, true
}
