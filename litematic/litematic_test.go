package litematic

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/setanarut/blockbuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsFor(t *testing.T) {
	tests := []struct{ n, want int }{
		{1, 2}, {2, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {17, 5}, {117, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bitsFor(tt.n), "bitsFor(%d)", tt.n)
	}
}

func TestPackStates(t *testing.T) {
	for _, bits := range []int{2, 3, 5, 7, 13} {
		indices := make([]int, 101)
		for i := range indices {
			indices[i] = (i * 7) % (1 << bits)
		}
		packed := packStates(indices, bits)
		assert.Len(t, packed, (len(indices)*bits+63)/64)

		got, ok := unpackStates(packed, len(indices), bits)
		require.True(t, ok)
		assert.Equal(t, indices, got, "bits %d", bits)
	}
}

func TestPackStatesLayout(t *testing.T) {
	// Two-bit values fill words from the least significant bit.
	packed := packStates([]int{1, 2, 3, 0}, 2)
	assert.Equal(t, []int64{0b00_11_10_01}, packed)

	// A 5-bit value at index 12 starts at bit 60 and spills into word 1.
	indices := make([]int, 13)
	indices[12] = 0b10111
	packed = packStates(indices, 5)
	require.Len(t, packed, 2)
	assert.Equal(t, int64(0b0111)<<60, packed[0])
	assert.Equal(t, int64(1), packed[1])
}

func TestUnpackStatesShort(t *testing.T) {
	_, ok := unpackStates([]int64{0}, 40, 2)
	assert.False(t, ok)
}

func testStructure(t *testing.T) *blockbuilder.Structure {
	t.Helper()
	g, err := blockbuilder.NewGrid(4, 3, []blockbuilder.Block{
		blockbuilder.Stone, blockbuilder.Air, blockbuilder.RedWool, blockbuilder.RedWool,
		blockbuilder.Air, blockbuilder.Air, blockbuilder.Dirt, blockbuilder.Stone,
		blockbuilder.GoldBlock, blockbuilder.Stone, blockbuilder.Air, blockbuilder.BlackConcrete,
	})
	require.NoError(t, err)
	return blockbuilder.ExportStructure(g, blockbuilder.Metadata{
		Name:        "flag",
		Author:      "tester",
		Description: "a test design",
		Created:     time.UnixMilli(1700000000123),
	})
}

func TestFromStructure(t *testing.T) {
	s := testStructure(t)
	sch, err := fromStructure(s)
	require.NoError(t, err)

	assert.Equal(t, int32(DataVersion), sch.MinecraftDataVersion)
	assert.Equal(t, int32(Version), sch.Version)
	assert.Equal(t, int32(12), sch.Metadata.TotalVolume)
	assert.Equal(t, int32(8), sch.Metadata.TotalBlocks)
	assert.Equal(t, vec3{X: 4, Y: 1, Z: 3}, sch.Metadata.EnclosingSize)
	assert.Equal(t, int64(1700000000123), sch.Metadata.TimeCreated)

	require.Contains(t, sch.Regions, "flag")
	r := sch.Regions["flag"]
	want := []blockState{
		{Name: "minecraft:air"},
		{Name: "minecraft:stone"},
		{Name: "minecraft:dirt"},
		{Name: "minecraft:gold_block"},
		{Name: "minecraft:red_wool"},
		{Name: "minecraft:black_concrete"},
	}
	if diff := cmp.Diff(want, r.BlockStatePalette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}

	indices, ok := unpackStates(r.BlockStates, 12, bitsFor(len(want)))
	require.True(t, ok)
	assert.Equal(t, []int{1, 0, 4, 4, 0, 0, 2, 1, 3, 1, 0, 5}, indices)
}

func TestFromStructureDefaultRegionName(t *testing.T) {
	s := testStructure(t)
	s.Metadata.Name = ""
	sch, err := fromStructure(s)
	require.NoError(t, err)
	assert.Contains(t, sch.Regions, defaultRegion)
}

func TestFromStructureMismatch(t *testing.T) {
	s := testStructure(t)
	s.Blocks = s.Blocks[:5]
	_, err := fromStructure(s)
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	s := testStructure(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))
	require.Greater(t, buf.Len(), 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, buf.Bytes()[:2], "output must be gzip")

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Size, got.Size)
	assert.Equal(t, s.Blocks, got.Blocks)
	assert.Equal(t, s.Metadata.Name, got.Metadata.Name)
	assert.Equal(t, s.Metadata.Author, got.Metadata.Author)
	assert.Equal(t, s.Metadata.Description, got.Metadata.Description)
	assert.Equal(t, s.Metadata.Created.UnixMilli(), got.Metadata.Created.UnixMilli())
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not a schematic")))
	assert.Error(t, err)
}

func TestToStructureErrors(t *testing.T) {
	_, err := toStructure(&schematic{})
	assert.ErrorIs(t, err, errRegions)

	_, err = toStructure(&schematic{Regions: map[string]region{"a": {}}})
	assert.ErrorIs(t, err, errBadSize)

	for _, size := range []vec3{
		{X: math.MinInt32, Y: 1, Z: 1},
		{X: math.MaxInt32, Y: math.MaxInt32, Z: math.MaxInt32},
		{X: 65536, Y: -65536, Z: 1},
		{X: 3, Y: 0, Z: 3},
	} {
		_, err = toStructure(&schematic{Regions: map[string]region{"a": {
			Size:              size,
			BlockStatePalette: []blockState{{Name: "minecraft:air"}},
			BlockStates:       []int64{0},
		}}})
		assert.ErrorIs(t, err, errBadSize, "size %v", size)
	}

	_, err = toStructure(&schematic{Regions: map[string]region{"a": {
		Size:              vec3{X: 1 << 20, Y: 1, Z: 1},
		BlockStatePalette: []blockState{{Name: "minecraft:air"}},
		BlockStates:       []int64{0},
	}}})
	assert.ErrorIs(t, err, errNotEnough)

	_, err = toStructure(&schematic{Regions: map[string]region{"a": {
		Size:              vec3{X: 2, Y: 1, Z: 1},
		BlockStatePalette: []blockState{{Name: "minecraft:air"}},
	}}})
	assert.ErrorIs(t, err, errNotEnough)

	_, err = toStructure(&schematic{Regions: map[string]region{"a": {
		Size:              vec3{X: 1, Y: 1, Z: 1},
		BlockStatePalette: []blockState{{Name: "minecraft:air"}, {Name: "minecraft:bedrock"}},
		BlockStates:       []int64{0},
	}}})
	assert.ErrorIs(t, err, blockbuilder.ErrInvalidInput)

	_, err = toStructure(&schematic{Regions: map[string]region{"a": {
		Size:              vec3{X: -1, Y: 1, Z: 1},
		BlockStatePalette: []blockState{{Name: "minecraft:air"}},
		BlockStates:       []int64{3},
	}}})
	assert.ErrorIs(t, err, errBadPalette)
}
