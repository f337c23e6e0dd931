package litematic

import (
	"errors"
	"io"
	"math"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/setanarut/blockbuilder"
)

var errTooLarge = errors.New("litematic: structure too large")

func fromStructure(s *blockbuilder.Structure) (*schematic, error) {
	if s.Volume() != len(s.Blocks) || s.Volume() == 0 {
		return nil, errors.New("litematic: structure size does not match its blocks")
	}
	if s.Volume() > math.MaxInt32 {
		return nil, errTooLarge
	}

	// Air always takes index 0; the rest follow enumeration order.
	used := make(map[blockbuilder.Block]bool)
	for _, b := range s.Blocks {
		used[b] = true
	}
	palette := []blockState{{Name: blockbuilder.Air.ID()}}
	index := make(map[blockbuilder.Block]int)
	index[blockbuilder.Air] = 0
	for _, b := range blockbuilder.Blocks() {
		if b == blockbuilder.Air || !used[b] {
			continue
		}
		index[b] = len(palette)
		palette = append(palette, blockState{Name: b.ID()})
	}

	indices := make([]int, len(s.Blocks))
	for i, b := range s.Blocks {
		indices[i] = index[b]
	}

	size := vec3{X: int32(s.Size[0]), Y: int32(s.Size[1]), Z: int32(s.Size[2])}
	name := s.Metadata.Name
	if name == "" {
		name = defaultRegion
	}
	created := s.Metadata.Created.UnixMilli()

	return &schematic{
		MinecraftDataVersion: DataVersion,
		Version:              Version,
		SubVersion:           SubVersion,
		Metadata: metadata{
			Name:          name,
			Author:        s.Metadata.Author,
			Description:   s.Metadata.Description,
			RegionCount:   1,
			TotalBlocks:   int32(s.TotalBlocks()),
			TotalVolume:   int32(s.Volume()),
			EnclosingSize: size,
			TimeCreated:   created,
			TimeModified:  created,
		},
		Regions: map[string]region{
			name: {
				Size:              size,
				BlockStatePalette: palette,
				BlockStates:       packStates(indices, bitsFor(len(palette))),
				Entities:          []compound{},
				TileEntities:      []compound{},
				PendingBlockTicks: []compound{},
				PendingFluidTicks: []compound{},
			},
		},
	}, nil
}

// Encode writes s to w as a gzip compressed Litematica schematic.
func Encode(w io.Writer, s *blockbuilder.Structure) error {
	sch, err := fromStructure(s)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(w)
	if err := nbt.NewEncoder(zw).Encode(sch, ""); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
