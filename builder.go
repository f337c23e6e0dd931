package blockbuilder

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

type Options struct {
	// Distance metric used to pick blocks.
	// CIE2000 gives the most faithful result; Euclidean is the fastest and
	// favours saturated blocks. CMC is tolerance weighted and tends to keep
	// hue over lightness.
	ColorSpace ColorSpace `json:"color_space"`
	// Resampling kernel for the downsample to build height.
	// Nearest keeps hard pixel-art edges; Triangle, CatmullRom and Lanczos3
	// blend neighbours and suit photographs.
	Filter Filter `json:"filter"`
	// Goroutines scoring palette candidates for each pixel.
	// 0 uses GOMAXPROCS. 1 disables the fan-out.
	Workers int `json:"workers,omitempty"`
}

func DefaultOptions() Options {
	return Options{
		ColorSpace: CIE2000,
		Filter:     Nearest,
	}
}

// HeightFromSize returns the build height for an image of the given size:
// its own height, capped at BuildLimit.
func HeightFromSize(size image.Point) int {
	return max(1, min(size.Y, BuildLimit))
}

// Validate reports option values outside their enumerations.
func (o Options) Validate() error {
	if o.ColorSpace < 0 || int(o.ColorSpace) >= len(colorSpaceNames) {
		return fmt.Errorf("%w: color space %v", ErrInvalidInput, o.ColorSpace)
	}
	if o.Filter < 0 || int(o.Filter) >= len(filterNames) {
		return fmt.Errorf("%w: filter %v", ErrInvalidInput, o.Filter)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidInput, o.Workers)
	}
	return nil
}

// LoadOptions reads Options from a JSON file. Fields missing from the file
// keep their DefaultOptions values.
func LoadOptions(path string) (Options, error) {
	opt := DefaultOptions()
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return opt, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return opt, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 << 20
	if fileInfo.Size() > maxFileSize {
		return opt, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return opt, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &opt); err != nil {
		return opt, fmt.Errorf("failed to parse config file: %w", err)
	}
	return opt, opt.Validate()
}

type BlockBuilder struct {
	InputImage image.Image
	Palette    *Palette
	Working    *image.NRGBA
	Grid       *Grid
	Logger     *log.Logger
}

func NewBlockBuilder(input image.Image, palette *Palette) *BlockBuilder {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &BlockBuilder{
		InputImage: input,
		Palette:    palette,
		Logger:     log.New(io.Discard, "", 0),
	}
}

// Build downsamples the input image to height and matches every pixel
// against the palette. Working and Grid are replaced on success.
func (bb *BlockBuilder) Build(height int, opt Options) error {
	if err := opt.Validate(); err != nil {
		return err
	}
	start := time.Now()
	working, err := Resize(bb.InputImage, height, opt.Filter)
	if err != nil {
		return err
	}
	bb.logf("   resize %v -> %v (%v)", bb.InputImage.Bounds().Size(), working.Rect.Size(), opt.Filter)

	grid := Match(working, bb.Palette, opt.ColorSpace.Metric(), opt.Workers)
	w, h := grid.Dimensions()
	bb.logf("   match %dx%d cells with %v, %d candidates in %v",
		w, h, opt.ColorSpace, len(bb.Palette.Candidates()), time.Since(start).Round(time.Millisecond))

	bb.Working = working
	bb.Grid = grid
	return nil
}

// Render draws the built grid with sprites from assets at AssetSize.
func (bb *BlockBuilder) Render(assets fs.FS) (*image.NRGBA, error) {
	if bb.Grid == nil {
		return nil, errNotBuilt
	}
	return Render(bb.Grid, assets, AssetSize)
}

// Export lays the built grid out as a placement structure.
func (bb *BlockBuilder) Export(meta Metadata) (*Structure, error) {
	if bb.Grid == nil {
		return nil, errNotBuilt
	}
	if meta.Created.IsZero() {
		meta.Created = time.Now()
	}
	return ExportStructure(bb.Grid, meta), nil
}

// Quality evaluates the built grid with the metric of cs.
func (bb *BlockBuilder) Quality(cs ColorSpace) (Quality, error) {
	if bb.Grid == nil {
		return Quality{}, errNotBuilt
	}
	return Evaluate(bb.Working, bb.Grid, bb.Palette, cs.Metric()), nil
}

func (bb *BlockBuilder) logf(format string, args ...any) {
	if bb.Logger != nil {
		bb.Logger.Printf(format, args...)
	}
}
