package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/setanarut/blockbuilder"
	"github.com/setanarut/blockbuilder/utils"
	"github.com/urfave/cli/v2"
)

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// loadOptions starts from the config file, if any, and applies the flags
// given on the command line or through the environment on top.
func loadOptions(c *cli.Context) (blockbuilder.Options, error) {
	opt := blockbuilder.DefaultOptions()
	if path := c.String("config"); path != "" {
		var err error
		if opt, err = blockbuilder.LoadOptions(path); err != nil {
			return opt, err
		}
	}
	if c.IsSet("color-space") {
		cs, err := blockbuilder.ParseColorSpace(c.String("color-space"))
		if err != nil {
			return opt, err
		}
		opt.ColorSpace = cs
	}
	if c.IsSet("filter") {
		f, err := blockbuilder.ParseFilter(c.String("filter"))
		if err != nil {
			return opt, err
		}
		opt.Filter = f
	}
	if c.IsSet("workers") {
		opt.Workers = c.Int("workers")
	}
	return opt, opt.Validate()
}

func loadPalette(c *cli.Context) (*blockbuilder.Palette, error) {
	palette := blockbuilder.DefaultPalette()
	if method := c.String("derive"); method != "" {
		dir := c.String("textures")
		if dir == "" {
			return nil, fmt.Errorf("--derive needs --textures")
		}
		var m blockbuilder.ColorMethod
		switch method {
		case "average":
			m = blockbuilder.ColorMethodAverage
		case "dominant":
			m = blockbuilder.ColorMethodDominant
		default:
			return nil, fmt.Errorf("unknown derive method %q", method)
		}
		var err error
		if palette, err = blockbuilder.DerivePalette(os.DirFS(dir), m); err != nil {
			return nil, err
		}
	}

	var excluded []blockbuilder.Block
	for _, name := range c.StringSlice("exclude") {
		b, err := blockbuilder.ParseBlock(name)
		if err != nil {
			return nil, err
		}
		excluded = append(excluded, b)
	}
	palette = palette.Without(excluded...)
	if len(palette.Candidates()) == 0 {
		return nil, fmt.Errorf("every block has been excluded from the palette")
	}
	return palette, nil
}

// build reads the first argument and matches it at --height.
func build(c *cli.Context) (*blockbuilder.BlockBuilder, blockbuilder.Options, error) {
	opt, err := loadOptions(c)
	if err != nil {
		return nil, opt, err
	}
	palette, err := loadPalette(c)
	if err != nil {
		return nil, opt, err
	}
	img, err := utils.ReadImage(c.Args().First())
	if err != nil {
		return nil, opt, err
	}

	height := c.Int("height")
	if height == 0 {
		height = blockbuilder.HeightFromSize(img.Bounds().Size())
	}

	b := blockbuilder.NewBlockBuilder(img, palette)
	b.Logger = newLogger(c)
	if err := b.Build(height, opt); err != nil {
		return nil, opt, err
	}
	return b, opt, nil
}
