package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/setanarut/blockbuilder"
	"github.com/setanarut/blockbuilder/litematic"
	"github.com/setanarut/blockbuilder/utils"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "blockbuilder"
	app.Usage = "Turn images into block designs"
	app.Version = "1.0.0"

	heightFlag := func() cli.Flag {
		return &cli.IntFlag{
			Name:  "height",
			Usage: "build height in blocks, 0 uses the image height (max 320)",
		}
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"BLOCKBUILDER_CONFIG"},
			Usage:   "path to a JSON options file",
		},
		&cli.StringFlag{
			Name:    "color-space",
			Aliases: []string{"c"},
			EnvVars: []string{"BLOCKBUILDER_COLOR_SPACE"},
			Value:   blockbuilder.CIE2000.String(),
			Usage:   "distance metric: cie2000, cie76, cmc or euclidean",
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			EnvVars: []string{"BLOCKBUILDER_FILTER"},
			Value:   blockbuilder.Nearest.String(),
			Usage:   "downsampling filter: nearest, triangle, catmullrom or lanczos3",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "goroutines scoring palette candidates, 0 uses all CPUs",
		},
		&cli.StringFlag{
			Name:    "textures",
			EnvVars: []string{"BLOCKBUILDER_TEXTURES"},
			Usage:   "directory of block textures (assets/minecraft/textures/block)",
		},
		&cli.StringFlag{
			Name:  "derive",
			Usage: "recompute block colors from --textures: average or dominant",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "block to leave out of the palette, may be repeated",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "render",
			Usage:     "Render a preview image of the design",
			ArgsUsage: "IMAGE OUTPUT",
			Flags: []cli.Flag{
				heightFlag(),
				&cli.IntFlag{
					Name:  "size",
					Value: blockbuilder.AssetSize,
					Usage: "pixels per block",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				b, _, err := build(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				var out *image.NRGBA
				if dir := c.String("textures"); dir != "" {
					if out, err = blockbuilder.Render(b.Grid, os.DirFS(dir), c.Int("size")); err != nil {
						return cli.Exit(err, 1)
					}
				} else {
					out = blockbuilder.RenderSwatches(b.Grid, b.Palette, c.Int("size"))
				}
				if err := utils.SaveImage(out, c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Export the design as a Litematica schematic",
			ArgsUsage: "IMAGE OUTPUT",
			Flags: []cli.Flag{
				heightFlag(),
				&cli.StringFlag{Name: "name", Usage: "schematic name"},
				&cli.StringFlag{Name: "author", Usage: "schematic author"},
				&cli.StringFlag{Name: "description", Usage: "schematic description"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				b, _, err := build(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				s, err := b.Export(blockbuilder.Metadata{
					Name:        c.String("name"),
					Author:      c.String("author"),
					Description: c.String("description"),
				})
				if err != nil {
					return cli.Exit(err, 1)
				}
				f, err := os.Create(c.Args().Get(1))
				if err != nil {
					return cli.Exit(err, 1)
				}
				if err := litematic.Encode(f, s); err != nil {
					f.Close()
					return cli.Exit(err, 1)
				}
				if err := f.Close(); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "materials",
			Usage:     "Print the material list and match quality of the design",
			ArgsUsage: "IMAGE",
			Flags:     []cli.Flag{heightFlag()},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				b, opt, err := build(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				w, h := b.Grid.Dimensions()
				fmt.Fprintf(c.App.Writer, "%dx%d blocks\n", w, h)
				for _, m := range b.Grid.Materials() {
					fmt.Fprintf(c.App.Writer, "%8d  %s\n", m.Count, m.Block.ID())
				}
				q, err := b.Quality(opt.ColorSpace)
				if err != nil {
					return cli.Exit(err, 1)
				}
				fmt.Fprintf(c.App.Writer, "%v distance: mean %.2f, stddev %.2f, median %.2f, max %.2f\n",
					opt.ColorSpace, q.Mean, q.StdDev, q.Median, q.Max)
				return nil
			},
		},
		{
			Name:  "blocks",
			Usage: "List the palette from darkest to brightest",
			Action: func(c *cli.Context) error {
				palette, err := loadPalette(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				blocks := palette.Candidates()
				utils.SortBlocksByBrightness(blocks, palette)
				for _, b := range blocks {
					col, _ := palette.ReferenceColor(b)
					n := col.NRGBA()
					fmt.Fprintf(c.App.Writer, "#%02x%02x%02x  %s\n", n.R, n.G, n.B, b.ID())
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
