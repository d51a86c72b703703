// Command oledpack converts a '0'/'1' text bitmap into the hex stream an OLED
// controller in horizontal addressing mode expects, and back.
//
// Usage:
//
//	oledpack [-i input_data.txt] [-o output_hex_stream.txt] [--preview out.bmp]
//	oledpack unpack -i output_hex_stream.txt -o bitmap.txt
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	cli "github.com/urfave/cli/v2"

	"github.com/oledfsm/oledpack"
)

const (
	inputFlagName   = "input"
	outputFlagName  = "output"
	widthFlagName   = "width"
	heightFlagName  = "height"
	previewFlagName = "preview"
)

func main() {
	log.SetFlags(0)

	if err := newApp().Run(os.Args); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	def := oledpack.DefaultConfig()

	return &cli.App{
		Name:  "oledpack",
		Usage: "convert text bitmaps to OLED page data",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: inputFlagName, Aliases: []string{"i"}, Value: def.InputPath, Usage: "text bitmap to read"},
			&cli.StringFlag{Name: outputFlagName, Aliases: []string{"o"}, Value: def.OutputPath, Usage: "hex stream to write"},
			&cli.StringFlag{Name: previewFlagName, Usage: "optional BMP preview to write"},
		}, dimensionFlags(def)...),
		Action: packAction,
		Commands: []*cli.Command{
			{
				Name:  "unpack",
				Usage: "convert a hex stream back to a text bitmap",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: inputFlagName, Aliases: []string{"i"}, Value: def.OutputPath, Usage: "hex stream to read"},
					&cli.StringFlag{Name: outputFlagName, Aliases: []string{"o"}, Required: true, Usage: "text bitmap to write"},
				}, dimensionFlags(def)...),
				Action: unpackAction,
			},
		},
	}
}

func dimensionFlags(def oledpack.Config) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: widthFlagName, Value: def.Width, Usage: "image width in pixels"},
		&cli.IntFlag{Name: heightFlagName, Value: def.Height, Usage: "image height in pixels (multiple of 8)"},
	}
}

func configFromContext(ctx *cli.Context) oledpack.Config {
	return oledpack.Config{
		InputPath:   ctx.String(inputFlagName),
		OutputPath:  ctx.String(outputFlagName),
		PreviewPath: ctx.String(previewFlagName),
		Width:       ctx.Int(widthFlagName),
		Height:      ctx.Int(heightFlagName),
	}
}

func packAction(ctx *cli.Context) error {
	cfg := configFromContext(ctx)
	start := time.Now()

	packed, err := oledpack.Convert(cfg)
	if err != nil {
		return describe(cfg, err)
	}

	log.Printf("Read %q (%dx%d)", cfg.InputPath, cfg.Width, cfg.Height)
	log.Printf("Wrote %d bytes (%d pages) to %q in %s", len(packed.Pix), packed.Pages(), cfg.OutputPath, time.Since(start))
	if cfg.PreviewPath != "" {
		log.Printf("Preview written to %q", cfg.PreviewPath)
	}
	return nil
}

func unpackAction(ctx *cli.Context) error {
	cfg := configFromContext(ctx)

	img, err := oledpack.Decode(cfg)
	if err != nil {
		return describe(cfg, err)
	}

	log.Printf("Wrote %d rows to %q", len(img), cfg.OutputPath)
	return nil
}

// describe turns library errors into user facing diagnostics.
func describe(cfg oledpack.Config, err error) error {
	var ferr *oledpack.FormatError
	switch {
	case errors.Is(err, oledpack.ErrMissingInput):
		return fmt.Errorf("input file %q not found", cfg.InputPath)
	case errors.As(err, &ferr):
		return fmt.Errorf("%q is not a valid %dx%d bitmap: %w", cfg.InputPath, cfg.Width, cfg.Height, err)
	default:
		return err
	}
}
