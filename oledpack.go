// Package oledpack converts '0'/'1' text bitmaps into the page layout used by
// monochrome OLED controllers in horizontal addressing mode.
//
// See doc.go for an overview.
package oledpack

import (
	"errors"
	"fmt"
	"image"

	"github.com/oledfsm/oledpack/image1bit"
)

const (
	// DefaultWidth is the width of the cropped image in pixels.
	DefaultWidth = 128
	// DefaultHeight is the height of the cropped image in pixels.
	DefaultHeight = 64

	// DefaultInputPath is the text bitmap read when no input is configured.
	DefaultInputPath = "input_data.txt"
	// DefaultOutputPath is the hex stream written when no output is configured.
	DefaultOutputPath = "output_hex_stream.txt"
)

// Config is the configuration of a conversion run.
type Config struct {
	InputPath   string // Text bitmap, or hex stream for Decode
	OutputPath  string // Hex stream, or text bitmap for Decode
	PreviewPath string // Optional BMP preview of the packed image

	// Cropped image dimensions in pixels
	Width  int // Default: 128
	Height int // Default: 64, must be a multiple of 8
}

// DefaultConfig returns the configuration of a 128x64 display reading
// input_data.txt and writing output_hex_stream.txt.
func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

// Validate checks that the configuration can drive a conversion.
func (c Config) Validate() error {
	if err := checkDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if c.InputPath == "" {
		return errors.New("oledpack: input path must be set")
	}
	if c.OutputPath == "" {
		return errors.New("oledpack: output path must be set")
	}
	return nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || height%image1bit.PageHeight != 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidDimensions, width, height)
	}
	return nil
}

// BitImage is a row-major bitmap. img[y][x] is 0 or 1, row 0 on top.
type BitImage [][]byte

// Pack packs the top-left width x height pixels of img into pages of 8 rows.
//
// Byte j of page p holds column j of rows p*8 to p*8+7, row p*8 in bit 0.
// The result's Pix is the page-major, column-minor byte stream a controller
// in horizontal addressing mode expects.
func Pack(img BitImage, width, height int) (*image1bit.VerticalLSB, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(img) < height {
		return nil, fmt.Errorf("%w: image has %d rows, need %d", ErrOutOfRange, len(img), height)
	}
	for y, row := range img[:height] {
		if len(row) < width {
			return nil, fmt.Errorf("%w: row %d has %d columns, need %d", ErrOutOfRange, y, len(row), width)
		}
	}

	out := image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))
	for p := 0; p < out.Pages(); p++ {
		page := out.Page(p)
		for j := range page {
			var b byte
			for k := 0; k < image1bit.PageHeight; k++ {
				px := img[p*image1bit.PageHeight+k][j]
				if px > 1 {
					return nil, &FormatError{Row: p*image1bit.PageHeight + k, Col: j, Reason: fmt.Sprintf("pixel value %d is not 0 or 1", px)}
				}
				b |= px << uint(k)
			}
			page[j] = b
		}
	}
	return out, nil
}

// Unpack expands packed pages back into a row-major bitmap.
// Unpack(Pack(img)) equals img cropped to the packed dimensions.
func Unpack(p *image1bit.VerticalLSB) BitImage {
	width, height := p.Rect.Dx(), p.Rect.Dy()
	img := make(BitImage, height)
	for y := range img {
		img[y] = make([]byte, width)
		page := p.Page(y / image1bit.PageHeight)
		shift := uint(y % image1bit.PageHeight)
		for x := range img[y] {
			img[y][x] = (page[x] >> shift) & 1
		}
	}
	return img
}
