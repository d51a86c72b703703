package oledpack

import (
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"github.com/oledfsm/oledpack/image1bit"
)

// Convert runs the whole conversion: load the text bitmap at cfg.InputPath,
// pack it into a Framebuffer and write the display RAM as a hex stream to
// cfg.OutputPath. When cfg.PreviewPath is set a BMP rendering of the RAM is
// written there as well. On any error no output file is left behind.
func Convert(cfg Config) (*image1bit.VerticalLSB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	img, err := Load(cfg)
	if err != nil {
		return nil, err
	}

	packed, err := Pack(img, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	fb, err := NewFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	defer fb.Halt()
	if err := fb.Draw(fb.Bounds(), packed, image.Point{}); err != nil {
		return nil, err
	}
	ram := fb.Image()

	if err := writeFile(cfg.OutputPath, func(w io.Writer) error {
		return WriteHex(w, ram)
	}); err != nil {
		return nil, err
	}

	if cfg.PreviewPath != "" {
		if err := writeFile(cfg.PreviewPath, func(w io.Writer) error {
			return bmp.Encode(w, ram)
		}); err != nil {
			os.Remove(cfg.OutputPath)
			return nil, err
		}
	}

	return ram, nil
}

// Decode reads the hex stream at cfg.InputPath, loads it into a Framebuffer
// and writes the RAM back as a '0'/'1' text bitmap to cfg.OutputPath.
func Decode(cfg Config) (BitImage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var packed *image1bit.VerticalLSB
	err := func() error {
		f, err := openInput(cfg.InputPath)
		if err != nil {
			return err
		}
		defer f.Close()

		packed, err = ReadHex(f, cfg.Width, cfg.Height)
		return err
	}()
	if err != nil {
		return nil, err
	}

	fb, err := NewFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	defer fb.Halt()
	if _, err := fb.Write(packed.Pix); err != nil {
		return nil, err
	}

	img := Unpack(fb.Image())
	if err := writeFile(cfg.OutputPath, func(w io.Writer) error {
		return WriteRows(w, img)
	}); err != nil {
		return nil, err
	}
	return img, nil
}

// writeFile creates path, hands it to write and closes it on every path.
// A failed Close is reported when write itself succeeded. On error the
// partially written file is removed.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("oledpack: failed to create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("oledpack: failed to close %q: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("oledpack: failed to write %q: %w", path, err)
	}
	return nil
}
