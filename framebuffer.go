package oledpack

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"github.com/oledfsm/oledpack/image1bit"
)

// Framebuffer is an in-memory monochrome display with page addressed RAM.
//
// It implements display.Drawer so anything that renders to a periph.io
// display can render into it; the packed result is then available through
// Bytes or Image. Nothing is sent to hardware.
type Framebuffer struct {
	ram    *image1bit.VerticalLSB
	halted bool
}

var _ display.Drawer = (*Framebuffer)(nil)

// NewFramebuffer creates a blank framebuffer of width x height pixels.
// The height must be a multiple of 8.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Framebuffer{
		ram: image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
	}, nil
}

// ColorModel returns the color model of the display.
func (f *Framebuffer) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (f *Framebuffer) Bounds() image.Rectangle {
	return f.ram.Rect
}

// Draw draws src onto the display. The dst rectangle specifies the
// destination region, src is read starting at sp.
func (f *Framebuffer) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if f.halted {
		return ErrHalted
	}

	dst = dst.Intersect(f.ram.Rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: already packed at full size
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == f.ram.Rect && sp == (image.Point{}) && srcImg.Rect == f.ram.Rect {
			copy(f.ram.Pix, srcImg.Pix)
			return nil
		}
	}

	draw.Draw(f.ram, dst, src, sp, draw.Src)
	return nil
}

// Write replaces the display RAM with raw packed pages.
// The data must be exactly width*height/8 bytes.
func (f *Framebuffer) Write(pages []byte) (int, error) {
	if f.halted {
		return 0, ErrHalted
	}
	if len(pages) != len(f.ram.Pix) {
		return 0, errors.New("oledpack: invalid buffer size")
	}
	copy(f.ram.Pix, pages)
	return len(pages), nil
}

// Bytes returns a copy of the display RAM in horizontal addressing order.
func (f *Framebuffer) Bytes() []byte {
	out := make([]byte, len(f.ram.Pix))
	copy(out, f.ram.Pix)
	return out
}

// Image returns a copy of the display RAM as an image.
func (f *Framebuffer) Image() *image1bit.VerticalLSB {
	return &image1bit.VerticalLSB{
		Pix:    f.Bytes(),
		Stride: f.ram.Stride,
		Rect:   f.ram.Rect,
	}
}

// Invert flips every pixel of the display RAM.
func (f *Framebuffer) Invert() error {
	if f.halted {
		return ErrHalted
	}
	for i := range f.ram.Pix {
		f.ram.Pix[i] = ^f.ram.Pix[i]
	}
	return nil
}

// Halt stops the display. Further Draw, Write and Invert calls fail.
func (f *Framebuffer) Halt() error {
	f.halted = true
	return nil
}

// String returns a string representation of the display.
func (f *Framebuffer) String() string {
	return fmt.Sprintf("oledpack.Framebuffer{%dx%d}", f.ram.Rect.Dx(), f.ram.Rect.Dy())
}
