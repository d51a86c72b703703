package oledpack

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/oledfsm/oledpack/image1bit"
)

func TestNewFramebuffer(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"valid 128x64", 128, 64, false},
		{"valid 128x32", 128, 32, false},
		{"valid 1x8 (minimum)", 1, 8, false},
		{"height not multiple of 8", 128, 60, true},
		{"width zero", 0, 64, true},
		{"height zero", 128, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := NewFramebuffer(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFramebuffer(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err == nil && len(fb.Bytes()) != tt.w*tt.h/8 {
				t.Errorf("len(Bytes()) = %d, want %d", len(fb.Bytes()), tt.w*tt.h/8)
			}
		})
	}
}

func TestFramebufferBounds(t *testing.T) {
	fb, _ := NewFramebuffer(128, 64)
	want := image.Rect(0, 0, 128, 64)
	if got := fb.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestFramebufferColorModel(t *testing.T) {
	fb, _ := NewFramebuffer(128, 64)
	if fb.ColorModel() != image1bit.BitModel {
		t.Error("ColorModel() did not return BitModel")
	}
}

func TestFramebufferString(t *testing.T) {
	fb, _ := NewFramebuffer(128, 64)
	want := "oledpack.Framebuffer{128x64}"
	if got := fb.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFramebufferDraw(t *testing.T) {
	fb, _ := NewFramebuffer(128, 64)

	src := image.NewGray(image.Rect(0, 0, 128, 64))
	src.SetGray(5, 3, color.Gray{Y: 0xFF})
	src.SetGray(127, 63, color.Gray{Y: 0xFF})

	if err := fb.Draw(fb.Bounds(), src, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	pages := fb.Bytes()
	for i, b := range pages {
		var want byte
		switch i {
		case 5:
			want = 0x08
		case 1023:
			want = 0x80
		}
		if b != want {
			t.Errorf("Bytes()[%d] = 0x%02X, want 0x%02X", i, b, want)
		}
	}
}

func TestFramebufferDrawPartial(t *testing.T) {
	fb, _ := NewFramebuffer(16, 16)

	white := image.NewUniform(color.White)
	if err := fb.Draw(image.Rect(2, 8, 4, 16), white, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	img := fb.Image()
	if got := img.Page(0); got[2] != 0 || got[3] != 0 {
		t.Errorf("page 0 columns 2-3 = 0x%02X 0x%02X, want 0x00 0x00", got[2], got[3])
	}
	if got := img.Page(1); got[2] != 0xFF || got[3] != 0xFF || got[4] != 0 {
		t.Errorf("page 1 columns 2-4 = 0x%02X 0x%02X 0x%02X, want 0xFF 0xFF 0x00", got[2], got[3], got[4])
	}
}

func TestFramebufferDrawFastPath(t *testing.T) {
	fb, _ := NewFramebuffer(8, 8)

	src := image1bit.NewVerticalLSB(fb.Bounds())
	copy(src.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err := fb.Draw(fb.Bounds(), src, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	got := fb.Bytes()
	for i, b := range src.Pix {
		if got[i] != b {
			t.Errorf("Bytes()[%d] = 0x%02X, want 0x%02X", i, got[i], b)
		}
	}
}

func TestFramebufferDrawOutside(t *testing.T) {
	fb, _ := NewFramebuffer(8, 8)

	white := image.NewUniform(color.White)
	if err := fb.Draw(image.Rect(20, 20, 30, 30), white, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	for i, b := range fb.Bytes() {
		if b != 0 {
			t.Errorf("Bytes()[%d] = 0x%02X, want 0x00", i, b)
		}
	}
}

func TestFramebufferWrite(t *testing.T) {
	fb, _ := NewFramebuffer(8, 8)

	n, err := fb.Write([]byte{0xAA, 0, 0, 0, 0, 0, 0, 0x55})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 8 {
		t.Errorf("Write() = %d, want 8", n)
	}
	img := fb.Image()
	if img.BitAt(0, 1) != image1bit.On || img.BitAt(0, 0) != image1bit.Off {
		t.Error("column 0 should hold 0xAA")
	}
}

func TestFramebufferWriteBufferSizeValidation(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		bufferSize int
	}{
		{"128x64 too small", 128, 64, 128*64/8 - 1},
		{"128x64 too large", 128, 64, 128*64/8 + 1},
		{"128x32 too small", 128, 32, 128*32/8 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, _ := NewFramebuffer(tt.width, tt.height)

			_, err := fb.Write(make([]byte, tt.bufferSize))
			if err == nil {
				t.Fatal("Write should fail with invalid buffer size")
			}
			if err.Error() != "oledpack: invalid buffer size" {
				t.Errorf("Write error = %v, want 'oledpack: invalid buffer size'", err)
			}
		})
	}
}

func TestFramebufferInvert(t *testing.T) {
	fb, _ := NewFramebuffer(8, 8)
	draw.Draw(fb.ram, image.Rect(0, 0, 4, 8), image.NewUniform(color.White), image.Point{}, draw.Src)

	if err := fb.Invert(); err != nil {
		t.Fatalf("Invert() error = %v", err)
	}
	want := []byte{0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}
	for i, b := range fb.Bytes() {
		if b != want[i] {
			t.Errorf("Bytes()[%d] = 0x%02X, want 0x%02X", i, b, want[i])
		}
	}
}

func TestFramebufferBytesIsCopy(t *testing.T) {
	fb, _ := NewFramebuffer(8, 8)
	b := fb.Bytes()
	b[0] = 0xFF
	if fb.Bytes()[0] != 0 {
		t.Error("modifying Bytes() result changed the framebuffer")
	}
}

func TestFramebufferHalt(t *testing.T) {
	fb, _ := NewFramebuffer(128, 64)

	if fb.halted {
		t.Error("framebuffer should not be halted initially")
	}
	if err := fb.Halt(); err != nil {
		t.Fatalf("Halt() error = %v", err)
	}

	if err := fb.Draw(fb.Bounds(), image.NewRGBA(fb.Bounds()), image.Point{}); err != ErrHalted {
		t.Errorf("Draw after Halt = %v, want ErrHalted", err)
	}
	if _, err := fb.Write(make([]byte, 1024)); err != ErrHalted {
		t.Errorf("Write after Halt = %v, want ErrHalted", err)
	}
	if err := fb.Invert(); err != ErrHalted {
		t.Errorf("Invert after Halt = %v, want ErrHalted", err)
	}
}
