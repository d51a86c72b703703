// Package oledpack converts text bitmaps into packed page data for monochrome
// OLED controllers running in horizontal addressing mode.
//
// Controllers such as the SSD1306 and SH1106 split their RAM into pages of 8
// pixel rows. One byte covers one column of one page, with the topmost pixel
// in bit 0. In horizontal addressing mode each write advances the column and
// wraps to the next page, so a full frame is simply every page in order.
//
// # Input Format
//
// The input is plain text, one pixel row per line, '1' for a lit pixel and
// '0' for a dark one. Surrounding whitespace is stripped and blank lines are
// skipped. The image is cropped to the configured width and height (128x64 by
// default), so longer lines and extra rows are ignored:
//
//	0000000000000000...
//	0001111111111000...
//	0010000000000100...
//
// # Output Format
//
// The output is a hex stream: a header comment, a blank line, then one
// two-digit uppercase hex value per line in page then column order. A 128x64
// image gives 1024 values:
//
//	// Generated OLED Image Data for Horizontal Mode (1024 bytes)
//
//	00
//	FE
//	...
//
// # Basic Usage
//
// The conversion runs in three stages that can be used independently:
//
//	cfg := oledpack.DefaultConfig()
//
//	// Load: read and validate input_data.txt
//	img, err := oledpack.Load(cfg)
//	if err != nil {
//		return err
//	}
//
//	// Pack: 64 rows of 128 pixels become 8 pages of 128 bytes
//	packed, err := oledpack.Pack(img, cfg.Width, cfg.Height)
//	if err != nil {
//		return err
//	}
//
//	// Serialize: write the hex stream
//	return oledpack.WriteHex(w, packed)
//
// Convert chains the three stages and handles the files:
//
//	packed, err := oledpack.Convert(oledpack.DefaultConfig())
//
// # Errors
//
// Malformed input is reported as a *FormatError naming the row and column at
// fault; it matches ErrInvalidFormat with errors.Is. Packing an image smaller
// than the requested dimensions fails with ErrOutOfRange. A missing input
// file matches ErrMissingInput and no output file is created.
//
// # Rendering Images
//
// Framebuffer implements the display.Drawer interface from periph.io, so any
// image.Image can be drawn into it and read back as packed pages:
//
//	fb, _ := oledpack.NewFramebuffer(128, 64)
//	fb.Draw(fb.Bounds(), img, image.Point{})
//	pages := fb.Bytes()
//
// https://pkg.go.dev/periph.io/x/conn/v3/display
package oledpack
