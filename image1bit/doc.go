// Package image1bit provides a 1-bit monochrome image format laid out the way
// page-addressed OLED controllers (SSD1306, SH1106 and friends) store their RAM.
//
// Rows are grouped in pages of 8. Each byte covers one column of one page and
// holds 8 vertically stacked pixels, the topmost pixel in the least
// significant bit. Pages are stored one after another, so in horizontal
// addressing mode the Pix slice can be streamed to the controller as is.
//
// Memory layout example for an 4x8 image (one page):
//
//	Row 0:  1 0 0 1     bit 0
//	Row 1:  1 0 0 0     bit 1
//	Row 2:  1 0 0 0     bit 2
//	 ...
//	Row 7:  1 0 1 0     bit 7
//	Bytes:  0xFF 0x00 0x80 0x01
//
// This package provides:
//
// - Bit: A color type representing an on or off pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation storing packed pages
//
// Example usage:
//
//	// Create a 128x64 image (8 pages of 128 bytes)
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light the pixel at column 5, row 3
//	img.SetBit(5, 3, image1bit.On)
//
//	// Page 0, column 5 now reads 0x08
//	fmt.Printf("%02X\n", img.Page(0)[5])
package image1bit
