package oledpack

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/oledfsm/oledpack/image1bit"
)

// Header returns the comment line that opens a hex stream of n bytes.
func Header(n int) string {
	return fmt.Sprintf("// Generated OLED Image Data for Horizontal Mode (%d bytes)", n)
}

// WriteHex writes p as a hex stream: the header, a blank line, then one
// uppercase two-digit value per line in page then column order.
func WriteHex(w io.Writer, p *image1bit.VerticalLSB) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n\n", Header(len(p.Pix))); err != nil {
		return err
	}
	for _, b := range p.Pix {
		if _, err := fmt.Fprintf(bw, "%02X\n", b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadHex parses a hex stream written by WriteHex back into packed pages.
// Blank lines and // comments are skipped. The stream must hold exactly
// width*height/8 values.
func ReadHex(r io.Reader, width, height int) (*image1bit.VerticalLSB, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	out := image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))

	n := 0
	line := 0
	s := bufio.NewScanner(r)
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		v, err := strconv.ParseUint(text, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not a hex byte", ErrInvalidFormat, line, text)
		}
		if n == len(out.Pix) {
			return nil, fmt.Errorf("%w: more than %d values", ErrInvalidFormat, len(out.Pix))
		}
		out.Pix[n] = byte(v)
		n++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("oledpack: failed to read hex stream: %w", err)
	}
	if n != len(out.Pix) {
		return nil, fmt.Errorf("%w: got %d values, need %d", ErrInvalidFormat, n, len(out.Pix))
	}
	return out, nil
}

// WriteRows writes img as '0'/'1' text, one row per line.
func WriteRows(w io.Writer, img BitImage) error {
	bw := bufio.NewWriter(w)
	for _, row := range img {
		for _, px := range row {
			if err := bw.WriteByte('0' + px); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
