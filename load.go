package oledpack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"
)

// ReadRows reads the non-blank lines of r with surrounding whitespace removed.
func ReadRows(r io.Reader) ([]string, error) {
	var rows []string
	s := bufio.NewScanner(r)
	// Columns past the crop are ignored, so lines may be arbitrarily long.
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("oledpack: failed to read rows: %w", err)
	}
	return rows, nil
}

// ParseRows crops lines to height rows of width characters and converts them
// to a BitImage. Lines and characters beyond the crop window are ignored and
// not validated.
func ParseRows(lines []string, width, height int) (BitImage, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(lines) < height {
		return nil, &FormatError{
			Row:    len(lines),
			Col:    -1,
			Reason: fmt.Sprintf("need %d non-blank rows, got %d", height, len(lines)),
		}
	}

	img := make(BitImage, height)
	for y, line := range lines[:height] {
		if len(line) < width {
			return nil, &FormatError{
				Row:    y,
				Col:    -1,
				Reason: fmt.Sprintf("need %d columns, got %d", width, len(line)),
			}
		}
		row := make([]byte, width)
		for x := 0; x < width; x++ {
			switch c := line[x]; c {
			case '0':
			case '1':
				row[x] = 1
			default:
				return nil, &FormatError{Row: y, Col: x, Reason: fmt.Sprintf("unexpected character %q", c)}
			}
		}
		img[y] = row
	}
	return img, nil
}

// Load reads and parses the text bitmap at cfg.InputPath.
func Load(cfg Config) (BitImage, error) {
	f, err := openInput(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadRows(f)
	if err != nil {
		return nil, err
	}
	return ParseRows(lines, cfg.Width, cfg.Height)
}

// openInput opens path for reading. A file that does not exist yields an
// error matching both ErrMissingInput and fs.ErrNotExist.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q: %w", ErrMissingInput, path, err)
		}
		return nil, fmt.Errorf("oledpack: failed to open %q: %w", path, err)
	}
	return f, nil
}
