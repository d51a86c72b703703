package oledpack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when the input text is not a usable bitmap.
	ErrInvalidFormat = errors.New("oledpack: invalid format")
	// ErrOutOfRange is returned when an image is smaller than the requested
	// dimensions.
	ErrOutOfRange = errors.New("oledpack: out of range")
	// ErrInvalidDimensions is returned for a width or height the page layout
	// cannot represent.
	ErrInvalidDimensions = errors.New("oledpack: height must be a positive multiple of 8 and width positive")
	// ErrMissingInput is returned when the input file cannot be opened.
	ErrMissingInput = errors.New("oledpack: missing input file")
	// ErrHalted is returned by a Framebuffer after Halt.
	ErrHalted = errors.New("oledpack: halted")
)

// FormatError reports a malformed row or pixel in the input.
// Col is -1 when the fault concerns the whole row.
type FormatError struct {
	Row    int
	Col    int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("oledpack: row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("oledpack: row %d, column %d: %s", e.Row, e.Col, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidFormat) hold for every FormatError.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
