package image

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("invalid or unsupported image format")
	ErrInvalidDimension  = errors.New("invalid image dimension")
)

// DecodeError the file is not a valid or supported image
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidImageError the image decoded but has degenerate dimensions
type InvalidImageError struct {
	Path          string
	Width, Height int
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image %s: %dx%d", e.Path, e.Width, e.Height)
}

func (e *InvalidImageError) Unwrap() error { return ErrInvalidDimension }

// WriteError I/O failure while writing an output
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
