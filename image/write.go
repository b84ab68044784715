package image

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// DefaultJPEGQuality when WriteOption.Quality is unset
const DefaultJPEGQuality = 90

// WriteOption ...
type WriteOption struct {
	Format  Format
	Quality int
}

// Encode writes m to w in opt.Format, only JPEG and PNG are writable.
func Encode(w io.Writer, m image.Image, opt WriteOption) error {
	switch opt.Format {
	case FormatJPEG:
		q := opt.Quality
		if q < 1 || q > 100 {
			q = DefaultJPEGQuality
		}
		return jpeg.Encode(w, m, &jpeg.Options{Quality: q})
	case FormatPNG:
		return png.Encode(w, m)
	}
	return ErrUnsupportedFormat
}
