package normalize

import (
	"errors"
	stdimage "image"

	"github.com/41v4/img-manipulation/image"
)

// Transform applies the decided transforms in memory, resize before
// convert, and returns the new raster with its output format.
func Transform(f *image.File, d Decision, p Policy) (stdimage.Image, image.Format, error) {
	m, format := f.Image(), f.Format
	if d.Resize {
		if f.Width <= 0 || f.Height <= 0 {
			return nil, image.FormatNone, &image.InvalidImageError{Path: f.Path, Width: f.Width, Height: f.Height}
		}
		r, err := image.ScaleToHeight(m, image.ScaleOption{Height: p.TargetHeight, Interp: p.Interp})
		if err != nil {
			if errors.Is(err, image.ErrInvalidDimension) {
				return nil, image.FormatNone, &image.InvalidImageError{Path: f.Path, Width: f.Width, Height: f.Height}
			}
			return nil, image.FormatNone, err
		}
		m = r
	}
	if d.Convert {
		// jpeg has no alpha
		if image.HasAlpha(m) {
			m = image.Flatten(m, p.Background)
		}
		format = p.Canonical
	}
	return m, format, nil
}
