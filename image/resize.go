package image

import (
	"fmt"
	"image"
	"sort"

	"github.com/nfnt/resize"
)

// DefaultInterp is used when no interpolation is named
const DefaultInterp = "lanczos3"

var interps = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// ParseInterp returns the interpolation function by name
func ParseInterp(name string) (resize.InterpolationFunction, bool) {
	if name == "" {
		name = DefaultInterp
	}
	fn, ok := interps[name]
	return fn, ok
}

// Interps returns the known interpolation names, sorted
func Interps() []string {
	a := make([]string, 0, len(interps))
	for k := range interps {
		a = append(a, k)
	}
	sort.Strings(a)
	return a
}

// ScaleOption ...
type ScaleOption struct {
	Height int
	Interp string // name, empty means DefaultInterp
}

func (o ScaleOption) String() string {
	return fmt.Sprintf("h%d %s", o.Height, o.Interp)
}

// FitHeight computes the output size for scaling a ow x oh raster to height
// th. The width keeps the aspect ratio and is rounded to the nearest integer
// (halves round up), never below 1.
func FitHeight(ow, oh, th int) (w, h int, err error) {
	if oh <= 0 || ow <= 0 {
		return 0, 0, ErrInvalidDimension
	}
	if th <= 0 {
		return 0, 0, fmt.Errorf("target height %d: %w", th, ErrInvalidDimension)
	}
	n := int64(ow) * int64(th)
	w = int((2*n + int64(oh)) / (2 * int64(oh)))
	if w < 1 {
		w = 1
	}
	return w, th, nil
}

// ScaleToHeight returns a new raster of exactly opt.Height pixels high.
// Upscale and downscale share this path.
func ScaleToHeight(m image.Image, opt ScaleOption) (image.Image, error) {
	b := m.Bounds()
	w, h, err := FitHeight(b.Dx(), b.Dy(), opt.Height)
	if err != nil {
		return nil, err
	}
	interp, ok := ParseInterp(opt.Interp)
	if !ok {
		return nil, fmt.Errorf("unknown interpolation %q", opt.Interp)
	}
	return resize.Resize(uint(w), uint(h), m, interp), nil
}
