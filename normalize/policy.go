// Package normalize decides and applies the per-image height and format
// policy over a directory of images.
package normalize

import (
	"image/color"

	"github.com/41v4/img-manipulation/config"
	"github.com/41v4/img-manipulation/image"
)

// Policy is the immutable target of one run, shared read-only by every file.
type Policy struct {
	TargetHeight int
	Canonical    image.Format
	Quality      int
	Interp       string
	Background   color.Color
	KeepOriginal bool
}

// PolicyFrom builds a Policy from validated settings
func PolicyFrom(s config.Settings) (Policy, error) {
	if err := s.Validate(image.Interps()); err != nil {
		return Policy{}, err
	}
	return Policy{
		TargetHeight: s.TargetHeight,
		Canonical:    image.Ext2Format(s.CanonicalFormat),
		Quality:      s.JPEGQuality,
		Interp:       s.Interpolation,
		Background:   s.BackgroundColor(),
		KeepOriginal: s.KeepOriginal,
	}, nil
}

// DefaultPolicy is PolicyFrom(config.Default())
func DefaultPolicy() Policy {
	p, _ := PolicyFrom(config.Default())
	return p
}

// Action is the primary transform picked for a file, for reporting.
type Action int

// actions in priority order
const (
	NoOp Action = iota
	Upscale
	Downscale
	ConvertFormat
)

func (a Action) String() string {
	switch a {
	case Upscale:
		return "upscale"
	case Downscale:
		return "downscale"
	case ConvertFormat:
		return "convert"
	default:
		return "noop"
	}
}

// Decision holds the independent transform conditions of one file.
// Resize runs before Convert when both hold.
type Decision struct {
	Action  Action
	Resize  bool
	Convert bool
}

// IsNoOp reports whether nothing has to be done
func (d Decision) IsNoOp() bool {
	return !d.Resize && !d.Convert
}

func (d Decision) String() string {
	if d.Resize && d.Convert {
		return d.Action.String() + "+convert"
	}
	return d.Action.String()
}

// Classify derives the decision from the raster height and format only.
func Classify(a image.Attr, p Policy) Decision {
	var d Decision
	switch {
	case a.Height < p.TargetHeight:
		d.Action, d.Resize = Upscale, true
	case a.Height > p.TargetHeight:
		d.Action, d.Resize = Downscale, true
	}
	if !a.Format.Compliant() {
		d.Convert = true
		if d.Action == NoOp {
			d.Action = ConvertFormat
		}
	}
	return d
}
