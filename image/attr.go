package image

import (
	"fmt"
)

// Attr describes a decoded raster
type Attr struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format Format `json:"format"`
	Size   int64  `json:"size,omitempty"`
}

func (a Attr) String() string {
	return fmt.Sprintf("%dx%d %s", a.Width, a.Height, a.Format)
}
