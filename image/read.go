package image

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif" // register
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// File is a path plus its decoded raster, it lives for one file only.
type File struct {
	Path     string
	Modified time.Time
	Attr

	m image.Image
}

// Image returns the decoded raster
func (f *File) Image() image.Image {
	return f.m
}

// Open reads and decodes the image at path. A file that cannot be read or
// decoded fails with *DecodeError, degenerate bounds with *InvalidImageError.
func Open(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer fp.Close()

	fi, err := fp.Stat()
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	m, format, err := Decode(fp)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &InvalidImageError{Path: path, Width: b.Dx(), Height: b.Dy()}
	}

	return &File{
		Path:     path,
		Modified: fi.ModTime(),
		Attr: Attr{
			Width:  b.Dx(),
			Height: b.Dy(),
			Format: format,
			Size:   fi.Size(),
		},
		m: m,
	}, nil
}

// Decode decodes any registered raster format from r.
func Decode(r io.Reader) (image.Image, Format, error) {
	m, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, FormatNone, ErrUnsupportedFormat
		}
		return nil, FormatNone, err
	}
	return m, Format(name), nil
}

// DecodeBytes decodes an in-memory blob
func DecodeBytes(data []byte) (image.Image, Format, error) {
	return Decode(bytes.NewReader(data))
}
