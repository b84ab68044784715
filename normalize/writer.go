package normalize

import (
	stdimage "image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/41v4/img-manipulation/image"
)

const tempPattern = ".imgnorm-*.tmp"

// OutputPath returns where the result for src goes: a converted file takes
// the canonical extension, a resized-only file keeps its own path.
func OutputPath(src string, d Decision, p Policy) string {
	if !d.Convert {
		return src
	}
	return strings.TrimSuffix(src, filepath.Ext(src)) + p.Canonical.Ext()
}

// Written describes a finished write
type Written struct {
	Path    string
	Bytes   int64
	Hash    string
	Removed bool // the converted source was removed
}

// Writer puts transformed rasters on disk, one atomic rename per file.
type Writer struct {
	policy Policy
}

// NewWriter ...
func NewWriter(p Policy) *Writer {
	return &Writer{policy: p}
}

// Write encodes m into a temporary file beside src and renames it over the
// output path. Failures come back as *image.WriteError.
func (w *Writer) Write(src string, m stdimage.Image, format image.Format, d Decision) (*Written, error) {
	dst := OutputPath(src, d, w.policy)
	mode := os.FileMode(0644)
	if dst == src {
		if fi, err := os.Stat(src); err == nil {
			mode = fi.Mode().Perm()
		}
	}
	out, err := w.save(dst, m, format, mode)
	if err != nil {
		return nil, &image.WriteError{Path: dst, Err: err}
	}

	if d.Convert && !w.policy.KeepOriginal && dst != src {
		if err = os.Remove(src); err != nil {
			logger().Warnw("remove original fail", "path", src, "err", err)
		} else {
			out.Removed = true
		}
	}
	return out, nil
}

func (w *Writer) save(dst string, m stdimage.Image, format image.Format, mode os.FileMode) (out *Written, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), tempPattern)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	d := image.NewDigest()
	err = image.Encode(io.MultiWriter(tmp, d), m, image.WriteOption{Format: format, Quality: w.policy.Quality})
	if err != nil {
		return nil, err
	}
	if err = tmp.Sync(); err != nil {
		return nil, err
	}
	if err = tmp.Chmod(mode); err != nil {
		return nil, err
	}
	if err = tmp.Close(); err != nil {
		return nil, err
	}
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return nil, err
	}
	return &Written{Path: dst, Bytes: d.Len(), Hash: d.Sum()}, nil
}
