package image

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// Digest counts and fingerprints the bytes written through it
type Digest struct {
	mm3 murmur3.Hash128
	n   int64
}

// NewDigest ...
func NewDigest() *Digest {
	return &Digest{mm3: murmur3.New128()}
}

// Write implements for io.Writer
func (d *Digest) Write(p []byte) (n int, err error) {
	n, err = d.mm3.Write(p)
	d.n += int64(n)
	return
}

// Len return count value
func (d *Digest) Len() int64 {
	return d.n
}

// Sum returns the 128 bit murmur3 of the content in hex
func (d *Digest) Sum() string {
	h1, h2 := d.mm3.Sum128()
	return fmt.Sprintf("%016x%016x", h1, h2)
}

// HashContent ...
func HashContent(data []byte) string {
	h1, h2 := murmur3.Sum128(data)
	return fmt.Sprintf("%016x%016x", h1, h2)
}
