package image

import (
	"path/filepath"
	"strings"
)

// Format is the codec name reported by image.Decode
type Format string

// supported raster formats
const (
	FormatNone Format = ""
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWEBP Format = "webp"
)

var extFormats = map[string]Format{
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".png":  FormatPNG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWEBP,
}

// Compliant reports whether no conversion is needed for f.
func (f Format) Compliant() bool {
	return f == FormatPNG || f == FormatJPEG
}

// Ext returns the canonical file extension with the leading dot
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatTIFF:
		return ".tif"
	case FormatNone:
		return ""
	default:
		return "." + string(f)
	}
}

// Ext2Format maps a file extension or short name (jpg, .PNG) to a Format.
func Ext2Format(ext string) Format {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return extFormats[ext]
}

// IsRasterName reports whether the file name carries a known raster extension.
func IsRasterName(name string) bool {
	return Ext2Format(filepath.Ext(name)) != FormatNone
}
