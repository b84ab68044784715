package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// IsHidden reports a dot file name
func IsHidden(fpath string) bool {
	return strings.HasPrefix(filepath.Base(fpath), ".")
}
