package normalize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/41v4/img-manipulation/image"
	"github.com/41v4/img-manipulation/utils"
)

// ErrNotDirectory the run target is missing or not a directory
var ErrNotDirectory = errors.New("not a directory")

// Discover lists candidate images directly inside dir, sorted by name.
// Sub directories, dot files and names without a raster extension are
// left out.
func Discover(dir string) ([]string, error) {
	if !utils.IsDir(dir) {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || utils.IsHidden(name) {
			continue
		}
		if !image.IsRasterName(name) {
			logger().Debugw("ignore", "name", name)
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}
