package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/notex/pkg/adapters/fs"
)

// FindRoot looks upwards from startDir for a notes directory, recognised by
// its system directory (e.g. ".notex"). An empty systemDir means the default.
// If found, returns the absolute path to the notes directory.
func FindRoot(startDir, systemDir string) (string, error) {
	if systemDir == "" {
		systemDir = fs.DefaultSystemDir
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, systemDir)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no notes directory found above %s", abs)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
