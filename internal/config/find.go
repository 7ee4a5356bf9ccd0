package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Find when no config file exists up to the
// filesystem root.
var ErrNotFound = errors.New("config file not found")

// Find looks upwards from startDir for FileName and returns its path.
func Find(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrNotFound
}
