package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultEnvFile = ".env"

// FindEnvFile returns the nearest file called filename (.env when empty) in the
// working directory or one of its parents. A miss wraps os.ErrNotExist.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = defaultEnvFile
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findUpwards(wd, filename)
}

func findUpwards(dir, filename string) (string, error) {
	for start := dir; ; {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found from %s: %w", filename, start, os.ErrNotExist)
		}
		dir = parent
	}
}
