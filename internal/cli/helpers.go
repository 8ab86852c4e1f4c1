package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daydemir/eventato/internal/config"
)

// resolveDirectory returns dir as an absolute path, defaulting to the cwd
func resolveDirectory(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid directory %s: %w", dir, err)
	}
	return abs, nil
}

// loadConfig reads --config when given, else the project's .eventato.yaml
func loadConfig(dir string) (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.Path(dir)
	}
	return config.Load(path)
}
