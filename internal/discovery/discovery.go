package discovery

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DirName  = ".whiskers"
	FileName = "config.toml"
)

// FindConfigFile walks up from startDir looking for .whiskers/config.toml.
func FindConfigFile(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		path := filepath.Join(dir, DirName, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", false, nil
}

// GlobalConfigPath is the config in the user's home directory.
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DirName, FileName)
}

// ProjectConfigPath is where init writes a config for baseDir.
func ProjectConfigPath(baseDir string) string {
	return filepath.Join(baseDir, DirName, FileName)
}
