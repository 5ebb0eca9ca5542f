package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sethgrid/whiskers/internal/discovery"
	"gopkg.in/yaml.v3"
)

// Load reads the config at path on top of the defaults. Keys missing
// from the file keep their default values. Paths ending in .yaml or .yml
// are parsed as YAML, everything else as TOML.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the explicit path if one is given. Otherwise it looks
// for a project config above startDir, then the global one, and falls
// back to the defaults when neither exists. It returns the path used,
// empty for defaults.
func Resolve(explicit, startDir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}

	path, found, err := discovery.FindConfigFile(startDir)
	if err != nil {
		return Default(), "", err
	}
	if !found {
		path = discovery.GlobalConfigPath()
		if _, err := os.Stat(path); err != nil {
			return Default(), "", nil
		}
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// Marshal renders cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Init writes a default config with the given cat name under baseDir.
// It refuses to overwrite an existing file and returns the path written.
func Init(baseDir, name string) (string, error) {
	path := discovery.ProjectConfigPath(baseDir)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("a config already exists at %s", path)
	}

	cfg := Default()
	if name != "" {
		cfg.CatName = name
	} else {
		cfg.CatName = RandomCatName()
	}

	if err := Save(cfg, path); err != nil {
		return path, err
	}
	return path, nil
}
