package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fitfive/internal/storage"
)

// EnvDBPath overrides the configured database path when set.
const EnvDBPath = "FITFIVE_DB"

type Config struct {
	DBPath string `yaml:"db_path"`
}

// DefaultPath returns the config file location (~/.fitfive.yaml).
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".fitfive.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if env := os.Getenv(EnvDBPath); env != "" {
		cfg.DBPath = env
	}
	if cfg.DBPath == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = p
	}
	return cfg, nil
}
