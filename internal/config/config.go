// Package config resolves the log location and user settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user settings. Every field has a workable default; a missing
// config file is not an error.
type Config struct {
	// LogFile is the path of the timelog text file.
	LogFile string `yaml:"log_file"`
}

// DefaultLogFile returns ~/.gtimelog/timelog.txt, the location shared with
// gtimelog-compatible tools.
func DefaultLogFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, ".gtimelog", "timelog.txt"), nil
}

// DefaultPath returns the default config file location, kept next to the log.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, ".gtimelog", "tlogrc.yaml"), nil
}

// Load reads the YAML config at path and fills unset fields with defaults.
// A missing file yields the defaults; malformed YAML is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if cfg.LogFile == "" {
		cfg.LogFile, err = DefaultLogFile()
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
