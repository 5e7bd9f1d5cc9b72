// Package config loads optional CLI defaults from a YAML file. Flags and
// environment variables always win over the file; the file wins over the
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable defaults of the srted commands.
type Config struct {
	// Workdir is the base directory for per-run scratch space. Empty means
	// a system temp directory.
	Workdir string `yaml:"workdir"`
	// BackupExt is appended to the input path when an in-place write
	// creates a backup.
	BackupExt string `yaml:"backup_ext"`
	// SkipBackup disables backups on in-place writes.
	SkipBackup bool `yaml:"skip_backup"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BackupExt: ".bak",
	}
}

// Path returns the conventional location of the config file, or "" when the
// user config directory cannot be determined.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "srted", "config.yaml")
}

// Load reads the config file at path, layered over Default. A missing file
// (or an empty path) is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.BackupExt == "" {
		cfg.BackupExt = Default().BackupExt
	}
	return cfg, nil
}
