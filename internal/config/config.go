// Package config resolves the mangit directory and the user configuration
// stored inside it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	dirName      = ".mangit"
	configFile   = "config.toml"
	registryFile = "repos.json"

	defaultLockTimeoutSecs = 5
)

// Config holds the user-tunable settings from config.toml.
type Config struct {
	// ProjectsDir is where the user keeps their repositories. Informational
	// for tooling; mangit itself registers whatever path it is given.
	ProjectsDir string `toml:"projects_dir"`
	// LockTimeoutSecs bounds how long a mutating command waits for the
	// registry lock before giving up.
	LockTimeoutSecs int `toml:"lock_timeout_secs"`
}

// Default returns the configuration used when no config.toml exists.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		ProjectsDir:     home,
		LockTimeoutSecs: defaultLockTimeoutSecs,
	}
}

// Dir returns the mangit directory: $MANGIT_HOME when set, else ~/.mangit.
func Dir() (string, error) {
	if dir := os.Getenv("MANGIT_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// RegistryPath returns the location of the registry document inside dir.
func RegistryPath(dir string) string {
	return filepath.Join(dir, registryFile)
}

// FilePath returns the location of config.toml inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, configFile)
}

// Load reads config.toml from dir, falling back to defaults when the file
// is missing.
func Load(dir string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.LockTimeoutSecs <= 0 {
		cfg.LockTimeoutSecs = defaultLockTimeoutSecs
	}
	return cfg, nil
}

// Save writes cfg to config.toml in dir, creating the directory first.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create mangit directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LockTimeout returns the configured lock timeout as a duration.
func (c Config) LockTimeout() time.Duration {
	return time.Duration(c.LockTimeoutSecs) * time.Second
}
