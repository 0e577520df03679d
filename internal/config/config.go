// Package config provides YAML-based configuration loading with environment
// overrides for MazeRunner.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samdwyer/mazerunner/internal/gamedata"
)

const (
	// EnvDBPath overrides the run database location.
	EnvDBPath = "MAZERUNNER_DB"
	// EnvLogLevel overrides the log level.
	EnvLogLevel = "MAZERUNNER_LOG_LEVEL"
	// EnvDataDir overrides the data directory.
	EnvDataDir = "MAZERUNNER_DATA_DIR"
)

// Config holds application settings.
type Config struct {
	DataDir  string              `yaml:"data_dir"`
	DBPath   string              `yaml:"db_path"`
	LogLevel string              `yaml:"log_level"`
	TickMS   int                 `yaml:"tick_ms"`
	Levels   []gamedata.LevelDef `yaml:"levels"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:  "~/.mazerunner",
		LogLevel: "info",
		TickMS:   250,
	}
}

// TickInterval returns the HUD refresh interval.
func (c Config) TickInterval() time.Duration {
	if c.TickMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.TickMS) * time.Millisecond
}

// ResolvedDataDir returns DataDir with a leading ~ expanded.
func (c Config) ResolvedDataDir() (string, error) {
	return ExpandHome(c.DataDir)
}

// ResolvedDBPath returns the run database path, defaulting to runs.db inside
// the data directory.
func (c Config) ResolvedDBPath() (string, error) {
	if c.DBPath != "" {
		return ExpandHome(c.DBPath)
	}
	dir, err := c.ResolvedDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "runs.db"), nil
}

// ApplyEnv overrides settings from MAZERUNNER_* environment variables.
func (c *Config) ApplyEnv() {
	c.DataDir = getEnvWithDefault(EnvDataDir, c.DataDir)
	c.DBPath = getEnvWithDefault(EnvDBPath, c.DBPath)
	c.LogLevel = getEnvWithDefault(EnvLogLevel, c.LogLevel)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
