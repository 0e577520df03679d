package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/mazerunner.yaml
var defaultYAML []byte

// FileName is the config file name looked up in the user and local directories.
const FileName = "mazerunner.yaml"

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.mazerunner/config.yaml -> ./configs/mazerunner.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func load(customPath string) (Config, error) {
	if customPath != "" {
		path, err := ExpandHome(customPath)
		if err != nil {
			return Default(), err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return parse(data, path)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return parse(data, path)
	}

	cfg, err := parse(defaultYAML, "embedded default")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults so omitted keys keep
// their default values.
func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".mazerunner", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", FileName))
}
