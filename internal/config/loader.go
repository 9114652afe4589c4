package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is reported as the source path when the embedded defaults are used.
const EmbeddedSource = "<embedded>"

// LoadHeli loads the helicopter game configuration and returns it together
// with the path it was read from.
// Search order: customPath -> ~/.heli/configs/heli.yaml -> ./configs/heli.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read or parsed is an error; the other locations are
// skipped when missing.
func LoadHeli(customPath string) (HeliConfig, string, error) {
	if customPath != "" {
		cfg, err := LoadHeliFile(customPath)
		return cfg, customPath, err
	}

	candidates := []string{userConfigPath("heli.yaml"), filepath.Join("configs", "heli.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		cfg, err := LoadHeliFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}

	cfg, err := ParseHeli(defaultHeliYAML)
	if err != nil {
		return DefaultHeliConfig(), EmbeddedSource, nil // Fallback to hardcoded if embed fails
	}
	return cfg, EmbeddedSource, nil
}

// LoadHeliFile reads and validates a single configuration file.
func LoadHeliFile(path string) (HeliConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HeliConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseHeli(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseHeli decodes YAML on top of DefaultHeliConfig and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func ParseHeli(data []byte) (HeliConfig, error) {
	cfg := DefaultHeliConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".heli", "configs", filename)
}

// ResolveAsset returns the path of an asset relative to the asset directory.
// Absolute paths and the builtin font marker are returned unchanged.
func (a HeliAssets) ResolveAsset(name string) string {
	if name == "" || name == BuiltinFont || filepath.IsAbs(name) || a.Dir == "" {
		return name
	}
	return filepath.Join(a.Dir, name)
}
