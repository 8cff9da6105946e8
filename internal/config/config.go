// Package config loads the tilegrid CLI settings.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilegrid/compass"
)

//go:embed defaults.yaml
var defaultYAML []byte

// ErrInvalid wraps every settings validation failure.
var ErrInvalid = errors.New("config: invalid settings")

// Settings controls logging, output colouring and query defaults.
type Settings struct {
	LogLevel string   `yaml:"log_level"`
	Color    bool     `yaml:"color"`
	Group    string   `yaml:"group"`
	Palette  []string `yaml:"palette"`
}

// Default returns the hard-coded settings used when no file is readable.
func Default() Settings {
	return Settings{
		LogLevel: "info",
		Color:    true,
		Group:    compass.Cardinal.String(),
		Palette:  []string{"9", "10", "11", "12", "13", "14", "208", "141"},
	}
}

// Load returns settings from the first source that exists.
// Search order: customPath -> ~/.tilegrid/config.yaml -> ./configs/tilegrid.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or malformed.
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "tilegrid.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// parse overlays data on Default so omitted keys keep their defaults.
func parse(data []byte) (Settings, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Validate checks the log level, neighbor group and palette.
func (s Settings) Validate() error {
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, s.LogLevel)
	}
	if _, err := compass.ParseGroup(s.Group); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if s.Color && len(s.Palette) == 0 {
		return fmt.Errorf("%w: color enabled with an empty palette", ErrInvalid)
	}
	return nil
}

// NeighborGroup returns the parsed default group.
func (s Settings) NeighborGroup() compass.Group {
	g, err := compass.ParseGroup(s.Group)
	if err != nil {
		return compass.Cardinal
	}
	return g
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilegrid", "config.yaml")
}
