package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "fbtile", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the compiled-in defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads configuration from path, layering overrides on top of
// the defaults, and validates the result.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Layouts decode over the builtin table: a partial override file only
	// touches the variants it names.
	var raw struct {
		Backend       string                `yaml:"backend"`
		FBDevice      string                `yaml:"fb_device"`
		InitialLayout LayoutType            `yaml:"initial_layout"`
		Keys          Keys                  `yaml:"keys"`
		Layouts       map[LayoutType]Layout `yaml:"layouts"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if raw.Backend != "" {
		cfg.Backend = raw.Backend
	}
	if raw.FBDevice != "" {
		cfg.FBDevice = raw.FBDevice
	}
	if raw.InitialLayout != "" {
		cfg.InitialLayout = raw.InitialLayout
	}
	if raw.Keys.NewWindow != "" {
		cfg.Keys.NewWindow = raw.Keys.NewWindow
	}
	if raw.Keys.CloseWindow != "" {
		cfg.Keys.CloseWindow = raw.Keys.CloseWindow
	}
	if raw.Keys.CycleFocus != "" {
		cfg.Keys.CycleFocus = raw.Keys.CycleFocus
	}
	if raw.Keys.CycleLayout != "" {
		cfg.Keys.CycleLayout = raw.Keys.CycleLayout
	}
	for t, layout := range raw.Layouts {
		base := cfg.Layouts[t]
		merged := mergeLayout(base, layout)
		merged.Type = t
		cfg.Layouts[t] = merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// mergeLayout overlays the non-zero fields of override on base. A zero gap
// cannot be expressed via override; the builtin gaps are all non-zero so
// this only matters for deliberately gapless custom setups, which can set
// every field instead.
func mergeLayout(base, override Layout) Layout {
	out := base
	if override.GapSize != 0 {
		out.GapSize = override.GapSize
	}
	if override.BorderSize != 0 {
		out.BorderSize = override.BorderSize
	}
	if override.BorderColor != 0 {
		out.BorderColor = override.BorderColor
	}
	if override.MasterRatio != 0 {
		out.MasterRatio = override.MasterRatio
	}
	return out
}
