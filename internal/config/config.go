package config

import (
	"fmt"
)

// LayoutType identifies a tiling strategy.
type LayoutType string

const (
	LayoutHorizontal  LayoutType = "horizontal"
	LayoutVertical    LayoutType = "vertical"
	LayoutGrid        LayoutType = "grid"
	LayoutFullscreen  LayoutType = "fullscreen"
	LayoutMasterStack LayoutType = "master-stack"
)

// cycleOrder is the fixed order CycleLayout walks through.
var cycleOrder = []LayoutType{
	LayoutHorizontal,
	LayoutVertical,
	LayoutGrid,
	LayoutFullscreen,
	LayoutMasterStack,
}

// LayoutTypes returns all variants in cycle order.
func LayoutTypes() []LayoutType {
	out := make([]LayoutType, len(cycleOrder))
	copy(out, cycleOrder)
	return out
}

// Next returns the variant that follows t in the cycle.
// Unknown variants restart the cycle at the first entry.
func (t LayoutType) Next() LayoutType {
	for i, lt := range cycleOrder {
		if lt == t {
			return cycleOrder[(i+1)%len(cycleOrder)]
		}
	}
	return cycleOrder[0]
}

// Valid reports whether t names a known variant.
func (t LayoutType) Valid() bool {
	switch t {
	case LayoutHorizontal, LayoutVertical, LayoutGrid, LayoutFullscreen, LayoutMasterStack:
		return true
	}
	return false
}

// Layout is the configuration of a single tiling strategy. It is installed
// wholesale on the active workspace: cycling layouts replaces the previous
// Layout rather than mutating it.
type Layout struct {
	Type        LayoutType `yaml:"type"`
	GapSize     int        `yaml:"gap_size"`
	BorderSize  int        `yaml:"border_size"`
	BorderColor uint32     `yaml:"border_color"`
	MasterRatio int        `yaml:"master_ratio"` // only meaningful for master-stack
}

// Keys maps WM actions to key chords (e.g. "alt+n").
type Keys struct {
	NewWindow   string `yaml:"new_window"`
	CloseWindow string `yaml:"close_window"`
	CycleFocus  string `yaml:"cycle_focus"`
	CycleLayout string `yaml:"cycle_layout"`
}

// Config holds the application configuration.
type Config struct {
	// Backend selects the drawing surface: "fbdev", "x11" or "memory".
	Backend string `yaml:"backend"`
	// FBDevice is the framebuffer device path for the fbdev backend.
	FBDevice string `yaml:"fb_device"`
	// InitialLayout is the variant every workspace starts with.
	InitialLayout LayoutType `yaml:"initial_layout"`
	Keys          Keys       `yaml:"keys"`
	// Layouts overrides the builtin per-variant configuration.
	Layouts map[LayoutType]Layout `yaml:"layouts"`
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend:       "fbdev",
		FBDevice:      "/dev/fb0",
		InitialLayout: LayoutGrid,
		Keys: Keys{
			NewWindow:   "alt+n",
			CloseWindow: "alt+q",
			CycleFocus:  "alt+space",
			CycleLayout: "alt+l",
		},
		Layouts: BuiltinLayouts(),
	}
}

// GetLayout retrieves the configured layout for a variant.
func (c *Config) GetLayout(t LayoutType) (Layout, error) {
	layout, ok := c.Layouts[t]
	if !ok {
		return Layout{}, fmt.Errorf("layout %q not found", t)
	}
	if err := validateLayout(&layout); err != nil {
		return Layout{}, fmt.Errorf("invalid layout %q: %w", t, err)
	}
	return layout, nil
}

// ValidationError reports an invalid configuration value and where it lives.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate performs strict validation of the effective configuration.
//
// The layout engine itself does not guard against out-of-range values
// (master_ratio in particular), so every path that can install a layout
// must go through here first.
func (c *Config) Validate() error {
	switch c.Backend {
	case "fbdev", "x11", "memory":
	default:
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend must be one of: fbdev, x11, memory")}
	}
	if c.Backend == "fbdev" && c.FBDevice == "" {
		return &ValidationError{Path: "fb_device", Err: fmt.Errorf("fb_device is required for the fbdev backend")}
	}
	if !c.InitialLayout.Valid() {
		return &ValidationError{Path: "initial_layout", Err: fmt.Errorf("unknown layout %q", c.InitialLayout)}
	}
	if len(c.Layouts) == 0 {
		return &ValidationError{Path: "layouts", Err: fmt.Errorf("layouts must not be empty")}
	}
	for _, t := range LayoutTypes() {
		layout, ok := c.Layouts[t]
		if !ok {
			return &ValidationError{Path: "layouts." + string(t), Err: fmt.Errorf("variant missing (cycle_layout needs all five)")}
		}
		if err := validateLayout(&layout); err != nil {
			return &ValidationError{Path: "layouts." + string(t), Err: err}
		}
	}
	for name, chord := range map[string]string{
		"keys.new_window":   c.Keys.NewWindow,
		"keys.close_window": c.Keys.CloseWindow,
		"keys.cycle_focus":  c.Keys.CycleFocus,
		"keys.cycle_layout": c.Keys.CycleLayout,
	} {
		if chord == "" {
			return &ValidationError{Path: name, Err: fmt.Errorf("key chord is required")}
		}
	}
	return nil
}

// validateLayout checks a single layout configuration.
func validateLayout(layout *Layout) error {
	if !layout.Type.Valid() {
		return fmt.Errorf("invalid type %q", layout.Type)
	}
	if layout.GapSize < 0 {
		return fmt.Errorf("gap_size must be >= 0")
	}
	if layout.BorderSize < 0 {
		return fmt.Errorf("border_size must be >= 0")
	}
	if layout.MasterRatio <= 0 || layout.MasterRatio >= 100 {
		return fmt.Errorf("master_ratio must be between 1 and 99")
	}
	return nil
}
