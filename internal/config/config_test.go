package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_ValidAndHasAllVariants(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	for _, lt := range LayoutTypes() {
		layout, ok := cfg.Layouts[lt]
		if !ok {
			t.Fatalf("expected builtin layout for %q", lt)
		}
		if layout.Type != lt {
			t.Fatalf("layout %q has mismatched type %q", lt, layout.Type)
		}
	}
}

func TestBuiltinLayouts_MasterStackRatio(t *testing.T) {
	layouts := BuiltinLayouts()
	if got := layouts[LayoutMasterStack].MasterRatio; got != MasterStackRatio {
		t.Fatalf("master-stack ratio = %d, want %d", got, MasterStackRatio)
	}
	if got := layouts[LayoutHorizontal].MasterRatio; got != DefaultMasterRatio {
		t.Fatalf("horizontal ratio = %d, want %d", got, DefaultMasterRatio)
	}
}

func TestLayoutType_NextCyclesThroughAllVariants(t *testing.T) {
	seen := map[LayoutType]bool{}
	lt := LayoutHorizontal
	for i := 0; i < 5; i++ {
		seen[lt] = true
		lt = lt.Next()
	}
	if lt != LayoutHorizontal {
		t.Fatalf("expected cycle of length 5, got back to %q", lt)
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 distinct variants, saw %d", len(seen))
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.InitialLayout != LayoutGrid {
		t.Fatalf("expected initial_layout %q, got %q", LayoutGrid, cfg.InitialLayout)
	}
}

func TestLoadFromPath_PartialLayoutOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := strings.Join([]string{
		"initial_layout: master-stack",
		"layouts:",
		"  master-stack:",
		"    master_ratio: 70",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ms := cfg.Layouts[LayoutMasterStack]
	if ms.MasterRatio != 70 {
		t.Fatalf("master_ratio = %d, want 70", ms.MasterRatio)
	}
	// Untouched fields keep their builtin values.
	if ms.GapSize != DefaultGapSize || ms.BorderSize != DefaultBorderSize {
		t.Fatalf("override clobbered builtin fields: gap=%d border=%d", ms.GapSize, ms.BorderSize)
	}
	if cfg.Layouts[LayoutGrid].GapSize != DefaultGapSize {
		t.Fatalf("unrelated variant modified")
	}
}

func TestLoadFromPath_RejectsOutOfRangeMasterRatio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "layouts:\n  master-stack:\n    master_ratio: 120\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for master_ratio out of range")
	}
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "wayland"
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path != "backend" {
		t.Fatalf("expected ValidationError for backend, got %v", err)
	}
}
