package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rv.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Breakpoints) == 0 {
		t.Fatal("expected default breakpoints")
	}
	if cfg.Breakpoints[0].Name != "compact" {
		t.Errorf("first default breakpoint = %q, want compact", cfg.Breakpoints[0].Name)
	}
	if !cfg.WatchEnabled() {
		t.Error("watch should default to enabled")
	}
}

func TestLoad_FileReplacesBreakpoints(t *testing.T) {
	path := writeConfig(t, `
breakpoints:
  - name: mobile
    width: 0
  - name: tablet
    width: 600
viewer:
  theme: light
  watch: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Breakpoints) != 2 {
		t.Fatalf("expected 2 breakpoints, got %d", len(cfg.Breakpoints))
	}
	if cfg.Breakpoints[1].Name != "tablet" || cfg.Breakpoints[1].Width != 600 {
		t.Errorf("second breakpoint = %+v", cfg.Breakpoints[1])
	}
	if cfg.Viewer.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.Viewer.Theme)
	}
	if cfg.WatchEnabled() {
		t.Error("watch should be disabled")
	}
	// Presets not declared in the file keep their defaults.
	if len(cfg.Viewer.Presets) == 0 {
		t.Error("expected default presets to survive")
	}
}

func TestLoad_RejectsDuplicateNames(t *testing.T) {
	path := writeConfig(t, `
breakpoints:
  - name: tablet
    width: 600
  - name: tablet
    width: 800
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for duplicate breakpoint names")
	}
}

func TestLoad_RejectsNegativeWidth(t *testing.T) {
	path := writeConfig(t, `
breakpoints:
  - name: tablet
    width: -600
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative width")
	}
}

func TestLoad_RejectsUnknownTheme(t *testing.T) {
	path := writeConfig(t, `
viewer:
  theme: solarized
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestLoad_RejectsBadPreset(t *testing.T) {
	path := writeConfig(t, `
viewer:
  presets:
    - name: broken
      width: 0
      height: 24
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-positive preset dimensions")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "breakpoints: [not: valid: yaml")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestBreakpointSet(t *testing.T) {
	cfg := DefaultConfig()
	set := cfg.BreakpointSet()
	if len(set) != len(cfg.Breakpoints) {
		t.Fatalf("BreakpointSet length = %d, want %d", len(set), len(cfg.Breakpoints))
	}
	for i, bp := range set {
		if bp.Name != cfg.Breakpoints[i].Name || bp.Width != cfg.Breakpoints[i].Width {
			t.Errorf("breakpoint %d = %+v, want %+v", i, bp, cfg.Breakpoints[i])
		}
	}
}
