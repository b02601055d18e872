// Package config provides configuration loading for the rv preview tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kraitsura/responsive/pkg/breakpoint"
)

// DefaultFileName is the config file rv looks for in the working directory.
const DefaultFileName = "rv.yaml"

// Config represents the complete rv configuration.
type Config struct {
	Breakpoints []BreakpointConfig `yaml:"breakpoints"`
	Viewer      ViewerConfig       `yaml:"viewer"`
}

// BreakpointConfig declares one named width threshold.
type BreakpointConfig struct {
	// Name identifies the breakpoint for named conditions (optional).
	Name string `yaml:"name,omitempty"`
	// Width is the threshold in terminal columns.
	Width int `yaml:"width"`
}

// ViewerConfig configures the preview TUI.
type ViewerConfig struct {
	// Theme selects the color theme ("dark" or "light", default: dark).
	Theme string `yaml:"theme"`
	// Watch reloads breakpoints when the config file changes (default: true).
	Watch *bool `yaml:"watch"`
	// Presets are simulated terminal sizes reachable from the picker.
	Presets []PresetConfig `yaml:"presets"`
}

// PresetConfig is a named simulated terminal size.
type PresetConfig struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultConfig returns the configuration used when no file is present.
// The breakpoint widths follow common terminal layout thresholds; the
// presets are standard terminal sizes.
func DefaultConfig() *Config {
	watch := true
	return &Config{
		Breakpoints: []BreakpointConfig{
			{Name: "compact", Width: 0},
			{Name: "standard", Width: 100},
			{Name: "wide", Width: 120},
			{Name: "full", Width: 140},
		},
		Viewer: ViewerConfig{
			Theme: "dark",
			Watch: &watch,
			Presets: []PresetConfig{
				{Name: "classic", Width: 80, Height: 24},
				{Name: "modern", Width: 120, Height: 40},
				{Name: "large", Width: 160, Height: 50},
			},
		},
	}
}

// Load reads configuration from path. An empty path falls back to
// DefaultFileName in the working directory; a missing file yields
// DefaultConfig rather than an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	// A file that declares its own breakpoints replaces the defaults
	// entirely; merged sets would make thresholds impossible to reason
	// about.
	cfg.Breakpoints = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.Breakpoints) == 0 {
		cfg.Breakpoints = DefaultConfig().Breakpoints
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for logical errors.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Breakpoints))
	for _, bc := range c.Breakpoints {
		if bc.Width < 0 {
			return fmt.Errorf("breakpoint %q: width cannot be negative (got %d)", bc.Name, bc.Width)
		}
		if bc.Name == "" {
			continue
		}
		if seen[bc.Name] {
			return fmt.Errorf("duplicate breakpoint name %q", bc.Name)
		}
		seen[bc.Name] = true
	}

	switch c.Viewer.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q", c.Viewer.Theme)
	}

	for _, p := range c.Viewer.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset without a name")
		}
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("preset %q: dimensions must be positive (got %dx%d)", p.Name, p.Width, p.Height)
		}
	}
	return nil
}

// BreakpointSet converts the declared breakpoints to registry input.
func (c *Config) BreakpointSet() []breakpoint.Breakpoint {
	out := make([]breakpoint.Breakpoint, len(c.Breakpoints))
	for i, bc := range c.Breakpoints {
		out[i] = breakpoint.Breakpoint{Name: bc.Name, Width: bc.Width}
	}
	return out
}

// WatchEnabled reports whether config hot-reload is on.
func (c *Config) WatchEnabled() bool {
	return c.Viewer.Watch == nil || *c.Viewer.Watch
}

// ResolvePath returns the absolute path rv watches and loads. An empty
// path means DefaultFileName in the working directory.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return abs, nil
}
