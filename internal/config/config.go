// Package config loads, validates, and watches the dockyard configuration
// file. The file is TOML; absent keys keep their defaults, and a missing
// file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"dockyard/internal/dock"
)

// Config is the root of the configuration file.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Layout   LayoutConfig  `toml:"layout"`
	Panels   []PanelConfig `toml:"panel"`
}

// LayoutConfig tunes the layout engine. All sizes are in terminal cells.
type LayoutConfig struct {
	EdgeSnap        int     `toml:"edge_snap"`
	MinPanelSize    int     `toml:"min_panel_size"`
	MinCenterSize   int     `toml:"min_center_size"`
	SplitterSize    int     `toml:"splitter_size"`
	DragThreshold   int     `toml:"drag_threshold"`
	InitialDockSize int     `toml:"initial_dock_size"`
	TopDockFraction float64 `toml:"top_dock_fraction"`
	AllowTopDock    bool    `toml:"allow_top_dock"`
}

// PanelConfig declares one panel to open at startup. Zone is a zone name
// ("left", "right", "top", "bottom", "center") or empty for floating.
// Kind picks the panel body: "shell" runs Command in a pty, or an
// interactive shell when Command is empty; "text" shows static content.
// An empty Kind means "text" unless Command is set.
type PanelConfig struct {
	Title          string `toml:"title"`
	Zone           string `toml:"zone"`
	Kind           string `toml:"kind"`
	Size           int    `toml:"size"`
	MinSize        int    `toml:"min_size"`
	ContentMinSize int    `toml:"content_min_size"`
	Command        string `toml:"command"`
}

// Default returns the configuration used when no file exists. The layout
// numbers are tuned for cell grids, not pixels.
func Default() Config {
	return Config{
		LogLevel: "info",
		Layout: LayoutConfig{
			EdgeSnap:        3,
			MinPanelSize:    4,
			MinCenterSize:   16,
			SplitterSize:    1,
			DragThreshold:   2,
			InitialDockSize: 32,
			TopDockFraction: 0.25,
			AllowTopDock:    true,
		},
		Panels: []PanelConfig{
			{Title: "explorer", Zone: "left", Size: 32, ContentMinSize: 12},
			{Title: "shell", Zone: "center", Kind: "shell"},
			{Title: "log", Zone: "bottom", Size: 12, ContentMinSize: 4},
		},
	}
}

// DefaultPath returns the conventional location of the config file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "dockyard.toml"
	}
	return filepath.Join(dir, "dockyard", "dockyard.toml")
}

// Load reads the file at path over Default, so keys the file omits keep
// their default values. A missing file yields the defaults without error,
// and on any other failure the returned Config is still the usable default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	// Array tables merge element-wise when decoded over a prefilled slice,
	// so panels start empty and the defaults apply only when the file
	// declares none at all.
	cfg.Panels = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Panels == nil {
		cfg.Panels = Default().Panels
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseLogLevel converts a level name from the config file to a logger
// level. Recognized values are debug, info, warn (or warning), and error,
// case-insensitively; empty means info.
func ParseLogLevel(value string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q", value)
}

// Validate reports the first problem found.
func (c Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if err := c.Layout.validate(); err != nil {
		return err
	}
	for i, p := range c.Panels {
		if err := p.validate(); err != nil {
			return fmt.Errorf("panel %d (%q): %w", i, p.Title, err)
		}
	}
	return nil
}

func (l LayoutConfig) validate() error {
	switch {
	case l.EdgeSnap < 0:
		return fmt.Errorf("layout: edge_snap must not be negative, got %d", l.EdgeSnap)
	case l.MinPanelSize < 1:
		return fmt.Errorf("layout: min_panel_size must be positive, got %d", l.MinPanelSize)
	case l.MinCenterSize < 1:
		return fmt.Errorf("layout: min_center_size must be positive, got %d", l.MinCenterSize)
	case l.SplitterSize < 0:
		return fmt.Errorf("layout: splitter_size must not be negative, got %d", l.SplitterSize)
	case l.DragThreshold < 0:
		return fmt.Errorf("layout: drag_threshold must not be negative, got %d", l.DragThreshold)
	case l.InitialDockSize < 1:
		return fmt.Errorf("layout: initial_dock_size must be positive, got %d", l.InitialDockSize)
	case l.TopDockFraction <= 0 || l.TopDockFraction > 1:
		return fmt.Errorf("layout: top_dock_fraction must be in (0, 1], got %g", l.TopDockFraction)
	}
	return nil
}

func (p PanelConfig) validate() error {
	if _, err := dock.ParseZone(p.Zone); err != nil {
		return err
	}
	switch p.Kind {
	case "", "text", "shell":
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	switch {
	case p.Size < 0:
		return fmt.Errorf("size must not be negative, got %d", p.Size)
	case p.MinSize < 0:
		return fmt.Errorf("min_size must not be negative, got %d", p.MinSize)
	case p.ContentMinSize < 0:
		return fmt.Errorf("content_min_size must not be negative, got %d", p.ContentMinSize)
	}
	return nil
}

// IsShell reports whether the panel hosts a pty. A command implies a
// shell panel even when kind is unset.
func (p PanelConfig) IsShell() bool {
	return p.Kind == "shell" || p.Command != ""
}

// DockZone resolves the configured zone name. Unknown names fall back to
// Floating; Validate catches them first on any loaded config.
func (p PanelConfig) DockZone() dock.Zone {
	z, err := dock.ParseZone(p.Zone)
	if err != nil {
		return dock.Floating
	}
	return z
}

// EngineConfig maps the layout section onto an engine configuration.
// Logger, tracer, and callbacks are left for the caller to fill in.
func (c Config) EngineConfig() dock.Config {
	return dock.Config{
		EdgeSnap:        c.Layout.EdgeSnap,
		MinPanelSize:    c.Layout.MinPanelSize,
		MinCenterSize:   c.Layout.MinCenterSize,
		SplitterSize:    c.Layout.SplitterSize,
		DragThreshold:   c.Layout.DragThreshold,
		InitialDockSize: c.Layout.InitialDockSize,
		TopDockFraction: c.Layout.TopDockFraction,
		DisableTopDock:  !c.Layout.AllowTopDock,
	}
}
