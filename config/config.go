// Package config loads and saves bocafinder settings as TOML.
//
// Missing files yield Default(); present files are decoded over the defaults
// and then validated, so a partial file only overrides what it names.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
	"github.com/katalvlaran/bocafinder/dijkstra"
	"github.com/katalvlaran/bocafinder/session"
)

// Sentinel errors returned by Validate and Load.
var (
	ErrBadAlpha   = errors.New("config: alpha must be in [0,1]")
	ErrBadRadius  = errors.New("config: hit_radius must be positive")
	ErrBadCanvas  = errors.New("config: canvas dimensions must be positive")
	ErrBadButtons = errors.New("config: invalid button layout")
)

// Config holds bocafinder configuration.
type Config struct {
	Alpha     float64       `toml:"alpha"`
	HitRadius float64       `toml:"hit_radius"`
	Canvas    CanvasConfig  `toml:"canvas"`
	Buttons   ButtonsConfig `toml:"buttons"`
	Server    ServerConfig  `toml:"server"`
}

// CanvasConfig sizes the rendered snapshot.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Grid   int `toml:"grid"` // grid spacing in pixels; 0 disables the grid
}

// Rect is a button rectangle given by its top-left corner and size.
type Rect struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	W float64 `toml:"w"`
	H float64 `toml:"h"`
}

// Bound converts r to an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.X, r.Y}, Max: orb.Point{r.X + r.W, r.Y + r.H}}
}

// ButtonsConfig places the two buttons.
type ButtonsConfig struct {
	Submit       Rect `toml:"submit"`
	FindDistance Rect `toml:"find_distance"`
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Alpha:     dijkstra.DefaultAlpha,
		HitRadius: core.DefaultHitRadius,
		Canvas:    CanvasConfig{Width: 800, Height: 600, Grid: 40},
		Buttons: ButtonsConfig{
			Submit:       Rect{X: 650, Y: 500, W: 120, H: 40},
			FindDistance: Rect{X: 650, Y: 550, W: 120, H: 40},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// ConfigDir returns the bocafinder config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "bocafinder")
}

// DefaultPath is the config file consulted when no path is given.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads path (DefaultPath when empty) over the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path (DefaultPath when empty), creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks every field that a session or renderer depends on.
func (c *Config) Validate() error {
	if err := dijkstra.ValidateAlpha(c.Alpha); err != nil {
		return fmt.Errorf("%w: got %v", ErrBadAlpha, c.Alpha)
	}
	if !(c.HitRadius > 0) || math.IsInf(c.HitRadius, 1) {
		return fmt.Errorf("%w: got %v", ErrBadRadius, c.HitRadius)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 || c.Canvas.Grid < 0 {
		return fmt.Errorf("%w: %dx%d grid %d", ErrBadCanvas, c.Canvas.Width, c.Canvas.Height, c.Canvas.Grid)
	}
	if err := c.Layout().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadButtons, err)
	}

	return nil
}

// Layout returns the button regions as a session.Layout.
func (c *Config) Layout() session.Layout {
	return session.Layout{
		Submit:       c.Buttons.Submit.Bound(),
		FindDistance: c.Buttons.FindDistance.Bound(),
	}
}

// SessionOptions converts the config into options for session.New.
func (c *Config) SessionOptions() []session.Option {
	return []session.Option{
		session.WithAlpha(c.Alpha),
		session.WithHitRadius(c.HitRadius),
		session.WithLayout(c.Layout()),
	}
}
