package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexpick/internal/tilegrid"
	"github.com/gravitas-games/hexpick/pkg/hex"
)

// Config holds all hexpick configuration
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Grid   GridConfig   `yaml:"grid"`
}

// LayoutConfig holds the tile geometry shared by every grid in the process
type LayoutConfig struct {
	HexWidth float64 `yaml:"hex_width"` // pixels, flat-top bounding box width
}

// GridConfig holds the tile grid size and its world-space origin
type GridConfig struct {
	Width  int           `yaml:"width"`  // tiles per row (q axis)
	Height int           `yaml:"height"` // rows (r axis)
	Origin *OriginConfig `yaml:"origin"` // world position of tile (0, 0)
}

// OriginConfig is a world-space position
type OriginConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills in defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if _, err := cfg.Layout.HexLayout(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if cfg.Grid.Width < 0 || cfg.Grid.Height < 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if err := tilegrid.CheckSize(cfg.Grid.Width, cfg.Grid.Height); err != nil {
		return nil, fmt.Errorf("invalid grid size: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Layout.HexWidth == 0 {
		c.Layout.HexWidth = hex.HexWidth
	}
	if c.Grid.Width == 0 {
		c.Grid.Width = 16
	}
	if c.Grid.Height == 0 {
		c.Grid.Height = 24
	}
	if c.Grid.Origin == nil {
		c.Grid.Origin = &OriginConfig{X: 100, Y: 40}
	}
}

// HexLayout builds the validated layout for this configuration
func (l LayoutConfig) HexLayout() (hex.Layout, error) {
	return hex.NewLayout(l.HexWidth)
}

// OriginPoint returns the grid origin as a world point
func (g GridConfig) OriginPoint() hex.Point {
	if g.Origin == nil {
		return hex.Point{}
	}
	return hex.Point{X: g.Origin.X, Y: g.Origin.Y}
}
