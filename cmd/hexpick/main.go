package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gravitas-games/hexpick/internal/config"
	"github.com/gravitas-games/hexpick/internal/tilegrid"
	"github.com/gravitas-games/hexpick/pkg/hex"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hexpick.yaml"
	}

	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("No configuration at %s, using defaults", configPath)
		cfg = config.Default()
	case err != nil:
		log.Fatalf("Failed to load configuration: %v", err)
	default:
		log.Printf("Configuration loaded from %s", configPath)
	}

	layout, err := cfg.Layout.HexLayout()
	if err != nil {
		log.Fatalf("Invalid layout: %v", err)
	}

	grid, err := tilegrid.New(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.OriginPoint(), layout)
	if err != nil {
		log.Fatalf("Failed to create grid: %v", err)
	}

	for _, arg := range os.Args[1:] {
		p, err := parsePoint(arg)
		if err != nil {
			log.Printf("Skipping %q: %v", arg, err)
			continue
		}
		tile, ok := grid.Pick(p)
		if !ok {
			log.Printf("(%g, %g) -> no tile", p.X, p.Y)
			continue
		}
		log.Printf("(%g, %g) -> tile %d at (%d, %d)", p.X, p.Y, tile.Index, tile.Coord.Q, tile.Coord.R)
		log.Printf("  nearby: %s", describeNearby(grid, tile.Coord))
	}
}

// nearbyRadius is how far around a picked tile the surroundings are listed
const nearbyRadius = 1

// describeNearby lists the tiles around c, excluding c itself
func describeNearby(grid *tilegrid.Grid, c hex.Axial) string {
	var parts []string
	for _, t := range grid.Within(c, nearbyRadius) {
		if t.Coord == c {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d (%d, %d)", t.Index, t.Coord.Q, t.Coord.R))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// parsePoint reads a world point written as "x,y"
func parsePoint(s string) (hex.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return hex.Point{}, errors.New("expected x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return hex.Point{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return hex.Point{}, fmt.Errorf("bad y: %w", err)
	}
	return hex.Point{X: x, Y: y}, nil
}
