package tilegrid

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/gravitas-games/hexpick/pkg/hex"
)

// MaxTiles bounds the number of tiles in one grid.
const MaxTiles = math.MaxUint16

var (
	// ErrInvalidSize is returned by New for a grid without tiles.
	ErrInvalidSize = errors.New("tilegrid: width and height must be positive")
	// ErrTooLarge is returned by New and CheckSize when width*height
	// exceeds MaxTiles.
	ErrTooLarge = errors.New("tilegrid: grid has too many tiles")
)

// Tile is a single placed cell of the grid
type Tile struct {
	Index int       // position in Grid.Tiles
	Coord hex.Axial // grid-local axial coordinate
	World hex.Point // world position of the tile anchor
	Depth float64   // draw order key, larger is nearer the viewer
}

// Grid is a rectangular block of hex tiles addressed by (q, r) with
// 0 <= q < Width and 0 <= r < Height, stored row-major.
type Grid struct {
	Width  int
	Height int
	Origin hex.Point
	Layout hex.Layout
	Tiles  []Tile
}

// New creates a grid and places every tile in world space
func New(width, height int, origin hex.Point, layout hex.Layout) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}

	g := &Grid{
		Width:  width,
		Height: height,
		Origin: origin,
		Layout: layout,
		Tiles:  make([]Tile, width*height),
	}
	g.place()

	log.Printf("Placed %dx%d hex grid (%d tiles) at (%.1f, %.1f), tile width %.1f",
		width, height, len(g.Tiles), origin.X, origin.Y, layout.Width)
	return g, nil
}

// CheckSize reports whether a width x height grid fits in MaxTiles.
// Non-positive sizes are left to the caller.
func CheckSize(width, height int) error {
	if width > 0 && height > 0 && width > MaxTiles/height {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrTooLarge, width, height, MaxTiles)
	}
	return nil
}

// place computes the world position of every tile
func (g *Grid) place() {
	for i := range g.Tiles {
		coord := hex.Axial{Q: i % g.Width, R: i / g.Width}
		world := g.Origin.Add(g.Layout.AxialToPixel(coord))
		g.Tiles[i] = Tile{
			Index: i,
			Coord: coord,
			World: world,
			Depth: depthKey(world.Y),
		}
	}
}

// depthKey orders tiles so that those lower on screen (smaller y, y up)
// are drawn over those behind them.
func depthKey(y float64) float64 {
	return -y
}

// Len returns the number of tiles
func (g *Grid) Len() int {
	return len(g.Tiles)
}

// Index returns the linear index of a, or false if a is outside the grid.
func (g *Grid) Index(a hex.Axial) (int, bool) {
	if a.Q < 0 || a.Q >= g.Width || a.R < 0 || a.R >= g.Height {
		return 0, false
	}
	return a.R*g.Width + a.Q, true
}

// Tile retrieves the tile at grid coordinate a
func (g *Grid) Tile(a hex.Axial) (*Tile, bool) {
	i, ok := g.Index(a)
	if !ok {
		return nil, false
	}
	return &g.Tiles[i], true
}

// Pick returns the tile under a world-space point, if any.
// Non-finite points never hit a tile.
func (g *Grid) Pick(world hex.Point) (*Tile, bool) {
	if !finite(world.X) || !finite(world.Y) {
		return nil, false
	}
	return g.Tile(g.Layout.PixelToAxial(world.Sub(g.Origin)))
}

// Neighbors returns the in-grid tiles adjacent to a
func (g *Grid) Neighbors(a hex.Axial) []*Tile {
	return g.tiles(hex.Ring(a, 1))
}

// Within returns the in-grid tiles at distance <= radius from a, nearest
// first. Tiles at equal distance keep column order.
func (g *Grid) Within(a hex.Axial, radius int) []*Tile {
	out := g.tiles(hex.Disk(a, radius))
	sort.SliceStable(out, func(i, j int) bool {
		return hex.Distance(a, out[i].Coord) < hex.Distance(a, out[j].Coord)
	})
	return out
}

func (g *Grid) tiles(coords []hex.Axial) []*Tile {
	out := make([]*Tile, 0, len(coords))
	for _, c := range coords {
		if t, ok := g.Tile(c); ok {
			out = append(out, t)
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
