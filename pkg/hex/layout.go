package hex

import (
	"errors"
	"fmt"
	"math"
)

// HexWidth is the width in pixels of one flat-top tile's bounding box.
const HexWidth = 128.0

// ErrInvalidWidth is returned by NewLayout for a non-positive or infinite
// tile width.
var ErrInvalidWidth = errors.New("hex: tile width must be positive and finite")

// Point is a position in pixel (world) space.
type Point struct {
	X float64
	Y float64
}

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Layout converts between axial coordinates and pixels for flat-top tiles
// of a fixed width. A process should share a single Layout; mixing widths
// makes positions from different layouts incomparable.
type Layout struct {
	Width float64
}

// DefaultLayout uses HexWidth.
var DefaultLayout = Layout{Width: HexWidth}

// NewLayout returns a layout for tiles of the given width.
func NewLayout(width float64) (Layout, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return Layout{}, fmt.Errorf("%w: got %v", ErrInvalidWidth, width)
	}
	return Layout{Width: width}, nil
}

// AxialToPixel returns the pixel position of cell a.
// q steps 0.75 widths right and a quarter width up, r steps half a width up.
func (l Layout) AxialToPixel(a Axial) Point {
	q := float64(a.Q)
	r := float64(a.R)
	return Point{
		X: l.Width * 0.75 * q,
		Y: l.Width * (0.25*q + 0.5*r),
	}
}

// PixelToAxialFloating inverts AxialToPixel without rounding.
func (l Layout) PixelToAxialFloating(p Point) AxialFloating {
	return AxialFloating{
		Q: (4 * p.X) / (3 * l.Width),
		R: (6*p.Y - 2*p.X) / (3 * l.Width),
	}
}

// PixelToAxial returns the cell containing pixel p. There is no bounds
// checking; any finite p maps to some cell.
func (l Layout) PixelToAxial(p Point) Axial {
	return AxialRound(l.PixelToAxialFloating(p))
}

// AxialToPixel converts with DefaultLayout.
func AxialToPixel(a Axial) Point { return DefaultLayout.AxialToPixel(a) }

// PixelToAxial converts with DefaultLayout.
func PixelToAxial(p Point) Axial { return DefaultLayout.PixelToAxial(p) }

// PixelToAxialFloating converts with DefaultLayout.
func PixelToAxialFloating(p Point) AxialFloating { return DefaultLayout.PixelToAxialFloating(p) }
