// Package hex implements the flat-top hexagonal grid coordinate system:
// axial and cube coordinates, their fractional counterparts, conversion
// to and from pixel space, and cube rounding.
package hex

import "math"

// Axial represents axial coordinates (q, r) of one hex cell.
type Axial struct {
	Q int
	R int
}

// AxialFloating is a continuous position in the axial basis, before rounding.
type AxialFloating struct {
	Q float64
	R float64
}

// Cube represents cube coordinates (q, r, s) with q+r+s=0.
type Cube struct {
	Q int
	R int
	S int
}

// CubeFloating is a continuous position in the cube basis with q+r+s=0.
type CubeFloating struct {
	Q float64
	R float64
	S float64
}

// Directions for axial neighbors, counter-clockwise starting east.
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// S returns the derived third cube axis.
func (a Axial) S() int { return -a.Q - a.R }

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Neighbors returns the six adjacent cells in Directions order.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range Directions {
		out[i] = a.Add(d)
	}
	return out
}

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube { return Cube{Q: a.Q, R: a.R, S: -a.Q - a.R} }

// ToFloating widens a to the fractional axial type.
func (a Axial) ToFloating() AxialFloating {
	return AxialFloating{Q: float64(a.Q), R: float64(a.R)}
}

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.Q, R: c.R} }

// ToCube converts fractional axial to fractional cube.
func (a AxialFloating) ToCube() CubeFloating {
	return CubeFloating{Q: a.Q, R: a.R, S: -a.Q - a.R}
}

// ToAxial converts fractional cube to fractional axial.
func (c CubeFloating) ToAxial() AxialFloating { return AxialFloating{Q: c.Q, R: c.R} }

// Distance returns hex distance between two axial coords.
func Distance(a, b Axial) int {
	return CubeDistance(a.ToCube(), b.ToCube())
}

// CubeDistance returns hex distance between two cube coords.
func CubeDistance(a, b Cube) int {
	dq := absInt(a.Q - b.Q)
	dr := absInt(a.R - b.R)
	ds := absInt(a.S - b.S)
	if dq > dr && dq > ds {
		return dq
	}
	if dr > ds {
		return dr
	}
	return ds
}

// CubeRound snaps a fractional cube position to the nearest cell.
//
// Each axis is rounded on its own, which can break q+r+s=0; the axis whose
// rounding moved it the furthest is then rederived from the other two.
// Ties are resolved in the order q, r, s: q is only rederived when its
// error is strictly the largest, r when it strictly beats s, s otherwise.
func CubeRound(c CubeFloating) Cube {
	q := math.Round(c.Q)
	r := math.Round(c.R)
	s := math.Round(c.S)

	dq := math.Abs(q - c.Q)
	dr := math.Abs(r - c.R)
	ds := math.Abs(s - c.S)

	if dq > dr && dq > ds {
		q = -r - s
	} else if dr > ds {
		r = -q - s
	} else {
		s = -q - r
	}

	return Cube{Q: int(q), R: int(r), S: int(s)}
}

// AxialRound snaps a fractional axial position to the nearest cell.
func AxialRound(a AxialFloating) Axial {
	return CubeRound(a.ToCube()).ToAxial()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
