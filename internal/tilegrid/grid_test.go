package tilegrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/hexpick/pkg/hex"
)

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := New(16, 24, hex.Point{X: 100, Y: 40}, hex.DefaultLayout)
	require.NoError(t, err)
	return g
}

func TestNew_Placement(t *testing.T) {
	g := newTestGrid(t)
	require.Equal(t, 16*24, g.Len())

	first := g.Tiles[0]
	assert.Equal(t, hex.Axial{Q: 0, R: 0}, first.Coord)
	assert.Equal(t, hex.Point{X: 100, Y: 40}, first.World)

	second := g.Tiles[1]
	assert.Equal(t, hex.Axial{Q: 1, R: 0}, second.Coord)
	assert.Equal(t, hex.Point{X: 196, Y: 72}, second.World)

	rowStart := g.Tiles[16]
	assert.Equal(t, hex.Axial{Q: 0, R: 1}, rowStart.Coord)
	assert.Equal(t, hex.Point{X: 100, Y: 104}, rowStart.World)
	assert.Greater(t, first.Depth, rowStart.Depth)

	for i, tile := range g.Tiles {
		assert.Equal(t, i, tile.Index)
	}
}

func TestNew_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 5}} {
		_, err := New(size[0], size[1], hex.Point{}, hex.DefaultLayout)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestIndex_BoundsChecked(t *testing.T) {
	g := newTestGrid(t)

	i, ok := g.Index(hex.Axial{Q: 3, R: 2})
	require.True(t, ok)
	assert.Equal(t, 2*16+3, i)

	for _, a := range []hex.Axial{{Q: -1, R: 0}, {Q: 16, R: 0}, {Q: 0, R: 24}, {Q: 0, R: -1}} {
		_, ok := g.Index(a)
		assert.False(t, ok, "%+v should be outside the grid", a)
	}
}

func TestPick_EveryTileAnchor(t *testing.T) {
	g := newTestGrid(t)
	for i := range g.Tiles {
		tile, ok := g.Pick(g.Tiles[i].World)
		require.True(t, ok, "tile %d", i)
		assert.Equal(t, i, tile.Index)
	}
}

func TestPick_InsideTile(t *testing.T) {
	g := newTestGrid(t)
	target, ok := g.Tile(hex.Axial{Q: 3, R: 5})
	require.True(t, ok)

	tile, ok := g.Pick(target.World.Add(hex.Point{X: 10, Y: -5}))
	require.True(t, ok)
	assert.Equal(t, target.Index, tile.Index)
}

func TestPick_Outside(t *testing.T) {
	g := newTestGrid(t)

	// q == Width must not wrap into the next row.
	past := g.Origin.Add(hex.AxialToPixel(hex.Axial{Q: 16, R: 0}))
	_, ok := g.Pick(past)
	assert.False(t, ok)

	for _, p := range []hex.Point{
		{X: -1000, Y: -1000},
		{X: 1e9, Y: 1e9},
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.Inf(1)},
	} {
		_, ok := g.Pick(p)
		assert.False(t, ok, "%+v", p)
	}
}

func TestNeighbors(t *testing.T) {
	g := newTestGrid(t)

	corner := g.Neighbors(hex.Axial{Q: 0, R: 0})
	assert.Len(t, corner, 2)

	inner := g.Neighbors(hex.Axial{Q: 5, R: 5})
	assert.Len(t, inner, 6)
	for _, nb := range inner {
		assert.Equal(t, 1, hex.Distance(hex.Axial{Q: 5, R: 5}, nb.Coord))
	}
}

func TestWithin(t *testing.T) {
	g := newTestGrid(t)
	center := hex.Axial{Q: 5, R: 5}

	near := g.Within(center, 2)
	require.Len(t, near, 19)
	assert.Equal(t, center, near[0].Coord)
	for i := 1; i < len(near); i++ {
		prev := hex.Distance(center, near[i-1].Coord)
		cur := hex.Distance(center, near[i].Coord)
		assert.LessOrEqual(t, prev, cur)
		assert.LessOrEqual(t, cur, 2)
	}

	corner := g.Within(hex.Axial{Q: 0, R: 0}, 1)
	require.Len(t, corner, 3)
	assert.Equal(t, 0, corner[0].Index)

	assert.Empty(t, g.Within(center, -1))
}

func TestNew_TooLarge(t *testing.T) {
	_, err := New(256, 256, hex.Point{}, hex.DefaultLayout)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = New(1<<20, 1<<20, hex.Point{}, hex.DefaultLayout)
	assert.ErrorIs(t, err, ErrTooLarge)

	g, err := New(255, 257, hex.Point{}, hex.DefaultLayout)
	require.NoError(t, err)
	assert.Equal(t, MaxTiles, g.Len())
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(16, 24))
	assert.NoError(t, CheckSize(MaxTiles, 1))
	assert.ErrorIs(t, CheckSize(MaxTiles+1, 1), ErrTooLarge)
	assert.ErrorIs(t, CheckSize(math.MaxInt, math.MaxInt), ErrTooLarge)
}
