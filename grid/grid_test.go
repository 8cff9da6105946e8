package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/geom"
	"github.com/katalvlaran/tilegrid/grid"
)

func coordTile(p geom.Point) int { return p.Y*100 + p.X }

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_PopulatesEveryCell(t *testing.T) {
	calls := 0
	g := grid.New(4, 3, func(p geom.Point) int {
		calls++
		return coordTile(p)
	})

	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())
	assert.Equal(t, 12, calls, "generator runs exactly once per cell")

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			tile, ok := g.Get(geom.Pt(x, y))
			require.True(t, ok)
			assert.Equal(t, y*100+x, tile)
		}
	}
}

func TestNewCeil_RoundsUp(t *testing.T) {
	g := grid.NewCeil(2.1, 0.5, coordTile)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 1, g.Height())

	g = grid.NewCeil(2, 3, coordTile)
	assert.Equal(t, 2, g.Width(), "integral sizes are kept")
	assert.Equal(t, 3, g.Height())
}

func TestNew_NegativeSizeIsEmpty(t *testing.T) {
	g := grid.New(-2, 3, coordTile)
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Empty(t, grid.Map(g, func(tile int, _ geom.Point) int { return tile }))
	assert.False(t, g.IsInside(geom.Pt(0, 0)))
}

//----------------------------------------------------------------------------//
// Bounds
//----------------------------------------------------------------------------//

// TestGrid_OutOfBounds checks that outside positions read as absent and
// writes to them leave every cell unchanged.
func TestGrid_OutOfBounds(t *testing.T) {
	g := grid.New(3, 2, coordTile)
	before := grid.Map(g, func(tile int, _ geom.Point) int { return tile })

	valid := pts(0, 0, 2, 1, 1, 1)
	for _, p := range valid {
		assert.True(t, g.IsInside(p), "IsInside%v", p)
	}
	invalid := pts(-1, 0, 3, 0, 1, 2, 2, -1)
	for _, p := range invalid {
		assert.False(t, g.IsInside(p), "IsInside%v", p)
		tile, ok := g.Get(p)
		assert.False(t, ok, "Get%v", p)
		assert.Zero(t, tile)
		g.Set(p, -1)
	}

	after := grid.Map(g, func(tile int, _ geom.Point) int { return tile })
	assert.Equal(t, before, after)
}

func TestGrid_SetGet(t *testing.T) {
	g := grid.New(2, 2, func(geom.Point) string { return "." })
	g.Set(geom.Pt(1, 0), "#")

	tile, ok := g.Get(geom.Pt(1, 0))
	require.True(t, ok)
	assert.Equal(t, "#", tile)
	tile, _ = g.Get(geom.Pt(0, 1))
	assert.Equal(t, ".", tile)
}

//----------------------------------------------------------------------------//
// Traversal
//----------------------------------------------------------------------------//

func TestGrid_ForEachRowMajor(t *testing.T) {
	g := grid.New(3, 2, coordTile)
	var order []geom.Point
	g.ForEach(func(tile int, p geom.Point) {
		assert.Equal(t, coordTile(p), tile)
		order = append(order, p)
	})
	assert.Equal(t, pts(0, 0, 1, 0, 2, 0, 0, 1, 1, 1, 2, 1), order)
}

func TestGrid_SetEach(t *testing.T) {
	g := grid.New(2, 2, coordTile)
	var order []geom.Point
	g.SetEach(func(p geom.Point) int {
		order = append(order, p)
		return p.X + p.Y
	})

	assert.Equal(t, pts(0, 0, 1, 0, 0, 1, 1, 1), order)
	assert.Equal(t, []int{0, 1, 1, 2}, grid.Map(g, func(tile int, _ geom.Point) int { return tile }))
}

func TestMap_LengthAndOrder(t *testing.T) {
	g := grid.New(3, 4, coordTile)
	out := grid.Map(g, func(tile int, p geom.Point) geom.Point { return p })

	require.Len(t, out, 12)
	assert.Equal(t, geom.Pt(0, 0), out[0])
	assert.Equal(t, geom.Pt(2, 0), out[2])
	assert.Equal(t, geom.Pt(0, 1), out[3])
	assert.Equal(t, geom.Pt(2, 3), out[11])
}

// TestReset_ReproducesFreshGrid verifies Reset restores generator output
// after arbitrary writes, matching a fresh construction cell for cell.
func TestReset_ReproducesFreshGrid(t *testing.T) {
	gen := func(p geom.Point) int { return (p.X*7 + p.Y*3) % 5 }
	identity := func(tile int, _ geom.Point) int { return tile }

	g := grid.New(5, 4, gen)
	g.SetEach(func(geom.Point) int { return 99 })
	g.Set(geom.Pt(2, 2), -5)
	g.Reset()

	assert.Equal(t, grid.Map(grid.New(5, 4, gen), identity), grid.Map(g, identity))
}

func TestCoordinate_RoundTrip(t *testing.T) {
	const w = 7
	for idx := 0; idx < 3*w; idx++ {
		p := grid.Coordinate(idx, w)
		assert.Equal(t, idx, p.Y*w+p.X)
	}
}
