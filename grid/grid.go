package grid

import (
	"math"

	"github.com/katalvlaran/tilegrid/compass"
	"github.com/katalvlaran/tilegrid/geom"
)

// Grid is a rectangular tile grid that owns its storage.
// Every cell holds a valid tile from construction onward.
type Grid[T any] struct {
	w, h      int
	tiles     [][]T
	generator func(p geom.Point) T
}

var _ Capability[int] = (*Grid[int])(nil)

// New allocates a w×h grid and fills each cell with gen(position) in
// row-major order. Negative dimensions produce an empty grid.
// Complexity: O(W×H) time and memory.
func New[T any](w, h int, gen func(p geom.Point) T) *Grid[T] {
	w, h = max(w, 0), max(h, 0)
	g := &Grid[T]{
		w:         w,
		h:         h,
		tiles:     make([][]T, h),
		generator: gen,
	}
	for y := 0; y < h; y++ {
		g.tiles[y] = make([]T, w)
	}
	g.Reset()

	return g
}

// NewCeil is New for fractional sizes; each dimension is rounded up.
func NewCeil[T any](w, h float64, gen func(p geom.Point) T) *Grid[T] {
	return New(int(math.Ceil(w)), int(math.Ceil(h)), gen)
}

// Reset discards every tile and refills the grid from its generator.
func (g *Grid[T]) Reset() {
	var p geom.Point
	for y := 0; y < g.h; y++ {
		row := g.tiles[y]
		for x := 0; x < g.w; x++ {
			row[x] = g.generator(*p.SetXY(x, y))
		}
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// IsInside reports whether p lies within the grid.
func (g *Grid[T]) IsInside(p geom.Point) bool {
	return inside(p, g.w, g.h)
}

// Get returns the tile at p and whether p is inside.
func (g *Grid[T]) Get(p geom.Point) (T, bool) {
	if !g.IsInside(p) {
		var zero T
		return zero, false
	}
	return g.tiles[p.Y][p.X], true
}

// Set stores tile at p. Positions outside the grid are ignored.
func (g *Grid[T]) Set(p geom.Point, tile T) {
	if g.IsInside(p) {
		g.tiles[p.Y][p.X] = tile
	}
}

// Neighbors looks up p+offset for every offset; see the package function.
func (g *Grid[T]) Neighbors(p geom.Point, offsets []geom.Point) []Neighbor[T] {
	return Neighbors[T](g, p, offsets)
}

// CompassNeighbors looks up the cells one step from p in each direction.
func (g *Grid[T]) CompassNeighbors(p geom.Point, dirs []compass.Direction) []Neighbor[T] {
	return CompassNeighbors[T](g, p, dirs)
}

// GroupNeighbors looks up the cells around p in the given group.
func (g *Grid[T]) GroupNeighbors(p geom.Point, group compass.Group) []Neighbor[T] {
	return GroupNeighbors[T](g, p, group)
}

// ForEach calls visit for every cell, y ascending outer, x ascending inner.
func (g *Grid[T]) ForEach(visit func(tile T, p geom.Point)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			visit(g.tiles[y][x], geom.Point{X: x, Y: y})
		}
	}
}

// SetEach overwrites every cell with gen(position) in row-major order.
func (g *Grid[T]) SetEach(gen func(p geom.Point) T) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.tiles[y][x] = gen(geom.Point{X: x, Y: y})
		}
	}
}

// Map applies fn to every cell of g in row-major order and returns the
// results. The slice has exactly Width()×Height() entries.
func Map[T, U any](g *Grid[T], fn func(tile T, p geom.Point) U) []U {
	out := make([]U, 0, g.w*g.h)
	g.ForEach(func(tile T, p geom.Point) {
		out = append(out, fn(tile, p))
	})
	return out
}
