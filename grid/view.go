package grid

import (
	"github.com/katalvlaran/tilegrid/compass"
	"github.com/katalvlaran/tilegrid/geom"
)

// View adapts caller-owned row-major storage to Capability without copying.
//
// Height is len(rows) and Width is len(rows[0]), both captured at
// construction. Rows must all share the first row's length, and the storage
// must not be resized while the View is in use; neither is checked.
// Writes through Set are visible in the caller's slices and vice versa.
type View[T any] struct {
	w, h  int
	tiles [][]T
}

var _ Capability[int] = (*View[int])(nil)

// NewView wraps rows. An empty rows slice yields a 0×0 view.
func NewView[T any](rows [][]T) *View[T] {
	v := &View[T]{h: len(rows), tiles: rows}
	if len(rows) > 0 {
		v.w = len(rows[0])
	}
	return v
}

// Width returns the number of columns.
func (v *View[T]) Width() int { return v.w }

// Height returns the number of rows.
func (v *View[T]) Height() int { return v.h }

// IsInside reports whether p lies within the view.
func (v *View[T]) IsInside(p geom.Point) bool {
	return inside(p, v.w, v.h)
}

// Get returns the tile at p and whether p is inside.
func (v *View[T]) Get(p geom.Point) (T, bool) {
	if !v.IsInside(p) {
		var zero T
		return zero, false
	}
	return v.tiles[p.Y][p.X], true
}

// Set stores tile at p in the wrapped storage. Positions outside are ignored.
func (v *View[T]) Set(p geom.Point, tile T) {
	if v.IsInside(p) {
		v.tiles[p.Y][p.X] = tile
	}
}

func (v *View[T]) Neighbors(p geom.Point, offsets []geom.Point) []Neighbor[T] {
	return Neighbors[T](v, p, offsets)
}

func (v *View[T]) CompassNeighbors(p geom.Point, dirs []compass.Direction) []Neighbor[T] {
	return CompassNeighbors[T](v, p, dirs)
}

func (v *View[T]) GroupNeighbors(p geom.Point, group compass.Group) []Neighbor[T] {
	return GroupNeighbors[T](v, p, group)
}

// ForEach calls visit for every cell in row-major order. Storage is dense,
// so no in-bounds cell is ever skipped.
func (v *View[T]) ForEach(visit func(tile T, p geom.Point)) {
	var p geom.Point
	for y := 0; y < v.h; y++ {
		for x := 0; x < v.w; x++ {
			p.SetXY(x, y)
			if tile, ok := v.Get(p); ok {
				visit(tile, p)
			}
		}
	}
}

// SetEach overwrites every cell with gen(position) in row-major order.
func (v *View[T]) SetEach(gen func(p geom.Point) T) {
	var p geom.Point
	for y := 0; y < v.h; y++ {
		for x := 0; x < v.w; x++ {
			p.SetXY(x, y)
			v.Set(p, gen(p))
		}
	}
}
