package grid

import (
	"github.com/katalvlaran/tilegrid/compass"
	"github.com/katalvlaran/tilegrid/geom"
)

// Capability is the contract every grid-like structure satisfies.
//
// Width and Height are fixed for the lifetime of the value.
// IsInside(p) holds iff 0 ≤ p.Y < Height() and 0 ≤ p.X < Width().
type Capability[T any] interface {
	Width() int
	Height() int
	IsInside(p geom.Point) bool
	// Get returns the tile at p; ok is false when p is outside.
	Get(p geom.Point) (tile T, ok bool)
	// Set stores tile at p; positions outside are ignored.
	Set(p geom.Point, tile T)
	Neighbors(p geom.Point, offsets []geom.Point) []Neighbor[T]
	CompassNeighbors(p geom.Point, dirs []compass.Direction) []Neighbor[T]
	GroupNeighbors(p geom.Point, group compass.Group) []Neighbor[T]
	// ForEach visits every cell in row-major order.
	ForEach(visit func(tile T, p geom.Point))
	// SetEach overwrites every cell in row-major order.
	SetEach(gen func(p geom.Point) T)
}

// Neighbor is one entry of a neighbor query.
// OK is false when Position lies outside the grid; Tile is then the zero value.
type Neighbor[T any] struct {
	Position geom.Point
	Tile     T
	OK       bool
}

// Cell is a member of an extracted region.
type Cell[T any] struct {
	X, Y int
	Tile T
}

// Point returns the cell's coordinate.
func (c Cell[T]) Point() geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

// index maps (x,y) to its row-major index y*w + x.
func index(x, y, w int) int {
	return y*w + x
}

// Coordinate converts a row-major index back to a point for width w.
func Coordinate(idx, w int) geom.Point {
	return geom.Point{X: idx % w, Y: idx / w}
}

func inside(p geom.Point, w, h int) bool {
	return p.Y >= 0 && p.Y < h && p.X >= 0 && p.X < w
}
