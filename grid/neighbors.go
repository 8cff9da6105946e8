package grid

import (
	"github.com/katalvlaran/tilegrid/compass"
	"github.com/katalvlaran/tilegrid/geom"
)

// Neighbors returns one entry per offset, in the order given, describing the
// cell at p+offset. Entries outside g are kept with OK=false, so the result
// always has len(offsets) entries.
// Complexity: O(len(offsets)).
func Neighbors[T any](g Capability[T], p geom.Point, offsets []geom.Point) []Neighbor[T] {
	out := make([]Neighbor[T], len(offsets))
	for i, o := range offsets {
		q := p.Add(o)
		tile, ok := g.Get(q)
		out[i] = Neighbor[T]{Position: q, Tile: tile, OK: ok}
	}
	return out
}

// CompassNeighbors resolves dirs to unit offsets and delegates to Neighbors.
func CompassNeighbors[T any](g Capability[T], p geom.Point, dirs []compass.Direction) []Neighbor[T] {
	return Neighbors(g, p, compass.Offsets(dirs))
}

// GroupNeighbors resolves group to its directions and delegates to
// CompassNeighbors. The zero Group is compass.Cardinal.
func GroupNeighbors[T any](g Capability[T], p geom.Point, group compass.Group) []Neighbor[T] {
	return CompassNeighbors(g, p, group.Directions())
}
