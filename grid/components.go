package grid

import "github.com/katalvlaran/tilegrid/geom"

// Regions partitions every cell of g into maximal 4-connected regions of
// equal classify result.
//
// Regions are ordered by the row-major position of their first cell; cells
// within a region follow Fill's discovery order. The regions are disjoint
// and their sizes sum to Width()×Height().
//
// classify is evaluated once per cell.
// Time:   O(W·H).
// Memory: O(W·H) for the class cache and seen flags.
func Regions[T any, V comparable](g Capability[T], classify func(tile T) V) [][]Cell[T] {
	w, h := g.Width(), g.Height()
	if w <= 0 || h <= 0 {
		return nil
	}

	classes := make([]V, w*h)
	tiles := make([]T, w*h)
	g.ForEach(func(tile T, p geom.Point) {
		i := index(p.X, p.Y, w)
		tiles[i] = tile
		classes[i] = classify(tile)
	})
	value := func(x, y int) V { return classes[index(x, y, w)] }

	seen := make([]bool, w*h)
	var comps [][]Cell[T]
	for i0 := range seen {
		if seen[i0] {
			continue
		}
		start := Coordinate(i0, w)
		members := Fill(w, h, start, value)
		comp := make([]Cell[T], 0, members.Len())
		members.Each(func(p geom.Point) {
			i := index(p.X, p.Y, w)
			seen[i] = true
			comp = append(comp, Cell[T]{X: p.X, Y: p.Y, Tile: tiles[i]})
		})
		comps = append(comps, comp)
	}

	return comps
}
