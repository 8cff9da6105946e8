package grid

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/tilegrid/geom"
	"github.com/katalvlaran/tilegrid/idset"
)

// Fill returns the 4-connected region of a w×h area that contains start,
// where two cells belong together when value reports equal results for them.
//
// The algorithm is a stack-based scanline fill (after
// https://lodev.org/cgtutor/floodfill.html): each pop walks a whole vertical
// span and pushes at most one seed per contiguous run of matching cells in
// the columns to its left and right. Every cell is added at most once.
//
// value is only called with 0 ≤ y < h for the popped columns, and with
// neighbouring columns only inside [0, w). The start cell itself is passed to
// value unchecked, so callers that allow a start outside the area decide what
// it means through value. value must be pure for the duration of the call.
//
// Members are keyed by y*w + x and iterate in discovery order.
// Complexity: O(R) time and memory for a region of R cells.
func Fill[V comparable](w, h int, start geom.Point, value func(x, y int) V) *idset.Set[geom.Point] {
	region := idset.New(func(p geom.Point) int { return index(p.X, p.Y, w) })
	if w <= 0 || h <= 0 {
		return region
	}
	old := value(start.X, start.Y)

	work := stack.New[geom.Point]()
	work.Push(start)
	for work.Size() > 0 {
		pt := work.Pop()
		x := pt.X

		y1 := pt.Y
		for y1 >= 0 && value(x, y1) == old {
			y1--
		}
		y1++

		spanLeft, spanRight := false, false
		for y1 < h && value(x, y1) == old {
			if !region.Add(geom.Point{X: x, Y: y1}) {
				// the rest of this span was walked by an earlier pop
				break
			}
			if x > 0 {
				match := value(x-1, y1) == old
				if !spanLeft && match {
					work.Push(geom.Point{X: x - 1, Y: y1})
					spanLeft = true
				} else if spanLeft && !match {
					spanLeft = false
				}
			}
			if x < w-1 {
				match := value(x+1, y1) == old
				if !spanRight && match {
					work.Push(geom.Point{X: x + 1, Y: y1})
					spanRight = true
				} else if spanRight && !match {
					spanRight = false
				}
			}
			y1++
		}
	}

	return region
}

// Region returns the 4-connected region of g around start whose tiles map to
// the same classify result as the start tile. A start outside g yields an
// empty region.
func Region[T any, V comparable](g Capability[T], start geom.Point, classify func(tile T) V) *idset.Set[Cell[T]] {
	if !g.IsInside(start) {
		return newCellSet[T](g.Width())
	}
	return RegionByPosition(g, start, func(x, y int) V {
		tile, _ := g.Get(geom.Point{X: x, Y: y})
		return classify(tile)
	})
}

// RegionByPosition runs Fill over g's dimensions with a position classifier
// and attaches each member's tile. Out-of-range starts are left to value.
func RegionByPosition[T any, V comparable](g Capability[T], start geom.Point, value func(x, y int) V) *idset.Set[Cell[T]] {
	result := newCellSet[T](g.Width())
	Fill(g.Width(), g.Height(), start, value).Each(func(p geom.Point) {
		tile, _ := g.Get(p)
		result.Add(Cell[T]{X: p.X, Y: p.Y, Tile: tile})
	})
	return result
}

func newCellSet[T any](w int) *idset.Set[Cell[T]] {
	return idset.New(func(c Cell[T]) int { return index(c.X, c.Y, w) })
}
