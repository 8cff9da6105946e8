package grid_test

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/tilegrid/geom"
	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/idset"
)

// fromRows builds an owning grid whose tile at (x,y) is rows[y][x].
func fromRows(rows ...string) *grid.Grid[rune] {
	w := 0
	if len(rows) > 0 {
		w = len([]rune(rows[0]))
	}
	runes := make([][]rune, len(rows))
	for y, r := range rows {
		runes[y] = []rune(r)
	}
	return grid.New(w, len(rows), func(p geom.Point) rune { return runes[p.Y][p.X] })
}

func same(r rune) rune { return r }

func byRowMajor(a, b geom.Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// sortedPoints flattens a point set into row-major order for comparison.
func sortedPoints(s *idset.Set[geom.Point]) []geom.Point {
	out := s.Items()
	slices.SortFunc(out, byRowMajor)
	return out
}

// cellPoints flattens a cell set into row-major ordered points.
func cellPoints[T any](s *idset.Set[grid.Cell[T]]) []geom.Point {
	out := make([]geom.Point, 0, s.Len())
	s.Each(func(c grid.Cell[T]) { out = append(out, c.Point()) })
	slices.SortFunc(out, byRowMajor)
	return out
}

func pts(xy ...int) []geom.Point {
	out := make([]geom.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.Pt(xy[i], xy[i+1]))
	}
	return out
}
