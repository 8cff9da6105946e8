package grid

import (
	"container/list"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilegrid/compass"
	"github.com/katalvlaran/tilegrid/geom"
)

// Cost classifies how a tile participates in a Bridge search.
type Cost int

const (
	// Free tiles are entered at no cost.
	Free Cost = iota
	// Convert tiles are entered at unit cost; they are the cells a bridge replaces.
	Convert
	// Blocked tiles are never entered.
	Blocked
)

// Bridge finds a minimum-conversion chain of cardinal steps that joins any
// cell of from to any cell of to.
//
// Behavior:
//  1. Points outside g are dropped from both sets.
//  2. Multi-source 0–1 BFS from every from cell:
//     • entering a to cell, or a tile whose cost is Free → 0
//     • entering a Convert tile                         → 1
//     • Blocked tiles are skipped
//  3. Stop when the first to cell leaves the deque.
//  4. Rebuild the path from predecessor links.
//
// The returned path starts in from, ends in to and includes both endpoints;
// the int is the number of Convert cells on it. When the sets overlap the
// path is that single shared cell at cost 0.
//
// Errors: ErrEmptyRegion when either set has no cell inside g, ErrNoPath
// when every route crosses Blocked tiles.
// Complexity: O(W·H) on average, Memory: O(W·H).
func Bridge[T any](g Capability[T], from, to []geom.Point, cost func(tile T) Cost) ([]geom.Point, int, error) {
	w, h := g.Width(), g.Height()

	dst := mapset.New[int]()
	for _, p := range to {
		if g.IsInside(p) {
			dst.Put(index(p.X, p.Y, w))
		}
	}
	if dst.Size() == 0 {
		return nil, 0, ErrEmptyRegion
	}

	n := w * h
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: cost-0 moves go to the front, cost-1 moves to the back
	dq := list.New()
	for _, p := range from {
		if !g.IsInside(p) {
			continue
		}
		i := index(p.X, p.Y, w)
		if dist[i] == 0 {
			continue
		}
		dist[i] = 0
		dq.PushFront(i)
	}
	if dq.Len() == 0 {
		return nil, 0, ErrEmptyRegion
	}

	offsets := compass.Cardinal.Offsets()
	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if dst.Has(u) {
			target = u
			break
		}
		up := Coordinate(u, w)
		for _, d := range offsets {
			vp := up.Add(d)
			tile, ok := g.Get(vp)
			if !ok {
				continue
			}
			v := index(vp.X, vp.Y, w)
			step := 0
			if !dst.Has(v) {
				switch cost(tile) {
				case Free:
				case Convert:
					step = 1
				default:
					continue
				}
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	var path []geom.Point
	for at := target; at >= 0; at = prev[at] {
		path = append(path, Coordinate(at, w))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}
