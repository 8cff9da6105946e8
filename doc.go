// Package tilegrid is a small toolkit for 2D tile maps: an owning grid and a
// non-owning view over [][]T, compass-direction neighbor queries, and
// region extraction with a scanline flood fill.
//
// What is in the box?
//
//   - geom/    — the integer Point every package shares
//   - compass/ — eight named directions, their unit offsets, and the groups
//     Cardinal, Diagonal and All
//   - idset/   — a set keyed by a caller-supplied identity function, iterated
//     in insertion order
//   - grid/    — Capability, Grid, View, neighbor lookups, Fill/Region,
//     Regions (full partition) and Bridge (cheapest join of two regions)
//
// Policies:
//
//   - Out-of-bounds access is never an error: Get reports ok=false and Set
//     is a no-op, so edge-of-map neighbor lookups need no special cases.
//   - No locking anywhere; one goroutine owns a grid unless the caller guards it.
//   - Flood fill is iterative with an explicit stack, so region size never
//     touches the call stack.
//
// Quick ASCII example:
//
//	#####
//	#..##    Region from (1,1) over '.' tiles:
//	#.#.#    {(1,1) (2,1) (1,2)}; (3,2) is a separate region.
//	#####
//
// The tilegrid command (cmd/tilegrid) runs the same queries over YAML map files.
//
//	go install github.com/katalvlaran/tilegrid/cmd/tilegrid@latest
package tilegrid
