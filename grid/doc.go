// Package grid is a generic 2D tile grid with neighbor queries and
// connected-region extraction.
//
// What:
//
//   - Capability[T] is the contract shared by every grid-like value: bounds test,
//     Get/Set by position, neighbor queries and row-major traversal.
//   - Grid[T] owns its storage and fills every cell from a generator function.
//   - View[T] wraps caller-owned [][]T rows without copying them.
//   - Fill, Region and RegionByPosition extract the 4-connected region around a
//     start cell using a stack-based scanline flood fill.
//   - Regions partitions a whole grid into its regions.
//   - Bridge finds the cheapest chain of cells to convert so two regions touch.
//
// Why:
//
//   - Game maps: rooms, lakes, paint-bucket tools, reachable floor.
//   - Level tooling: counting islands, joining them with minimal edits.
//
// Bounds policy:
//
//	Out-of-bounds positions are never an error. Get reports ok=false, Set is a
//	no-op and neighbor queries keep the absent entry in place so results line
//	up one-to-one with the requested offsets.
//
// Complexity:
//
//   - Get, Set, IsInside:   O(1).
//   - Neighbors:            O(k) for k offsets.
//   - Fill / Region:        O(R) time and memory for a region of R cells.
//   - Regions:              O(W×H) time and memory.
//   - Bridge:               O(W×H) on average, O(W×H) memory.
//
// Concurrency:
//
//	Nothing in this package locks. Callers that share a grid across goroutines
//	must guard it themselves, for example with one mutex around the grid.
//
// Errors:
//
//   - ErrEmptyRegion: Bridge got an endpoint set with no in-bounds cell.
//   - ErrNoPath: Bridge found every route blocked.
package grid
