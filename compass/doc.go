// Package compass maps the eight named compass directions to unit offsets
// on a tile grid, and groups them into the usual neighborhoods.
//
// What:
//
//   - Direction: North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest.
//   - Group: Cardinal (N, E, S, W), Diagonal (NE, SE, SW, NW), All (the eight, clockwise from N).
//   - Offsets use screen coordinates: Y grows downward, so North is (0,-1).
//
// The lookup tables are immutable package data. Every accessor that returns a
// slice returns a fresh copy, so callers may modify results freely.
//
// Group's zero value is Cardinal, which makes it the natural default for
// neighbor queries.
//
// Errors:
//
//   - ErrUnknownDirection: ParseDirection got a name it does not recognise.
//   - ErrUnknownGroup: ParseGroup got a name it does not recognise.
package compass
