package grid

import "errors"

var (
	// ErrEmptyRegion indicates a Bridge endpoint set with no cell inside the grid.
	ErrEmptyRegion = errors.New("grid: region has no cells inside the grid")
	// ErrNoPath indicates no unblocked route exists between two regions.
	ErrNoPath = errors.New("grid: no path between regions")
)
