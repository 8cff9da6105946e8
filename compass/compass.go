package compass

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tilegrid/geom"
)

var (
	// ErrUnknownDirection indicates a direction name that does not parse.
	ErrUnknownDirection = errors.New("compass: unknown direction")
	// ErrUnknownGroup indicates a group name that does not parse.
	ErrUnknownGroup = errors.New("compass: unknown direction group")
)

// Direction names one of the eight compass points.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Group names a fixed subset of directions.
type Group int

const (
	// Cardinal is the four axis directions; it is the zero value.
	Cardinal Group = iota
	// Diagonal is the four corner directions.
	Diagonal
	// All is every direction, clockwise from North.
	All
)

var offsets = [...]geom.Point{
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
	East:      {X: 1, Y: 0},
	SouthEast: {X: 1, Y: 1},
	South:     {X: 0, Y: 1},
	SouthWest: {X: -1, Y: 1},
	West:      {X: -1, Y: 0},
	NorthWest: {X: -1, Y: -1},
}

var directionNames = [...]string{
	North:     "north",
	NorthEast: "northeast",
	East:      "east",
	SouthEast: "southeast",
	South:     "south",
	SouthWest: "southwest",
	West:      "west",
	NorthWest: "northwest",
}

var shortNames = [...]string{
	North:     "n",
	NorthEast: "ne",
	East:      "e",
	SouthEast: "se",
	South:     "s",
	SouthWest: "sw",
	West:      "w",
	NorthWest: "nw",
}

var groups = [...][]Direction{
	Cardinal: {North, East, South, West},
	Diagonal: {NorthEast, SouthEast, SouthWest, NorthWest},
	All:      {North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest},
}

var groupNames = [...]string{
	Cardinal: "cardinal",
	Diagonal: "diagonal",
	All:      "all",
}

// Valid reports whether d is one of the eight named directions.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// Offset returns the unit vector for d. Invalid directions yield (0,0).
func (d Direction) Offset() geom.Point {
	if !d.Valid() {
		return geom.Point{}
	}
	return offsets[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 4) % 8
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts a full name ("north", "SouthWest") or a short form
// ("n", "sw"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for d := North; d <= NorthWest; d++ {
		if key == directionNames[d] || key == shortNames[d] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Offsets resolves every direction in dirs to its unit vector, preserving order.
func Offsets(dirs []Direction) []geom.Point {
	out := make([]geom.Point, len(dirs))
	for i, d := range dirs {
		out[i] = d.Offset()
	}
	return out
}

// Valid reports whether g is a known group.
func (g Group) Valid() bool {
	return g >= Cardinal && g <= All
}

// Directions returns a copy of the member directions of g, or nil for an
// unknown group.
func (g Group) Directions() []Direction {
	if !g.Valid() {
		return nil
	}
	src := groups[g]
	out := make([]Direction, len(src))
	copy(out, src)
	return out
}

// Offsets returns the unit vectors of every direction in g.
func (g Group) Offsets() []geom.Point {
	return Offsets(g.Directions())
}

// String returns the lowercase group name.
func (g Group) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// ParseGroup accepts "cardinal", "diagonal" or "all", case-insensitively.
// The aliases "4" and "8" map to Cardinal and All.
func ParseGroup(s string) (Group, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "4", "orthogonal":
		return Cardinal, nil
	case "8":
		return All, nil
	}
	for g := Cardinal; g <= All; g++ {
		if key == groupNames[g] {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, s)
}
