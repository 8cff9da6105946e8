// SPDX-License-Identifier: MIT
//
// Package geom holds the integer 2D point used by every tilegrid package.
//
// Coordinates follow screen conventions: X grows to the right, Y grows
// downward. Point is a plain value type; copy it freely.
package geom

import "strconv"

// Point is a 2D integer coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset that takes o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// SetXY overwrites p in place and returns it, so a single scratch Point can
// be reused across a traversal.
func (p *Point) SetXY(x, y int) *Point {
	p.X, p.Y = x, y
	return p
}

// Equal reports whether p and o name the same coordinate.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}
