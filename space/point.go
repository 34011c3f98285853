package space

import (
	"fmt"
)

// Cell is the universal unit of data a program operates on: a signed
// 32-bit value holding either a Unicode code point or an arbitrary
// number.
type Cell int32

// Blank is the value of every cell that has never been written.
const Blank = Cell(' ')

// Point is an absolute location in funge space.
type Point struct {
	X Cell
	Y Cell
}

// Add returns the point offset by one step of the given delta.
func (p Point) Add(d Delta) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Sub returns the point offset by one step against the given delta.
func (p Point) Sub(d Delta) Point {
	return Point{X: p.X - d.DX, Y: p.Y - d.DY}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Delta is an offset vector in funge space. Deltas are not restricted
// to unit vectors; the `x` instruction can set any pair of integers.
type Delta struct {
	DX Cell
	DY Cell
}

// Cardinal unit deltas. The y axis grows southward, matching the
// reading order of program text.
var (
	East  = Delta{DX: 1, DY: 0}
	South = Delta{DX: 0, DY: 1}
	West  = Delta{DX: -1, DY: 0}
	North = Delta{DX: 0, DY: -1}
)

// Reverse returns the delta rotated 180 degrees.
func (d Delta) Reverse() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

// RotateLeft returns the delta rotated 90 degrees counterclockwise.
func (d Delta) RotateLeft() Delta {
	return Delta{DX: d.DY, DY: -d.DX}
}

// RotateRight returns the delta rotated 90 degrees clockwise.
func (d Delta) RotateRight() Delta {
	return Delta{DX: -d.DY, DY: d.DX}
}

// Scale returns the delta multiplied by n.
func (d Delta) Scale(n Cell) Delta {
	return Delta{DX: d.DX * n, DY: d.DY * n}
}

func (d Delta) String() string {
	return fmt.Sprintf("(%d, %d)", d.DX, d.DY)
}
