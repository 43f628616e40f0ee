package board

import "fmt"

// Coordinate is the zero-based address of a grid cell.
type Coordinate struct {
	X, Y uint16
}

// Offset is a signed displacement between two cells.
type Offset struct {
	DX, DY int
}

// squareOffsets holds the deltas of the 8 square neighbors.
var squareOffsets = [8]Offset{
	{-1, -1}, // bottom left
	{0, -1},  // bottom
	{1, -1},  // bottom right
	{-1, 0},  // left
	{1, 0},   // right
	{-1, 1},  // top left
	{0, 1},   // top
	{1, 1},   // top right
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Shift moves c by o, clamping each component to [0, MaxUint16].
func (c Coordinate) Shift(o Offset) Coordinate {
	return Coordinate{X: clampUint16(int(c.X) + o.DX), Y: clampUint16(int(c.Y) + o.DY)}
}

// Neighbor moves c by o. ok is false if either component would be negative.
func (c Coordinate) Neighbor(o Offset) (n Coordinate, ok bool) {
	x, y := int(c.X)+o.DX, int(c.Y)+o.DY
	if x < 0 || y < 0 || x > maxUint16 || y > maxUint16 {
		return Coordinate{}, false
	}
	return Coordinate{X: uint16(x), Y: uint16(y)}, true
}

// Sub subtracts component-wise, saturating at zero.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	var r Coordinate
	if c.X > o.X {
		r.X = c.X - o.X
	}
	if c.Y > o.Y {
		r.Y = c.Y - o.Y
	}
	return r
}

// Compare orders coordinates row-major, by y then x.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	}
	return 0
}

// Coordinate implements [fmt.Stringer]
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

const maxUint16 = 1<<16 - 1

func clampUint16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > maxUint16 {
		return maxUint16
	}
	return uint16(v)
}
