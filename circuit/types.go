// Package circuit contains the data model for the circuit editor: geometry
// primitives, typed components with connection terminals, wires, and the
// container that owns them.
package circuit

// Point represents a 2D coordinate on the canvas. The Y axis grows downward,
// matching screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Direction represents a cardinal direction. For a terminal it is the
// direction a wire travels when leaving that terminal.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// Rotate returns the direction turned clockwise by the given number of
// quarter turns. Negative counts turn counter-clockwise.
func (d Direction) Rotate(quarterTurns int) Direction {
	q := ((quarterTurns % 4) + 4) % 4
	return Direction((int(d) + q) % 4)
}

// Horizontal reports whether the direction lies on the X axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vector returns the unit step for the direction in canvas coordinates.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// ConnPoint is a terminal resolved into world space: where it sits and which
// way a wire must travel when leaving it. This is the router's input.
type ConnPoint struct {
	Position Point
	Facing   Direction
}

// Bounds represents a rectangular area.
type Bounds struct {
	Min, Max Point
}

// Width returns the width of the bounds.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	out := b
	if other.Min.X < out.Min.X {
		out.Min.X = other.Min.X
	}
	if other.Min.Y < out.Min.Y {
		out.Min.Y = other.Min.Y
	}
	if other.Max.X > out.Max.X {
		out.Max.X = other.Max.X
	}
	if other.Max.Y > out.Max.Y {
		out.Max.Y = other.Max.Y
	}
	return out
}

// rotateQuarter rotates a local-frame offset clockwise around the origin by
// the given number of quarter turns.
func rotateQuarter(p Point, quarterTurns int) Point {
	q := ((quarterTurns % 4) + 4) % 4
	for i := 0; i < q; i++ {
		p = Point{X: -p.Y, Y: p.X}
	}
	return p
}
