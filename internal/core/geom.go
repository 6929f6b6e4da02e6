// Package core provides fundamental types and utilities shared by the engine
// and the front ends. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Point is a cell coordinate on the board. The origin is the top-left cell,
// x grows to the right and y grows downwards.
type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies inside a size x size grid.
func (p Point) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Wrap maps p back into a size x size grid, teleporting coordinates that fell
// off one edge to the opposite edge.
func (p Point) Wrap(size int) Point {
	return Point{X: Mod(p.X, size), Y: Mod(p.Y, size)}
}

// Direction is one of the four directions of travel.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every valid direction in declaration order.
var Directions = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// Vector returns the unit step for the direction.
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in exactly reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && other.Valid() && d.Opposite() == other
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "up" or "LEFT" into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "UP", "Up":
		return DirUp, true
	case "down", "DOWN", "Down":
		return DirDown, true
	case "left", "LEFT", "Left":
		return DirLeft, true
	case "right", "RIGHT", "Right":
		return DirRight, true
	}
	return DirRight, false
}

// Mod returns the non-negative remainder of a divided by n.
func Mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
