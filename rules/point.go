package rules

import "fmt"

// Point is a cell on the board. Points are compared by value.
type Point struct {
	X int
	Y int
}

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Clamp limits p to a board of the given size.
func (p Point) Clamp(width, height int) Point {
	return Point{
		X: clamp(p.X, 0, width-1),
		Y: clamp(p.Y, 0, height-1),
	}
}

// In reports whether p lies on a board of the given size.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func clamp(n, lower, upper int) int {
	if n > upper {
		return upper
	}
	if n < lower {
		return lower
	}
	return n
}
