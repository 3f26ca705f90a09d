package rules

// Direction is a heading the snake can travel in.
type Direction int8

// Opposite directions add up to opposedSum.
const (
	DirectionNone  Direction = -1
	DirectionUp    Direction = 0
	DirectionRight Direction = 1
	DirectionLeft  Direction = 2
	DirectionDown  Direction = 3

	opposedSum = 3
)

// Offset is the one cell step taken when moving in d.
func (d Direction) Offset() Point {
	switch d {
	case DirectionUp:
		return Point{X: 0, Y: -1}
	case DirectionDown:
		return Point{X: 0, Y: 1}
	case DirectionLeft:
		return Point{X: -1, Y: 0}
	case DirectionRight:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposes reports whether d would turn the snake back onto other.
func (d Direction) Opposes(other Direction) bool {
	if d == DirectionNone || other == DirectionNone {
		return false
	}
	return d+other == opposedSum
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	case DirectionDown:
		return "down"
	}
	return "none"
}
