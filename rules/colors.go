package rules

// Color tags what a drawn cell represents. Screens decide how each tag looks.
type Color int

const (
	// ColorText is used for score and status text.
	ColorText Color = iota + 1
	// ColorSnake is used for every snake segment.
	ColorSnake
	// ColorApple is used for the apple.
	ColorApple
)

func (c Color) String() string {
	switch c {
	case ColorText:
		return "text"
	case ColorSnake:
		return "snake"
	case ColorApple:
		return "apple"
	}
	return "unknown"
}

// Canvas is anything that can paint a single board cell.
type Canvas interface {
	DrawCell(p Point, c Color)
}
