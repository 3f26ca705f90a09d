package rules

import "errors"

// ErrBoardFull is returned when the snake covers every cell, leaving nowhere
// to put an apple.
var ErrBoardFull = errors.New("rules: no free cell for an apple")

// Rand is the source used to pick apple cells. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Apple is the food the snake eats to grow.
type Apple struct {
	Pos Point
}

// Place moves the apple to a random cell not covered by snake.
func (a *Apple) Place(rng Rand, width, height int, snake *Snake) error {
	p, err := getUnoccupiedPoint(rng, width, height, snake)
	if err != nil {
		return err
	}
	a.Pos = p
	return nil
}

// Draw paints the apple onto c.
func (a *Apple) Draw(c Canvas) {
	c.DrawCell(a.Pos, ColorApple)
}

// getUnoccupiedPoint draws random cells until one misses the snake. The
// snake is sparse on any board it can be played on, so retries are not capped.
// A freshly grown snake stacks its new segment on the head's cell, so the
// board counts as full once the snake is as long as the board is big.
func getUnoccupiedPoint(rng Rand, width, height int, snake *Snake) (Point, error) {
	if snake.Len() >= width*height {
		return Point{}, ErrBoardFull
	}
	for {
		p := Point{X: rng.Intn(width), Y: rng.Intn(height)}
		if !snake.Occupies(p) {
			return p, nil
		}
	}
}
