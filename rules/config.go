package rules

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config cannot describe a playable game.
var ErrInvalidConfig = errors.New("rules: invalid config")

// Config holds the tunables for a single game session.
type Config struct {
	Width     int
	Height    int
	MoveDelay int
	// MaxQueuedInputs caps the number of buffered directions, zero means no cap.
	MaxQueuedInputs int
}

// Validate checks that the board and timing values are usable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MoveDelay <= 0 {
		return fmt.Errorf("%w: move delay must be positive, got %d", ErrInvalidConfig, c.MoveDelay)
	}
	if c.MaxQueuedInputs < 0 {
		return fmt.Errorf("%w: max queued inputs must not be negative, got %d", ErrInvalidConfig, c.MaxQueuedInputs)
	}
	return nil
}

// Center is the starting cell for a new snake.
func (c Config) Center() Point {
	return Point{X: c.Width / 2, Y: c.Height / 2}
}
