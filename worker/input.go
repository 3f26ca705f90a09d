package worker

import "github.com/battlesnakeio/termsnake/rules"

// Action is what the player asked for on a frame.
type Action int

const (
	// ActionNone means no key was waiting.
	ActionNone Action = iota
	// ActionSteer queues Event.Direction for the snake.
	ActionSteer
	// ActionPause toggles the pause.
	ActionPause
	// ActionRestart starts a new game once the snake is dead.
	ActionRestart
	// ActionQuit ends the loop.
	ActionQuit
)

// Event is a single player input.
type Event struct {
	Action    Action
	Direction rules.Direction
}

// Input hands out at most one pending event per call and never blocks.
type Input interface {
	Poll() Event
}

// View is everything a Screen needs to draw a frame.
type View struct {
	Game      *rules.Game
	HighScore int
	Games     int
	Paused    bool
}

// Screen draws frames.
type Screen interface {
	Render(View) error
}
