package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These are the defaults for the command line flags
// and can be tuned from the environment.
var (
	Width           = getEnvInt("SNAKE_WIDTH", 15)
	Height          = getEnvInt("SNAKE_HEIGHT", 10)
	MoveDelay       = getEnvInt("SNAKE_MOVE_DELAY", 10)
	MaxQueuedInputs = getEnvInt("SNAKE_MAX_INPUTS", 4)
	FrameRate       = rate.Limit(getEnvInt("SNAKE_FPS", 60))
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
