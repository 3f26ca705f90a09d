package rules

const (
	// DeathCauseWallCollision is when the snake tries to leave the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseBoardFull is when there is no free cell left for a new apple
	DeathCauseBoardFull = "board-full"
)
