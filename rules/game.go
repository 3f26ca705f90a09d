package rules

import (
	"github.com/davecgh/go-spew/spew"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Game is a single session: one snake, one apple and the score so far.
type Game struct {
	ID     string
	Config Config
	Snake  *Snake
	Apple  Apple
	Score  int
	Frame  int
	Inputs *InputQueue

	rng Rand
}

// NewGame starts a session with a snake in the middle of the board and an
// apple somewhere else.
func NewGame(cfg Config, rng Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		ID:     uuid.NewV4().String(),
		Config: cfg,
		Snake:  NewSnake(cfg),
		Inputs: NewInputQueue(cfg.MaxQueuedInputs),
		rng:    rng,
	}
	if err := g.Apple.Place(rng, cfg.Width, cfg.Height, g.Snake); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Width":  cfg.Width,
		"Height": cfg.Height,
		"Apple":  g.Apple.Pos,
	}).Info("game started")
	return g, nil
}

// Steer queues a direction for the snake's next move tick. It reports false
// when the direction was dropped.
func (g *Game) Steer(d Direction) bool {
	if g.Snake.Dead() {
		return false
	}
	return g.Inputs.Push(d)
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.Snake.Dead()
}

// Tick runs one frame: the snake updates, eats the apple if its head landed
// on it, and may die. Tick reports true only on the frame the snake died.
func (g *Game) Tick() bool {
	if g.Snake.Dead() {
		return false
	}
	g.Frame++

	g.Snake.Update(g.Inputs)
	if !g.Snake.Dead() && g.Snake.Head() == g.Apple.Pos {
		g.eat()
	}

	if !g.Snake.JustDied() {
		return false
	}
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Frame":  g.Frame,
		"Score":  g.Score,
		"Cause":  g.Snake.Cause(),
	}).Info("snake died")
	log.Debugf("final snake: %s", spew.Sdump(g.Snake.Body()))
	return true
}

func (g *Game) eat() {
	g.Snake.Grow()
	g.Score++
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Frame":  g.Frame,
		"Score":  g.Score,
		"Food":   g.Apple.Pos,
	}).Info("snake ate")

	if err := g.Apple.Place(g.rng, g.Config.Width, g.Config.Height, g.Snake); err != nil {
		log.WithError(err).WithField("GameID", g.ID).Info("board is full")
		g.Snake.Kill(DeathCauseBoardFull)
	}
}

// Draw paints the snake and then the apple onto c.
func (g *Game) Draw(c Canvas) {
	g.Snake.Draw(c)
	if g.Snake.Cause() != DeathCauseBoardFull {
		g.Apple.Draw(c)
	}
}
