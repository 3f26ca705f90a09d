// Package worker runs the game loop. It reads input, advances the game one
// frame at a time, records finished games and renders, capped at a fixed frame
// rate.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/battlesnakeio/termsnake/controller"
	"github.com/battlesnakeio/termsnake/rules"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrInvalidFrameRate is returned by Run when FrameRate is not positive.
var ErrInvalidFrameRate = errors.New("worker: frame rate must be positive")

// Worker drives a game session from an Input to a Screen.
type Worker struct {
	Config    rules.Config
	Store     controller.Store
	Input     Input
	Screen    Screen
	FrameRate rate.Limit
	Rand      rules.Rand

	game   *rules.Game
	paused bool
}

// Run plays games until the player quits or ctx is done. Quitting returns nil.
func (w *Worker) Run(ctx context.Context) error {
	if w.FrameRate <= 0 {
		return ErrInvalidFrameRate
	}
	if err := w.newGame(); err != nil {
		return err
	}

	limiter := rate.NewLimiter(w.FrameRate, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		quit, err := w.frame(ctx)
		if err != nil {
			return err
		}
		if quit {
			log.WithField("GameID", w.game.ID).Info("player quit")
			return nil
		}

		if err := limiter.Wait(ctx); err != nil {
			return err
		}
	}
}

// frame performs one loop iteration and reports whether the player quit.
func (w *Worker) frame(ctx context.Context) (bool, error) {
	ev := w.Input.Poll()
	switch ev.Action {
	case ActionQuit:
		return true, nil
	case ActionSteer:
		if !w.paused {
			w.game.Steer(ev.Direction)
		}
	case ActionPause:
		if !w.game.Over() {
			w.paused = !w.paused
		}
	case ActionRestart:
		if w.game.Over() {
			if err := w.newGame(); err != nil {
				return false, err
			}
		}
	}

	if !w.paused && w.game.Tick() {
		w.recordScore(ctx)
	}

	return false, w.Screen.Render(w.view(ctx))
}

func (w *Worker) newGame() error {
	game, err := rules.NewGame(w.Config, w.Rand)
	if err != nil {
		return err
	}
	w.game = game
	w.paused = false
	return nil
}

func (w *Worker) recordScore(ctx context.Context) {
	score := controller.Score{
		GameID:  w.game.ID,
		Value:   w.game.Score,
		Length:  w.game.Snake.Len(),
		Cause:   w.game.Snake.Cause(),
		EndedAt: time.Now(),
	}
	if err := w.Store.PutScore(ctx, score); err != nil {
		log.WithError(err).WithField("GameID", w.game.ID).Error("unable to record score")
	}
}

func (w *Worker) view(ctx context.Context) View {
	v := View{
		Game:   w.game,
		Paused: w.paused,
	}

	scores, err := w.Store.ListScores(ctx)
	if err != nil {
		log.WithError(err).Warn("unable to list scores")
	}
	v.Games = len(scores)

	high, err := w.Store.HighScore(ctx)
	if err != nil && err != controller.ErrNotFound {
		log.WithError(err).Warn("unable to get high score")
	}
	v.HighScore = high.Value
	if w.game.Score > v.HighScore {
		v.HighScore = w.game.Score
	}
	return v
}
