package commands

import (
	"context"
	"math/rand"
	"time"

	"github.com/battlesnakeio/termsnake/controller"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play a game of snake, arrows steer, space pauses, r restarts and q quits",
	RunE: func(*cobra.Command, []string) error {
		return play()
	},
}

func play() error {
	cfg := rules.Config{
		Width:           width,
		Height:          height,
		MoveDelay:       moveDelay,
		MaxQueuedInputs: maxInputs,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if fps <= 0 {
		return errors.Errorf("fps must be positive, got %d", fps)
	}

	closeLog, err := setupLogging(logLevel, logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithFields(log.Fields{
		"Width":     cfg.Width,
		"Height":    cfg.Height,
		"MoveDelay": cfg.MoveDelay,
		"FPS":       fps,
		"Seed":      seed,
	}).Info("starting snake")

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)
	// not every terminal can hide the cursor, the game works either way
	termbox.HideCursor()

	w := &worker.Worker{
		Config:    cfg,
		Store:     controller.InMemStore(),
		Input:     newKeyboard(),
		Screen:    &screen{cfg: cfg},
		FrameRate: rate.Limit(fps),
		Rand:      rand.New(rand.NewSource(seed)),
	}
	return errors.Wrap(w.Run(context.Background()), "game stopped")
}
