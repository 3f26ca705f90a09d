package commands

import (
	"errors"
	"testing"

	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := map[string]struct {
		Event    termbox.Event
		Expected worker.Event
	}{
		"Up":      {Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, Expected: worker.Event{Action: worker.ActionSteer, Direction: rules.DirectionUp}},
		"Down":    {Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, Expected: worker.Event{Action: worker.ActionSteer, Direction: rules.DirectionDown}},
		"Left":    {Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, Expected: worker.Event{Action: worker.ActionSteer, Direction: rules.DirectionLeft}},
		"Right":   {Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, Expected: worker.Event{Action: worker.ActionSteer, Direction: rules.DirectionRight}},
		"q":       {Event: termbox.Event{Type: termbox.EventKey, Ch: 'q'}, Expected: worker.Event{Action: worker.ActionQuit}},
		"Esc":     {Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, Expected: worker.Event{Action: worker.ActionQuit}},
		"CtrlC":   {Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, Expected: worker.Event{Action: worker.ActionQuit}},
		"Space":   {Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, Expected: worker.Event{Action: worker.ActionPause}},
		"r":       {Event: termbox.Event{Type: termbox.EventKey, Ch: 'r'}, Expected: worker.Event{Action: worker.ActionRestart}},
		"Enter":   {Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, Expected: worker.Event{Action: worker.ActionRestart}},
		"Other":   {Event: termbox.Event{Type: termbox.EventKey, Ch: 'x'}, Expected: worker.Event{}},
		"Resize":  {Event: termbox.Event{Type: termbox.EventResize, Width: 80, Height: 24}, Expected: worker.Event{}},
		"Failure": {Event: termbox.Event{Type: termbox.EventError, Err: errors.New("tty gone")}, Expected: worker.Event{Action: worker.ActionQuit}},
	}

	for name, test := range tests {
		require.Equal(t, test.Expected, translate(test.Event), name)
	}
}

func TestKeyboard_PollNeverBlocks(t *testing.T) {
	events := make(chan termbox.Event, 1)
	k := &keyboard{events: events}

	require.Equal(t, worker.Event{}, k.Poll())

	events <- termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}
	require.Equal(t, worker.Event{Action: worker.ActionSteer, Direction: rules.DirectionLeft}, k.Poll())
	require.Equal(t, worker.Event{}, k.Poll())
}
