package commands

import (
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/worker"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
)

var keyMap = map[termbox.Key]rules.Direction{
	termbox.KeyArrowUp:    rules.DirectionUp,
	termbox.KeyArrowDown:  rules.DirectionDown,
	termbox.KeyArrowLeft:  rules.DirectionLeft,
	termbox.KeyArrowRight: rules.DirectionRight,
}

// keyboard is a worker.Input fed by termbox events.
type keyboard struct {
	events <-chan termbox.Event
}

func newKeyboard() *keyboard {
	return &keyboard{events: setupEventQueue()}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event, 16)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

// Poll returns the next key press, or an empty event when none is waiting.
func (k *keyboard) Poll() worker.Event {
	select {
	case ev := <-k.events:
		return translate(ev)
	default:
		return worker.Event{}
	}
}

func translate(ev termbox.Event) worker.Event {
	switch ev.Type {
	case termbox.EventKey:
		return translateKey(ev)
	case termbox.EventError:
		log.WithError(ev.Err).Error("terminal input failed")
		return worker.Event{Action: worker.ActionQuit}
	}
	return worker.Event{}
}

func translateKey(ev termbox.Event) worker.Event {
	if d, ok := keyMap[ev.Key]; ok {
		return worker.Event{Action: worker.ActionSteer, Direction: d}
	}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return worker.Event{Action: worker.ActionQuit}
	case termbox.KeySpace:
		return worker.Event{Action: worker.ActionPause}
	case termbox.KeyEnter:
		return worker.Event{Action: worker.ActionRestart}
	}

	switch ev.Ch {
	case 'q', 'Q':
		return worker.Event{Action: worker.ActionQuit}
	case 'p', 'P':
		return worker.Event{Action: worker.ActionPause}
	case 'r', 'R':
		return worker.Event{Action: worker.ActionRestart}
	}
	return worker.Event{}
}
