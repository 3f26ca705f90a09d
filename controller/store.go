// Package controller keeps the record of finished games. Scores only live as
// long as the process.
package controller

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when no score has been recorded yet.
var ErrNotFound = errors.New("controller: no scores recorded")

// Score is the result of one finished game.
type Score struct {
	GameID  string
	Value   int
	Length  int
	Cause   string
	EndedAt time.Time
}

// Store is the interface to the score history.
type Store interface {
	PutScore(context.Context, Score) error
	ListScores(context.Context) ([]Score, error)
	HighScore(context.Context) (Score, error)
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{}
}

type inmem struct {
	scores []Score
	lock   sync.Mutex
}

func (in *inmem) PutScore(ctx context.Context, s Score) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.scores = append(in.scores, s)
	return nil
}

// ListScores returns the scores in the order the games ended.
func (in *inmem) ListScores(ctx context.Context) ([]Score, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	scores := make([]Score, len(in.scores))
	copy(scores, in.scores)
	return scores, nil
}

// HighScore returns the best score, the earliest one wins ties.
func (in *inmem) HighScore(ctx context.Context) (Score, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if len(in.scores) == 0 {
		return Score{}, ErrNotFound
	}
	best := in.scores[0]
	for _, s := range in.scores[1:] {
		if s.Value > best.Value {
			best = s
		}
	}
	return best, nil
}
