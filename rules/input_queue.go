package rules

// InputQueue buffers player directions until the snake's next move tick.
type InputQueue struct {
	dirs []Direction
	max  int
}

// NewInputQueue creates a queue holding at most max directions. A max of zero
// leaves the queue unbounded.
func NewInputQueue(max int) *InputQueue {
	return &InputQueue{max: max}
}

// Push appends d to the queue. It reports false when d is dropped, either
// because it is DirectionNone or the queue is full.
func (q *InputQueue) Push(d Direction) bool {
	if d == DirectionNone {
		return false
	}
	if q.max > 0 && len(q.dirs) >= q.max {
		return false
	}
	q.dirs = append(q.dirs, d)
	return true
}

// Pop removes the oldest direction.
func (q *InputQueue) Pop() (Direction, bool) {
	if q == nil || len(q.dirs) == 0 {
		return DirectionNone, false
	}
	d := q.dirs[0]
	q.dirs = q.dirs[1:]
	return d, true
}

// Len is the number of directions waiting.
func (q *InputQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.dirs)
}
