package rules

// State is where the snake is in its move cycle.
type State int

const (
	// StateWaiting counts frames until the next move tick.
	StateWaiting State = iota
	// StateMoving consumes a queued direction and moves one cell.
	StateMoving
	// StateDead is terminal for the session.
	StateDead
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateMoving:
		return "moving"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Snake is the player controlled snake. Segments live in a ring so that a move
// reuses the tail slot as the new head instead of shifting the whole body.
type Snake struct {
	ring []Point
	head int

	width     int
	height    int
	moveDelay int

	state   State
	counter int
	cur     Direction
	prev    Direction

	cause    string
	justDied bool
}

// NewSnake creates a snake on the board described by cfg. body lists the
// segments from head to tail; with no body the snake is a single segment in
// the middle of the board. A new snake stays still until it gets a direction.
func NewSnake(cfg Config, body ...Point) *Snake {
	if len(body) == 0 {
		body = []Point{cfg.Center()}
	}
	ring := make([]Point, len(body))
	copy(ring, body)
	return &Snake{
		ring:      ring,
		width:     cfg.Width,
		height:    cfg.Height,
		moveDelay: cfg.MoveDelay,
		state:     StateWaiting,
		cur:       DirectionNone,
		prev:      DirectionNone,
	}
}

// Head returns the first segment.
func (s *Snake) Head() Point {
	return s.ring[s.head]
}

// Tail returns the last segment.
func (s *Snake) Tail() Point {
	return s.Segment(len(s.ring) - 1)
}

// Segment returns the i-th segment counting from the head.
func (s *Snake) Segment(i int) Point {
	return s.ring[(s.head+i)%len(s.ring)]
}

// Len is the number of segments, head included.
func (s *Snake) Len() int {
	return len(s.ring)
}

// Body returns a copy of the segments ordered from head to tail.
func (s *Snake) Body() []Point {
	body := make([]Point, len(s.ring))
	for i := range body {
		body[i] = s.Segment(i)
	}
	return body
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.ring {
		if b == p {
			return true
		}
	}
	return false
}

// State returns the current state.
func (s *Snake) State() State { return s.state }

// Dead reports whether the snake has died.
func (s *Snake) Dead() bool { return s.state == StateDead }

// Cause is the death cause, empty while alive.
func (s *Snake) Cause() string { return s.cause }

// Direction is the direction applied on the last move tick.
func (s *Snake) Direction() Direction { return s.prev }

// JustDied reports whether the snake died since the last call. It is true at
// most once per snake.
func (s *Snake) JustDied() bool {
	died := s.justDied
	s.justDied = false
	return died
}

// Update advances the snake one frame. Every moveDelay frames it takes the
// next direction from inputs, or keeps going the way it was heading when
// inputs is empty, and moves.
func (s *Snake) Update(inputs *InputQueue) {
	switch s.state {
	case StateDead:
		return
	case StateWaiting:
		s.counter++
		if s.counter < s.moveDelay {
			return
		}
		s.counter = 0
		s.state = StateMoving
	}

	s.cur = s.prev
	if d, ok := inputs.Pop(); ok {
		s.cur = d
	}
	// the snake can't turn back on itself
	if s.cur.Opposes(s.prev) {
		s.cur = s.prev
	}

	if !s.Move(s.cur) {
		return
	}
	s.prev = s.cur
	s.state = StateWaiting
}

// Move moves the head one cell in direction d and has the body follow it. It
// reports false when the move killed the snake.
func (s *Snake) Move(d Direction) bool {
	if s.state == StateDead {
		return false
	}

	prev := s.Head()
	next := prev.Add(d.Offset()).Clamp(s.width, s.height)

	// the clamp held the head in place, so the move ran into a wall
	if next == prev && d != DirectionNone {
		s.Kill(DeathCauseWallCollision)
		return false
	}
	if d == DirectionNone {
		return true
	}

	// the tail leaves its cell on this move, so it is not checked
	n := len(s.ring)
	for i := 1; i < n-1; i++ {
		if s.Segment(i) == next {
			s.Kill(DeathCauseSnakeSelfCollision)
			return false
		}
	}

	s.head = (s.head - 1 + n) % n
	s.ring[s.head] = next
	return true
}

// Grow adds a segment to the end of the body. The new segment starts on the
// head's cell and falls into place on the next move.
func (s *Snake) Grow() {
	body := s.Body()
	s.ring = append(body, s.Head())
	s.head = 0
}

// Kill moves the snake to StateDead with the given cause.
func (s *Snake) Kill(cause string) {
	if s.state == StateDead {
		return
	}
	s.state = StateDead
	s.cause = cause
	s.justDied = true
}

// Draw paints every segment onto c.
func (s *Snake) Draw(c Canvas) {
	for i := range s.ring {
		c.DrawCell(s.Segment(i), ColorSnake)
	}
}
