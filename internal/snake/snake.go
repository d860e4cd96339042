package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
)

// DeathCause names why a snake stopped.
type DeathCause string

const (
	CauseNone  DeathCause = ""
	CauseWall  DeathCause = "wall"
	CauseSelf  DeathCause = "self"
	CauseFault DeathCause = "fault"
)

// Colors the resolver paints the snake with when it dies.
const (
	DeadHeadColor = core.ColorBrightRed
	DeadBodyColor = core.ColorGray
)

// Snake is the life-cycle state machine: the ordered body, the direction it
// travels in, the direction it will turn to next, and whether it is alive.
// Only the movement step and the collision resolver change the body.
type Snake struct {
	body    []entity.Handle // Head at index 0
	current Direction
	pending Direction // Applied when the head next moves
	alive   bool
	cause   DeathCause
}

// spawnSnake creates a snake of length segments with its head at head and the
// body trailing to the left, heading right.
func spawnSnake(reg entity.Registry, grid core.Grid, head core.Cell, length int) *Snake {
	s := &Snake{
		body:    make([]entity.Handle, 0, length),
		current: DirRight,
		pending: DirRight,
		alive:   true,
	}
	for i := 0; i < length; i++ {
		tag := core.TagBody
		if i == 0 {
			tag = core.TagHead
		}
		cell := core.Cell{X: head.X - i, Y: head.Y}
		s.body = append(s.body, reg.Create(grid.ToWorld(cell), tag))
	}
	return s
}

// Request asks the snake to turn. A request for the exact opposite of the
// current direction is ignored; anything else replaces the pending direction.
// Reports whether the request was accepted.
func (s *Snake) Request(d Direction) bool {
	if !s.alive || d == s.current.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Alive reports whether the snake still moves.
func (s *Snake) Alive() bool {
	return s.alive
}

// Cause returns why the snake died, or CauseNone.
func (s *Snake) Cause() DeathCause {
	return s.cause
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction {
	return s.current
}

// Pending returns the direction the next move will take.
func (s *Snake) Pending() Direction {
	return s.pending
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the head handle.
func (s *Snake) Head() entity.Handle {
	s.mustHaveBody()
	return s.body[0]
}

// Body returns a copy of the segment handles, head first.
func (s *Snake) Body() []entity.Handle {
	out := make([]entity.Handle, len(s.body))
	copy(out, s.body)
	return out
}

// kill moves the snake to its terminal state. Later calls keep the first cause.
func (s *Snake) kill(cause DeathCause) {
	if !s.alive {
		return
	}
	s.alive = false
	s.cause = cause
}

// grow appends a segment at the tail end.
func (s *Snake) grow(h entity.Handle) {
	for _, b := range s.body {
		if b == h {
			panic(fmt.Sprintf("snake: handle %d already in body", h))
		}
	}
	s.body = append(s.body, h)
}

func (s *Snake) mustHaveBody() {
	if len(s.body) == 0 {
		panic("snake: empty body")
	}
}
