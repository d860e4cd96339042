package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
// Y grows downward, so Down moves toward larger y.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the one-cell offset for a move in d.
func (d Direction) Delta() core.Cell {
	switch d {
	case DirUp:
		return core.Cell{X: 0, Y: -1}
	case DirDown:
		return core.Cell{X: 0, Y: 1}
	case DirLeft:
		return core.Cell{X: -1, Y: 0}
	default:
		return core.Cell{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromInput maps a host input to a direction.
// InputNone reports false.
func DirectionFromInput(in core.Input) (Direction, bool) {
	switch in {
	case core.InputUp:
		return DirUp, true
	case core.InputDown:
		return DirDown, true
	case core.InputLeft:
		return DirLeft, true
	case core.InputRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}
