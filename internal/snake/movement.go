package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
)

// cells reads the grid cell of every segment, head first.
func (s *Snake) cells(reg entity.Registry, grid core.Grid) ([]core.Cell, error) {
	out := make([]core.Cell, len(s.body))
	for i, h := range s.body {
		pos, err := reg.Position(h)
		if err != nil {
			return nil, err
		}
		out[i] = grid.ToCell(pos)
	}
	return out, nil
}

// step moves the snake one cell. The pending direction becomes current, every
// segment takes the pre-move cell of the one ahead of it and the head moves by
// the direction's delta. All positions are read before any is written, so
// the registry is untouched when a handle is missing.
//
// Returns the cells after the move and the tail cell from before it.
func (s *Snake) step(reg entity.Registry, grid core.Grid) ([]core.Cell, core.Cell, error) {
	s.mustHaveBody()

	before, err := s.cells(reg, grid)
	if err != nil {
		return nil, core.Cell{}, err
	}
	prevTail := before[len(before)-1]

	s.current = s.pending

	after := make([]core.Cell, len(before))
	after[0] = before[0].Add(s.current.Delta())
	copy(after[1:], before[:len(before)-1])

	// Tail first, mirroring the shift
	for i := len(s.body) - 1; i >= 0; i-- {
		if err := reg.SetPosition(s.body[i], grid.ToWorld(after[i])); err != nil {
			return nil, core.Cell{}, err
		}
	}
	return after, prevTail, nil
}
