package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
)

// Snapshot captures the game state for determinism testing and headless runs.
type Snapshot struct {
	Tick     uint64
	Frames   uint64
	Length   int
	Eaten    int
	Head     core.Cell
	Dir      Direction
	Food     core.Cell
	HasFood  bool
	Alive    bool
	Cause    DeathCause
	Interval time.Duration
}

// Snapshot returns the current game snapshot. Positions the registry no
// longer knows are left zero.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Frames:   g.frames,
		Length:   g.snake.Len(),
		Eaten:    g.eaten,
		Dir:      g.snake.Direction(),
		Alive:    g.snake.Alive(),
		Cause:    g.snake.Cause(),
		Interval: g.ticker.Interval(),
	}

	if pos, err := g.reg.Position(g.snake.Head()); err == nil {
		snap.Head = g.grid.ToCell(pos)
	}
	if g.food != entity.None {
		if pos, err := g.reg.Position(g.food); err == nil {
			snap.Food = g.grid.ToCell(pos)
			snap.HasFood = true
		}
	}
	return snap
}
