package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
)

// outcome is what the resolver decided for one tick.
type outcome struct {
	died  bool
	cause DeathCause
	ate   bool
}

// resolve checks the moved snake against walls, its own body and the food, in
// that order. Death stops the checks; eating destroys the food and appends a
// body segment at prevTail.
func (g *Game) resolve(cells []core.Cell, prevTail core.Cell) (outcome, error) {
	head := cells[0]

	if g.grid.OnWall(head) {
		g.die(CauseWall)
		return outcome{died: true, cause: CauseWall}, nil
	}

	for _, c := range cells[1:] {
		if c == head {
			g.die(CauseSelf)
			return outcome{died: true, cause: CauseSelf}, nil
		}
	}

	if g.food == entity.None {
		return outcome{}, nil
	}
	pos, err := g.reg.Position(g.food)
	if err != nil {
		return outcome{}, err
	}
	if g.grid.ToCell(pos) != head {
		return outcome{}, nil
	}

	if err := g.reg.Destroy(g.food); err != nil {
		return outcome{}, err
	}
	g.food = entity.None
	g.snake.grow(g.reg.Create(g.grid.ToWorld(prevTail), core.TagBody))
	return outcome{ate: true}, nil
}

// die kills the snake and paints it in the dead colors. Recoloring is
// cosmetic; a failure there is logged and otherwise ignored.
func (g *Game) die(cause DeathCause) {
	g.snake.kill(cause)
	for i, h := range g.snake.body {
		c := DeadBodyColor
		if i == 0 {
			c = DeadHeadColor
		}
		if err := g.reg.SetColor(h, c); err != nil {
			g.logger.Warn("recolor failed", "handle", h, "err", err)
		}
	}
	g.logger.Info("snake died", "cause", cause, "length", g.snake.Len(), "tick", g.tick)
}
