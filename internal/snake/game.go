// Package snake is the simulation core: the snake's life cycle, the movement
// cadence, collisions and food placement. It draws nothing; positions and
// colors live in an entity.Registry owned by the host.
package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
)

// Host is what a frame driver polls once per frame.
type Host interface {
	ReadInput() core.Input
	Elapsed() time.Duration
}

// FrameResult reports what happened during one frame.
type FrameResult struct {
	Ticked  bool       // The movement step ran
	Ate     bool       // Food was eaten this tick
	Died    bool       // The snake died this frame
	Cause   DeathCause // Set when Died
	Spawned bool       // Food was placed this frame
	Alive   bool
	Length  int
}

// Game runs one snake simulation against a registry.
type Game struct {
	cfg     config.SnakeConfig
	grid    core.Grid
	reg     entity.Registry
	logger  *log.Logger
	spawner *Spawner
	ticker  *Ticker
	pace    *config.DifficultyManager

	snake  *Snake
	food   entity.Handle // entity.None when absent
	tick   uint64
	frames uint64
	eaten  int
}

// New validates cfg and creates a game with a fresh snake in reg.
// rng drives food placement; a nil logger falls back to log.Default().
func New(cfg config.SnakeConfig, reg entity.Registry, rng Rand, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, errors.New("snake: nil registry")
	}
	if rng == nil {
		return nil, errors.New("snake: nil random source")
	}
	if logger == nil {
		logger = log.Default()
	}

	grid := cfg.GridModel()
	g := &Game{
		cfg:     cfg,
		grid:    grid,
		reg:     reg,
		logger:  logger,
		spawner: NewSpawner(grid, cfg.Food.Policy, cfg.Food.Margin, rng),
		ticker:  NewTicker(cfg.Tick.Interval),
		pace:    config.NewDifficultyManager(cfg.Difficulty),
	}
	g.Reset()
	return g, nil
}

// Reset destroys the current run's entities and starts a new run.
func (g *Game) Reset() {
	if g.snake != nil {
		for _, h := range g.snake.body {
			g.release(h)
		}
	}
	if g.food != entity.None {
		g.release(g.food)
		g.food = entity.None
	}

	g.snake = spawnSnake(g.reg, g.grid, g.cfg.Start(), g.cfg.Snake.Length)
	g.tick = 0
	g.frames = 0
	g.eaten = 0
	g.ticker.Reset()
	g.retime()

	g.logger.Debug("run started", "head", g.cfg.Start(), "length", g.snake.Len(), "interval", g.ticker.Interval())
}

// release destroys h, tolerating handles the host already dropped.
func (g *Game) release(h entity.Handle) {
	if err := g.reg.Destroy(h); err != nil && !errors.Is(err, entity.ErrMissingEntity) {
		g.logger.Warn("destroy failed", "handle", h, "err", err)
	}
}

// Frame runs one frame: input, the tick gate, the movement step with its
// collision checks, then the food spawner. A MissingEntity from the registry
// kills the snake with CauseFault and is returned.
func (g *Game) Frame(in core.Input, elapsed time.Duration) (FrameResult, error) {
	g.frames++
	var res FrameResult

	if g.snake.Alive() {
		if d, ok := DirectionFromInput(in); ok {
			g.snake.Request(d)
		}

		if g.ticker.Advance(elapsed) {
			res.Ticked = true
			if err := g.step(&res); err != nil {
				return g.fault(res, err)
			}
		}
	}

	if g.snake.Alive() {
		spawned, err := g.ensureFood()
		if err != nil {
			return g.fault(res, err)
		}
		res.Spawned = spawned
	}

	return g.finish(res), nil
}

// Pump runs one frame with input and elapsed time polled from h.
func (g *Game) Pump(h Host) (FrameResult, error) {
	return g.Frame(h.ReadInput(), h.Elapsed())
}

func (g *Game) step(res *FrameResult) error {
	g.tick++

	cells, prevTail, err := g.snake.step(g.reg, g.grid)
	if err != nil {
		return err
	}
	g.logger.Debug("tick", "tick", g.tick, "head", cells[0], "dir", g.snake.Direction())

	out, err := g.resolve(cells, prevTail)
	if err != nil {
		return err
	}
	if out.died {
		res.Died = true
		res.Cause = out.cause
		return nil
	}
	if out.ate {
		res.Ate = true
		g.eaten++
		g.logger.Info("snake grew", "length", g.snake.Len(), "tick", g.tick)
	}
	g.retime()
	return nil
}

// retime applies the pace for the current progress to the ticker.
func (g *Game) retime() {
	interval := g.pace.Interval(g.cfg.Tick.Interval, g.cfg.Tick.MinInterval, g.eaten, int(g.tick))
	if interval != g.ticker.Interval() {
		g.ticker.SetInterval(interval)
		g.logger.Debug("pace changed", "interval", interval)
	}
}

// ensureFood places food when none exists. Reports whether it placed one.
func (g *Game) ensureFood() (bool, error) {
	if g.food != entity.None {
		return false, nil
	}

	var occupied []core.Cell
	if g.cfg.Food.Policy == config.FoodPolicyStrict {
		cells, err := g.snake.cells(g.reg, g.grid)
		if err != nil {
			return false, err
		}
		occupied = cells
	}

	cell, ok := g.spawner.Pick(occupied)
	if !ok {
		g.logger.Debug("no free cell for food")
		return false, nil
	}
	g.food = g.reg.Create(g.grid.ToWorld(cell), core.TagFood)
	g.logger.Debug("food spawned", "cell", cell)
	return true, nil
}

func (g *Game) fault(res FrameResult, err error) (FrameResult, error) {
	g.snake.kill(CauseFault)
	g.logger.Error("simulation fault", "tick", g.tick, "err", err)
	res.Died = true
	res.Cause = CauseFault
	return g.finish(res), fmt.Errorf("snake: tick %d: %w", g.tick, err)
}

func (g *Game) finish(res FrameResult) FrameResult {
	res.Alive = g.snake.Alive()
	res.Length = g.snake.Len()
	return res
}

// Snake returns the running snake. Callers may read it; only the game moves it.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food handle, or entity.None.
func (g *Game) Food() entity.Handle {
	return g.food
}

// Grid returns the playing field.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.ticker.Interval()
}

// Tick returns the number of movement steps taken this run.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Eaten returns the number of food items eaten this run.
func (g *Game) Eaten() int {
	return g.eaten
}
