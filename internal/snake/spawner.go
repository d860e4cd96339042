package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rand is the random source the spawner draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawner picks food cells uniformly from the grid interior.
type Spawner struct {
	area   core.Rect
	policy config.FoodPolicy
	rng    Rand
}

// NewSpawner creates a spawner over grid's interior shrunk by margin.
func NewSpawner(grid core.Grid, policy config.FoodPolicy, margin int, rng Rand) *Spawner {
	return &Spawner{
		area:   grid.Interior(margin),
		policy: policy,
		rng:    rng,
	}
}

// Area returns the rectangle food may appear in.
func (sp *Spawner) Area() core.Rect {
	return sp.area
}

// Candidates lists the cells food may take. Under the strict policy cells in
// occupied are skipped.
func (sp *Spawner) Candidates(occupied []core.Cell) []core.Cell {
	var taken map[core.Cell]bool
	if sp.policy == config.FoodPolicyStrict && len(occupied) > 0 {
		taken = make(map[core.Cell]bool, len(occupied))
		for _, c := range occupied {
			taken[c] = true
		}
	}

	out := make([]core.Cell, 0, sp.area.Area())
	for y := sp.area.Y; y < sp.area.Bottom(); y++ {
		for x := sp.area.X; x < sp.area.Right(); x++ {
			c := core.Cell{X: x, Y: y}
			if taken[c] {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

// Pick chooses a food cell. Reports false when no cell is free.
func (sp *Spawner) Pick(occupied []core.Cell) (core.Cell, bool) {
	cands := sp.Candidates(occupied)
	if len(cands) == 0 {
		return core.Cell{}, false
	}
	return cands[sp.rng.Intn(len(cands))], true
}
