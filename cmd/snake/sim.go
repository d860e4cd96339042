package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagFrames  int
	flagTurnPct int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal. Each frame advances the clock by
1/fps and, with --turn-pct probability, presses a random direction. The run
stops after --frames frames or when the snake dies, then prints the final state.

The same --seed always produces the same run.

Examples:
  snake sim --seed 42
  snake sim --seed 7 --frames 10000 --turn-pct 5 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}

		s := seed()
		snap, err := runSim(cfg, s, flagFrames, flagFPS, flagTurnPct, logger)
		if err != nil {
			return err
		}
		printSnapshot(cmd.OutOrStdout(), s, snap)
		return nil
	},
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to run")
	simCmd.Flags().IntVar(&flagTurnPct, "turn-pct", 10, "Chance in percent of a random turn each frame")
}

// scriptHost feeds the game random turns at a fixed frame time.
type scriptHost struct {
	rng     *rand.Rand
	turnPct int
	frame   time.Duration
}

var turns = []core.Input{core.InputUp, core.InputDown, core.InputLeft, core.InputRight}

func (h *scriptHost) ReadInput() core.Input {
	if h.rng.Intn(100) >= h.turnPct {
		return core.InputNone
	}
	return turns[h.rng.Intn(len(turns))]
}

func (h *scriptHost) Elapsed() time.Duration {
	return h.frame
}

// runSim plays up to frames frames and returns the final snapshot.
// Food placement and input use separate streams derived from seed.
func runSim(cfg config.SnakeConfig, seed int64, frames, fps, turnPct int, logger *log.Logger) (snake.Snapshot, error) {
	if fps <= 0 {
		return snake.Snapshot{}, fmt.Errorf("fps must be positive, got %d", fps)
	}

	game, err := snake.New(cfg, entity.NewWorld(), rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return snake.Snapshot{}, err
	}
	host := &scriptHost{
		rng:     rand.New(rand.NewSource(seed + 1)),
		turnPct: core.Clamp(turnPct, 0, 100),
		frame:   time.Second / time.Duration(fps),
	}

	for iter := 0; iter < frames; iter++ {
		res, err := game.Pump(host)
		if err != nil {
			return game.Snapshot(), err
		}
		if !res.Alive {
			break
		}
	}
	return game.Snapshot(), nil
}

func printSnapshot(w io.Writer, seed int64, s snake.Snapshot) {
	state := "alive"
	if !s.Alive {
		state = "dead (" + string(s.Cause) + ")"
	}
	food := "none"
	if s.HasFood {
		food = s.Food.String()
	}

	fmt.Fprintf(w, "seed      %d\n", seed)
	fmt.Fprintf(w, "frames    %d\n", s.Frames)
	fmt.Fprintf(w, "ticks     %d\n", s.Tick)
	fmt.Fprintf(w, "state     %s\n", state)
	fmt.Fprintf(w, "length    %d\n", s.Length)
	fmt.Fprintf(w, "eaten     %d\n", s.Eaten)
	fmt.Fprintf(w, "head      %s\n", s.Head)
	fmt.Fprintf(w, "direction %s\n", s.Dir)
	fmt.Fprintf(w, "food      %s\n", food)
	fmt.Fprintf(w, "interval  %v\n", s.Interval)
}
