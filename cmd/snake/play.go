package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/hjkl  - Turn
  R                 - Restart (after death)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest pace, speeds up as the snake grows
  normal - Start at 30% pace
  hard   - Start at 70% pace with a shorter base interval
  fixed  - No speed-up

The field shrinks to fit the terminal when the configured grid is larger.

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = seed()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	cfg = tui.FitGrid(cfg, rt.ScreenW, rt.ScreenH)

	world := entity.NewWorld()
	game, err := snake.New(cfg, world, rand.New(rand.NewSource(rt.Seed)), logger)
	if err != nil {
		return err
	}
	logger.Info("starting game", "seed", rt.Seed, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height))

	if err := tui.Run(game, world, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
