package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestRunSimIsReproducible(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	logger := log.New(io.Discard)

	a, err := runSim(cfg, 42, 5000, 60, 10, logger)
	if err != nil {
		t.Fatalf("runSim() failed: %v", err)
	}
	b, err := runSim(cfg, 42, 5000, 60, 10, logger)
	if err != nil {
		t.Fatalf("runSim() failed: %v", err)
	}
	if a != b {
		t.Errorf("same seed gave different runs:\n%+v\n%+v", a, b)
	}
	if a.Frames == 0 || a.Length < cfg.Snake.Length {
		t.Errorf("implausible run: %+v", a)
	}
}

func TestRunSimStraightLineHitsWall(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Difficulty.Enabled = false

	snap, err := runSim(cfg, 1, 10000, 60, 0, log.New(io.Discard))
	if err != nil {
		t.Fatalf("runSim() failed: %v", err)
	}
	if snap.Alive || snap.Cause != "wall" {
		t.Errorf("expected a wall death going straight, got %+v", snap)
	}
	// From x=0 the head reaches the wall at x=20 on the twentieth tick
	if snap.Tick != 20 {
		t.Errorf("Tick = %d, expected 20", snap.Tick)
	}
}

func TestRunSimRejectsZeroFPS(t *testing.T) {
	if _, err := runSim(config.DefaultSnakeConfig(), 1, 10, 0, 0, log.New(io.Discard)); err == nil {
		t.Error("runSim() with zero fps should fail")
	}
}

func TestPrintSnapshot(t *testing.T) {
	snap, err := runSim(config.DefaultSnakeConfig(), 3, 30, 60, 0, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printSnapshot(&buf, 3, snap)
	out := buf.String()
	for _, want := range []string{"seed      3", "state     alive", "direction right"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
