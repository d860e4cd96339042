package tui

import (
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, cfg config.SnakeConfig) (Model, *entity.World) {
	t.Helper()
	logger := log.New(io.Discard)
	world := entity.NewWorld()
	game, err := snake.New(cfg, world, rand.New(rand.NewSource(1)), logger)
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}
	return NewModel(game, world, rt, logger), world
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func headCell(t *testing.T, m Model, world *entity.World) core.Cell {
	t.Helper()
	e, ok := world.Get(m.game.Snake().Head())
	if !ok {
		t.Fatal("head missing from world")
	}
	return m.game.Grid().ToCell(e.Pos)
}

func TestKeyMapInput(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Input
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.InputUp},
		{runes("w"), core.InputUp},
		{runes("k"), core.InputUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.InputDown},
		{runes("s"), core.InputDown},
		{runes("a"), core.InputLeft},
		{runes("h"), core.InputLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.InputRight},
		{runes("l"), core.InputRight},
		{runes("x"), core.InputNone},
		{runes("r"), core.InputNone},
	}

	for _, tc := range tests {
		if got := keys.Input(tc.msg); got != tc.want {
			t.Errorf("Input(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestFitGrid(t *testing.T) {
	cfg := config.DefaultSnakeConfig()

	fitted := FitGrid(cfg, 31, 15)
	w, h := BoardSize(fitted.GridModel())
	if w > 31 || h+hudRows+footerRows > 15 {
		t.Errorf("board %dx%d does not fit 31x15", w, h)
	}
	if fitted.Grid.Width%2 != 0 || fitted.Grid.Height%2 != 0 {
		t.Errorf("fitted extent should stay even: %dx%d", fitted.Grid.Width, fitted.Grid.Height)
	}

	if got := FitGrid(cfg, 500, 500); got != cfg {
		t.Error("FitGrid should never grow the field")
	}
	if got := FitGrid(cfg, 3, 3); got != cfg {
		t.Error("FitGrid should keep the config when nothing playable fits")
	}
}

func TestModelTicksGame(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Difficulty.Enabled = false
	m, world := newTestModel(t, cfg)

	start := time.Unix(0, 0)
	m = update(t, m, TickMsg(start))
	if got := headCell(t, m, world); got != cfg.Start() {
		t.Fatalf("first frame moved the head to %v", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, TickMsg(start.Add(cfg.Tick.Interval)))

	want := cfg.Start().Add(core.Cell{X: 0, Y: 1})
	if got := headCell(t, m, world); got != want {
		t.Errorf("head = %v, expected %v", got, want)
	}
	if world.Count(core.TagFood) != 1 {
		t.Errorf("expected one food, have %d", world.Count(core.TagFood))
	}
}

func TestModelRestartAfterDeath(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Difficulty.Enabled = false
	cfg.Snake.StartX = cfg.Grid.Width/2 - 2
	m, world := newTestModel(t, cfg)

	// Restart is ignored while alive
	m = update(t, m, runes("r"))
	if !m.game.Snake().Alive() {
		t.Fatal("snake should be alive")
	}

	now := time.Unix(0, 0)
	for iter := 0; iter < 5; iter++ {
		m = update(t, m, TickMsg(now))
		now = now.Add(cfg.Tick.Interval)
	}
	if m.game.Snake().Alive() {
		t.Fatal("snake should have hit the right wall")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should announce the death")
	}

	m = update(t, m, runes("r"))
	if !m.game.Snake().Alive() {
		t.Error("restart should start a new run")
	}
	if world.Len() != cfg.Snake.Length {
		t.Errorf("world holds %d entities after restart, expected %d", world.Len(), cfg.Snake.Length)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSnakeConfig())

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewDrawsBoard(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	m, _ := newTestModel(t, cfg)
	m = update(t, m, TickMsg(time.Unix(0, 0)))

	m.draw()
	screen := m.screen.String()
	for _, want := range []string{"SNAKE", "@", "o", "*", "┌", "┘"} {
		if !strings.Contains(screen, want) {
			t.Errorf("screen missing %q", want)
		}
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	m.draw()
	if !strings.Contains(m.screen.String(), "too small") {
		t.Error("small terminal should show a notice")
	}
}

func TestDrawBoardPlacesEntities(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 6, CellSize: 1}
	world := entity.NewWorld()
	world.Create(grid.ToWorld(core.Cell{X: 0, Y: 0}), core.TagHead)
	world.Create(grid.ToWorld(core.Cell{X: -4, Y: 2}), core.TagFood)

	s := core.NewScreen(11, 7)
	DrawBoard(s, world, grid, 0, 0)

	if got := s.Get(5, 3); got != '@' {
		t.Errorf("head drawn as %q at the center", got)
	}
	if got := s.Get(1, 5); got != '*' {
		t.Errorf("food drawn as %q at (1,5)", got)
	}
	if got := s.GetCell(5, 3).Color; got != core.TagHead.DefaultColor() {
		t.Errorf("head color = %v", got)
	}
}
