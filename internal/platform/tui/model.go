package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// frameInput is what the model hands the simulation for one frame.
type frameInput struct {
	input   core.Input
	elapsed time.Duration
}

func (f frameInput) ReadInput() core.Input   { return f.input }
func (f frameInput) Elapsed() time.Duration { return f.elapsed }

// Model is the Bubble Tea model driving one snake simulation.
type Model struct {
	game     *snake.Game
	world    *entity.World
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	input    core.Input // Last direction pressed since the previous frame
	last     time.Time  // Time of the previous frame, zero before the first
	result   snake.FrameResult
	err      error
	quitting bool
}

// NewModel creates a model for game, whose entities live in world.
func NewModel(game *snake.Game, world *entity.World, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		game:   game,
		world:  world,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 0)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		logger: logger,
		result: snake.FrameResult{Alive: true, Length: game.Snake().Len()},
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		if !m.game.Snake().Alive() {
			m.game.Reset()
			m.logger.Info("run restarted")
			m.result = snake.FrameResult{Alive: true, Length: m.game.Snake().Len()}
			m.input = core.InputNone
			m.err = nil
		}
		return m, nil
	}

	if in := m.keys.Input(msg); in != core.InputNone {
		m.input = in
	}
	return m, nil
}

// handleTick runs exactly one simulation frame per host tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	res, err := m.game.Pump(frameInput{input: m.input, elapsed: elapsed})
	m.input = core.InputNone
	m.result = res
	if err != nil {
		m.err = err
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// draw fills the screen buffer from the world.
func (m Model) draw() {
	s := m.screen
	s.Clear()

	grid := m.game.Grid()
	bw, bh := BoardSize(grid)
	if s.Width() < bw || s.Height() < bh+hudRows {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", bw, bh+hudRows+footerRows))
		return
	}

	x := (s.Width() - bw) / 2
	s.DrawText(x, 0, m.hud())
	DrawBoard(s, m.world, grid, x, hudRows)

	if !m.result.Alive {
		msg := fmt.Sprintf(" GAME OVER: %s  length %d  press r ", m.game.Snake().Cause(), m.result.Length)
		s.DrawTextCentered(hudRows+bh/2, msg)
	}
}

func (m Model) hud() string {
	state := "playing"
	switch {
	case m.err != nil:
		state = "fault"
	case !m.result.Alive:
		state = "dead"
	}
	return fmt.Sprintf("SNAKE  length %d  eaten %d  pace %v  %s",
		m.result.Length, m.game.Eaten(), m.game.Interval(), state)
}

// Run starts the Bubble Tea program for game.
func Run(game *snake.Game, world *entity.World, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, world, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
