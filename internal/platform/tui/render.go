package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
)

// Rows used around the board: the HUD above and the help line below.
const (
	hudRows    = 1
	footerRows = 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// glyphs maps entity tags to the rune drawn for them.
var glyphs = map[core.Tag]rune{
	core.TagHead: '@',
	core.TagBody: 'o',
	core.TagFood: '*',
}

// BoardSize returns the screen cells the board takes, walls included.
func BoardSize(grid core.Grid) (w, h int) {
	return 2*grid.HalfW() + 1, 2*grid.HalfH() + 1
}

// FitGrid shrinks the configured field so the board, HUD and help line fit a
// w x h terminal. It never grows the field, and returns cfg unchanged when the
// shrunken field would not hold the starting snake.
func FitGrid(cfg config.SnakeConfig, w, h int) config.SnakeConfig {
	fitted := cfg
	// An even extent keeps the walls symmetric around the origin
	if maxW := (w - 1) &^ 1; fitted.Grid.Width > maxW {
		fitted.Grid.Width = maxW
	}
	if maxH := (h - hudRows - footerRows - 1) &^ 1; fitted.Grid.Height > maxH {
		fitted.Grid.Height = maxH
	}
	if fitted.Validate() != nil {
		return cfg
	}
	return fitted
}

// DrawBoard draws the walls and every entity in world with its top-left wall
// corner at (x, y). Body segments are drawn first so the head stays visible.
func DrawBoard(s *core.Screen, world *entity.World, grid core.Grid, x, y int) {
	w, h := BoardSize(grid)
	s.DrawBox(core.NewRect(x, y, w, h), core.ColorWhite)

	ents := world.Entities()
	for _, pass := range []core.Tag{core.TagFood, core.TagBody, core.TagHead} {
		for _, e := range ents {
			if e.Tag != pass {
				continue
			}
			c := grid.ToCell(e.Pos)
			s.SetColored(x+c.X+grid.HalfW(), y+c.Y+grid.HalfH(), glyphs[e.Tag], e.Color)
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, yEnd := 0, s.Height(); y < yEnd; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
