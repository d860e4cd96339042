// Package core provides fundamental types for the snake simulation: the grid
// lattice, world/cell coordinates, color tags and direction input.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import (
	"fmt"
	"math"
)

// Cell is an integer position on the grid.
// Equality is exact integer comparison.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Vec is a position in world units, as stored by the host.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell is inside this rectangle.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X && c.X < r.Right() && c.Y >= r.Y && c.Y < r.Bottom()
}

// Empty reports whether the rectangle holds no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of cells in the rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Grid describes the playing field: a lattice centered on the origin whose
// walls sit on the lines x = ±Width/2 and y = ±Height/2.
type Grid struct {
	Width    int     // Full extent in cells
	Height   int     // Full extent in cells
	CellSize float64 // World units per cell
}

// HalfW returns the x coordinate of the right wall.
func (g Grid) HalfW() int {
	return g.Width / 2
}

// HalfH returns the y coordinate of the bottom wall.
func (g Grid) HalfH() int {
	return g.Height / 2
}

// ToWorld converts a cell to the world position of its center.
func (g Grid) ToWorld(c Cell) Vec {
	return Vec{X: float64(c.X) * g.CellSize, Y: float64(c.Y) * g.CellSize}
}

// ToCell converts a world position to the nearest cell.
func (g Grid) ToCell(v Vec) Cell {
	return Cell{
		X: int(math.Round(v.X / g.CellSize)),
		Y: int(math.Round(v.Y / g.CellSize)),
	}
}

// OnWall reports whether c touches or lies beyond the boundary.
// The boundary is inclusive: reaching x = ±Width/2 is a collision.
func (g Grid) OnWall(c Cell) bool {
	hw, hh := g.HalfW(), g.HalfH()
	return c.X <= -hw || c.X >= hw || c.Y <= -hh || c.Y >= hh
}

// Interior returns the playable cells shrunk by margin cells on every side.
// A margin of zero yields every cell strictly inside the walls.
func (g Grid) Interior(margin int) Rect {
	if margin < 0 {
		margin = 0
	}
	lo := -g.HalfW() + 1 + margin
	top := -g.HalfH() + 1 + margin
	hiX := g.HalfW() - 1 - margin
	hiY := g.HalfH() - 1 - margin
	return Rect{X: lo, Y: top, W: hiX - lo + 1, H: hiY - top + 1}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
