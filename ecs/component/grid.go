package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Cell identifies one grid tile by column and row.
type Cell struct {
	X int
	Y int
}

// Grid is the static walkability map of a level. Cells are stored row-major;
// anything outside the grid counts as blocked.
type Grid struct {
	Width    int
	Height   int
	TileSize float64

	blocked []bool
}

// NewGrid creates an all-walkable grid.
func NewGrid(width, height int, tileSize float64) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if tileSize <= 0 {
		tileSize = 1
	}
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		blocked:  make([]bool, width*height),
	}
}

func (g *Grid) InBounds(c Cell) bool {
	return g != nil && c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Y*g.Width+c.X]
}

func (g *Grid) Walkable(c Cell) bool {
	return !g.Blocked(c)
}

// SetBlocked is ignored for cells outside the grid.
func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.InBounds(c) {
		return
	}
	g.blocked[c.Y*g.Width+c.X] = blocked
}

// EnsureBorders locks the outer ring of cells.
func (g *Grid) EnsureBorders() {
	if g == nil || g.Width == 0 || g.Height == 0 {
		return
	}
	for x := 0; x < g.Width; x++ {
		g.SetBlocked(Cell{X: x, Y: 0}, true)
		g.SetBlocked(Cell{X: x, Y: g.Height - 1}, true)
	}
	for y := 0; y < g.Height; y++ {
		g.SetBlocked(Cell{X: 0, Y: y}, true)
		g.SetBlocked(Cell{X: g.Width - 1, Y: y}, true)
	}
}

// CellAt maps a world point to the cell containing it.
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{
		X: int(math.Floor(x / g.TileSize)),
		Y: int(math.Floor(y / g.TileSize)),
	}
}

// IsWalkable reports whether the world point lies on a walkable cell.
func (g *Grid) IsWalkable(x, y float64) bool {
	if g == nil {
		return false
	}
	return g.Walkable(g.CellAt(x, y))
}

// ClampCell pulls c inside the grid.
func (g *Grid) ClampCell(c Cell) Cell {
	c.X = max(0, min(c.X, g.Width-1))
	c.Y = max(0, min(c.Y, g.Height-1))
	return c
}

// CellCenter returns the world-space center of c.
func (g *Grid) CellCenter(c Cell) cp.Vector {
	return cp.Vector{
		X: float64(c.X)*g.TileSize + g.TileSize/2,
		Y: float64(c.Y)*g.TileSize + g.TileSize/2,
	}
}

var GridComponent = NewComponent[Grid]()
