package hunt

import (
	"fmt"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Grid is the rectangular board. Cells are stored in row-major order:
// index = row*Cols + col. Only the Game mutates it.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(c core.Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the cell at c. Out-of-bounds coordinates panic.
func (g *Grid) Get(c core.Coord) Cell {
	g.mustInBounds(c)
	return g.cells[g.index(c)]
}

func (g *Grid) set(c core.Coord, cell Cell) {
	g.mustInBounds(c)
	g.cells[g.index(c)] = cell
}

func (g *Grid) mustInBounds(c core.Coord) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("hunt: coordinate %v outside %dx%d grid", c, g.rows, g.cols))
	}
}

// EmptyCoords returns every Empty coordinate in row-major order.
func (g *Grid) EmptyCoords() []core.Coord {
	coords := make([]core.Coord, 0, len(g.cells))
	for i, cell := range g.cells {
		if cell.IsEmpty() {
			coords = append(coords, core.At(i/g.cols, i%g.cols))
		}
	}
	return coords
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, cell := range g.cells {
		if cell.kind == kind {
			n++
		}
	}
	return n
}

// CountTreasure returns the number of treasure cells carrying value.
func (g *Grid) CountTreasure(value int) int {
	n := 0
	for _, cell := range g.cells {
		if cell.kind == KindTreasure && cell.value == value {
			n++
		}
	}
	return n
}

// Matrix returns a deep copy of the cells as rows of columns.
func (g *Grid) Matrix() [][]Cell {
	m := make([][]Cell, g.rows)
	for r := range m {
		m[r] = make([]Cell, g.cols)
		copy(m[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return m
}
