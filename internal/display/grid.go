package display

import (
	"fmt"
	"strings"
)

// Grid is an in-memory Surface with fixed dimensions. It records every
// drawn cell and counts flushes, which makes rendering logic testable
// without a terminal.
type Grid struct {
	cells [][]rune
	rows  int
	cols  int

	// ShowCount is incremented on every Show call.
	ShowCount int
}

func NewGrid(rows, cols int) *Grid {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}
	return &Grid{cells: cells, rows: rows, cols: cols}
}

func (g *Grid) DrawText(row, col int, text string) error {
	runes := []rune(text)

	if err := g.checkBounds(row, col, row, col+len(runes)-1); err != nil {
		return err
	}

	for i, r := range runes {
		g.cells[row][col+i] = r
	}
	return nil
}

func (g *Grid) DrawFrame(top, left, bottom, right int) error {
	if top >= bottom || left >= right {
		return fmt.Errorf("invalid frame corners (%d,%d)-(%d,%d)", top, left, bottom, right)
	}
	if err := g.checkBounds(top, left, bottom, right); err != nil {
		return err
	}

	for x := left + 1; x < right; x++ {
		g.cells[top][x] = '─'
		g.cells[bottom][x] = '─'
	}
	for y := top + 1; y < bottom; y++ {
		g.cells[y][left] = '│'
		g.cells[y][right] = '│'
	}

	g.cells[top][left] = '┌'
	g.cells[top][right] = '┐'
	g.cells[bottom][left] = '└'
	g.cells[bottom][right] = '┘'

	return nil
}

func (g *Grid) Show() {
	g.ShowCount++
}

func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// Cell returns the rune at (row, col).
func (g *Grid) Cell(row, col int) rune {
	return g.cells[row][col]
}

// Region returns width cells of a row starting at col, as a string.
func (g *Grid) Region(row, col, width int) string {
	return string(g.cells[row][col : col+width])
}

// Row returns a full row as a string.
func (g *Grid) Row(row int) string {
	return string(g.cells[row])
}

func (g *Grid) String() string {
	var b strings.Builder
	for i := range g.cells {
		b.WriteString(string(g.cells[i]))
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) checkBounds(top, left, bottom, right int) error {
	if top < 0 || left < 0 || bottom >= g.rows || right >= g.cols {
		return fmt.Errorf("region (%d,%d)-(%d,%d) exceeds %dx%d surface: %w",
			top, left, bottom, right, g.rows, g.cols, ErrSurfaceTooSmall)
	}
	return nil
}
