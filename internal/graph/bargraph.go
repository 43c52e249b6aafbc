// Package graph renders horizontal bar gauges on a cell-addressed
// display surface.
package graph

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/JakubMiodunka/resource-monitor/internal/display"
)

// ErrValueOutOfRange is returned when an update value falls outside
// [0, 100]. Values are never clamped.
var ErrValueOutOfRange = errors.New("value not in range <0;100>")

const (
	// barWidth is the number of bar cells; each cell represents 5
	// percentage points.
	barWidth = 19

	pointsPerBlock = 5

	// pointerSpan is the width of the pointer row: the maximum pointer
	// offset (20 blocks) plus the widest pointer text "┌100%".
	pointerSpan = 25

	filledBlock = "█"
	emptyBlock  = "░"
)

// BarGraph is a single metric gauge occupying a 3-row region: a pointer
// row marking the exact value, the labeled bar itself, and a 0/100
// scale. The static parts are drawn once at construction; Update
// redraws only the pointer row and the bar cells.
type BarGraph struct {
	surface display.Surface

	pointerRow int
	pointerCol int
	barRow     int
	barCol     int

	// value is the integer percentage currently displayed.
	value int
}

// New draws the graph at (row, col) showing 0% and returns a handle for
// updates. The anchor is the first cell of the label.
func New(surface display.Surface, row, col int, label string) (*BarGraph, error) {
	g := &BarGraph{
		surface:    surface,
		pointerRow: row,
		pointerCol: col + len(label) + 1,
		barRow:     row + 1,
		barCol:     col + len(label) + 2,
	}

	if err := surface.DrawText(g.pointerRow, g.pointerCol, "┌0%"); err != nil {
		return nil, err
	}

	bar := label + " |" + strings.Repeat(emptyBlock, barWidth) + "|"
	if err := surface.DrawText(g.barRow, col, bar); err != nil {
		return nil, err
	}

	if err := surface.DrawText(g.barRow+1, g.barCol-1, "0"); err != nil {
		return nil, err
	}
	if err := surface.DrawText(g.barRow+1, g.barCol+barWidth-1, "100"); err != nil {
		return nil, err
	}

	surface.Show()
	return g, nil
}

// Update redraws the graph for the given value. The value must be in
// [0, 100]; anything else is a caller bug and is rejected. Repeated
// calls with the same value render the same state.
func (g *BarGraph) Update(value float64) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%w: %v", ErrValueOutOfRange, value)
	}

	v := int(math.Round(value))
	blocks := v / pointsPerBlock

	if err := g.surface.DrawText(g.pointerRow, g.pointerCol, strings.Repeat(" ", pointerSpan)); err != nil {
		return err
	}

	if err := g.surface.DrawText(g.pointerRow, g.pointerCol+blocks, fmt.Sprintf("┌%d%%", v)); err != nil {
		return err
	}

	var bar string
	if v != 100 {
		bar = strings.Repeat(filledBlock, blocks) + strings.Repeat(emptyBlock, barWidth-blocks)
	} else {
		// At 100% the pointer sits one column past the last bar cell,
		// so one fewer filled glyph keeps it off the closing bracket.
		bar = strings.Repeat(filledBlock, blocks-1)
	}
	if err := g.surface.DrawText(g.barRow, g.barCol, bar); err != nil {
		return err
	}

	g.surface.Show()
	g.value = v
	return nil
}

// Value reports the integer percentage currently displayed.
func (g *BarGraph) Value() int {
	return g.value
}
