package display

import "errors"

// ErrSurfaceTooSmall is returned when a drawing operation does not fit
// inside the surface. The usual remedy is enlarging the terminal window.
var ErrSurfaceTooSmall = errors.New("display surface too small")

// Surface is a cell-addressed text output device. Coordinates are
// (row, column) with the origin at the top-left corner. Drawing is
// buffered until Show is called.
type Surface interface {
	// DrawText writes text starting at (row, col).
	DrawText(row, col int, text string) error

	// DrawFrame draws a rectangular border with the given corner
	// coordinates. The border occupies the edge cells themselves.
	DrawFrame(top, left, bottom, right int) error

	// Show flushes buffered drawing to the device.
	Show()

	// Size reports the surface dimensions as (rows, cols).
	Size() (rows, cols int)
}
