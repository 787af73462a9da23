package core

import "math"

// Viewport maps a y-up world onto a y-down grid of screen cells.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// CellX converts a world x-coordinate to a screen column.
func (v Viewport) CellX(x float64) int {
	if v.WorldW <= 0 {
		return 0
	}
	return int(math.Floor(x * float64(v.Cols) / v.WorldW))
}

// CellY converts a world y-coordinate to a screen row.
func (v Viewport) CellY(y float64) int {
	if v.WorldH <= 0 {
		return 0
	}
	return int(math.Floor((v.WorldH - y) * float64(v.Rows) / v.WorldH))
}

// CellRect converts a world box to the screen cells it covers.
func (v Viewport) CellRect(b Box) Rect {
	x0 := v.CellX(b.X)
	x1 := v.CellX(b.Right())
	y0 := v.CellY(b.Top())
	y1 := v.CellY(b.Y)
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
