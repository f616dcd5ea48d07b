package curve

import "math"

// Mapper converts normalized [0,100] curve space to terminal cells inside a
// plot rectangle and back. The vertical axis is inverted: y=100 maps to the
// top row (high delay sits visually high), y=0 to the bottom row.
//
// A Mapper is a pure value over the current rectangle. It must be rebuilt
// whenever the plot rectangle changes; the Update loop does this on every
// WindowSizeMsg before any later mouse event is processed.
type Mapper struct {
	Left   int // leftmost column of the plot rectangle
	Top    int // topmost row
	Width  int // columns, min 1
	Height int // rows, min 1
}

// NewMapper builds a mapper over the given rectangle, forcing degenerate
// dimensions up to 1x1.
func NewMapper(left, top, width, height int) Mapper {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Mapper{Left: left, Top: top, Width: width, Height: height}
}

// Col maps a normalized x to an absolute terminal column.
func (m Mapper) Col(x float64) int {
	span := m.Width - 1
	if span < 1 {
		return m.Left
	}
	return m.Left + int(math.Round(Clamp01e2(x)/100*float64(span)))
}

// Row maps a normalized y to an absolute terminal row, inverted.
func (m Mapper) Row(y float64) int {
	span := m.Height - 1
	if span < 1 {
		return m.Top
	}
	return m.Top + int(math.Round((1-Clamp01e2(y)/100)*float64(span)))
}

// YFor maps an absolute terminal row back to normalized y, clamped to
// [0,100] so pointer positions outside the rectangle are recovered rather
// than rejected.
func (m Mapper) YFor(row int) float64 {
	span := m.Height - 1
	if span < 1 {
		return 0
	}
	y := (1 - float64(row-m.Top)/float64(span)) * 100
	return Clamp01e2(y)
}

// XFor maps an absolute terminal column back to normalized x, clamped.
// Drag ignores horizontal movement; this exists for hit-testing only.
func (m Mapper) XFor(col int) float64 {
	span := m.Width - 1
	if span < 1 {
		return 0
	}
	x := float64(col-m.Left) / float64(span) * 100
	return Clamp01e2(x)
}

// Contains reports whether an absolute cell lies inside the rectangle.
func (m Mapper) Contains(col, row int) bool {
	return col >= m.Left && col < m.Left+m.Width &&
		row >= m.Top && row < m.Top+m.Height
}
