package plot

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/olivier-w/stagger/internal/curve"
)

// Gutter is the width in cells of the seconds-axis gutter, including the
// axis line itself. The plot mapper's Left edge must sit past it.
const Gutter = 7

// Marker glyphs. The dragged marker gets a distinct glyph so live preview
// reads without color.
const (
	markerGlyph = '●'
	dragGlyph   = '◉'
)

// Preview carries the presentation-only candidate position of an active
// drag. It never touches the store; only the rendered frame.
type Preview struct {
	Index int
	Y     float64
}

// Render draws the plot widget: seconds gutter, dotted gridlines, the
// connecting curve through markers sorted by slot, marker glyphs, and the
// slot axis. The mapper describes the inner plot rectangle; the output is
// Height+2 lines of Left-Mapper-relative text (gutter plus rectangle), so
// the caller must place the widget at the mapper's origin.
//
// The stored marker order is never disturbed: the polyline sorts a local
// copy by x, and slot labels paint in insertion order.
func Render(markers []curve.Marker, m curve.Mapper, maxDelay float64, drag *Preview) string {
	w, h := m.Width, m.Height

	canvas := NewCanvas(w, h)
	drawCurve(canvas, markers, drag)

	cells := canvas.Cells()
	overlayGrid(cells)
	overlayMarkers(cells, markers, m, drag)

	var out strings.Builder
	for row := range h {
		out.WriteString(gutterLabel(row, h, maxDelay))
		out.WriteString(string(cells[row]))
		out.WriteByte('\n')
	}
	out.WriteString(strings.Repeat(" ", Gutter-1) + "└" + strings.Repeat("─", w) + "\n")
	out.WriteString(string(slotLabels(markers, m)))
	return out.String()
}

// drawCurve plots the connecting polyline in dot space. A dragged marker
// contributes its preview position so the curve follows the pointer.
func drawCurve(c *Canvas, markers []curve.Marker, drag *Preview) {
	if len(markers) < 2 {
		return
	}

	pts := make([]curve.Marker, len(markers))
	copy(pts, markers)
	if drag != nil {
		for i := range pts {
			if pts[i].Index == drag.Index {
				pts[i].Y = drag.Y
			}
		}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	prevC, prevR := dotPoint(c, pts[0])
	for _, p := range pts[1:] {
		dc, dr := dotPoint(c, p)
		c.Line(prevC, prevR, dc, dr)
		prevC, prevR = dc, dr
	}
}

func dotPoint(c *Canvas, p curve.Marker) (int, int) {
	dc := int(math.Round(p.X / 100 * float64(c.DotCols()-1)))
	dr := int(math.Round((1 - p.Y/100) * float64(c.DotRows()-1)))
	return dc, dr
}

// overlayGrid paints faint horizontal rules at the quarter delay levels
// wherever the curve has not already claimed the cell.
func overlayGrid(cells [][]rune) {
	h := len(cells)
	if h < 4 {
		return
	}
	for _, frac := range []float64{0.25, 0.5, 0.75} {
		row := int(math.Round(frac * float64(h-1)))
		for col := range cells[row] {
			if cells[row][col] == ' ' {
				cells[row][col] = '·'
			}
		}
	}
}

func overlayMarkers(cells [][]rune, markers []curve.Marker, m curve.Mapper, drag *Preview) {
	for _, mk := range markers {
		glyph := markerGlyph
		y := mk.Y
		if drag != nil && drag.Index == mk.Index {
			glyph = dragGlyph
			y = drag.Y
		}
		col := m.Col(mk.X) - m.Left
		row := m.Row(y) - m.Top
		if row >= 0 && row < len(cells) && col >= 0 && col < len(cells[row]) {
			cells[row][col] = glyph
		}
	}
}

// gutterLabel renders one row of the seconds gutter. The top, middle, and
// bottom rows carry tick labels; the rest just the axis line.
func gutterLabel(row, height int, maxDelay float64) string {
	var label string
	switch row {
	case 0:
		label = fmt.Sprintf("%5.1fs", maxDelay)
	case (height - 1) / 2:
		label = fmt.Sprintf("%5.1fs", maxDelay*float64(height-1-(height-1)/2)/float64(max(height-1, 1)))
	case height - 1:
		label = fmt.Sprintf("%5.1fs", 0.0)
	default:
		return strings.Repeat(" ", Gutter-1) + "│"
	}
	return label + "┤"
}

// slotLabels builds the bottom label row, painting each marker's 1-based
// slot number at its column in insertion order. Overlapping labels are
// skipped rather than resolved; random layouts are allowed to crowd.
func slotLabels(markers []curve.Marker, m curve.Mapper) []rune {
	line := []rune(strings.Repeat(" ", Gutter+m.Width))
	for _, mk := range markers {
		label := []rune(strconv.Itoa(mk.Index + 1))
		col := Gutter + m.Col(mk.X) - m.Left
		if col+len(label) > len(line) {
			col = len(line) - len(label)
		}
		free := true
		for i := range label {
			if line[col+i] != ' ' {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		copy(line[col:], label)
	}
	return line
}
