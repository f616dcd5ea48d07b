package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasResolution(t *testing.T) {
	c := NewCanvas(10, 5)

	assert.Equal(t, 20, c.DotCols())
	assert.Equal(t, 20, c.DotRows())
}

func TestCanvasMinimumSize(t *testing.T) {
	c := NewCanvas(0, -3)

	assert.Equal(t, 2, c.DotCols())
	assert.Equal(t, 4, c.DotRows())
}

func TestCanvasSetProducesBraille(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0) // dot (0,0) of the first cell, bit 0

	cells := c.Cells()
	require.Len(t, cells, 1)
	require.Len(t, cells[0], 2)
	assert.Equal(t, rune(0x2801), cells[0][0])
	assert.Equal(t, ' ', cells[0][1], "untouched cell stays a space")
}

func TestCanvasSetIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(2, 0)
	c.Set(0, 4)

	for _, r := range c.Cells()[0] {
		assert.Equal(t, ' ', r)
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Line(0, 0, c.DotCols()-1, c.DotRows()-1)

	cells := c.Cells()
	assert.NotEqual(t, ' ', cells[0][0], "line start cell is drawn")
	assert.NotEqual(t, ' ', cells[1][3], "line end cell is drawn")
}

func TestCanvasHorizontalLineFillsRow(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Line(0, 2, c.DotCols()-1, 2)

	for col, r := range c.Cells()[0] {
		assert.NotEqual(t, ' ', r, "cell %d should carry the line", col)
	}
}
