package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/stagger/internal/curve"
)

func testMapper() curve.Mapper {
	return curve.NewMapper(Gutter, 0, 21, 9)
}

func renderLines(t *testing.T, markers []curve.Marker, drag *Preview) []string {
	t.Helper()
	out := Render(markers, testMapper(), 10, drag)
	return strings.Split(out, "\n")
}

func TestRenderShape(t *testing.T) {
	markers := curve.Generate([]string{"a", "b", "c"}, curve.Uniform, false, 10)
	lines := renderLines(t, markers, nil)

	m := testMapper()
	require.Len(t, lines, m.Height+2, "plot rows, axis row, label row")
	for _, line := range lines[:m.Height] {
		assert.Equal(t, Gutter+m.Width, len([]rune(line)))
	}
}

func TestRenderGutterLabels(t *testing.T) {
	markers := curve.Generate([]string{"a", "b"}, curve.Uniform, false, 10)
	lines := renderLines(t, markers, nil)

	assert.Contains(t, lines[0], " 10.0s┤")
	assert.Contains(t, lines[4], "  5.0s┤")
	assert.Contains(t, lines[8], "  0.0s┤")
	assert.True(t, strings.HasPrefix(lines[1], "      │"))
}

func TestRenderMarkersAtMappedCells(t *testing.T) {
	markers := curve.Generate([]string{"a", "b", "c"}, curve.Uniform, false, 10)
	m := testMapper()
	lines := renderLines(t, markers, nil)

	for _, mk := range markers {
		row := m.Row(mk.Y) - m.Top
		col := m.Col(mk.X)
		assert.Equal(t, markerGlyph, []rune(lines[row])[col],
			"marker %d at row %d col %d", mk.Index, row, col)
	}
}

func TestRenderDragPreviewMovesGlyphOnly(t *testing.T) {
	markers := curve.Generate([]string{"a", "b", "c"}, curve.Uniform, false, 10)
	m := testMapper()
	lines := renderLines(t, markers, &Preview{Index: 1, Y: 100})

	top := []rune(lines[m.Row(100)-m.Top])
	assert.Equal(t, dragGlyph, top[m.Col(markers[1].X)], "dragged glyph follows the pointer")

	// The store value is untouched, so a re-render without the preview
	// puts the plain glyph back at the original row.
	after := renderLines(t, markers, nil)
	orig := []rune(after[m.Row(markers[1].Y)-m.Top])
	assert.Equal(t, markerGlyph, orig[m.Col(markers[1].X)])
}

func TestRenderSlotLabelsInOrder(t *testing.T) {
	markers := curve.Generate([]string{"a", "b", "c"}, curve.Uniform, false, 10)
	lines := renderLines(t, markers, nil)

	labels := lines[len(lines)-1]
	i1 := strings.Index(labels, "1")
	i2 := strings.Index(labels, "2")
	i3 := strings.Index(labels, "3")
	require.NotEqual(t, -1, i1)
	require.NotEqual(t, -1, i2)
	require.NotEqual(t, -1, i3)
	assert.Less(t, i1, i2)
	assert.Less(t, i2, i3)
}

func TestRenderEmptyStoreStillDrawsFrame(t *testing.T) {
	lines := renderLines(t, nil, nil)

	m := testMapper()
	require.Len(t, lines, m.Height+2)
	assert.Contains(t, lines[m.Height], "└")
	for _, line := range lines {
		assert.NotContains(t, line, string(markerGlyph))
	}
}

func TestRenderDoesNotReorderStoredMarkers(t *testing.T) {
	// Hand-built "random" layout with slots out of order.
	markers := []curve.Marker{
		{Index: 0, Key: "a", X: 80, Y: 10, Delay: 1},
		{Index: 1, Key: "b", X: 20, Y: 90, Delay: 9},
	}
	_ = Render(markers, testMapper(), 10, nil)

	assert.Equal(t, 80.0, markers[0].X)
	assert.Equal(t, 20.0, markers[1].X)
	assert.Equal(t, 0, markers[0].Index)
}
