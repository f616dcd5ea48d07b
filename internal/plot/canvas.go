package plot

// Canvas is a braille dot grid over a cell rectangle. Each cell is a 2x4
// dot block, giving 2x horizontal and 4x vertical resolution for the
// connecting curve.
type Canvas struct {
	cols, rows int
	dots       []bool // dot-row major, dotCols() wide
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// NewCanvas creates an empty canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{
		cols: cols,
		rows: rows,
		dots: make([]bool, cols*2*rows*4),
	}
}

func (c *Canvas) dotCols() int { return c.cols * 2 }
func (c *Canvas) dotRows() int { return c.rows * 4 }

// DotCols returns the horizontal dot resolution.
func (c *Canvas) DotCols() int { return c.dotCols() }

// DotRows returns the vertical dot resolution.
func (c *Canvas) DotRows() int { return c.dotRows() }

// Set turns on one dot. Out-of-range coordinates are ignored.
func (c *Canvas) Set(dc, dr int) {
	if dc < 0 || dc >= c.dotCols() || dr < 0 || dr >= c.dotRows() {
		return
	}
	c.dots[dr*c.dotCols()+dc] = true
}

// Line draws a straight segment in dot space using Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Cells renders the grid as one rune per cell, space for an empty block.
func (c *Canvas) Cells() [][]rune {
	out := make([][]rune, c.rows)
	for row := range c.rows {
		line := make([]rune, c.cols)
		for col := range c.cols {
			var pattern uint
			for dx := range 2 {
				for dy := range 4 {
					if c.dots[(row*4+dy)*c.dotCols()+col*2+dx] {
						pattern |= 1 << brailleBits[dx][dy]
					}
				}
			}
			if pattern == 0 {
				line[col] = ' '
			} else {
				line[col] = rune(0x2800 + pattern)
			}
		}
		out[row] = line
	}
	return out
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
