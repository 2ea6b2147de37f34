package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface. Each terminal cell packs 2x4
// sub-pixels; colors apply per cell, last writer wins.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights a sub-pixel at (x, y). The canvas size in sub-pixels is
// (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if color != "" {
		c.Colors[row][col] = color
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Colors[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color string) {
	c.drawLine(x0, y0, x1, y1, color, 1, 0)
}

// DrawDashedLine draws every other pair of pixels along the line.
func (c *Canvas) DrawDashedLine(x0, y0, x1, y1 int, color string) {
	c.drawLine(x0, y0, x1, y1, color, 3, 3)
}

func (c *Canvas) drawLine(x0, y0, x1, y1 int, color string, on, off int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	i := 0

	for {
		if off == 0 || i%(on+off) < on {
			c.Set(x0, y0, color)
		}
		i++
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle strokes a circle outline via the midpoint algorithm.
func (c *Canvas) DrawCircle(cx, cy, r int, color string) {
	x, y := r, 0
	e := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y, color)
		c.Set(cx+y, cy+x, color)
		c.Set(cx-y, cy+x, color)
		c.Set(cx-x, cy+y, color)
		c.Set(cx-x, cy-y, color)
		c.Set(cx-y, cy-x, color)
		c.Set(cx+y, cy-x, color)
		c.Set(cx+x, cy-y, color)
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

// FillCircle fills a disc by scanning rows.
func (c *Canvas) FillCircle(cx, cy, r int, color string) {
	for dy := -r; dy <= r; dy++ {
		half := int(math.Sqrt(float64(r*r - dy*dy)))
		for dx := -half; dx <= half; dx++ {
			c.Set(cx+dx, cy+dy, color)
		}
	}
}

// DrawArrow draws a line with a triangular head at (x1, y1).
func (c *Canvas) DrawArrow(x0, y0, x1, y1 int, color string) {
	c.drawLine(x0, y0, x1, y1, color, 1, 0)

	angle := math.Atan2(float64(y1-y0), float64(x1-x0))
	const headLen = 5.0
	for _, da := range []float64{math.Pi - 0.5, math.Pi + 0.5} {
		hx := x1 + int(headLen*math.Cos(angle+da))
		hy := y1 + int(headLen*math.Sin(angle+da))
		c.drawLine(x1, y1, hx, hy, color, 1, 0)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col, r := range c.Grid[row] {
			if color := c.Colors[row][col]; color != "" && r != 0x2800 {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
