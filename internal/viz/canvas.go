package viz

import (
	"strings"

	"github.com/san-kum/simone/internal/analysis"
	"github.com/san-kum/simone/internal/simone"
)

// Braille patterns pack 2x4 dots per character cell, unicode offset
// 0x2800. dotMask[subY][subX] is the bit for one dot.
var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-pixel drawing surface of Width x Height character
// cells, i.e. (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// Set turns on the dot at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= dotMask[y%4][x%2]
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

// PlotPoints maps pts from the world rectangle b onto the canvas and
// sets one dot per point. Points outside b are dropped; non-finite
// points are skipped.
func (c *Canvas) PlotPoints(pts []simone.Point, b analysis.Bounds) {
	rangeX := b.RangeX()
	rangeY := b.RangeY()
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	dotsW := float64(c.Width*2 - 1)
	dotsH := float64(c.Height*4 - 1)
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		x := int((p.X - b.MinX) / rangeX * dotsW)
		y := int(dotsH - (p.Y-b.MinY)/rangeY*dotsH)
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
