package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/simone/internal/simone"
)

// PhaseASCII renders a trajectory as an ASCII phase-space scatter.
// Markers encode progress along the trajectory: '.' for the first
// third, 'o' for the middle, '●' for the last. Axes are drawn where
// they cross the visible range.
func PhaseASCII(pts []simone.Point, width, height int) string {
	if len(pts) == 0 || width < 2 || height < 2 {
		return ""
	}

	b := BoundsOf(pts)
	rangeX := b.RangeX()
	rangeY := b.RangeY()
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX := b.MinX - rangeX*0.05
	minY := b.MinY - rangeY*0.05
	rangeX *= 1.1
	rangeY *= 1.1

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Axes first so points draw over them.
	if minX <= 0 && minX+rangeX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && minY+rangeY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	for i, p := range pts {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		if row < 0 || row >= height || col < 0 || col >= width {
			continue
		}
		switch {
		case i < len(pts)/3:
			canvas[row][col] = '.'
		case i < 2*len(pts)/3:
			canvas[row][col] = 'o'
		default:
			canvas[row][col] = '●'
		}
	}

	var s strings.Builder
	s.WriteString(fmt.Sprintf("%8.3f ┌%s┐\n", b.MaxY, strings.Repeat("─", width)))
	for i, row := range canvas {
		if i == height/2 {
			s.WriteString(fmt.Sprintf("%8.3f │", (b.MaxY+b.MinY)/2))
		} else {
			s.WriteString("         │")
		}
		s.WriteString(string(row))
		s.WriteString("│\n")
	}
	s.WriteString(fmt.Sprintf("%8.3f └%s┘\n", b.MinY, strings.Repeat("─", width)))
	s.WriteString(fmt.Sprintf("          %-8.3f%*s\n", b.MinX, width-8, fmt.Sprintf("%.3f", b.MaxX)))
	s.WriteString("\nlegend: . = early   o = middle   ● = late\n")
	return s.String()
}
