package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/crowdviz/internal/trajectory"
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

// Canvas is a braille-cell drawing surface. Each character cell packs 2x4
// sub-pixels and carries an optional foreground color (hex); the last color
// written to a cell wins.
type Canvas struct {
	Width, Height int
	grid          [][]rune
	colors        [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]rune, h),
		colors: make([][]string, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.colors[i] = make([]string, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y) with the given hex color. The canvas
// size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, hex string) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.colors[row][col] = hex
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
			c.colors[i][j] = ""
		}
	}
}

// Plot projects p from world coordinates into the sub-pixel grid and lights
// it. Points outside the view are dropped.
func (c *Canvas) Plot(view trajectory.Rect, p trajectory.Vec2, hex string) {
	if view.Width <= 0 || view.Height <= 0 {
		return
	}
	// World y grows upward, rows grow downward.
	x := int((p.X - view.X) / view.Width * float64(c.Width*2))
	y := int((1 - (p.Y-view.Y)/view.Height) * float64(c.Height*4))
	c.Set(x, y, hex)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		j := 0
		for j < len(row) {
			// Batch runs of equally colored cells into one styled write.
			hex := c.colors[i][j]
			k := j
			for k < len(row) && c.colors[i][k] == hex {
				k++
			}
			seg := string(row[j:k])
			if hex == "" {
				b.WriteString(seg)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(seg))
			}
			j = k
		}
		b.WriteString("\n")
	}
	return b.String()
}
