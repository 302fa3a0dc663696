package viz

import (
	"strings"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

// Canvas is a rune grid mapped onto a target's bound rectangle. Cells
// are overwritten in draw order, so backgrounds go in first.
type Canvas struct {
	Width, Height int
	bounds        mcmc.Bounds
	cells         [][]rune
}

func NewCanvas(w, h int, b mcmc.Bounds) *Canvas {
	c := &Canvas{Width: w, Height: h, bounds: b}
	c.cells = make([][]rune, h)
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
		for j := range c.cells[i] {
			c.cells[i][j] = ' '
		}
	}
	return c
}

// cell maps a point to grid coordinates; ok is false outside bounds.
func (c *Canvas) cell(p mcmc.Point) (col, row int, ok bool) {
	if !c.bounds.Contains(p) {
		return 0, 0, false
	}
	col = int(float64(c.Width-1) * (p.X - c.bounds.XMin) / c.bounds.Width())
	row = int(float64(c.Height-1) * (p.Y - c.bounds.YMin) / c.bounds.Height())
	row = c.Height - 1 - row
	return col, row, true
}

// Center of a grid cell in target coordinates, used to shade the
// density background.
func (c *Canvas) cellCenter(col, row int) mcmc.Point {
	fx := (float64(col) + 0.5) / float64(c.Width)
	fy := (float64(c.Height-1-row) + 0.5) / float64(c.Height)
	return mcmc.Point{
		X: c.bounds.XMin + fx*c.bounds.Width(),
		Y: c.bounds.YMin + fy*c.bounds.Height(),
	}
}

// Shade fills the background from a 0..1 intensity function.
func (c *Canvas) Shade(intensity func(p mcmc.Point) float64) {
	ramp := []rune(" .:-=+*#")
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			v := intensity(c.cellCenter(col, row))
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			i := int(v * float64(len(ramp)-1))
			c.cells[row][col] = ramp[i]
		}
	}
}

func (c *Canvas) Plot(p mcmc.Point, ch rune) {
	if col, row, ok := c.cell(p); ok {
		c.cells[row][col] = ch
	}
}

// Path draws a polyline by plotting a Bresenham line between
// consecutive points.
func (c *Canvas) Path(points []mcmc.Point, ch rune) {
	for i := 1; i < len(points); i++ {
		c.Segment(points[i-1], points[i], ch)
	}
}

func (c *Canvas) Segment(from, to mcmc.Point, ch rune) {
	c0, r0, ok0 := c.cell(from)
	c1, r1, ok1 := c.cell(to)
	if !ok0 || !ok1 {
		return
	}

	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	err := dc + dr

	for {
		c.cells[r0][c0] = ch
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
