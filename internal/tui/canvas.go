package tui

import (
	"math"
	"strings"

	"github.com/san-kum/pushoff/internal/arena"
)

type cell struct {
	r   rune
	ink int
}

// canvas is a character grid mapped onto the arena. Terminal cells are about
// twice as tall as wide, so one row covers twice the world distance of a
// column.
type canvas struct {
	w, h   int
	sx, sy float64 // world units per column and per row
	cells  [][]cell
}

func newCanvas(b arena.Bounds, w int) *canvas {
	if w < 20 {
		w = 20
	}
	h := int(math.Round(float64(w) * b.Height / b.Width / 2))
	if h < 5 {
		h = 5
	}
	c := &canvas{
		w:     w,
		h:     h,
		sx:    b.Width / float64(w),
		sy:    b.Height / float64(h),
		cells: make([][]cell, h),
	}
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
	}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{' ', inkNone}
		}
	}
}

// project maps a world point to the cell containing it.
func (c *canvas) project(wx, wy float64) (int, int) {
	return int(math.Floor(wx / c.sx)), int(math.Floor(wy / c.sy))
}

// centre returns the world point at the middle of a cell.
func (c *canvas) centre(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * c.sx, (float64(y) + 0.5) * c.sy
}

func (c *canvas) set(x, y int, r rune, ink int) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = cell{r, ink}
	}
}

func (c *canvas) get(x, y int) rune {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		return c.cells[y][x].r
	}
	return 0
}

func (c *canvas) edges() {
	for x := 0; x < c.w; x++ {
		c.set(x, 0, '·', inkEdge)
		c.set(x, c.h-1, '·', inkEdge)
	}
	for y := 0; y < c.h; y++ {
		c.set(0, y, '·', inkEdge)
		c.set(c.w-1, y, '·', inkEdge)
	}
}

// rect fills every cell whose centre lies inside the world rectangle.
func (c *canvas) rect(cx, cy, w, h float64, r rune, ink int) {
	x0, y0 := c.project(cx-w/2, cy-h/2)
	x1, y1 := c.project(cx+w/2, cy+h/2)
	filled := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := c.centre(x, y)
			if math.Abs(px-cx) <= w/2 && math.Abs(py-cy) <= h/2 {
				c.set(x, y, r, ink)
				filled = true
			}
		}
	}
	if !filled {
		x, y := c.project(cx, cy)
		c.set(x, y, r, ink)
	}
}

// disc fills every cell whose centre lies inside the world circle. Small
// discs always cover at least their centre cell.
func (c *canvas) disc(cx, cy, radius float64, r rune, ink int) {
	x0, y0 := c.project(cx-radius, cy-radius)
	x1, y1 := c.project(cx+radius, cy+radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := c.centre(x, y)
			if math.Hypot(px-cx, py-cy) <= radius {
				c.set(x, y, r, ink)
			}
		}
	}
	x, y := c.project(cx, cy)
	c.set(x, y, r, ink)
}

func (c *canvas) ring(cx, cy, radius float64, r rune, ink int) {
	steps := int(2*math.Pi*radius/math.Min(c.sx, c.sy)) + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := c.project(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		if c.get(x, y) == ' ' || c.get(x, y) == '·' {
			c.set(x, y, r, ink)
		}
	}
}

func (c *canvas) render() string {
	var b strings.Builder
	for y, row := range c.cells {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].ink == row[start].ink {
				continue
			}
			run := make([]rune, x-start)
			for i := range run {
				run[i] = row[start+i].r
			}
			if row[start].ink == inkNone {
				b.WriteString(string(run))
			} else {
				b.WriteString(palette[row[start].ink].Render(string(run)))
			}
			start = x
		}
		if y < len(c.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
