// SPDX-License-Identifier: Unlicense OR MIT

// Package canvas renders measured flex containers for inspection,
// as text art or as images.
package canvas

import (
	"image"
	"strings"

	"flexlayout.org/layout"
	"flexlayout.org/text"
)

// Background fills the cells not covered by any item.
const Background = '·'

// Canvas is a grid of character cells.
type Canvas struct {
	width, height int
	// cells holds width*height runes. A zero rune is the trailing
	// half of a wide rune.
	cells []rune
}

// New returns a canvas of the given size filled with Background.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	for i := range c.cells {
		c.cells[i] = Background
	}
	return c
}

// Set sets the cell at (x, y). Cells outside the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = r
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Draw draws a box for every item of a measured container. Items
// holding a *text.Label get its rows drawn inside the box, wrapped
// to the width between the borders.
func (c *Canvas) Draw(fc *layout.Container) {
	for _, it := range fc.Items {
		r := it.Frame()
		var rows []string
		if l, ok := it.Measurable.(*text.Label); ok {
			rows = l.Lines(float64(r.Dx() - 2))
		}
		c.DrawBox(r, rows)
	}
}

// DrawBox draws a box outline with rows of text inside. Rows that do
// not fit are clipped.
func (c *Canvas) DrawBox(r image.Rectangle, rows []string) {
	y := r.Min.Y
	if y < r.Max.Y {
		c.hline(r, y, '┌', '┐')
		y++
	}
	for _, row := range rows {
		if y < r.Max.Y {
			c.textRow(r, y, row)
			y++
		}
	}
	for ; y < r.Max.Y-1; y++ {
		c.textRow(r, y, "")
	}
	if r.Min.Y < r.Max.Y {
		c.hline(r, r.Max.Y-1, '└', '┘')
	}
}

func (c *Canvas) hline(r image.Rectangle, y int, left, right rune) {
	for x := r.Min.X; x < r.Max.X; x++ {
		c.Set(x, y, '─')
	}
	c.Set(r.Min.X, y, left)
	c.Set(r.Max.X-1, y, right)
}

func (c *Canvas) textRow(r image.Rectangle, y int, s string) {
	for x := r.Min.X; x < r.Max.X; x++ {
		c.Set(x, y, ' ')
	}
	c.Set(r.Min.X, y, '│')
	c.Set(r.Max.X-1, y, '│')
	x, end := r.Min.X+1, r.Max.X-1
	for _, ch := range s {
		n := text.RuneCells(ch)
		if x+n > end {
			break
		}
		c.Set(x, y, ch)
		for i := 1; i < n; i++ {
			c.Set(x+i, y, 0)
		}
		x += n
	}
}

// String returns the rows of the canvas separated by newlines.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, r := range c.cells[y*c.width : (y+1)*c.width] {
			if r != 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
