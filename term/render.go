// SPDX-License-Identifier: MIT

package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a set of character attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrUnderline
	AttrBlink
	AttrReverse

	AttrNormal   Attr = 0
	AttrStandout      = AttrReverse | AttrBold
)

// sgr codes, indexed by attribute bit.
var sgr = [...]int{1, 2, 4, 5, 7}

// sequence returns the SGR escape selecting exactly a.
func (a Attr) sequence() string {
	var b strings.Builder
	b.WriteString("\x1b[0")
	for i, code := range sgr {
		if a&(1<<i) != 0 {
			b.WriteByte(';')
			b.WriteString(strconv.Itoa(code))
		}
	}
	b.WriteByte('m')

	return b.String()
}

type cell struct {
	ch   rune
	attr Attr
}

var blank = cell{ch: ' '}

// grid is a rows×cols block of cells.
type grid struct {
	rows, cols int
	cells      []cell
}

func newGrid(rows, cols int) grid {
	g := grid{rows: rows, cols: cols, cells: make([]cell, rows*cols)}
	g.fill(blank)
	return g
}

func (g grid) fill(c cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

func (g grid) at(y, x int) cell { return g.cells[y*g.cols+x] }

func (g grid) set(y, x int, c cell) {
	if y >= 0 && y < g.rows && x >= 0 && x < g.cols {
		g.cells[y*g.cols+x] = c
	}
}

// resized returns a grid of the new size keeping the overlapping cells.
func (g grid) resized(rows, cols int) grid {
	n := newGrid(rows, cols)
	for y := 0; y < min(rows, g.rows); y++ {
		for x := 0; x < min(cols, g.cols); x++ {
			n.set(y, x, g.at(y, x))
		}
	}
	return n
}

// diff writes to b the escapes that turn front into back and updates front.
// full repaints every cell.
func diff(b *strings.Builder, front, back grid, full bool) {
	cur := Attr(0xff) // forces the first SGR
	for y := 0; y < back.rows; y++ {
		pending := false // cursor already sits after the previous written cell
		for x := 0; x < back.cols; x++ {
			c := back.at(y, x)
			if !full && front.at(y, x) == c {
				pending = false
				continue
			}
			if !pending {
				fmt.Fprintf(b, "\x1b[%d;%dH", y+1, x+1)
			}
			if c.attr != cur {
				b.WriteString(c.attr.sequence())
				cur = c.attr
			}
			b.WriteRune(c.ch)
			front.set(y, x, c)
			pending = true
		}
	}
	if cur != Attr(0xff) && cur != AttrNormal {
		b.WriteString(AttrNormal.sequence())
	}
}
