// Package lcd provides character display surfaces: an in-memory grid and
// adapters that put a grid on a pixel display.
package lcd

import "strings"

// Grid is an in-memory character display with a write cursor.
//
// Writes past the right edge or below the last row are dropped, as on a
// character LCD with no line wrap.
type Grid struct {
	rows  int
	cols  int
	cells []byte

	col int
	row int

	rev uint64
}

func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]byte, rows*cols)}
	g.fill()
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Revision changes every time the grid content or cursor changes.
func (g *Grid) Revision() uint64 { return g.rev }

// Cursor returns the current write position.
func (g *Grid) Cursor() (col, row int) { return g.col, g.row }

func (g *Grid) Clear() {
	g.fill()
	g.col, g.row = 0, 0
	g.rev++
}

func (g *Grid) fill() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

func (g *Grid) SetCursor(col, row int) {
	g.col, g.row = col, row
	g.rev++
}

func (g *Grid) Write(c byte) {
	if g.row >= 0 && g.row < g.rows && g.col >= 0 && g.col < g.cols {
		g.cells[g.row*g.cols+g.col] = c
	}
	g.col++
	g.rev++
}

func (g *Grid) Print(s string) {
	for i := 0; i < len(s); i++ {
		g.Write(s[i])
	}
}

// ScrollLeft shifts every row one column to the left.
func (g *Grid) ScrollLeft() {
	for r := 0; r < g.rows; r++ {
		line := g.cells[r*g.cols : (r+1)*g.cols]
		if len(line) == 0 {
			continue
		}
		copy(line, line[1:])
		line[len(line)-1] = ' '
	}
	g.rev++
}

// ScrollRight shifts every row one column to the right.
func (g *Grid) ScrollRight() {
	for r := 0; r < g.rows; r++ {
		line := g.cells[r*g.cols : (r+1)*g.cols]
		if len(line) == 0 {
			continue
		}
		copy(line[1:], line)
		line[0] = ' '
	}
	g.rev++
}

// Display satisfies hal.CharLCD; the grid has nothing to flush.
func (g *Grid) Display() error { return nil }

// At returns the character at (col, row), or 0 outside the grid.
func (g *Grid) At(col, row int) byte {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0
	}
	return g.cells[row*g.cols+col]
}

// Line returns one row including trailing blanks.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	return string(g.cells[row*g.cols : (row+1)*g.cols])
}

// Lines returns all rows including trailing blanks.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for r := range out {
		out[r] = g.Line(r)
	}
	return out
}

// String renders the rows with trailing blanks trimmed, one per line.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(g.Line(r), " "))
	}
	return b.String()
}
