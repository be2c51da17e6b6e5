package lcd

import (
	"bytes"
	"fmt"
	"strings"

	"lcdmenu/fonts/lcdcell"

	"tinygo.org/x/tinyterm"
)

// TermSize returns the pixel size a terminal of cols x rows needs so that
// every row of the grid maps to exactly one terminal line.
func TermSize(face lcdcell.Face, cols, rows int) (w, h int) {
	return cols * int(face.Width), rows * int(face.Height)
}

// Term renders a Grid through a tinyterm terminal. The terminal only
// streams lines, so each frame is written as one line per row; with a
// display exactly TermSize high the line ring lines up with the rows.
type Term struct {
	*Grid
	d       tinyterm.Displayer
	term    *tinyterm.Terminal
	painted uint64
	started bool
	buf     bytes.Buffer
}

// NewTerm fails for faces without a tinyfont glyph table, such as the
// built-in lcd cells.
func NewTerm(d tinyterm.Displayer, face lcdcell.Face, cols, rows int) (*Term, error) {
	tf, ok := face.Tinyfont()
	if !ok {
		return nil, fmt.Errorf("lcd: face %q cannot drive a tinyterm terminal", face.Name)
	}
	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:       tf,
		FontHeight: face.Height,
		FontOffset: face.Offset,
	})
	return &Term{Grid: NewGrid(cols, rows), d: d, term: t}, nil
}

func (t *Term) Display() error {
	if t.started && t.painted == t.Revision() {
		return nil
	}
	t.buf.Reset()
	for row := 0; row < t.Rows(); row++ {
		if t.started || row > 0 {
			t.buf.WriteByte('\n')
		}
		t.buf.WriteString(printable(strings.TrimRight(t.Line(row), " ")))
	}
	t.started = true
	t.painted = t.Revision()
	if _, err := t.term.Write(t.buf.Bytes()); err != nil {
		return err
	}
	return t.d.Display()
}

// printable keeps control bytes and high bytes away from the terminal's
// escape and UTF-8 handling.
func printable(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x80 {
			return strings.Map(func(r rune) rune {
				if r < 0x20 || r >= 0x80 {
					return '?'
				}
				return r
			}, s)
		}
	}
	return s
}
