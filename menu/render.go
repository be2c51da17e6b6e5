package menu

import "strings"

// noSelection prints rows without the marker column.
const noSelection = -1

// printRows clears the surface and prints one label per row. When selected
// is not noSelection every row gets a marker column and the selected row
// shows the marker glyph.
func (c *Controller) printRows(labels []string, selected int) {
	s := c.surface
	s.Clear()
	rows := s.Rows()
	cols := s.Cols()
	for i, label := range labels {
		if i >= rows {
			break
		}
		s.SetCursor(0, i)
		width := cols
		if selected != noSelection {
			if i == selected {
				s.Write(c.marker)
			} else {
				s.Write(' ')
			}
			s.SetCursor(1, i)
			width--
		}
		s.Print(truncate(label, width))
	}
}

// printRight blanks row and prints text flush against the right edge.
func (c *Controller) printRight(text string, row int) {
	s := c.surface
	cols := s.Cols()
	if row < 0 || row >= s.Rows() || cols <= 0 {
		return
	}
	s.SetCursor(0, row)
	s.Print(strings.Repeat(" ", cols))
	if len(text) > cols {
		text = text[len(text)-cols:]
	}
	s.SetCursor(cols-len(text), row)
	s.Print(text)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) > width {
		return s[:width]
	}
	return s
}
