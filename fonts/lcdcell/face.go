package lcdcell

import (
	"fmt"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Face is a font plus the cell metrics renderers need.
type Face struct {
	Name   string
	Font   tinyfont.Fonter
	Width  int16
	Height int16
	// Offset is the baseline distance from the top of the cell.
	Offset int16
}

// Tinyfont returns the face's glyph table when it is a plain tinyfont.Font.
// The tinyterm renderer needs one; the built-in lcd cells are not.
func (f Face) Tinyfont() (*tinyfont.Font, bool) {
	tf, ok := f.Font.(*tinyfont.Font)
	return tf, ok && tf != nil
}

// DefaultFace draws the built-in 5x7 cells.
var DefaultFace = Face{Name: "lcd", Font: Font, Width: 6, Height: 8, Offset: 7}

// Faces lists the names Lookup accepts.
var Faces = []string{"lcd", "proggy"}

// Lookup returns the named face. Names are case-insensitive.
func Lookup(name string) (Face, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lcd":
		return DefaultFace, nil
	case "proggy":
		f := &proggy.TinySZ8pt7b
		_, w := tinyfont.LineWidth(f, "0")
		if w == 0 {
			return Face{}, fmt.Errorf("lcdcell: proggy: zero glyph width")
		}
		return Face{Name: "proggy", Font: f, Width: int16(w), Height: 10, Offset: 6}, nil
	default:
		return Face{}, fmt.Errorf("lcdcell: unknown face %q (want one of %s)", name, strings.Join(Faces, ", "))
	}
}
