package menufile

import (
	"fmt"
	"io"
	"strings"

	"lcdmenu/menu"
)

// Dump writes the tree under first depth-first, two spaces per level.
// Groups end in '/', back entries are tagged.
func Dump(w io.Writer, t *menu.Tree, first menu.EntryID) error {
	var err error
	t.Walk(first, func(id menu.EntryID, depth int) bool {
		label := t.Label(id)
		switch t.Kind(id) {
		case menu.KindGroup:
			label += "/"
		case menu.KindBack:
			label = "[back] " + label
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), label)
		return err == nil
	})
	return err
}
