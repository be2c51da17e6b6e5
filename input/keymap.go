package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"lcdmenu/hal"
	"lcdmenu/menu"
)

// Keymap turns key presses into menu actions. Named keys match on the key
// code, single characters on the rune.
type Keymap struct {
	codes map[hal.KeyCode]menu.Action
	runes map[rune]menu.Action
}

var keyNames = map[string]hal.KeyCode{
	"up":        hal.KeyUp,
	"down":      hal.KeyDown,
	"left":      hal.KeyLeft,
	"right":     hal.KeyRight,
	"enter":     hal.KeyEnter,
	"esc":       hal.KeyEscape,
	"escape":    hal.KeyEscape,
	"backspace": hal.KeyBackspace,
}

// DefaultBindings are the arrow keys plus vi and WASD letters.
var DefaultBindings = map[menu.Action][]string{
	menu.ActionUp:     {"up", "k", "w"},
	menu.ActionDown:   {"down", "j", "s"},
	menu.ActionSelect: {"enter", "right", "l", "d", " "},
	menu.ActionBack:   {"esc", "left", "backspace", "h", "a"},
}

// DefaultKeymap is built from DefaultBindings.
func DefaultKeymap() *Keymap {
	k, err := NewKeymap(DefaultBindings)
	if err != nil {
		panic(err)
	}
	return k
}

// NewKeymap builds a keymap. A key bound to two actions is an error.
func NewKeymap(bindings map[menu.Action][]string) (*Keymap, error) {
	k := &Keymap{
		codes: make(map[hal.KeyCode]menu.Action),
		runes: make(map[rune]menu.Action),
	}
	// Deterministic error messages.
	actions := make([]menu.Action, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, a := range actions {
		if a == menu.ActionNone {
			return nil, fmt.Errorf("input: cannot bind keys to %s", a)
		}
		for _, name := range bindings[a] {
			if err := k.bind(name, a); err != nil {
				return nil, err
			}
		}
	}
	return k, nil
}

func (k *Keymap) bind(name string, a menu.Action) error {
	if code, ok := keyNames[strings.ToLower(name)]; ok {
		if prev, dup := k.codes[code]; dup && prev != a {
			return fmt.Errorf("input: key %q bound to both %s and %s", name, prev, a)
		}
		k.codes[code] = a
		return nil
	}
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || size != len(name) {
		return fmt.Errorf("input: unknown key %q", name)
	}
	if prev, dup := k.runes[r]; dup && prev != a {
		return fmt.Errorf("input: key %q bound to both %s and %s", name, prev, a)
	}
	k.runes[r] = a
	return nil
}

// Action maps a key event. Releases map to ActionNone.
func (k *Keymap) Action(ev hal.KeyEvent) menu.Action {
	if !ev.Press {
		return menu.ActionNone
	}
	if ev.Code != hal.KeyUnknown {
		return k.codes[ev.Code]
	}
	return k.runes[ev.Rune]
}
