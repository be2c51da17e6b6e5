package input

import (
	"fmt"
	"strconv"
	"strings"

	"lcdmenu/menu"
)

// ParseScript reads a list of actions such as "down, down*2 select back".
// Items are separated by commas or whitespace; "name*n" repeats an action.
func ParseScript(s string) ([]menu.Action, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	var out []menu.Action
	for _, f := range fields {
		name, count := f, 1
		if i := strings.IndexByte(f, '*'); i >= 0 {
			n, err := strconv.Atoi(f[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("input: bad repeat in %q", f)
			}
			name, count = f[:i], n
		}
		a, err := menu.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		for i := 0; i < count; i++ {
			out = append(out, a)
		}
	}
	return out, nil
}

// Script hands out pre-recorded actions one at a time.
type Script struct {
	actions []menu.Action
	next    int
}

func NewScript(actions []menu.Action) *Script {
	return &Script{actions: actions}
}

// Next returns the next action, or false once the script is exhausted.
func (s *Script) Next() (menu.Action, bool) {
	if s == nil || s.next >= len(s.actions) {
		return menu.ActionNone, false
	}
	a := s.actions[s.next]
	s.next++
	return a, true
}

// Done reports whether every action has been handed out.
func (s *Script) Done() bool { return s == nil || s.next >= len(s.actions) }
