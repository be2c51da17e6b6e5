package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"
)

// panicked logs a panic raised while stepping, with its stack, and leaves
// it on the display. The app refuses further steps afterwards.
func (a *App) panicked(v any) error {
	stack := debug.Stack()
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf("lcdmenu panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			a.log.WriteLineString(line)
		}
	}

	s := a.out
	s.Clear()
	lines := []string{"PANIC"}
	msg := fmt.Sprint(v)
	for len(msg) > 0 && len(lines) < s.Rows() {
		var chunk string
		chunk, msg = takeRunes(msg, s.Cols())
		lines = append(lines, chunk)
		msg = strings.TrimLeft(msg, " ")
	}
	for row, line := range lines {
		if row >= s.Rows() {
			break
		}
		s.SetCursor(0, row)
		s.Print(line)
	}
	_ = a.out.Display()
	return fmt.Errorf("app: panic: %v", v)
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
