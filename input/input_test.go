package input

import (
	"strings"
	"testing"

	"lcdmenu/hal"
	"lcdmenu/menu"
)

func TestDefaultKeymap(t *testing.T) {
	k := DefaultKeymap()
	cases := []struct {
		ev   hal.KeyEvent
		want menu.Action
	}{
		{hal.KeyEvent{Code: hal.KeyUp, Press: true}, menu.ActionUp},
		{hal.KeyEvent{Code: hal.KeyDown, Press: true}, menu.ActionDown},
		{hal.KeyEvent{Code: hal.KeyEnter, Press: true}, menu.ActionSelect},
		{hal.KeyEvent{Code: hal.KeyEscape, Press: true}, menu.ActionBack},
		{hal.KeyEvent{Code: hal.KeyLeft, Press: true}, menu.ActionBack},
		{hal.KeyEvent{Rune: 'j', Press: true}, menu.ActionDown},
		{hal.KeyEvent{Rune: ' ', Press: true}, menu.ActionSelect},
		{hal.KeyEvent{Code: hal.KeyUp, Press: false}, menu.ActionNone},
		{hal.KeyEvent{Rune: 'q', Press: true}, menu.ActionNone},
	}
	for _, tc := range cases {
		if got := k.Action(tc.ev); got != tc.want {
			t.Fatalf("%+v: got %s, want %s", tc.ev, got, tc.want)
		}
	}
}

func TestNewKeymapRejectsConflicts(t *testing.T) {
	_, err := NewKeymap(map[menu.Action][]string{
		menu.ActionUp:   {"k"},
		menu.ActionDown: {"k"},
	})
	if err == nil || !strings.Contains(err.Error(), "bound to both") {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if _, err := NewKeymap(map[menu.Action][]string{menu.ActionUp: {"pageup"}}); err == nil {
		t.Fatal("expected unknown key error")
	}
	if _, err := NewKeymap(map[menu.Action][]string{menu.ActionNone: {"x"}}); err == nil {
		t.Fatal("expected error binding none")
	}
}

func TestButtonPadDebouncesPress(t *testing.T) {
	up := hal.NewVirtualPin(hal.PinButtonUp, hal.GPIOCapInput|hal.GPIOCapPullUp)
	sel := hal.NewVirtualPin(hal.PinButtonSelect, hal.GPIOCapInput|hal.GPIOCapPullUp)
	pad, err := NewButtonPad(hal.NewGPIO(up, sel), 3)
	if err != nil {
		t.Fatalf("NewButtonPad: %v", err)
	}
	if pad.Len() != 2 {
		t.Fatalf("Len: %d", pad.Len())
	}
	if got := pad.Poll(); len(got) != 0 {
		t.Fatalf("idle poll fired %v", got)
	}

	up.Drive(false)
	for i := 0; i < 2; i++ {
		if got := pad.Poll(); len(got) != 0 {
			t.Fatalf("sample %d fired early: %v", i, got)
		}
	}
	got := pad.Poll()
	if len(got) != 1 || got[0] != menu.ActionUp {
		t.Fatalf("expected up, got %v", got)
	}
	if got := pad.Poll(); len(got) != 0 {
		t.Fatalf("held button fired again: %v", got)
	}

	// A glitch shorter than the debounce count is ignored.
	up.Drive(true)
	pad.Poll()
	up.Drive(false)
	for i := 0; i < 4; i++ {
		if got := pad.Poll(); len(got) != 0 {
			t.Fatalf("glitch fired: %v", got)
		}
	}
}

func TestButtonPadWithoutPins(t *testing.T) {
	pad, err := NewButtonPad(hal.NewGPIO(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if pad.Len() != 0 || pad.Poll() != nil {
		t.Fatal("empty pad should never fire")
	}
}

func TestParseScript(t *testing.T) {
	got, err := ParseScript("down, down*2 select;BACK\nup")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	want := []menu.Action{
		menu.ActionDown, menu.ActionDown, menu.ActionDown,
		menu.ActionSelect, menu.ActionBack, menu.ActionUp,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	for _, bad := range []string{"sideways", "up*0", "up*x", "none"} {
		if _, err := ParseScript(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
	if got, err := ParseScript("  "); err != nil || len(got) != 0 {
		t.Fatalf("empty script: %v %v", got, err)
	}
}

func TestScriptNext(t *testing.T) {
	s := NewScript([]menu.Action{menu.ActionUp, menu.ActionBack})
	if a, ok := s.Next(); !ok || a != menu.ActionUp {
		t.Fatalf("first: %v %v", a, ok)
	}
	if s.Done() {
		t.Fatal("done too early")
	}
	if a, ok := s.Next(); !ok || a != menu.ActionBack {
		t.Fatalf("second: %v %v", a, ok)
	}
	if _, ok := s.Next(); ok || !s.Done() {
		t.Fatal("expected exhausted script")
	}
	var nilScript *Script
	if !nilScript.Done() {
		t.Fatal("nil script should be done")
	}
}
