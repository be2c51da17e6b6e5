package tui

import (
	"strings"
	"testing"

	"lcdmenu/lcd"
	"lcdmenu/menu"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, opts ...Option) (*Model, *menu.Controller) {
	t.Helper()
	tr := menu.NewTree()
	status := tr.AddGroup("Status")
	settings := tr.AddGroup("Settings")
	about := tr.AddGroup("About")
	if err := tr.AddSibling(status, settings); err != nil {
		t.Fatal(err)
	}
	if err := tr.AddSibling(status, about); err != nil {
		t.Fatal(err)
	}
	g := lcd.NewGrid(16, 2)
	c := menu.NewController(g, tr)
	if err := c.SetRoot(status); err != nil {
		t.Fatal(err)
	}
	m := New(c, g, opts...)
	m.Init()
	return m, c
}

func press(m *Model, k tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(k)
	return cmd
}

func TestArrowKeysMoveCursor(t *testing.T) {
	m, c := newTestModel(t)
	if !strings.Contains(m.View(), "Status") {
		t.Fatalf("initial view:\n%s", m.View())
	}

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := c.Tree().Label(c.Cursor()); got != "Settings" {
		t.Fatalf("cursor at %q", got)
	}
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if got := c.Tree().Label(c.Cursor()); got != "About" {
		t.Fatalf("cursor at %q", got)
	}
	press(m, tea.KeyMsg{Type: tea.KeyUp})
	if got := c.Tree().Label(c.Cursor()); got != "Settings" {
		t.Fatalf("cursor at %q", got)
	}
	view := m.View()
	if !strings.Contains(view, ">Settings") || !strings.Contains(view, "browsing") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestQuitAndHelp(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Fatal("help not expanded")
	}
}

func TestCustomBindings(t *testing.T) {
	keys := DefaultKeyMap().WithBindings(map[menu.Action][]string{
		menu.ActionDown: {"s"},
	})
	m, c := newTestModel(t, WithKeyMap(keys))
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := c.Tree().Label(c.Cursor()); got != "Status" {
		t.Fatalf("old binding still active, cursor at %q", got)
	}
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if got := c.Tree().Label(c.Cursor()); got != "Settings" {
		t.Fatalf("cursor at %q", got)
	}
}

func TestIntInputShownInStatus(t *testing.T) {
	m, c := newTestModel(t)
	var v int
	if err := c.DoIntInput(0, 9, 4, 1, []string{"Level"}, &v); err != nil {
		t.Fatal(err)
	}
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	if v != 5 {
		t.Fatalf("value %d", v)
	}
	if view := m.View(); !strings.Contains(view, "int-input") || !strings.Contains(view, "value 5") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestScreenLineMapsArrow(t *testing.T) {
	if got := screenLine("\x7eA"); got != "→A" {
		t.Fatalf("got %q", got)
	}
}
