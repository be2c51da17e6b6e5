package tui

import (
	"strings"

	"lcdmenu/menu"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the bindings of the terminal front-end.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns arrow keys plus vi-style letters.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "right", "l", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "left", "backspace", "h"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WithBindings replaces the keys of the actions present in bindings.
// Key names follow the input package: "up", "enter", "esc", single runes.
func (k KeyMap) WithBindings(bindings map[menu.Action][]string) KeyMap {
	for a, names := range bindings {
		if len(names) == 0 {
			continue
		}
		keys := make([]string, len(names))
		for i, n := range names {
			keys[i] = teaKey(n)
		}
		b := key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(names, "/"), a.String()))
		switch a {
		case menu.ActionUp:
			k.Up = b
		case menu.ActionDown:
			k.Down = b
		case menu.ActionSelect:
			k.Select = b
		case menu.ActionBack:
			k.Back = b
		}
	}
	return k
}

func teaKey(name string) string {
	if strings.EqualFold(name, "escape") {
		return "esc"
	}
	if len(name) > 1 {
		return strings.ToLower(name)
	}
	return name
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Back},
		{k.Help, k.Quit},
	}
}

func (k KeyMap) action(msg tea.KeyMsg) menu.Action {
	switch {
	case key.Matches(msg, k.Up):
		return menu.ActionUp
	case key.Matches(msg, k.Down):
		return menu.ActionDown
	case key.Matches(msg, k.Select):
		return menu.ActionSelect
	case key.Matches(msg, k.Back):
		return menu.ActionBack
	}
	return menu.ActionNone
}
