// Package tui shows the menu display in a terminal through bubbletea.
package tui

import (
	"fmt"
	"strings"

	"lcdmenu/fonts/lcdcell"
	"lcdmenu/hal"
	"lcdmenu/lcd"
	"lcdmenu/menu"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is a bubbletea model around a controller drawing on a Grid.
type Model struct {
	ctrl   *menu.Controller
	grid   *lcd.Grid
	keys   KeyMap
	help   help.Model
	styles Styles
	log    hal.Logger
	err    error
}

type Option func(*Model)

func WithKeyMap(k KeyMap) Option     { return func(m *Model) { m.keys = k } }
func WithStyles(s Styles) Option     { return func(m *Model) { m.styles = s } }
func WithLogger(l hal.Logger) Option { return func(m *Model) { m.log = l } }

// New returns a model for ctrl, which must draw on grid.
func New(ctrl *menu.Controller, grid *lcd.Grid, opts ...Option) *Model {
	m := &Model{
		ctrl:   ctrl,
		grid:   grid,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if err := m.ctrl.Draw(); err != nil {
		m.err = err
	}
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if a := m.keys.action(msg); a != menu.ActionNone {
			m.apply(a)
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) apply(a menu.Action) {
	m.err = m.ctrl.Apply(a)
	if m.log != nil {
		if m.err != nil {
			m.log.WriteLineString(fmt.Sprintf("tui: %s: %v", a, m.err))
		} else {
			m.log.WriteLineString(fmt.Sprintf("tui: %s -> %q", a, m.ctrl.Tree().Label(m.ctrl.Cursor())))
		}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	rows := make([]string, m.grid.Rows())
	for r := range rows {
		rows[r] = m.styles.Screen.Render(screenLine(m.grid.Line(r)))
	}
	lcdView := m.styles.Bezel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	status := m.styles.Mode.Render(m.ctrl.Mode().String())
	if m.err != nil {
		status += "  " + m.styles.Error.Render(m.err.Error())
	} else if v, ok := m.ctrl.InputValue(); ok {
		status += m.styles.Status.Render(fmt.Sprintf("  value %d", v))
	} else if cur := m.ctrl.Cursor(); cur != menu.NoEntry {
		status += m.styles.Status.Render("  " + m.ctrl.Tree().Label(cur))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lcdView, status, m.help.View(m.keys))
}

func screenLine(cells string) string {
	var b strings.Builder
	for i := 0; i < len(cells); i++ {
		b.WriteRune(lcdcell.Rune(cells[i]))
	}
	return b.String()
}

// Run starts a full-screen program and blocks until the user quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
