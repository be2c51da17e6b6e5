// Package console drives the menu from typed commands and prints the
// display after each one.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lcdmenu/fonts/lcdcell"
	"lcdmenu/hal"
	"lcdmenu/input"
	"lcdmenu/lcd"
	"lcdmenu/menu"
	"lcdmenu/menufile"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const Prompt = "lcd> "

var errQuit = errors.New("console: quit")

const helpText = `commands:
  up, u, k        move up
  down, d, j      move down
  select, s, l    select
  back, b, h      back
  show            print the display
  tree            print the menu tree
  quit, q         leave
several actions may be given on one line, e.g. "down*2 select"`

var shortcuts = map[string]menu.Action{
	"u": menu.ActionUp, "k": menu.ActionUp,
	"d": menu.ActionDown, "j": menu.ActionDown,
	"s": menu.ActionSelect, "l": menu.ActionSelect, "enter": menu.ActionSelect,
	"b": menu.ActionBack, "h": menu.ActionBack,
}

// Console executes command lines against a controller drawing on grid.
type Console struct {
	ctrl *menu.Controller
	grid *lcd.Grid
	log  hal.Logger
}

func New(ctrl *menu.Controller, grid *lcd.Grid, log hal.Logger) *Console {
	return &Console{ctrl: ctrl, grid: grid, log: log}
}

// Exec runs one command line and writes its output to w.
func (c *Console) Exec(w io.Writer, line string) error {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return nil
	case "quit", "q", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprintln(w, helpText)
		return nil
	case "show":
		c.Render(w)
		return nil
	case "tree":
		if c.ctrl.Root() == menu.NoEntry {
			return menu.ErrNoActiveRoot
		}
		return menufile.Dump(w, c.ctrl.Tree(), c.ctrl.Root())
	}

	actions, err := c.parse(line)
	if err != nil {
		return err
	}
	for _, a := range actions {
		if err := c.ctrl.Apply(a); err != nil {
			return err
		}
		if c.log != nil {
			c.log.WriteLineString(fmt.Sprintf("console: %s", a))
		}
	}
	c.Render(w)
	return nil
}

func (c *Console) parse(line string) ([]menu.Action, error) {
	if a, ok := shortcuts[strings.ToLower(line)]; ok {
		return []menu.Action{a}, nil
	}
	return input.ParseScript(line)
}

// Render prints the display inside a frame.
func (c *Console) Render(w io.Writer) {
	edge := "+" + strings.Repeat("-", c.grid.Cols()) + "+"
	fmt.Fprintln(w, edge)
	for _, line := range c.grid.Lines() {
		var b strings.Builder
		for i := 0; i < len(line); i++ {
			b.WriteRune(lcdcell.Rune(line[i]))
		}
		fmt.Fprintf(w, "|%s|\n", b.String())
	}
	fmt.Fprintln(w, edge)
}

// Serve reads command lines from rw until EOF or quit. With interactive set
// the x/term line editor handles input, otherwise lines are read plainly.
func (c *Console) Serve(rw io.ReadWriter, interactive bool) error {
	if err := c.ctrl.Draw(); err != nil {
		return err
	}
	if interactive {
		t := term.NewTerminal(rw, Prompt)
		c.Render(t)
		for {
			line, err := t.ReadLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if done := c.report(t, c.Exec(t, line)); done {
				return nil
			}
		}
	}

	c.Render(rw)
	sc := bufio.NewScanner(rw)
	for sc.Scan() {
		if done := c.report(rw, c.Exec(rw, sc.Text())); done {
			return nil
		}
	}
	return sc.Err()
}

func (c *Console) report(w io.Writer, err error) (quit bool) {
	if errors.Is(err, errQuit) {
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	}
	return false
}

type stdio struct {
	io.Reader
	io.Writer
}

// Run serves the process's stdin/stdout, in raw mode when both are
// terminals.
func (c *Console) Run() error {
	fd := int(os.Stdin.Fd())
	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	if interactive {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("console: raw mode: %w", err)
		}
		defer term.Restore(fd, old)
	}
	return c.Serve(stdio{os.Stdin, os.Stdout}, interactive)
}
