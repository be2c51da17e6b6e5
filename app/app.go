// Package app assembles a menu controller, a display surface and the input
// sources of a HAL into something a runner can tick.
package app

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"lcdmenu/fonts/lcdcell"
	"lcdmenu/hal"
	"lcdmenu/input"
	"lcdmenu/lcd"
	"lcdmenu/menu"
	"lcdmenu/menufile"
)

//go:embed demo.yaml
var demoMenu []byte

// Renderers for framebuffer displays.
const (
	RendererGrid     = "grid"
	RendererTinyterm = "tinyterm"
)

var ErrNoDisplay = errors.New("app: HAL has neither a character LCD nor a framebuffer")

// Options describe one menu instance.
type Options struct {
	Rows, Cols int
	Marker     byte
	RootAction bool
	Transition bool
	StepDelay  time.Duration

	Face     lcdcell.Face
	Palette  lcd.Palette
	Renderer string

	// MenuFile is a YAML or TOML menu definition; empty selects the
	// built-in demo.
	MenuFile string
	Run      menufile.Runner

	Bindings map[menu.Action][]string
	Debounce int

	// Script actions are applied one per step.
	Script []menu.Action
	// StopWhenDone ends the run once the script is exhausted.
	StopWhenDone bool
}

// DefaultOptions is a 16x2 display showing the demo menu.
func DefaultOptions() Options {
	return Options{
		Rows:       2,
		Cols:       16,
		Marker:     '>',
		Transition: true,
		StepDelay:  10 * time.Millisecond,
		Face:       lcdcell.DefaultFace,
		Palette:    lcd.PaletteGreen,
		Renderer:   RendererGrid,
		Debounce:   input.DefaultDebounce,
	}
}

// LoadMenu reads o.MenuFile, or the demo when it is empty.
func LoadMenu(o Options) (*menufile.File, error) {
	if o.MenuFile != "" {
		return menufile.Load(o.MenuFile)
	}
	return menufile.Parse(demoMenu, menufile.FormatYAML)
}

// Build compiles the menu onto s. The root action is on when either the
// options or the menu file ask for it.
func Build(s menu.Surface, o Options, log hal.Logger) (*menu.Controller, *menufile.Menu, error) {
	f, err := LoadMenu(o)
	if err != nil {
		return nil, nil, err
	}
	return build(s, f, o, log, nil)
}

func build(s menu.Surface, f *menufile.File, o Options, log hal.Logger, flush func() error) (*menu.Controller, *menufile.Menu, error) {
	var tr menu.Transition
	if o.Transition {
		w := &menu.ScrollWipe{Surface: s, Delay: o.StepDelay}
		if flush != nil {
			w.Sleep = func(d time.Duration) {
				_ = flush()
				time.Sleep(d)
			}
		}
		tr = w
	}
	ctrl := menu.NewController(s, nil,
		menu.WithMarker(o.Marker),
		menu.WithTransition(tr),
	)
	m, err := menufile.Compile(f, ctrl, menufile.Options{Run: o.Run, Logger: log})
	if err != nil {
		return nil, nil, err
	}
	if o.RootAction {
		ctrl.SetRootAction(true)
	}
	return ctrl, m, nil
}

// output is a surface that has to be flushed to become visible.
type output interface {
	menu.Surface
	Display() error
}

// App ticks one controller from every input source of a HAL.
type App struct {
	h    hal.HAL
	log  hal.Logger
	ctrl *menu.Controller
	menu *menufile.Menu
	out  output

	kbd    hal.Keyboard
	keys   *input.Keymap
	pad    *input.ButtonPad
	script *input.Script
	stop   bool

	err error
}

// New builds the menu on h's display and draws the first screen.
func New(h hal.HAL, o Options) (*App, error) {
	log := h.Logger()
	out, err := surface(h, o)
	if err != nil {
		return nil, err
	}

	f, err := LoadMenu(o)
	if err != nil {
		return nil, err
	}
	ctrl, m, err := build(out, f, o, log, out.Display)
	if err != nil {
		return nil, err
	}

	keys := input.DefaultKeymap()
	if o.Bindings != nil {
		if keys, err = input.NewKeymap(o.Bindings); err != nil {
			return nil, err
		}
	}
	pad, err := input.NewButtonPad(h.GPIO(), o.Debounce)
	if err != nil {
		return nil, err
	}

	a := &App{
		h:      h,
		log:    log,
		ctrl:   ctrl,
		menu:   m,
		out:    out,
		keys:   keys,
		pad:    pad,
		script: input.NewScript(o.Script),
		stop:   o.StopWhenDone,
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	if err := ctrl.Draw(); err != nil {
		return nil, err
	}
	if err := out.Display(); err != nil {
		return nil, err
	}
	a.logf("app: %dx%d, %d buttons, root %q", out.Cols(), out.Rows(), pad.Len(), ctrl.Tree().Label(ctrl.Root()))
	return a, nil
}

// surface prefers a character LCD and falls back to rendering cells on the
// framebuffer.
func surface(h hal.HAL, o Options) (output, error) {
	d := h.Display()
	if d == nil {
		return nil, ErrNoDisplay
	}
	if c := d.CharLCD(); c != nil {
		return c, nil
	}
	fb := d.Framebuffer()
	if fb == nil {
		return nil, ErrNoDisplay
	}
	px := hal.NewFramebufferDisplay(fb)
	switch o.Renderer {
	case RendererTinyterm:
		return lcd.NewTerm(px, o.Face, o.Cols, o.Rows)
	case RendererGrid, "":
		return lcd.NewPanel(px, o.Face, o.Palette, o.Cols, o.Rows), nil
	}
	return nil, fmt.Errorf("app: unknown renderer %q", o.Renderer)
}

func (a *App) Controller() *menu.Controller { return a.ctrl }
func (a *App) Menu() *menufile.Menu         { return a.menu }

// Step drains the keyboard, samples the buttons, plays one scripted action
// and flushes the display.
func (a *App) Step() (err error) {
	if a.err != nil {
		return a.err
	}
	defer func() {
		if r := recover(); r != nil {
			a.err = a.panicked(r)
			err = a.err
		}
	}()

	if a.kbd != nil {
	drain:
		for {
			select {
			case ev := <-a.kbd.Events():
				a.apply(a.keys.Action(ev), "key")
			default:
				break drain
			}
		}
	}
	for _, act := range a.pad.Poll() {
		a.apply(act, "button")
	}
	if act, ok := a.script.Next(); ok {
		a.apply(act, "script")
	}

	if err := a.out.Display(); err != nil {
		return err
	}
	if a.stop && a.script.Done() {
		a.logScreen()
		return hal.ErrStop
	}
	return nil
}

// logScreen writes the current cells to the log, one row per line.
func (a *App) logScreen() {
	g, ok := a.out.(interface{ Lines() []string })
	if !ok {
		return
	}
	for _, line := range g.Lines() {
		a.logf("screen: |%s|", line)
	}
}

func (a *App) apply(act menu.Action, src string) {
	if act == menu.ActionNone {
		return
	}
	if err := a.ctrl.Apply(act); err != nil {
		a.logf("app: %s %s: %v", src, act, err)
		return
	}
	if v, ok := a.ctrl.InputValue(); ok {
		a.logf("app: %s %s -> input %d", src, act, v)
		return
	}
	a.logf("app: %s %s -> %q", src, act, a.ctrl.Tree().Label(a.ctrl.Cursor()))
}

func (a *App) logf(format string, args ...any) {
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// Runner adapts New to the host runners. A build failure is reported by
// the first step.
func Runner(o Options) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		a, err := New(h, o)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}
}

// Run builds the app and steps it every tick until a step fails. Boards
// call it from main.
func Run(h hal.HAL, o Options, tick time.Duration) error {
	a, err := New(h, o)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		return err
	}
	for {
		if err := a.Step(); err != nil {
			if errors.Is(err, hal.ErrStop) {
				return nil
			}
			return err
		}
		time.Sleep(tick)
	}
}
