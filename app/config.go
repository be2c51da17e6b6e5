//go:build !tinygo

package app

import (
	"io"

	"lcdmenu/config"
	"lcdmenu/fonts/lcdcell"
	"lcdmenu/hal"
	"lcdmenu/input"
	"lcdmenu/lcd"
)

// FromConfig turns validated settings into Options.
func FromConfig(c config.Config) (Options, error) {
	marker, err := c.MarkerByte()
	if err != nil {
		return Options{}, err
	}
	face, err := lcdcell.Lookup(c.Display.Font)
	if err != nil {
		return Options{}, err
	}
	pal, err := lcd.PaletteByName(c.Display.Palette)
	if err != nil {
		return Options{}, err
	}
	bindings, err := c.Bindings()
	if err != nil {
		return Options{}, err
	}
	script, err := input.ParseScript(c.Headless.Script)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Rows:         c.Display.Rows,
		Cols:         c.Display.Cols,
		Marker:       marker,
		RootAction:   c.Menu.RootAction,
		Transition:   c.Transition.Enabled,
		StepDelay:    c.Transition.StepDelay,
		Face:         face,
		Palette:      pal,
		Renderer:     c.Display.Renderer,
		MenuFile:     c.Menu.File,
		Bindings:     bindings,
		Debounce:     c.Input.Debounce,
		Script:       script,
		StopWhenDone: len(script) > 0 && c.Headless.Ticks == 0,
	}, nil
}

// HALConfig sizes the host framebuffer for the renderer in o.
func HALConfig(o Options, scale int, log io.Writer) hal.Config {
	w, h := lcd.PanelSize(o.Face, o.Cols, o.Rows)
	if o.Renderer == RendererTinyterm {
		w, h = lcd.TermSize(o.Face, o.Cols, o.Rows)
	}
	return hal.Config{
		Cols:   o.Cols,
		Rows:   o.Rows,
		Width:  w,
		Height: h,
		Scale:  scale,
		Log:    log,
	}
}
