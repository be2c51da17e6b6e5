package hal

import "io"

// Config sizes the devices a HAL exposes. Platforms ignore what they do
// not have: the host has no character LCD and the board no framebuffer.
type Config struct {
	// Character LCD geometry.
	Cols int
	Rows int

	// Framebuffer size in pixels and the window zoom factor.
	Width  int
	Height int
	Scale  int

	Title string
	// Log receives log lines on the host; nil means stderr.
	Log io.Writer
}

func (c Config) withDefaults() Config {
	if c.Cols <= 0 {
		c.Cols = 16
	}
	if c.Rows <= 0 {
		c.Rows = 2
	}
	if c.Width <= 0 {
		c.Width = c.Cols * 6
	}
	if c.Height <= 0 {
		c.Height = c.Rows * 8
	}
	if c.Scale <= 0 {
		c.Scale = 3
	}
	if c.Title == "" {
		c.Title = "lcdmenu"
	}
	return c
}

// Button pin names, in the order the button pad polls them.
const (
	PinButtonUp     = "BTN_UP"
	PinButtonDown   = "BTN_DOWN"
	PinButtonSelect = "BTN_SELECT"
	PinButtonBack   = "BTN_BACK"
)

// ButtonPins lists the pins the button pad expects.
var ButtonPins = []string{PinButtonUp, PinButtonDown, PinButtonSelect, PinButtonBack}
