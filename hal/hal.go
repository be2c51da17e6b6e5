package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// CharLCD is a character-addressed display such as an HD44780 module.
//
// Writes land at the cursor and advance it by one column; nothing wraps.
// Display flushes buffered output, if the device buffers at all.
type CharLCD interface {
	Rows() int
	Cols() int
	Clear()
	SetCursor(col, row int)
	Write(c byte)
	Print(s string)
	Display() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display exposes whichever output the platform has. Either accessor may
// return nil.
type Display interface {
	Framebuffer() Framebuffer
	CharLCD() CharLCD
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the menu and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	GPIO() GPIO
}
