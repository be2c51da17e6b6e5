//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrStop ends a host runner without reporting an error.
var ErrStop = errors.New("hal: stop")

type hostHAL struct {
	cfg    Config
	logger *hostLogger
	gpio   GPIO
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation. The host renders the LCD into a
// framebuffer; it has no character LCD of its own.
func New(cfg Config) HAL {
	cfg = cfg.withDefaults()
	w := cfg.Log
	if w == nil {
		w = os.Stderr
	}
	return &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{w: w},
		gpio:   NewGPIO(buttonPins()...),
		fb:     newHostFramebuffer(cfg),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) CharLCD() CharLCD         { return nil }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// NewWriterLogger returns a Logger writing one line per call to w.
func NewWriterLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
