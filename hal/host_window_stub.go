//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ Config, _ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build with CGO_ENABLED=1)")
}

// hostKeyboard never produces events without the window backend; headless
// runs take their input from GPIO and scripts.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }
