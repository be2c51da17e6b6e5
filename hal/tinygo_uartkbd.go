//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// uartKeyboard reads key presses from the log UART so a serial terminal can
// drive the menu next to the buttons.
type uartKeyboard struct {
	uart *machine.UART
	ch   chan KeyEvent
	dec  serialDecoder
}

func newUARTKeyboard(uart *machine.UART) *uartKeyboard {
	k := &uartKeyboard{uart: uart, ch: make(chan KeyEvent, 16)}
	go k.run()
	return k
}

func (k *uartKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *uartKeyboard) run() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}
	for {
		if k.uart.Buffered() == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		b, err := k.uart.ReadByte()
		if err != nil {
			continue
		}
		k.dec.feed(b, emit)
	}
}
