//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

type tinyGoDisplay struct {
	lcd CharLCD
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return nil }
func (d tinyGoDisplay) CharLCD() CharLCD         { return d.lcd }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type machinePin struct {
	pin  machine.Pin
	name string
	mode GPIOMode
}

func (p *machinePin) Name() string { return p.name }
func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch {
	case mode == GPIOModeOutput:
		m = machine.PinOutput
	case mode == GPIOModeInput && pull == GPIOPullUp:
		m = machine.PinInputPullup
	case mode == GPIOModeInput && pull == GPIOPullDown:
		m = machine.PinInputPulldown
	case mode == GPIOModeInput:
		m = machine.PinInput
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	p.mode = mode
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p *machinePin) Write(level bool) error {
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.pin.Set(level)
	return nil
}
