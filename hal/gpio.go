package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIO provides access to general-purpose IO pins.
//
// Implementations may return nil if GPIO is unsupported.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// PinByName returns the first pin called name, or nil.
func PinByName(g GPIO, name string) GPIOPin {
	if g == nil {
		return nil
	}
	for i := 0; i < g.PinCount(); i++ {
		if p := g.Pin(i); p != nil && p.Name() == name {
			return p
		}
	}
	return nil
}

type nullGPIO struct{}

func (nullGPIO) PinCount() int      { return 0 }
func (nullGPIO) Pin(id int) GPIOPin { return nil }

type pinSet struct {
	pins []GPIOPin
}

// NewGPIO groups pins into a GPIO bank. An empty bank reports no pins.
func NewGPIO(pins ...GPIOPin) GPIO {
	if len(pins) == 0 {
		return nullGPIO{}
	}
	return &pinSet{pins: pins}
}

func (g *pinSet) PinCount() int { return len(g.pins) }

func (g *pinSet) Pin(id int) GPIOPin {
	if id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

// VirtualPin is an in-memory pin. Drive sets the level an outside source
// presents on it; the host uses it to stand in for push buttons.
type VirtualPin struct {
	mu    sync.Mutex
	name  string
	caps  GPIOCaps
	mode  GPIOMode
	pull  GPIOPull
	level bool
}

func NewVirtualPin(name string, caps GPIOCaps) *VirtualPin {
	return &VirtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *VirtualPin) Name() string   { return p.name }
func (p *VirtualPin) Caps() GPIOCaps { return p.caps }

func (p *VirtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
		if mode == GPIOModeInput {
			p.level = true
		}
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
		if mode == GPIOModeInput {
			p.level = false
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	return nil
}

func (p *VirtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *VirtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

// Drive sets the input level as if an external circuit pulled the pin.
func (p *VirtualPin) Drive(level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

func buttonPins() []GPIOPin {
	pins := make([]GPIOPin, 0, len(ButtonPins))
	for _, name := range ButtonPins {
		pins = append(pins, NewVirtualPin(name, GPIOCapInput|GPIOCapPullUp))
	}
	return pins
}
