package input

import (
	"fmt"

	"lcdmenu/hal"
	"lcdmenu/menu"
)

// DefaultDebounce is the number of identical samples a button needs
// before a level change counts.
const DefaultDebounce = 3

type button struct {
	pin    hal.GPIOPin
	action menu.Action
	stable bool
	last   bool
	count  int
}

// ButtonPad polls active-low push buttons wired to GPIO pins and reports a
// press once the new level has held for the debounce count.
type ButtonPad struct {
	buttons  []*button
	debounce int
}

// NewButtonPad configures the named pins as pulled-up inputs. Pins that
// are missing are skipped; a pad with no buttons is valid and never fires.
func NewButtonPad(g hal.GPIO, debounce int) (*ButtonPad, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	pad := &ButtonPad{debounce: debounce}
	wiring := []struct {
		name   string
		action menu.Action
	}{
		{hal.PinButtonUp, menu.ActionUp},
		{hal.PinButtonDown, menu.ActionDown},
		{hal.PinButtonSelect, menu.ActionSelect},
		{hal.PinButtonBack, menu.ActionBack},
	}
	for _, w := range wiring {
		pin := hal.PinByName(g, w.name)
		if pin == nil {
			continue
		}
		if err := pin.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
			return nil, fmt.Errorf("input: button %s: %w", w.name, err)
		}
		level, err := pin.Read()
		if err != nil {
			return nil, fmt.Errorf("input: button %s: %w", w.name, err)
		}
		pad.buttons = append(pad.buttons, &button{pin: pin, action: w.action, stable: level, last: level})
	}
	return pad, nil
}

// Len reports how many buttons are wired.
func (p *ButtonPad) Len() int { return len(p.buttons) }

// Poll samples every button once and returns the actions whose press
// settled on this sample.
func (p *ButtonPad) Poll() []menu.Action {
	var out []menu.Action
	for _, b := range p.buttons {
		level, err := b.pin.Read()
		if err != nil {
			continue
		}
		if level != b.last {
			b.last = level
			b.count = 1
		} else if b.count < p.debounce {
			b.count++
		}
		if b.count >= p.debounce && level != b.stable {
			b.stable = level
			if !level {
				out = append(out, b.action)
			}
		}
	}
	return out
}
