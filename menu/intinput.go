package menu

import (
	"fmt"
	"strconv"

	"lcdmenu/menu/numscroll"
)

// inputOverlay is the integer input screen that captures actions until
// SELECT or BACK.
type inputOverlay struct {
	counter *numscroll.Counter
	out     *int
	label   []string
	row     int
}

// DoIntInput opens the integer input overlay.
//
// start is clamped into [min, max] and written to *out straight away; every
// UP/DOWN writes the new value to *out again. Leaving with BACK does not
// restore the previous value. An overlay that is already open is replaced.
func (c *Controller) DoIntInput(min, max, start, step int, label []string, out *int) error {
	if out == nil {
		return fmt.Errorf("%w: nil output", ErrOutOfRangeInput)
	}
	counter, err := numscroll.New(min, max, start, step)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfRangeInput, err)
	}

	row := len(label)
	if rows := c.surface.Rows(); row >= rows {
		row = rows - 1
	}
	if row < 0 {
		row = 0
	}

	c.overlay = &inputOverlay{
		counter: counter,
		out:     out,
		label:   append([]string(nil), label...),
		row:     row,
	}
	*out = counter.Value()
	c.drawInput()
	return nil
}

// InputValue reports the overlay value while integer input is active.
func (c *Controller) InputValue() (int, bool) {
	if c.overlay == nil {
		return 0, false
	}
	return c.overlay.counter.Value(), true
}

func (c *Controller) applyInput(a Action) {
	o := c.overlay
	switch a {
	case ActionUp:
		c.commitInput(o.counter.Decrease())
	case ActionDown:
		c.commitInput(o.counter.Increase())
	case ActionSelect, ActionBack:
		c.overlay = nil
		if c.root == NoEntry {
			c.surface.Clear()
			return
		}
		c.drawWindow()
	}
}

func (c *Controller) commitInput(v int) {
	*c.overlay.out = v
	c.printRight(strconv.Itoa(v), c.overlay.row)
}

func (c *Controller) drawInput() {
	o := c.overlay
	c.printRows(o.label, noSelection)
	c.printRight(strconv.Itoa(o.counter.Value()), o.row)
}
