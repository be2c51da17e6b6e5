// Package numscroll tracks a bounded integer that is scrolled up and down in
// fixed steps. Values saturate at the bounds; they never wrap.
package numscroll

import (
	"errors"
	"fmt"
	"math"
)

var ErrBounds = errors.New("numscroll: invalid bounds")

type Counter struct {
	min  int
	max  int
	step int
	cur  int
}

// New returns a counter positioned at start, clamped into [min, max].
func New(min, max, start, step int) (*Counter, error) {
	if min > max {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrBounds, min, max)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %d", ErrBounds, step)
	}
	return &Counter{min: min, max: max, step: step, cur: clamp(start, min, max)}, nil
}

func (c *Counter) Value() int { return c.cur }
func (c *Counter) Min() int   { return c.min }
func (c *Counter) Max() int   { return c.max }
func (c *Counter) Step() int  { return c.step }

// Increase adds one step and returns the new value.
func (c *Counter) Increase() int {
	// max-cur overflows for ranges wider than MaxInt.
	if c.max < math.MinInt+c.step || c.cur > c.max-c.step {
		c.cur = c.max
	} else {
		c.cur += c.step
	}
	return c.cur
}

// Decrease subtracts one step and returns the new value.
func (c *Counter) Decrease() int {
	if c.min > math.MaxInt-c.step || c.cur < c.min+c.step {
		c.cur = c.min
	} else {
		c.cur -= c.step
	}
	return c.cur
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
