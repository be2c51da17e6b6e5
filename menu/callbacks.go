package menu

import "fmt"

// SetTrue stores true in the *bool passed as callback context.
func SetTrue(_ string, ctx any) Result {
	if p, ok := ctx.(*bool); ok && p != nil {
		*p = true
	}
	return ResultNone
}

// SetFalse stores false in the *bool passed as callback context.
func SetFalse(_ string, ctx any) Result {
	if p, ok := ctx.(*bool); ok && p != nil {
		*p = false
	}
	return ResultNone
}

// Toggle flips the *bool passed as callback context.
func Toggle(_ string, ctx any) Result {
	if p, ok := ctx.(*bool); ok && p != nil {
		*p = !*p
	}
	return ResultNone
}

// IntSpec describes an integer input opened from a menu entry.
type IntSpec struct {
	Min, Max, Step int
	// Start is used when Out holds a value outside [Min, Max] or when
	// FromStart is set; otherwise the current *Out is the start value.
	Start     int
	FromStart bool
	Label     []string
	Out       *int
}

// IntInput returns a callback that opens the integer input overlay on c.
// When spec.Label is empty the entry label is shown instead. Bounds and the
// output are checked here so the callback itself cannot fail.
func IntInput(c *Controller, spec IntSpec) (Callback, error) {
	if spec.Out == nil {
		return nil, fmt.Errorf("%w: no output variable", ErrOutOfRangeInput)
	}
	if spec.Min > spec.Max || spec.Step <= 0 {
		return nil, fmt.Errorf("%w: min %d max %d step %d", ErrOutOfRangeInput, spec.Min, spec.Max, spec.Step)
	}
	return func(label string, _ any) Result {
		lines := spec.Label
		if len(lines) == 0 {
			lines = []string{label}
		}
		start := spec.Start
		if !spec.FromStart && *spec.Out >= spec.Min && *spec.Out <= spec.Max {
			start = *spec.Out
		}
		if err := c.DoIntInput(spec.Min, spec.Max, start, spec.Step, lines, spec.Out); err != nil {
			return ResultNone
		}
		return ResultRetainDisplay
	}, nil
}
