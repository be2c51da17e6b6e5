//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
}

// RunHeadless drives the app at a fixed rate without opening a window.
// It returns when ctx ends, after Ticks steps, or when a step returns
// ErrStop.
func RunHeadless(ctx context.Context, cfg Config, newApp func(HAL) func() error, hc HeadlessConfig) error {
	if hc.Hz <= 0 {
		hc.Hz = 60
	}
	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}

	h := New(cfg)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrStop) {
						return nil
					}
					return err
				}
			}
			tick++
			if hc.Ticks > 0 && tick >= hc.Ticks {
				return nil
			}
		}
	}
}
