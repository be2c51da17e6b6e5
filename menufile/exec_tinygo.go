//go:build tinygo

package menufile

import (
	"context"

	"lcdmenu/hal"
)

// ExecRunner has no processes to start on a board.
func ExecRunner(context.Context, []string) ([]byte, error) {
	return nil, hal.ErrNotImplemented
}
