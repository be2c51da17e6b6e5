//go:build !tinygo

package menufile

import (
	"context"
	"os/exec"
)

// ExecRunner runs argv as a child process.
func ExecRunner(ctx context.Context, argv []string) ([]byte, error) {
	return exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
}
