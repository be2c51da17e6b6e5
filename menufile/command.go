package menufile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lcdmenu/hal"
	"lcdmenu/menu"

	"github.com/google/shlex"
)

const DefaultCommandTimeout = 5 * time.Second

// Runner executes argv and returns its combined output.
type Runner func(ctx context.Context, argv []string) ([]byte, error)

type command struct {
	label   string
	argv    []string
	c       *menu.Controller
	run     Runner
	timeout time.Duration
	log     hal.Logger
}

func newCommand(label, line string, c *menu.Controller, opts Options) (*command, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", line, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}
	return &command{
		label:   label,
		argv:    argv,
		c:       c,
		run:     opts.Run,
		timeout: opts.CommandTimeout,
		log:     opts.Logger,
	}, nil
}

// callback runs the command and shows the label over the first line of
// output, or the error, until the next action.
func (cmd *command) callback(string, any) menu.Result {
	ctx, cancel := context.WithTimeout(context.Background(), cmd.timeout)
	defer cancel()

	out, err := cmd.run(ctx, cmd.argv)
	status := firstLine(out)
	if err != nil {
		status = "err: " + err.Error()
	}
	if cmd.log != nil {
		if err != nil {
			cmd.log.WriteLineString(fmt.Sprintf("menufile: command %q: %v", strings.Join(cmd.argv, " "), err))
		} else {
			cmd.log.WriteLineString(fmt.Sprintf("menufile: command %q: ok", strings.Join(cmd.argv, " ")))
		}
	}

	s := cmd.c.Surface()
	s.Clear()
	s.Print(clip(cmd.label, s.Cols()))
	if s.Rows() > 1 {
		s.SetCursor(0, 1)
		s.Print(clip(status, s.Cols()))
	}
	return menu.ResultRetainDisplay
}

func firstLine(out []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line
		}
	}
	return "ok"
}

func clip(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
