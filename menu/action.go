package menu

import (
	"fmt"
	"strings"
)

// Action is one of the abstract user inputs the controller understands.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionSelect
	ActionBack
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	default:
		return "unknown"
	}
}

// ParseAction accepts the names String returns, case-insensitively.
// "none" is rejected.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return ActionUp, nil
	case "down":
		return ActionDown, nil
	case "select":
		return ActionSelect, nil
	case "back":
		return ActionBack, nil
	}
	return ActionNone, fmt.Errorf("menu: unknown action %q", s)
}

// Result tells the controller what to do with the display after a callback.
type Result uint8

const (
	ResultNone Result = iota
	// ResultRetainDisplay keeps whatever the callback painted on screen.
	ResultRetainDisplay
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultRetainDisplay:
		return "retain-display"
	default:
		return "unknown"
	}
}

// Callback is attached to leaf entries and invoked on SELECT.
//
// ctx is the opaque value supplied when the callback was attached.
type Callback func(label string, ctx any) Result
