package menu

import "errors"

var (
	// ErrMalformedTree is returned when a link would break the tree shape.
	ErrMalformedTree = errors.New("menu: malformed tree")
	// ErrNoActiveRoot is returned when navigation runs before SetRoot.
	ErrNoActiveRoot = errors.New("menu: no active root")
	// ErrOutOfRangeInput is returned for unusable integer input bounds.
	ErrOutOfRangeInput = errors.New("menu: integer input out of range")
	// ErrUnknownEntry is returned for ids that do not belong to the tree.
	ErrUnknownEntry = errors.New("menu: unknown entry")
)
