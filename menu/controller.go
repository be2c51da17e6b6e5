package menu

import (
	"errors"
	"fmt"
)

// ErrReentrant is returned when a callback dispatches an action other than
// the single BACK a back-style callback is allowed to issue.
var ErrReentrant = errors.New("menu: reentrant action")

// Mode says which state currently receives actions.
type Mode uint8

const (
	ModeBrowsing Mode = iota
	ModeIntInput
)

func (m Mode) String() string {
	if m == ModeIntInput {
		return "int-input"
	}
	return "browsing"
}

// Controller walks a Tree in response to actions and keeps the surface in
// sync with the cursor.
//
// It is not safe for concurrent use; front-ends call Apply from a single
// goroutine.
type Controller struct {
	tree       *Tree
	surface    Surface
	transition Transition
	marker     byte
	rootAction bool

	root   EntryID
	cursor EntryID

	// overlay is nil while browsing.
	overlay *inputOverlay

	depth int
}

type Option func(*Controller)

// WithRootAction makes SELECT on an entry with children run the entry's
// own callback before descending.
func WithRootAction(enabled bool) Option {
	return func(c *Controller) { c.rootAction = enabled }
}

// WithTransition sets the screen-change animation. nil disables it.
func WithTransition(t Transition) Option {
	return func(c *Controller) {
		if t == nil {
			t = NoTransition{}
		}
		c.transition = t
	}
}

// WithMarker sets the glyph drawn in front of the highlighted row.
func WithMarker(b byte) Option {
	return func(c *Controller) { c.marker = b }
}

func NewController(s Surface, tree *Tree, opts ...Option) *Controller {
	if tree == nil {
		tree = NewTree()
	}
	c := &Controller{
		tree:       tree,
		surface:    s,
		transition: NoTransition{},
		marker:     '>',
		root:       NoEntry,
		cursor:     NoEntry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Tree() *Tree      { return c.tree }
func (c *Controller) Surface() Surface { return c.surface }
func (c *Controller) Root() EntryID    { return c.root }
func (c *Controller) Cursor() EntryID  { return c.cursor }
func (c *Controller) RootAction() bool { return c.rootAction }

func (c *Controller) SetRootAction(enabled bool) { c.rootAction = enabled }

func (c *Controller) Mode() Mode {
	if c.overlay != nil {
		return ModeIntInput
	}
	return ModeBrowsing
}

// SetRoot makes id the top of the menu and moves the cursor there.
func (c *Controller) SetRoot(id EntryID) error {
	if !c.tree.valid(id) {
		return fmt.Errorf("%w: root %d", ErrUnknownEntry, id)
	}
	c.root = id
	c.cursor = id
	return nil
}

// SelectRoot moves the cursor back to the root without redrawing.
func (c *Controller) SelectRoot() error {
	if c.root == NoEntry {
		return ErrNoActiveRoot
	}
	c.cursor = c.root
	return nil
}

// AddChild links e below the cursor entry.
func (c *Controller) AddChild(e EntryID) error {
	if c.cursor == NoEntry {
		return ErrNoActiveRoot
	}
	return c.tree.AddChild(c.cursor, e)
}

// AddSibling appends e to the cursor's sibling chain.
func (c *Controller) AddSibling(e EntryID) error {
	if c.cursor == NoEntry {
		return ErrNoActiveRoot
	}
	return c.tree.AddSibling(c.cursor, e)
}

// Apply dispatches one action and redraws as needed.
func (c *Controller) Apply(a Action) error {
	if c.depth > 0 && (a != ActionBack || c.depth > 1) {
		return fmt.Errorf("%w: %s", ErrReentrant, a)
	}
	c.depth++
	defer func() { c.depth-- }()

	if c.overlay != nil {
		c.applyInput(a)
		return nil
	}
	if c.root == NoEntry {
		return ErrNoActiveRoot
	}

	c.surface.Clear()
	c.drawWindow()

	switch a {
	case ActionUp:
		c.up()
	case ActionDown:
		c.down()
	case ActionSelect:
		c.selectCursor()
	case ActionBack:
		c.back()
	}
	return nil
}

// Draw repaints the active screen: the input overlay if one is open,
// otherwise the menu window around the cursor.
func (c *Controller) Draw() error {
	if c.overlay != nil {
		c.drawInput()
		return nil
	}
	if c.root == NoEntry {
		return ErrNoActiveRoot
	}
	c.drawWindow()
	return nil
}

func (c *Controller) up() {
	if prev := c.tree.Prev(c.cursor); prev != NoEntry {
		c.cursor = prev
	}
	c.drawWindow()
}

func (c *Controller) down() {
	if next := c.tree.Next(c.cursor); next != NoEntry {
		c.cursor = next
	}
	c.drawWindow()
}

func (c *Controller) selectCursor() {
	cur := c.cursor
	if child := c.tree.Child(cur); child != NoEntry {
		res := ResultNone
		if c.rootAction {
			res = c.tree.Execute(cur)
		}
		c.transition.Wipe(WipeLeft)
		c.cursor = child
		if c.overlay == nil && res != ResultRetainDisplay {
			c.drawWindow()
		}
		return
	}

	res := ResultNone
	if c.tree.IsBack(cur) {
		// Runs as the one nested BACK the depth guard allows.
		_ = c.Apply(ActionBack)
	} else {
		c.transition.Wipe(WipeLeft)
		res = c.tree.Execute(cur)
	}
	if c.overlay == nil && res != ResultRetainDisplay {
		c.drawWindow()
	}
}

func (c *Controller) back() {
	parent := c.tree.Parent(c.cursor)
	if parent == NoEntry {
		return
	}
	c.transition.Wipe(WipeRight)
	c.cursor = parent
	c.drawWindow()
}

// drawWindow shows the cursor plus one neighbour: the next sibling when
// there is one, otherwise the previous sibling above it. A one-row surface
// shows the cursor alone.
func (c *Controller) drawWindow() {
	t := c.tree
	cur := c.cursor
	if c.surface.Rows() < 2 {
		c.printRows([]string{t.Label(cur)}, 0)
		return
	}
	next := t.Next(cur)
	if next != NoEntry {
		c.printRows([]string{t.Label(cur), t.Label(next)}, 0)
		return
	}
	if prev := t.Prev(cur); prev != NoEntry {
		c.printRows([]string{t.Label(prev), t.Label(cur)}, 1)
		return
	}
	c.printRows([]string{t.Label(cur)}, 0)
}
