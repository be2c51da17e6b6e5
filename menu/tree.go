package menu

import "fmt"

// EntryID indexes an entry inside its Tree.
type EntryID int32

// NoEntry is the null link.
const NoEntry EntryID = -1

// Kind distinguishes what SELECT does on a childless entry.
type Kind uint8

const (
	// KindGroup has no action of its own; it only groups children.
	KindGroup Kind = iota
	// KindLeaf carries a user callback.
	KindLeaf
	// KindBack moves the cursor to its parent when selected.
	KindBack
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindLeaf:
		return "leaf"
	case KindBack:
		return "back"
	default:
		return "unknown"
	}
}

type entry struct {
	label string
	kind  Kind
	cb    Callback
	ctx   any

	parent EntryID
	child  EntryID
	next   EntryID
	prev   EntryID
}

// Tree is an arena of menu entries linked by child and sibling indices.
//
// Entries are never removed. Links are checked when they are made so a
// malformed tree cannot be built through the public API.
type Tree struct {
	entries []entry
}

func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) newEntry(label string, kind Kind, cb Callback, ctx any) EntryID {
	id := EntryID(len(t.entries))
	t.entries = append(t.entries, entry{
		label:  label,
		kind:   kind,
		cb:     cb,
		ctx:    ctx,
		parent: NoEntry,
		child:  NoEntry,
		next:   NoEntry,
		prev:   NoEntry,
	})
	return id
}

// Add creates an unlinked entry. A nil callback makes it a group.
func (t *Tree) Add(label string, cb Callback, ctx any) EntryID {
	if cb == nil {
		return t.newEntry(label, KindGroup, nil, ctx)
	}
	return t.newEntry(label, KindLeaf, cb, ctx)
}

// AddGroup creates an unlinked entry without an action.
func (t *Tree) AddGroup(label string) EntryID {
	return t.newEntry(label, KindGroup, nil, nil)
}

// AddBack creates an unlinked entry that navigates to its parent, for
// hardware without a dedicated back button.
func (t *Tree) AddBack(label string) EntryID {
	return t.newEntry(label, KindBack, nil, nil)
}

// SetCallback attaches or replaces the action of an existing entry.
func (t *Tree) SetCallback(id EntryID, cb Callback, ctx any) error {
	e, err := t.get(id)
	if err != nil {
		return err
	}
	if e.kind == KindBack {
		return fmt.Errorf("%w: entry %d is a back entry", ErrMalformedTree, id)
	}
	e.cb = cb
	e.ctx = ctx
	if cb == nil {
		e.kind = KindGroup
	} else {
		e.kind = KindLeaf
	}
	return nil
}

// AddChild links child below parent, after any existing children.
func (t *Tree) AddChild(parent, child EntryID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	if err := t.checkDetached(parent, child); err != nil {
		return err
	}
	if p.child != NoEntry {
		return t.appendSibling(p.child, child)
	}
	p.child = child
	t.entries[child].parent = parent
	return nil
}

// AddSibling appends sibling at the tail of node's sibling chain.
func (t *Tree) AddSibling(node, sibling EntryID) error {
	if _, err := t.get(node); err != nil {
		return err
	}
	if err := t.checkDetached(node, sibling); err != nil {
		return err
	}
	return t.appendSibling(node, sibling)
}

func (t *Tree) appendSibling(node, sibling EntryID) error {
	tail := node
	for t.entries[tail].next != NoEntry {
		tail = t.entries[tail].next
	}
	t.entries[tail].next = sibling
	s := &t.entries[sibling]
	s.prev = tail
	s.parent = t.entries[node].parent
	return nil
}

// checkDetached verifies that n can be linked next to or below at.
func (t *Tree) checkDetached(at, n EntryID) error {
	e, err := t.get(n)
	if err != nil {
		return err
	}
	if n == at {
		return fmt.Errorf("%w: entry %d linked to itself", ErrMalformedTree, n)
	}
	if e.parent != NoEntry || e.prev != NoEntry || e.next != NoEntry {
		return fmt.Errorf("%w: entry %d (%q) is already linked", ErrMalformedTree, n, e.label)
	}
	// n is a chain head with no parent; it must not sit above at.
	for cur := at; cur != NoEntry; cur = t.entries[t.head(cur)].parent {
		if cur == n || t.head(cur) == n {
			return fmt.Errorf("%w: linking entry %d (%q) would create a cycle", ErrMalformedTree, n, e.label)
		}
	}
	return nil
}

func (t *Tree) head(id EntryID) EntryID {
	for t.entries[id].prev != NoEntry {
		id = t.entries[id].prev
	}
	return id
}

func (t *Tree) get(id EntryID) (*entry, error) {
	if id < 0 || int(id) >= len(t.entries) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntry, id)
	}
	return &t.entries[id], nil
}

func (t *Tree) valid(id EntryID) bool {
	return id >= 0 && int(id) < len(t.entries)
}

// Execute runs the entry callback, if any.
func (t *Tree) Execute(id EntryID) Result {
	if !t.valid(id) {
		return ResultNone
	}
	e := t.entries[id]
	if e.cb == nil {
		return ResultNone
	}
	return e.cb(e.label, e.ctx)
}

// IsBack reports whether selecting id navigates to its parent.
func (t *Tree) IsBack(id EntryID) bool {
	return t.valid(id) && t.entries[id].kind == KindBack
}

func (t *Tree) Len() int { return len(t.entries) }

func (t *Tree) Label(id EntryID) string {
	if !t.valid(id) {
		return ""
	}
	return t.entries[id].label
}

func (t *Tree) Kind(id EntryID) Kind {
	if !t.valid(id) {
		return KindGroup
	}
	return t.entries[id].kind
}

func (t *Tree) Parent(id EntryID) EntryID {
	return t.link(id, func(e *entry) EntryID { return e.parent })
}
func (t *Tree) Child(id EntryID) EntryID {
	return t.link(id, func(e *entry) EntryID { return e.child })
}
func (t *Tree) Next(id EntryID) EntryID { return t.link(id, func(e *entry) EntryID { return e.next }) }
func (t *Tree) Prev(id EntryID) EntryID { return t.link(id, func(e *entry) EntryID { return e.prev }) }

func (t *Tree) link(id EntryID, f func(*entry) EntryID) EntryID {
	if !t.valid(id) {
		return NoEntry
	}
	return f(&t.entries[id])
}

// Children returns the child chain of id in order.
func (t *Tree) Children(id EntryID) []EntryID {
	var out []EntryID
	for c := t.Child(id); c != NoEntry; c = t.entries[c].next {
		out = append(out, c)
	}
	return out
}

// Walk visits first and its following siblings depth-first, children
// before the next sibling. Returning false from fn stops the walk.
func (t *Tree) Walk(first EntryID, fn func(id EntryID, depth int) bool) {
	t.walk(first, 0, fn)
}

func (t *Tree) walk(id EntryID, depth int, fn func(EntryID, int) bool) bool {
	for ; t.valid(id); id = t.entries[id].next {
		if !fn(id, depth) {
			return false
		}
		if !t.walk(t.entries[id].child, depth+1, fn) {
			return false
		}
	}
	return true
}
