package menufile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lcdmenu/hal"
	"lcdmenu/menu"
)

var ErrEmpty = errors.New("menufile: no entries")

// Options tune Compile.
type Options struct {
	// Run executes command entries. nil means ExecRunner.
	Run Runner
	// CommandTimeout bounds each command; zero means DefaultCommandTimeout.
	CommandTimeout time.Duration
	// Logger receives command results. May be nil.
	Logger hal.Logger
}

// Menu is a compiled definition: the root entry plus the variables its
// callbacks write to.
type Menu struct {
	Root  menu.EntryID
	Bools map[string]*bool
	Ints  map[string]*int
}

type compiler struct {
	c    *menu.Controller
	tree *menu.Tree
	opts Options
	m    *Menu
}

// Compile adds the entries of f to c's tree and makes the first top-level
// entry the active root. Integer entries open their input on c.
func Compile(f *File, c *menu.Controller, opts Options) (*Menu, error) {
	if len(f.Entries) == 0 {
		return nil, ErrEmpty
	}
	if opts.Run == nil {
		opts.Run = ExecRunner
	}
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = DefaultCommandTimeout
	}
	cp := &compiler{
		c:    c,
		tree: c.Tree(),
		opts: opts,
		m: &Menu{
			Root:  menu.NoEntry,
			Bools: make(map[string]*bool),
			Ints:  make(map[string]*int),
		},
	}
	for name, v := range f.Bools {
		v := v
		cp.m.Bools[name] = &v
	}
	for name, v := range f.Ints {
		v := v
		cp.m.Ints[name] = &v
	}

	prev := menu.NoEntry
	for i := range f.Entries {
		id, err := cp.entry(&f.Entries[i])
		if err != nil {
			return nil, err
		}
		if prev == menu.NoEntry {
			cp.m.Root = id
		} else if err := cp.tree.AddSibling(prev, id); err != nil {
			return nil, fmt.Errorf("menufile: entry %q: %w", f.Entries[i].Label, err)
		}
		prev = id
	}

	if err := c.SetRoot(cp.m.Root); err != nil {
		return nil, err
	}
	c.SetRootAction(f.RootAction)
	return cp.m, nil
}

func (cp *compiler) entry(e *Entry) (menu.EntryID, error) {
	if strings.TrimSpace(e.Label) == "" {
		return menu.NoEntry, errors.New("menufile: entry with empty label")
	}
	wrap := func(err error) error { return fmt.Errorf("menufile: entry %q: %w", e.Label, err) }

	kinds := 0
	for _, set := range []bool{e.Toggle != "", e.Set != "", e.Clear != "", e.Int != nil, e.Command != "", e.Back} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return menu.NoEntry, wrap(errors.New("more than one action"))
	}
	if e.Back && len(e.Children) > 0 {
		return menu.NoEntry, wrap(errors.New("back entry with children"))
	}

	var id menu.EntryID
	switch {
	case e.Back:
		id = cp.tree.AddBack(e.Label)
	case e.Toggle != "":
		id = cp.tree.Add(e.Label, menu.Toggle, cp.boolVar(e.Toggle))
	case e.Set != "":
		id = cp.tree.Add(e.Label, menu.SetTrue, cp.boolVar(e.Set))
	case e.Clear != "":
		id = cp.tree.Add(e.Label, menu.SetFalse, cp.boolVar(e.Clear))
	case e.Int != nil:
		cb, err := cp.intCallback(e.Int)
		if err != nil {
			return menu.NoEntry, wrap(err)
		}
		id = cp.tree.Add(e.Label, cb, nil)
	case e.Command != "":
		cmd, err := newCommand(e.Label, e.Command, cp.c, cp.opts)
		if err != nil {
			return menu.NoEntry, wrap(err)
		}
		id = cp.tree.Add(e.Label, cmd.callback, nil)
	default:
		id = cp.tree.AddGroup(e.Label)
	}

	for i := range e.Children {
		child, err := cp.entry(&e.Children[i])
		if err != nil {
			return menu.NoEntry, err
		}
		if err := cp.tree.AddChild(id, child); err != nil {
			return menu.NoEntry, wrap(err)
		}
	}
	return id, nil
}

func (cp *compiler) boolVar(name string) *bool {
	if p, ok := cp.m.Bools[name]; ok {
		return p
	}
	p := new(bool)
	cp.m.Bools[name] = p
	return p
}

func (cp *compiler) intVar(name string) *int {
	if p, ok := cp.m.Ints[name]; ok {
		return p
	}
	p := new(int)
	cp.m.Ints[name] = p
	return p
}

func (cp *compiler) intCallback(ie *IntEntry) (menu.Callback, error) {
	if ie.Var == "" {
		return nil, errors.New("int entry without var")
	}
	step := ie.Step
	if step == 0 {
		step = 1
	}
	if ie.Min > ie.Max || step < 0 {
		return nil, fmt.Errorf("%w: min %d max %d step %d", menu.ErrOutOfRangeInput, ie.Min, ie.Max, step)
	}
	spec := menu.IntSpec{
		Min:   ie.Min,
		Max:   ie.Max,
		Step:  step,
		Start: ie.Min,
		Label: ie.Label,
		Out:   cp.intVar(ie.Var),
	}
	if ie.Start != nil {
		spec.Start = *ie.Start
		spec.FromStart = true
	}
	return menu.IntInput(cp.c, spec)
}
