package menufile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lcdmenu/lcd"
	"lcdmenu/menu"
)

const demoDump = `Status
Settings/
  Backlight
  Contrast
  [back] Back
About/
`

func compileFile(t *testing.T, path string, opts Options) (*menu.Controller, *lcd.Grid, *Menu) {
	t.Helper()
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	g := lcd.NewGrid(16, 2)
	c := menu.NewController(g, nil)
	m, err := Compile(f, c, opts)
	if err != nil {
		t.Fatalf("Compile(%s): %v", path, err)
	}
	return c, g, m
}

func TestYAMLAndTOMLCompileToSameTree(t *testing.T) {
	for _, path := range []string{"testdata/demo.yaml", "testdata/demo.toml"} {
		c, _, m := compileFile(t, path, Options{})
		var b strings.Builder
		if err := Dump(&b, c.Tree(), m.Root); err != nil {
			t.Fatalf("Dump: %v", err)
		}
		if got := b.String(); got != demoDump {
			t.Fatalf("%s: dump\n%s\nwant\n%s", path, got, demoDump)
		}
		if c.Root() != m.Root || c.Cursor() != m.Root {
			t.Fatalf("%s: root not activated", path)
		}
		if !*m.Bools["backlight"] || *m.Ints["contrast"] != 7 {
			t.Fatalf("%s: initial values not applied", path)
		}
	}
}

func TestToggleAndIntEntries(t *testing.T) {
	c, g, m := compileFile(t, "testdata/demo.yaml", Options{})
	apply := func(a menu.Action) {
		t.Helper()
		if err := c.Apply(a); err != nil {
			t.Fatalf("Apply(%s): %v", a, err)
		}
	}

	apply(menu.ActionDown)
	apply(menu.ActionSelect)
	apply(menu.ActionSelect)
	if *m.Bools["backlight"] {
		t.Fatal("toggle did not flip backlight")
	}

	apply(menu.ActionDown)
	apply(menu.ActionSelect)
	if c.Mode() != menu.ModeIntInput {
		t.Fatal("int entry did not open input")
	}
	if v, _ := c.InputValue(); v != 7 {
		t.Fatalf("input started at %d, want current value 7", v)
	}
	apply(menu.ActionDown)
	if *m.Ints["contrast"] != 8 {
		t.Fatalf("contrast: %d", *m.Ints["contrast"])
	}
	if got := g.Line(1); got != "               8" {
		t.Fatalf("value row %q", got)
	}
	apply(menu.ActionBack)
	if c.Mode() != menu.ModeBrowsing {
		t.Fatal("input still open")
	}
}

func TestCommandEntryShowsOutput(t *testing.T) {
	var gotArgv []string
	run := func(_ context.Context, argv []string) ([]byte, error) {
		gotArgv = argv
		return []byte("\nready\nmore\n"), nil
	}
	c, g, _ := compileFile(t, "testdata/demo.yaml", Options{Run: run})
	if err := c.Apply(menu.ActionSelect); err != nil {
		t.Fatal(err)
	}
	if len(gotArgv) != 2 || gotArgv[0] != "echo" || gotArgv[1] != "ready" {
		t.Fatalf("argv: %q", gotArgv)
	}
	if got := g.String(); got != "Status\nready" {
		t.Fatalf("screen %q", got)
	}

	failing := func(context.Context, []string) ([]byte, error) { return nil, errors.New("boom") }
	c, g, _ = compileFile(t, "testdata/demo.yaml", Options{Run: failing})
	if err := c.Apply(menu.ActionSelect); err != nil {
		t.Fatal(err)
	}
	if got := g.Line(1); !strings.HasPrefix(got, "err: boom") {
		t.Fatalf("error row %q", got)
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "entries: []", "no entries"},
		{"no label", "entries: [{toggle: x}]", "empty label"},
		{"two actions", "entries: [{label: A, toggle: x, set: y}]", `entry "A": more than one action`},
		{"back children", "entries: [{label: B, back: true, children: [{label: C}]}]", "back entry with children"},
		{"int bounds", "entries: [{label: I, int: {var: v, min: 5, max: 1}}]", "out of range"},
		{"int var", "entries: [{label: I, int: {min: 0, max: 1}}]", "without var"},
		{"bad command", `entries: [{label: C, command: "echo 'open"}]`, `entry "C"`},
	}
	for _, tc := range cases {
		f, err := Parse([]byte(tc.src), FormatYAML)
		if err != nil {
			t.Fatalf("%s: Parse: %v", tc.name, err)
		}
		_, err = Compile(f, menu.NewController(lcd.NewGrid(16, 2), nil), Options{})
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: got %v, want %q", tc.name, err, tc.want)
		}
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("entries: [{label: A, colour: red}]"), FormatYAML); err == nil {
		t.Fatal("yaml: expected unknown key error")
	}
	if _, err := Parse([]byte("[[entries]]\nlabel = \"A\"\ncolour = \"red\"\n"), FormatTOML); err == nil {
		t.Fatal("toml: expected unknown key error")
	}
	if _, err := FormatFor("menu.json"); !errors.Is(err, ErrFormat) {
		t.Fatalf("FormatFor: %v", err)
	}
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEncodeConvertsBetweenFormats(t *testing.T) {
	conversions := []struct {
		path string
		to   Format
	}{
		{"testdata/demo.yaml", FormatTOML},
		{"testdata/demo.toml", FormatYAML},
	}
	for _, conv := range conversions {
		f, err := Load(conv.path)
		if err != nil {
			t.Fatalf("Load(%s): %v", conv.path, err)
		}
		var b strings.Builder
		if err := Encode(&b, f, conv.to); err != nil {
			t.Fatalf("Encode(%s): %v", conv.path, err)
		}
		back, err := Parse([]byte(b.String()), conv.to)
		if err != nil {
			t.Fatalf("%s: re-parse: %v\n%s", conv.path, err, b.String())
		}

		c := menu.NewController(lcd.NewGrid(16, 2), nil)
		m, err := Compile(back, c, Options{})
		if err != nil {
			t.Fatalf("%s: compile: %v", conv.path, err)
		}
		var dump strings.Builder
		if err := Dump(&dump, c.Tree(), m.Root); err != nil {
			t.Fatal(err)
		}
		if dump.String() != demoDump {
			t.Fatalf("%s: dump after conversion\n%s", conv.path, dump.String())
		}
		if *m.Ints["contrast"] != 7 || !*m.Bools["backlight"] {
			t.Fatalf("%s: variables lost: %v %v", conv.path, m.Ints, m.Bools)
		}
	}
	if err := Encode(&strings.Builder{}, &File{}, Format(9)); !errors.Is(err, ErrFormat) {
		t.Fatalf("got %v, want ErrFormat", err)
	}
}
