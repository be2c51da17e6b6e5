package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lcdmenu/fonts/lcdcell"
	"lcdmenu/menu"
)

func TestDefaultsValidate(t *testing.T) {
	c, err := Load(New())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Display.Rows != 2 || c.Display.Cols != 16 || c.Display.Renderer != RendererGrid {
		t.Fatalf("display defaults: %+v", c.Display)
	}
	if !c.Transition.Enabled || c.Transition.StepDelay != 10*time.Millisecond {
		t.Fatalf("transition defaults: %+v", c.Transition)
	}
	if m, _ := c.MarkerByte(); m != '>' {
		t.Fatalf("marker %q", m)
	}
	if c.Headless.Hz != 60 || c.Input.Debounce != 3 {
		t.Fatalf("headless/input defaults: %+v %+v", c.Headless, c.Input)
	}
}

func TestReadFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lcdmenu.yaml")
	src := `display:
  rows: 4
  cols: 20
  marker: arrow
transition:
  step_delay: 25ms
menu:
  root_action: true
input:
  keys:
    up: ["k"]
    select: ["enter", "l"]
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	v := New()
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	v.Set("display.scale", 5)

	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Display.Rows != 4 || c.Display.Cols != 20 || c.Display.Scale != 5 {
		t.Fatalf("display: %+v", c.Display)
	}
	if m, _ := c.MarkerByte(); m != lcdcell.RightArrow {
		t.Fatalf("marker %#x", m)
	}
	if c.Transition.StepDelay != 25*time.Millisecond || !c.Menu.RootAction {
		t.Fatalf("transition/menu: %+v %+v", c.Transition, c.Menu)
	}
	b, err := c.Bindings()
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}
	if len(b[menu.ActionUp]) != 1 || len(b[menu.ActionSelect]) != 2 {
		t.Fatalf("bindings: %v", b)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("LCDMENU_DISPLAY_COLS", "8")
	t.Setenv("LCDMENU_FRONTEND", "console")
	c, err := Load(New())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Display.Cols != 8 || c.Frontend != FrontendConsole {
		t.Fatalf("env not applied: %+v %q", c.Display, c.Frontend)
	}
}

func TestMissingSearchedFileIsFine(t *testing.T) {
	wd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", t.TempDir())
	if err := ReadFile(New(), ""); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for explicit missing file")
	}
}

func TestValidateNamesKey(t *testing.T) {
	cases := map[string]string{
		"display.rows":          "display.rows",
		"display.cols":          "display.cols",
		"display.marker":        "display.marker",
		"display.renderer":      "display.renderer",
		"display.font":          "display.font",
		"display.palette":       "display.palette",
		"frontend":              "frontend",
		"headless.hz":           "headless.hz",
		"transition.step_delay": "transition.step_delay",
		"input.keys":            "input.keys.sideways",
	}
	bad := map[string]any{
		"display.rows":          9,
		"display.cols":          1,
		"display.marker":        ">>",
		"display.renderer":      "svg",
		"display.font":          "comic",
		"display.palette":       "amber",
		"frontend":              "web",
		"headless.hz":           0,
		"transition.step_delay": "-1s",
		"input.keys":            map[string][]string{"sideways": {"x"}},
	}
	for key, want := range cases {
		v := New()
		v.Set(key, bad[key])
		_, err := Load(v)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("%s: got %v, want mention of %q", key, err, want)
		}
	}
}

func TestTinytermNeedsGlyphFont(t *testing.T) {
	v := New()
	v.Set("display.renderer", RendererTinyterm)
	if _, err := Load(v); err == nil || !strings.Contains(err.Error(), "display.font") {
		t.Fatalf("got %v, want display.font error", err)
	}
	v.Set("display.font", "proggy")
	if _, err := Load(v); err != nil {
		t.Fatalf("proggy with tinyterm: %v", err)
	}
}

func TestResolveFrontend(t *testing.T) {
	c := Config{Frontend: FrontendAuto}
	if got := c.ResolveFrontend(true); got != FrontendTUI {
		t.Fatalf("tty: %q", got)
	}
	if got := c.ResolveFrontend(false); got != FrontendHeadless {
		t.Fatalf("no tty: %q", got)
	}
	c.Frontend = FrontendWindow
	if got := c.ResolveFrontend(false); got != FrontendWindow {
		t.Fatalf("explicit: %q", got)
	}
}
