package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const demo = "../../menufile/testdata/demo.yaml"

func TestCheck(t *testing.T) {
	var out strings.Builder
	if err := run(&out, "check", demo, "", ""); err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out.String(), "1 bools, 1 ints") {
		t.Fatalf("check output: %q", out.String())
	}
}

func TestConvertToFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "menu.toml")
	if err := run(&strings.Builder{}, "convert", demo, dst, ""); err != nil {
		t.Fatalf("convert: %v", err)
	}
	var dump strings.Builder
	if err := run(&dump, "dump", dst, "", ""); err != nil {
		t.Fatalf("dump converted: %v", err)
	}
	if !strings.HasPrefix(dump.String(), "Status\nSettings/\n") {
		t.Fatalf("dump: %q", dump.String())
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatal(err)
	}
}

func TestConvertToStdout(t *testing.T) {
	var out strings.Builder
	if err := run(&out, "convert", demo, "-", "toml"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out.String(), "[[entries]]") {
		t.Fatalf("not TOML:\n%s", out.String())
	}
	if err := run(&out, "convert", demo, "-", "ini"); err == nil {
		t.Fatal("expected error for unknown -to")
	}
}

func TestBadInput(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("entries:\n  - label: x\n    toggle: a\n    back: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(&strings.Builder{}, "check", bad, "", ""); err == nil {
		t.Fatal("expected compile error")
	}
	if err := run(&strings.Builder{}, "frobnicate", demo, "", ""); err == nil {
		t.Fatal("expected unknown mode error")
	}
}
