//go:build !tinygo

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lcdmenu/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config.New())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDumpDemoMenu(t *testing.T) {
	out, err := execute(t, "dump")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, "Settings/\n  Backlight\n") {
		t.Fatalf("dump output:\n%s", out)
	}
}

func TestDumpMenuFlag(t *testing.T) {
	out, err := execute(t, "dump", "--menu", "menufile/testdata/demo.toml")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.HasPrefix(out, "Status\n") {
		t.Fatalf("dump output:\n%s", out)
	}
}

func TestHeadlessScript(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "run.log")
	_, err := execute(t, "-f", "headless", "--hz", "1000", "--transition=false",
		"--script", "down select", "--log-file", logFile)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "screen: |>Backlight") {
		t.Fatalf("log:\n%s", b)
	}
}

func TestInvalidFlagIsRejected(t *testing.T) {
	if _, err := execute(t, "-f", "headless", "--rows", "9"); err == nil ||
		!strings.Contains(err.Error(), "display.rows") {
		t.Fatalf("got %v, want display.rows error", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil || !strings.HasPrefix(out, "lcdmenu dev") {
		t.Fatalf("version: %q %v", out, err)
	}
}
