// Command mkmenu converts menu definitions between YAML and TOML and
// checks that they compile.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lcdmenu/lcd"
	"lcdmenu/menu"
	"lcdmenu/menufile"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input menu (.yaml, .yml or .toml).")
		outPath = flag.String("out", "", "Output file for convert mode (format from extension, - for stdout).")
		mode    = flag.String("mode", "check", "check|convert|dump.")
		to      = flag.String("to", "", "Output format when -out is - (yaml|toml).")
	)
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: mkmenu -mode check -in menu.yaml\n       mkmenu -mode convert -in menu.yaml -out menu.toml\n       mkmenu -mode dump -in menu.toml")
	}
	if err := run(os.Stdout, strings.ToLower(*mode), *inPath, *outPath, *to); err != nil {
		fatalf("%s: %v", *mode, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func run(stdout io.Writer, mode, inPath, outPath, to string) error {
	f, err := menufile.Load(inPath)
	if err != nil {
		return err
	}
	c, m, err := compile(f)
	if err != nil {
		return err
	}

	switch mode {
	case "check":
		fmt.Fprintf(stdout, "%s: %d entries, %d bools, %d ints\n", inPath, c.Tree().Len(), len(m.Bools), len(m.Ints))
		return nil
	case "dump":
		return menufile.Dump(stdout, c.Tree(), m.Root)
	case "convert":
		return convert(stdout, f, outPath, to)
	}
	return fmt.Errorf("unknown mode: %s", mode)
}

// compile builds f on a scratch display so conversion never writes a
// menu that would not load.
func compile(f *menufile.File) (*menu.Controller, *menufile.Menu, error) {
	c := menu.NewController(lcd.NewGrid(16, 2), nil)
	m, err := menufile.Compile(f, c, menufile.Options{})
	return c, m, err
}

func convert(stdout io.Writer, f *menufile.File, outPath, to string) error {
	if outPath == "" {
		return errors.New("-out is required")
	}
	if outPath == "-" {
		format, err := menufile.FormatFor("x." + to)
		if err != nil {
			return fmt.Errorf("-to: %w", err)
		}
		return menufile.Encode(stdout, f, format)
	}

	format, err := menufile.FormatFor(outPath)
	if err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := menufile.Encode(out, f, format); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
