// Package menufile loads menu definitions from YAML or TOML and compiles
// them into a menu tree.
package menufile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

var ErrFormat = errors.New("menufile: unknown format")

// Format is the encoding of a definition file.
type Format uint8

const (
	FormatYAML Format = iota + 1
	FormatTOML
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, path)
}

// File is a menu definition.
//
// Entries at the top level become the root and its siblings. Variables
// named by toggle, set, clear and int entries are created on first use;
// Bools and Ints give them initial values.
type File struct {
	RootAction bool            `yaml:"root_action,omitempty" toml:"root_action,omitempty"`
	Bools      map[string]bool `yaml:"bools,omitempty" toml:"bools,omitempty"`
	Ints       map[string]int  `yaml:"ints,omitempty" toml:"ints,omitempty"`
	Entries    []Entry         `yaml:"entries" toml:"entries"`
}

// Entry describes one menu entry. At most one of Toggle, Set, Clear, Int,
// Command and Back may be given; an entry with none of them is a group.
type Entry struct {
	Label    string    `yaml:"label" toml:"label"`
	Toggle   string    `yaml:"toggle,omitempty" toml:"toggle,omitempty"`
	Set      string    `yaml:"set,omitempty" toml:"set,omitempty"`
	Clear    string    `yaml:"clear,omitempty" toml:"clear,omitempty"`
	Int      *IntEntry `yaml:"int,omitempty" toml:"int,omitempty"`
	Command  string    `yaml:"command,omitempty" toml:"command,omitempty"`
	Back     bool      `yaml:"back,omitempty" toml:"back,omitempty"`
	Children []Entry   `yaml:"children,omitempty" toml:"children,omitempty"`
}

// IntEntry opens the integer input on Var.
type IntEntry struct {
	Var   string   `yaml:"var,omitempty" toml:"var,omitempty"`
	Min   int      `yaml:"min,omitempty" toml:"min,omitempty"`
	Max   int      `yaml:"max,omitempty" toml:"max,omitempty"`
	Step  int      `yaml:"step,omitempty" toml:"step,omitempty"`
	Start *int     `yaml:"start,omitempty" toml:"start,omitempty"`
	Label []string `yaml:"label,omitempty" toml:"label,omitempty"`
}

// Load reads and parses path, choosing the format from its extension.
func Load(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("menufile: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data. Unknown keys are errors in both formats.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalStrict(data, &f); err != nil {
			return nil, fmt.Errorf("menufile: yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("menufile: toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("menufile: toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, ErrFormat
	}
	return &f, nil
}

// Encode writes f in the given format. Empty fields are left out.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(f)
		if err != nil {
			return fmt.Errorf("menufile: yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("menufile: toml: %w", err)
		}
		return nil
	}
	return ErrFormat
}
