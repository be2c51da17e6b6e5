// Package config loads runtime settings from a config file, LCDMENU_*
// environment variables and command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"lcdmenu/fonts/lcdcell"
	"lcdmenu/lcd"
	"lcdmenu/menu"

	"github.com/spf13/viper"
)

const EnvPrefix = "LCDMENU"

// Front-ends.
const (
	FrontendAuto     = "auto"
	FrontendWindow   = "window"
	FrontendHeadless = "headless"
	FrontendTUI      = "tui"
	FrontendConsole  = "console"
)

// Renderers paint the character grid on the window framebuffer.
const (
	RendererGrid     = "grid"
	RendererTinyterm = "tinyterm"
)

type Display struct {
	Rows     int    `mapstructure:"rows"`
	Cols     int    `mapstructure:"cols"`
	Marker   string `mapstructure:"marker"`
	Renderer string `mapstructure:"renderer"`
	Scale    int    `mapstructure:"scale"`
	Font     string `mapstructure:"font"`
	Palette  string `mapstructure:"palette"`
}

type Menu struct {
	File       string `mapstructure:"file"`
	RootAction bool   `mapstructure:"root_action"`
}

type Transition struct {
	Enabled   bool          `mapstructure:"enabled"`
	StepDelay time.Duration `mapstructure:"step_delay"`
}

type Headless struct {
	Hz     int    `mapstructure:"hz"`
	Ticks  uint64 `mapstructure:"ticks"`
	Script string `mapstructure:"script"`
}

type Input struct {
	Debounce int                 `mapstructure:"debounce"`
	Keys     map[string][]string `mapstructure:"keys"`
}

type Log struct {
	File string `mapstructure:"file"`
}

type Config struct {
	Display    Display    `mapstructure:"display"`
	Frontend   string     `mapstructure:"frontend"`
	Menu       Menu       `mapstructure:"menu"`
	Transition Transition `mapstructure:"transition"`
	Headless   Headless   `mapstructure:"headless"`
	Input      Input      `mapstructure:"input"`
	Log        Log        `mapstructure:"log"`
}

// SetDefaults registers every key with its default so env lookups work
// for keys no config file mentions.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("display.rows", 2)
	v.SetDefault("display.cols", 16)
	v.SetDefault("display.marker", ">")
	v.SetDefault("display.renderer", RendererGrid)
	v.SetDefault("display.scale", 3)
	v.SetDefault("display.font", "lcd")
	v.SetDefault("display.palette", "green")
	v.SetDefault("frontend", FrontendAuto)
	v.SetDefault("menu.file", "")
	v.SetDefault("menu.root_action", false)
	v.SetDefault("transition.enabled", true)
	v.SetDefault("transition.step_delay", 10*time.Millisecond)
	v.SetDefault("headless.hz", 60)
	v.SetDefault("headless.ticks", 0)
	v.SetDefault("headless.script", "")
	v.SetDefault("input.debounce", 3)
	v.SetDefault("input.keys", map[string][]string{})
	v.SetDefault("log.file", "")
}

// New returns a viper instance with defaults and the environment bound.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path, or searches for lcdmenu.{yaml,toml,...} in the
// working directory and $HOME/.config/lcdmenu when path is empty. A
// missing searched file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		return nil
	}

	v.SetConfigName("lcdmenu")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "lcdmenu"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load decodes v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every key; the error names the first bad one.
func (c Config) Validate() error {
	d := c.Display
	if d.Rows < 1 || d.Rows > 4 {
		return fmt.Errorf("config: display.rows: %d not in 1..4", d.Rows)
	}
	if d.Cols < 2 || d.Cols > 40 {
		return fmt.Errorf("config: display.cols: %d not in 2..40", d.Cols)
	}
	if _, err := c.MarkerByte(); err != nil {
		return err
	}
	switch d.Renderer {
	case RendererGrid, RendererTinyterm:
	default:
		return fmt.Errorf("config: display.renderer: unknown %q", d.Renderer)
	}
	if d.Scale < 1 || d.Scale > 16 {
		return fmt.Errorf("config: display.scale: %d not in 1..16", d.Scale)
	}
	face, err := lcdcell.Lookup(d.Font)
	if err != nil {
		return fmt.Errorf("config: display.font: %w", err)
	}
	if _, ok := face.Tinyfont(); !ok && d.Renderer == RendererTinyterm {
		return fmt.Errorf("config: display.font: %q cannot be used with the tinyterm renderer", face.Name)
	}
	if _, err := lcd.PaletteByName(d.Palette); err != nil {
		return fmt.Errorf("config: display.palette: %w", err)
	}

	switch c.Frontend {
	case FrontendAuto, "", FrontendWindow, FrontendHeadless, FrontendTUI, FrontendConsole:
	default:
		return fmt.Errorf("config: frontend: unknown %q", c.Frontend)
	}
	if c.Transition.StepDelay < 0 {
		return fmt.Errorf("config: transition.step_delay: negative %s", c.Transition.StepDelay)
	}
	if c.Headless.Hz < 1 {
		return fmt.Errorf("config: headless.hz: %d must be positive", c.Headless.Hz)
	}
	if c.Input.Debounce < 1 {
		return fmt.Errorf("config: input.debounce: %d must be positive", c.Input.Debounce)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// MarkerByte returns the selection marker. "arrow" selects the LCD's
// right-arrow glyph.
func (c Config) MarkerByte() (byte, error) {
	m := c.Display.Marker
	switch {
	case strings.EqualFold(m, "arrow"):
		return lcdcell.RightArrow, nil
	case len(m) == 1 && m[0] >= 0x20:
		return m[0], nil
	}
	return 0, fmt.Errorf("config: display.marker: %q is not a single printable byte or \"arrow\"", m)
}

// Bindings converts input.keys into per-action key lists. Actions the
// config does not mention are absent; nil means no overrides.
func (c Config) Bindings() (map[menu.Action][]string, error) {
	if len(c.Input.Keys) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(c.Input.Keys))
	for name := range c.Input.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[menu.Action][]string, len(names))
	for _, name := range names {
		a, err := menu.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("config: input.keys.%s: %w", name, err)
		}
		out[a] = c.Input.Keys[name]
	}
	return out, nil
}

// ResolveFrontend turns "auto" into tui on a terminal and headless
// otherwise.
func (c Config) ResolveFrontend(isTerminal bool) string {
	if c.Frontend != FrontendAuto && c.Frontend != "" {
		return c.Frontend
	}
	if isTerminal {
		return FrontendTUI
	}
	return FrontendHeadless
}
