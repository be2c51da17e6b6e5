//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"lcdmenu/app"
	"lcdmenu/config"
	"lcdmenu/console"
	"lcdmenu/hal"
	"lcdmenu/internal/buildinfo"
	"lcdmenu/lcd"
	"lcdmenu/menufile"
	"lcdmenu/tui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "lcdmenu",
		Short: "Hierarchical menu for character LCDs",
		Long: `Browse a menu tree on a simulated character LCD.

Front-ends:
  window    desktop window with a pixel LCD (arrows, Enter, Esc)
  tui       terminal UI
  console   one command per line (up, down, select, back, tree)
  headless  no output; actions come from --script`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(v)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./lcdmenu.yaml, then ~/.config/lcdmenu/)")
	pf.String("menu", "", "menu definition, YAML or TOML (default: built-in demo)")
	pf.Int("rows", 2, "display rows")
	pf.Int("cols", 16, "display columns")
	pf.Bool("root-action", false, "run a group's own action before entering it")
	bindFlags(v, pf, map[string]string{
		"menu.file":        "menu",
		"display.rows":     "rows",
		"display.cols":     "cols",
		"menu.root_action": "root-action",
	})

	f := root.Flags()
	f.StringP("frontend", "f", config.FrontendAuto, "window, headless, tui, console or auto")
	f.String("renderer", config.RendererGrid, "window renderer: grid or tinyterm")
	f.String("font", "lcd", "cell font: lcd or proggy")
	f.String("palette", "green", "LCD colours: green or blue")
	f.String("marker", ">", `selection marker, one character or "arrow"`)
	f.Int("scale", 3, "window pixel scale")
	f.Bool("transition", true, "scroll between screens")
	f.Int("hz", 60, "headless tick rate")
	f.Uint64("ticks", 0, "stop headless mode after N ticks (0: when the script ends)")
	f.String("script", "", `actions to replay, e.g. "down*2 select back"`)
	f.String("log-file", "", "append log lines to this file")
	bindFlags(v, f, map[string]string{
		"frontend":           "frontend",
		"display.renderer":   "renderer",
		"display.font":       "font",
		"display.palette":    "palette",
		"display.marker":     "marker",
		"display.scale":      "scale",
		"transition.enabled": "transition",
		"headless.hz":        "hz",
		"headless.ticks":     "ticks",
		"headless.script":    "script",
		"log.file":           "log-file",
	})

	root.AddCommand(newDumpCmd(v), newVersionCmd())
	return root
}

// bindFlags maps config keys to flag names. A flag only overrides the
// config when it is set on the command line.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func newDumpCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the menu tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(v)
			if err != nil {
				return err
			}
			o, err := app.FromConfig(c)
			if err != nil {
				return err
			}
			o.Transition = false
			ctrl, m, err := app.Build(lcd.NewGrid(o.Cols, o.Rows), o, nil)
			if err != nil {
				return err
			}
			return menufile.Dump(cmd.OutOrStdout(), ctrl.Tree(), m.Root)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lcdmenu", buildinfo.String())
		},
	}
}

func runMenu(v *viper.Viper) error {
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	o, err := app.FromConfig(c)
	if err != nil {
		return err
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	frontend := c.ResolveFrontend(tty)

	// Terminal front-ends own stdout; their log goes to a file or nowhere.
	var logw io.Writer = os.Stderr
	if frontend == config.FrontendTUI || frontend == config.FrontendConsole {
		logw = io.Discard
	}
	if c.Log.File != "" {
		lf, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("log.file: %w", err)
		}
		defer lf.Close()
		logw = lf
	}

	switch frontend {
	case config.FrontendWindow:
		return hal.RunWindow(app.HALConfig(o, c.Display.Scale, logw), app.Runner(o))

	case config.FrontendHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		hc := hal.HeadlessConfig{Hz: c.Headless.Hz, Ticks: c.Headless.Ticks}
		err := hal.RunHeadless(ctx, app.HALConfig(o, c.Display.Scale, logw), app.Runner(o), hc)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err

	case config.FrontendTUI, config.FrontendConsole:
		log := hal.NewWriterLogger(logw)
		// Both redraw only after an action completes, so a wipe would
		// only add latency.
		o.Transition = false
		grid := lcd.NewGrid(o.Cols, o.Rows)
		ctrl, _, err := app.Build(grid, o, log)
		if err != nil {
			return err
		}
		if frontend == config.FrontendConsole {
			return console.New(ctrl, grid, log).Run()
		}
		keys := tui.DefaultKeyMap()
		if o.Bindings != nil {
			keys = keys.WithBindings(o.Bindings)
		}
		return tui.Run(tui.New(ctrl, grid, tui.WithKeyMap(keys), tui.WithLogger(log)))
	}
	return fmt.Errorf("frontend %q not available", frontend)
}
