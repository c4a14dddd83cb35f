// quill-console is an interactive debug console over a quill registry.
// It registers a few sample commands (echo, add, repeat, sleep, ...) and
// runs lines typed at a terminal, piped on stdin, or given with -e.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var errFailed = errors.New("one or more commands failed")

type options struct {
	configPath string
	eval       []string
	logLevel   string
	noColor    bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdin *os.File, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "quill-console",
		Short:         "Call registered Go functions from a command line",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, stdin, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	flags.StringArrayVarP(&opts.eval, "eval", "e", nil, "execute a line and exit (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, opts options, stdin *os.File, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return err
	}

	log := newLogger(cfg, stderr)
	c := newConsole(cfg, log, stdout, stderr)
	log.WithField("commands", len(c.reg.Names())).Debug("console ready")

	if len(opts.eval) > 0 {
		failed := 0
		for _, line := range opts.eval {
			if c.quit {
				break
			}
			if !c.exec(line) {
				failed++
			}
		}
		return failedErr(failed)
	}

	if isTerminal(stdin) {
		return c.runREPL()
	}

	failed, err := c.runScript(stdin)
	if err != nil {
		return err
	}
	return failedErr(failed)
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, cfg *Config, opts options) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
		if err := cfg.fillDefaults(); err != nil {
			return err
		}
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	return nil
}

func failedErr(n int) error {
	if n > 0 {
		return fmt.Errorf("%d failed: %w", n, errFailed)
	}
	return nil
}
