package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/feather-lang/quill"
)

// console runs command lines against a registry and reports the outcome.
type console struct {
	reg    *quill.Registry
	cfg    *Config
	log    *logrus.Logger
	stdout io.Writer
	stderr io.Writer

	errStyle lipgloss.Style
	width    int

	history []string
	quit    bool
}

func newConsole(cfg *Config, log *logrus.Logger, stdout, stderr io.Writer) *console {
	c := &console{
		reg:      quill.New(),
		cfg:      cfg,
		log:      log,
		stdout:   stdout,
		stderr:   stderr,
		errStyle: lipgloss.NewStyle(),
		width:    80,
	}
	if !cfg.NoColor {
		c.errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	}
	registerBuiltins(c)
	return c
}

// exec runs one complete line. It reports whether the command succeeded.
func (c *console) exec(line string) (ok bool) {
	tokens, _ := quill.Tokenize(line)
	fields := logrus.Fields{"args": 0}
	if len(tokens) > 0 {
		fields["command"] = tokens[0]
		fields["args"] = len(tokens) - 1
	}

	defer func() {
		if r := recover(); r != nil {
			c.fail(fmt.Errorf("%s: panic: %v", tokens[0], r))
			ok = false
		}
		c.log.WithFields(fields).WithField("ok", ok).Debug("executed line")
	}()

	c.history = append(c.history, line)

	out, err := c.reg.Exec(line)
	if err != nil {
		c.fail(err)
		return false
	}
	if out != "" {
		fmt.Fprintln(c.stdout, out)
	}
	return true
}

func (c *console) fail(err error) {
	for _, msg := range strings.Split(err.Error(), "\n") {
		fmt.Fprintln(c.stderr, c.errStyle.Render("error: "+msg))
	}
}

// complete reports whether input can be executed, or ends inside a quote
// and needs another line.
func complete(input string) bool {
	_, state := quill.Tokenize(input)
	return state == quill.QuoteNone
}

// runScript executes every line of r in order and returns the number of
// failed lines. A line that ends inside a quote continues on the next line.
func (c *console) runScript(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	failed := 0
	var buf string
	pending := false

	for scanner.Scan() && !c.quit {
		if pending {
			buf += "\n" + scanner.Text()
		} else {
			buf = scanner.Text()
		}
		if !complete(buf) {
			pending = true
			continue
		}
		pending = false
		if strings.TrimSpace(buf) == "" {
			continue
		}
		if !c.exec(buf) {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read script: %w", err)
	}

	if pending && !c.quit {
		// Let the registry report the unterminated quote.
		if !c.exec(buf) {
			failed++
		}
	}
	return failed, nil
}
