package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// runREPL reads lines interactively until quit, EOF or Ctrl+C on an empty
// line. Input that ends inside a quote continues with the continuation
// prompt, and the line break becomes part of the quoted token.
func (c *console) runREPL() error {
	c.width = terminalWidth(int(os.Stdout.Fd()))

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(c.completeCommand)

	c.loadHistory(line)
	defer c.saveHistory(line)

	var buf string
	pending := false
	for !c.quit {
		prompt := c.cfg.Prompt
		if pending {
			prompt = c.cfg.ContinuationPrompt
		}

		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) && pending {
				// Ctrl+C drops the unfinished command.
				pending = false
				continue
			}
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(c.stdout)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if pending {
			buf += "\n" + input
		} else {
			buf = input
		}
		if !complete(buf) {
			pending = true
			continue
		}
		pending = false

		if strings.TrimSpace(buf) == "" {
			continue
		}
		line.AppendHistory(buf)
		c.exec(buf)
	}
	return nil
}

// completeCommand offers command names while the first word is typed.
func (c *console) completeCommand(input string) []string {
	if strings.ContainsRune(input, ' ') {
		return nil
	}
	var out []string
	for _, name := range c.reg.Names() {
		if strings.HasPrefix(name, input) {
			out = append(out, name)
		}
	}
	return out
}

func (c *console) loadHistory(line *liner.State) {
	if c.cfg.HistoryFile == "" {
		return
	}
	f, err := os.Open(c.cfg.HistoryFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.WithError(err).Warn("failed to open history file")
		}
		return
	}
	defer f.Close()
	if _, err := line.ReadHistory(f); err != nil {
		c.log.WithError(err).Warn("failed to read history file")
	}
}

func (c *console) saveHistory(line *liner.State) {
	if c.cfg.HistoryFile == "" {
		return
	}
	f, err := os.OpenFile(c.cfg.HistoryFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		c.log.WithError(err).Warn("failed to write history file")
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		c.log.WithError(err).Warn("failed to write history file")
	}
}

// terminalWidth returns the width of the terminal on fd, or 80.
func terminalWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
