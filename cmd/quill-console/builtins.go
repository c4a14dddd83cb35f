package main

import (
	"net/netip"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/feather-lang/quill"
)

// registerBuiltins adds the console's own commands. They go through the
// public registry API like any host function would.
func registerBuiltins(c *console) {
	reg := c.reg
	addr := quill.Text[netip.Addr]()

	reg.Register("echo", quill.Func1(quill.String, quill.String, func(s string) string {
		return s
	}))
	reg.Register("add", quill.Func2(quill.Int64, quill.Int64, quill.Int64, func(a, b int64) int64 {
		return a + b
	}))
	reg.Register("sub", quill.Func2(quill.Int64, quill.Int64, quill.Int64, func(a, b int64) int64 {
		return a - b
	}))
	reg.Register("mul", quill.Func2(quill.Int64, quill.Int64, quill.Int64, func(a, b int64) int64 {
		return a * b
	}))
	reg.Register("div", quill.Func2(quill.Float64, quill.Float64, quill.Float64, func(a, b float64) float64 {
		return a / b
	}))
	reg.Register("upper", quill.Func1(quill.String, quill.String, strings.ToUpper))
	reg.Register("repeat", quill.Func2(quill.String, quill.Uint, quill.String, func(s string, n uint) string {
		return strings.Repeat(s, int(n))
	}))
	reg.Register("split", quill.Func1(quill.String, quill.String, func(s string) string {
		tokens, _ := quill.Tokenize(s)
		for i, tok := range tokens {
			tokens[i] = quill.Quote(tok)
		}
		return strings.Join(tokens, " ")
	}))
	reg.Register("len", quill.Func1(quill.String, quill.Int, utf8.RuneCountInString))
	reg.Register("sleep", quill.Proc1(quill.Duration, time.Sleep))
	reg.Register("not", quill.Func1(quill.Bool, quill.Bool, func(b bool) bool { return !b }))
	reg.Register("ipver", quill.Func1(addr, quill.Int, func(a netip.Addr) int {
		if a.Unmap().Is4() {
			return 4
		}
		return 6
	}))
	reg.Register("ipnext", quill.Func1(addr, addr, netip.Addr.Next))

	reg.Register("commands", quill.Func0(quill.String, func() string {
		return wrapWords(reg.Names(), c.width)
	}))
	reg.Register("arity", quill.Func1(quill.String, quill.Int, func(name string) int {
		inv, ok := reg.Lookup(name)
		if !ok {
			return -1
		}
		return inv.Arity()
	}))
	reg.Register("history", quill.Func0(quill.String, func() string {
		return strings.Join(c.history, "\n")
	}))
	reg.Register("quit", quill.Proc0(func() { c.quit = true }))
}

// wrapWords joins words with spaces, breaking lines before they exceed width.
func wrapWords(words []string, width int) string {
	var b strings.Builder
	col := 0
	for _, w := range words {
		switch {
		case col == 0:
		case col+1+len(w) > width:
			b.WriteByte('\n')
			col = 0
		default:
			b.WriteByte(' ')
			col++
		}
		b.WriteString(w)
		col += len(w)
	}
	return b.String()
}
