package quill_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/feather-lang/quill"
)

func TestRegisterSimple(t *testing.T) {
	reg := quill.New()

	reg.Register("double", quill.Func1(quill.Int, quill.Int, func(x int) int {
		return x * 2
	}))

	out, ok := reg.Call("double 21")
	if !ok {
		t.Fatal("Call failed")
	}
	if out != "42" {
		t.Errorf("expected '42', got %q", out)
	}
}

func TestRegisterStringFunc(t *testing.T) {
	reg := quill.New()

	reg.Register("greet", quill.Func1(quill.String, quill.String, func(name string) string {
		return "Hello, " + name + "!"
	}))

	out, ok := reg.Call(`greet "big World"`)
	if !ok {
		t.Fatal("Call failed")
	}
	if out != "Hello, big World!" {
		t.Errorf("expected 'Hello, big World!', got %q", out)
	}
}

func TestRegisterMixedTypes(t *testing.T) {
	reg := quill.New()

	reg.Register("scale", quill.Func3(quill.String, quill.Float64, quill.Uint8, quill.String,
		func(label string, f float64, n uint8) string {
			return label + "=" + strings.Repeat("#", int(f*float64(n)))
		}))

	out, ok := reg.Call("scale 'a b' 1.5 2")
	if !ok {
		t.Fatal("Call failed")
	}
	if out != "a b=###" {
		t.Errorf("expected 'a b=###', got %q", out)
	}
}

func TestCallWrongArity(t *testing.T) {
	reg := quill.New()

	calls := 0
	reg.Register("inc", quill.Func1(quill.Int, quill.Int, func(x int) int {
		calls++
		return x + 1
	}))

	if _, ok := reg.Call("inc 1 2"); ok {
		t.Error("expected failure for 2 tokens")
	}
	if _, ok := reg.Call("inc"); ok {
		t.Error("expected failure for 0 tokens")
	}
	if calls != 0 {
		t.Errorf("function called %d times, expected 0", calls)
	}
}

func TestCallUnknownCommand(t *testing.T) {
	reg := quill.New()

	calls := 0
	reg.Register("known", quill.Proc0(func() { calls++ }))

	if _, ok := reg.Call("unknown"); ok {
		t.Error("expected failure for unknown command")
	}
	if _, ok := reg.Call("Known"); ok {
		t.Error("expected failure: names are case sensitive")
	}
	if calls != 0 {
		t.Errorf("function called %d times, expected 0", calls)
	}
}

func TestCallBadArgument(t *testing.T) {
	reg := quill.New()

	calls := 0
	reg.Register("add", quill.Func2(quill.Int, quill.Int, quill.Int, func(a, b int) int {
		calls++
		return a + b
	}))

	for _, line := range []string{"add abc 1", "add 1 abc", "add 1.5 2", "add +1 2", "add '' 2"} {
		if _, ok := reg.Call(line); ok {
			t.Errorf("%q: expected failure", line)
		}
	}
	if calls != 0 {
		t.Errorf("function called %d times, expected 0", calls)
	}
}

func TestCallSyntaxFailures(t *testing.T) {
	reg := quill.New()

	calls := 0
	reg.Register("echo", quill.Func1(quill.String, quill.String, func(s string) string {
		calls++
		return s
	}))

	for _, line := range []string{"", "   ", "echo 'open", `echo "open`} {
		if _, ok := reg.Call(line); ok {
			t.Errorf("%q: expected failure", line)
		}
	}
	if calls != 0 {
		t.Errorf("function called %d times, expected 0", calls)
	}
}

func TestReRegisterReplaces(t *testing.T) {
	reg := quill.New()

	var first, second int
	reg.Register("f", quill.Proc0(func() { first++ }))
	reg.Register("f", quill.Proc0(func() { second++ }))

	if _, ok := reg.Call("f"); !ok {
		t.Fatal("Call failed")
	}
	if first != 0 || second != 1 {
		t.Errorf("expected first=0 second=1, got first=%d second=%d", first, second)
	}

	// The new binding may have a different signature.
	reg.Register("f", quill.Func1(quill.Int, quill.Int, func(x int) int { return -x }))
	out, ok := reg.Call("f 3")
	if !ok || out != "-3" {
		t.Errorf("expected '-3', got %q (ok=%v)", out, ok)
	}
	if second != 1 {
		t.Errorf("old binding was called")
	}
}

func TestProcReturnsEmptySuccess(t *testing.T) {
	reg := quill.New()

	var got string
	reg.Register("set", quill.Proc1(quill.String, func(s string) { got = s }))

	out, ok := reg.Call("set value")
	if !ok {
		t.Fatal("expected success")
	}
	if out != "" {
		t.Errorf("expected empty result, got %q", out)
	}
	if got != "value" {
		t.Errorf("expected 'value', got %q", got)
	}
}

func TestUnregister(t *testing.T) {
	reg := quill.New()
	reg.Register("x", quill.Proc0(func() {}))
	reg.Unregister("x")

	if _, ok := reg.Lookup("x"); ok {
		t.Error("expected x to be gone")
	}
	if _, err := reg.Exec("x"); !errors.Is(err, quill.ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestNames(t *testing.T) {
	reg := quill.New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.Register(name, quill.Proc0(func() {}))
	}

	got := strings.Join(reg.Names(), ",")
	if got != "alpha,mid,zeta" {
		t.Errorf("expected 'alpha,mid,zeta', got %q", got)
	}
}

func TestCallArgs(t *testing.T) {
	reg := quill.New()
	reg.Register("cat", quill.Func2(quill.String, quill.String, quill.String, func(a, b string) string {
		return a + b
	}))

	out, ok := reg.CallArgs("cat", []string{"x y", "'z'"})
	if !ok {
		t.Fatal("CallArgs failed")
	}
	if out != "x y'z'" {
		t.Errorf("expected \"x y'z'\", got %q", out)
	}
	if _, ok := reg.CallArgs("nope", nil); ok {
		t.Error("expected failure for unknown command")
	}
}

func TestExecErrorKinds(t *testing.T) {
	reg := quill.New()
	reg.Register("neg", quill.Func1(quill.Int, quill.Int, func(x int) int { return -x }))

	tests := []struct {
		line string
		want error
	}{
		{"neg 'x", quill.ErrUnterminatedQuote},
		{"", quill.ErrEmptyInput},
		{"pos 1", quill.ErrUnknownCommand},
		{"neg 1 2", quill.ErrArity},
		{"neg one", quill.ErrArgument},
	}

	for _, tt := range tests {
		_, err := reg.Exec(tt.line)
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.line, tt.want, err)
		}
	}

	out, err := reg.Exec("neg 5")
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if out != "-5" {
		t.Errorf("expected '-5', got %q", out)
	}
}

func TestExecStructuredErrors(t *testing.T) {
	reg := quill.New()
	reg.Register("pair", quill.Proc2(quill.Int, quill.Int, func(int, int) {}))

	_, err := reg.Exec("pair 1")
	var arity *quill.ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("expected *ArityError, got %T", err)
	}
	if arity.Want != 2 || arity.Got != 1 {
		t.Errorf("expected want=2 got=1, got want=%d got=%d", arity.Want, arity.Got)
	}

	_, err = reg.Exec(`pair "a" 2`)
	var bad *quill.ArgumentError
	if !errors.As(err, &bad) {
		t.Fatalf("expected *ArgumentError, got %T", err)
	}
	if bad.Index != 0 || bad.Token != "a" {
		t.Errorf("expected index 0 token 'a', got index %d token %q", bad.Index, bad.Token)
	}

	_, err = reg.Exec("missing")
	var unknown *quill.UnknownCommandError
	if !errors.As(err, &unknown) || unknown.Name != "missing" {
		t.Errorf("expected UnknownCommandError for 'missing', got %v", err)
	}

	_, err = reg.Exec(`pair "1`)
	var quote *quill.QuoteError
	if !errors.As(err, &quote) || quote.State != quill.QuoteDouble {
		t.Errorf("expected QuoteError with QuoteDouble, got %v", err)
	}
}
