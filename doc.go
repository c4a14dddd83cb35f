// Package quill registers typed Go functions under names and calls them
// from a single line of text, as in a debug console or an interactive shell.
//
// # Overview
//
// quill has three parts:
//
//   - A tokenizer with bash-like quoting ([Tokenize])
//   - Open conversion points between tokens and values ([FromString], [ToString])
//   - A registry of type-erased functions ([Registry], [Invoker])
//
// Argument and result types are checked when the program is compiled. A
// function can only be registered together with a converter for each of its
// parameters and for its result.
//
// # Quick Start
//
//	import "github.com/feather-lang/quill"
//
//	func main() {
//	    reg := quill.New()
//
//	    reg.Register("add", quill.Func2(quill.Int, quill.Int, quill.Int,
//	        func(a, b int) int { return a + b }))
//	    reg.Register("greet", quill.Proc1(quill.String,
//	        func(name string) { fmt.Println("Hello,", name) }))
//
//	    out, ok := reg.Call("add 2 40")       // "42", true
//	    out, ok = reg.Call("greet 'big world'") // "", true (prints)
//	    out, ok = reg.Call("add 2")            // "", false
//	}
//
// # Tokens
//
// A line is split on spaces. Single and double quotes group text verbatim,
// without escapes, and touching spans join into one token:
//
//	a b'c d'e f'"g"'   ->   a, bc de, f"g"
//
// # Conversions
//
// Built-in codecs cover strings, every integer and floating point type,
// booleans, durations, and types that implement encoding.TextMarshaler and
// encoding.TextUnmarshaler ([Text]). Numbers are parsed in base 10 without
// locale rules, and the whole token must be a number.
//
// Any other type is supported by implementing [FromString] and [ToString]
// for it, or by building a [Codec] with [Convert]:
//
//	type Point struct{ X, Y int }
//
//	var PointCodec = quill.Convert(
//	    func(tok string) (Point, error) {
//	        var p Point
//	        _, err := fmt.Sscanf(tok, "%d,%d", &p.X, &p.Y)
//	        return p, err
//	    },
//	    func(p Point) string { return fmt.Sprintf("%d,%d", p.X, p.Y) },
//	)
//
//	reg.Register("norm", quill.Func1(PointCodec, quill.Float64, norm))
//
// # Failures
//
// [Registry.Call] reports failure as a false second result and never calls
// the function on bad input. [Registry.Exec] returns the same results but
// tells the failures apart:
//
//   - [ErrUnterminatedQuote]: the line ends inside a quote
//   - [ErrEmptyInput]: the line has no tokens
//   - [ErrUnknownCommand]: the first token is not registered
//   - [ErrArity]: the token count differs from the parameter count
//   - [ErrArgument]: a token does not convert to its parameter type
//
// A function without a result returns "" on success, which is distinct from
// failure.
package quill
