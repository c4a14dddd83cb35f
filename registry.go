package quill

import "sort"

// Registry maps command names to invokers and runs command lines against
// them.
//
//	func foo(n int) int { return n + 1 }
//
//	reg := quill.New()
//	reg.Register("foo", quill.Func1(quill.Int, quill.Int, foo))
//	out, ok := reg.Call("foo 42") // "43", true
//
// A Registry is not safe for concurrent use. Callers that register and call
// from several goroutines must serialize access themselves.
type Registry struct {
	commands map[string]Invoker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Invoker)}
}

// Register binds name to inv, replacing any previous binding.
// Names are case sensitive.
func (r *Registry) Register(name string, inv Invoker) {
	r.commands[name] = inv
}

// Unregister removes the binding for name, if any.
func (r *Registry) Unregister(name string) {
	delete(r.commands, name)
}

// Lookup returns the invoker bound to name and whether it exists.
func (r *Registry) Lookup(name string) (Invoker, bool) {
	inv, ok := r.commands[name]
	return inv, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// -----------------------------------------------------------------------------
// Calling
// -----------------------------------------------------------------------------

// Call tokenizes line, treats the first token as the command name and
// passes the remaining tokens to it.
//
// ok is false when the line has an unterminated quote, has no tokens, names
// an unknown command, has the wrong number of arguments, or has an argument
// that does not convert. In every such case no function is called. Use
// [Registry.Exec] to find out which one happened.
func (r *Registry) Call(line string) (out string, ok bool) {
	out, err := r.Exec(line)
	return out, err == nil
}

// CallArgs runs the command name with already split tokens.
func (r *Registry) CallArgs(name string, tokens []string) (out string, ok bool) {
	out, err := r.ExecArgs(name, tokens)
	return out, err == nil
}

// Exec is Call with the reason for a failure reported as an error that
// matches one of ErrUnterminatedQuote, ErrEmptyInput, ErrUnknownCommand,
// ErrArity or ErrArgument.
func (r *Registry) Exec(line string) (string, error) {
	tokens, state := Tokenize(line)
	if state != QuoteNone {
		return "", &QuoteError{State: state}
	}
	if len(tokens) == 0 {
		return "", ErrEmptyInput
	}
	return r.ExecArgs(tokens[0], tokens[1:])
}

// ExecArgs is CallArgs with the reason for a failure reported as an error.
func (r *Registry) ExecArgs(name string, tokens []string) (string, error) {
	inv, ok := r.commands[name]
	if !ok {
		return "", &UnknownCommandError{Name: name}
	}
	return inv.Exec(tokens)
}
