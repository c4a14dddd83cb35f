package quill

import (
	"errors"
	"fmt"
)

// Failure kinds reported by [Registry.Exec] and [Invoker.Exec].
// [Registry.Call] and [Invoker.Call] collapse all of them into a false result.
var (
	ErrUnterminatedQuote = errors.New("quill: unterminated quote")
	ErrEmptyInput        = errors.New("quill: empty input")
	ErrUnknownCommand    = errors.New("quill: unknown command")
	ErrArity             = errors.New("quill: wrong # args")
	ErrArgument          = errors.New("quill: bad argument")

	// ErrNoCallable is returned by the zero Invoker.
	ErrNoCallable = errors.New("quill: invoker has no callable")
)

// QuoteError reports a line that ended inside a quoted span.
type QuoteError struct {
	State QuoteState
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("quill: unterminated %s", e.State)
}

func (e *QuoteError) Unwrap() error { return ErrUnterminatedQuote }

// UnknownCommandError reports a command name with no binding.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("quill: unknown command %q", e.Name)
}

func (e *UnknownCommandError) Unwrap() error { return ErrUnknownCommand }

// ArityError reports a token count that differs from the declared parameter count.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("quill: wrong # args: expected %d, got %d", e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// ArgumentError reports a token that could not be converted to its parameter type.
// Index is zero based.
type ArgumentError struct {
	Index int
	Token string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("quill: argument %d: %v", e.Index+1, e.Err)
}

// Unwrap exposes both the conversion failure and ErrArgument.
func (e *ArgumentError) Unwrap() []error { return []error{ErrArgument, e.Err} }
