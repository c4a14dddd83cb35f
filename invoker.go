package quill

import "errors"

// dispatcher is implemented once per supported signature shape. It converts
// exactly arity() tokens and runs the wrapped function.
type dispatcher interface {
	arity() int
	dispatch(tokens []string) (string, error)
}

// Invoker is a function bound to string arguments and a string result.
//
// Build one with the FuncN and ProcN constructors, which require a converter
// for every parameter and for the result, so a signature the package cannot
// convert is rejected by the compiler.
//
// An Invoker is immutable and holds no per-call state. The zero Invoker
// fails every call with ErrNoCallable.
type Invoker struct {
	d dispatcher
}

// Arity returns the number of tokens the function expects.
func (inv Invoker) Arity() int {
	if inv.d == nil {
		return 0
	}
	return inv.d.arity()
}

// Exec converts tokens to the function's parameters, calls it and formats
// the result. Functions without a result yield "".
//
// The function is only called when len(tokens) equals Arity and every token
// converts. Otherwise Exec returns an *ArityError, or one *ArgumentError per
// bad token joined together.
func (inv Invoker) Exec(tokens []string) (string, error) {
	if inv.d == nil {
		return "", ErrNoCallable
	}
	if want := inv.d.arity(); len(tokens) != want {
		return "", &ArityError{Want: want, Got: len(tokens)}
	}
	return inv.d.dispatch(tokens)
}

// Call is Exec with the failure reason dropped.
func (inv Invoker) Call(tokens []string) (string, bool) {
	out, err := inv.Exec(tokens)
	if err != nil {
		return "", false
	}
	return out, true
}

// arg converts tokens[i] and records a failure in errs.
func arg[T any](conv FromString[T], tokens []string, i int, errs *[]error) T {
	v, err := conv.FromString(tokens[i])
	if err != nil {
		*errs = append(*errs, &ArgumentError{Index: i, Token: tokens[i], Err: err})
	}
	return v
}

// bound reports the joined conversion failures, if any.
func bound(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
