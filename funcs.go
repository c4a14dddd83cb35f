package quill

// One dispatcher per arity. Each converts every argument before calling
// the function so that a bad token never leads to a partial call.

type func0[R any] struct {
	r  ToString[R]
	fn func() R
}

func (s *func0[R]) arity() int { return 0 }

func (s *func0[R]) dispatch(tokens []string) (string, error) {
	return s.r.ToString(s.fn()), nil
}

type func1[A, R any] struct {
	a  FromString[A]
	r  ToString[R]
	fn func(A) R
}

func (s *func1[A, R]) arity() int { return 1 }

func (s *func1[A, R]) dispatch(tokens []string) (string, error) {
	var errs []error
	a := arg(s.a, tokens, 0, &errs)
	if err := bound(errs); err != nil {
		return "", err
	}
	return s.r.ToString(s.fn(a)), nil
}

type func2[A, B, R any] struct {
	a  FromString[A]
	b  FromString[B]
	r  ToString[R]
	fn func(A, B) R
}

func (s *func2[A, B, R]) arity() int { return 2 }

func (s *func2[A, B, R]) dispatch(tokens []string) (string, error) {
	var errs []error
	a := arg(s.a, tokens, 0, &errs)
	b := arg(s.b, tokens, 1, &errs)
	if err := bound(errs); err != nil {
		return "", err
	}
	return s.r.ToString(s.fn(a, b)), nil
}

type func3[A, B, C, R any] struct {
	a  FromString[A]
	b  FromString[B]
	c  FromString[C]
	r  ToString[R]
	fn func(A, B, C) R
}

func (s *func3[A, B, C, R]) arity() int { return 3 }

func (s *func3[A, B, C, R]) dispatch(tokens []string) (string, error) {
	var errs []error
	a := arg(s.a, tokens, 0, &errs)
	b := arg(s.b, tokens, 1, &errs)
	c := arg(s.c, tokens, 2, &errs)
	if err := bound(errs); err != nil {
		return "", err
	}
	return s.r.ToString(s.fn(a, b, c)), nil
}

type func4[A, B, C, D, R any] struct {
	a  FromString[A]
	b  FromString[B]
	c  FromString[C]
	d  FromString[D]
	r  ToString[R]
	fn func(A, B, C, D) R
}

func (s *func4[A, B, C, D, R]) arity() int { return 4 }

func (s *func4[A, B, C, D, R]) dispatch(tokens []string) (string, error) {
	var errs []error
	a := arg(s.a, tokens, 0, &errs)
	b := arg(s.b, tokens, 1, &errs)
	c := arg(s.c, tokens, 2, &errs)
	d := arg(s.d, tokens, 3, &errs)
	if err := bound(errs); err != nil {
		return "", err
	}
	return s.r.ToString(s.fn(a, b, c, d)), nil
}

type func5[A, B, C, D, E, R any] struct {
	a  FromString[A]
	b  FromString[B]
	c  FromString[C]
	d  FromString[D]
	e  FromString[E]
	r  ToString[R]
	fn func(A, B, C, D, E) R
}

func (s *func5[A, B, C, D, E, R]) arity() int { return 5 }

func (s *func5[A, B, C, D, E, R]) dispatch(tokens []string) (string, error) {
	var errs []error
	a := arg(s.a, tokens, 0, &errs)
	b := arg(s.b, tokens, 1, &errs)
	c := arg(s.c, tokens, 2, &errs)
	d := arg(s.d, tokens, 3, &errs)
	e := arg(s.e, tokens, 4, &errs)
	if err := bound(errs); err != nil {
		return "", err
	}
	return s.r.ToString(s.fn(a, b, c, d, e)), nil
}

type func6[A, B, C, D, E, F, R any] struct {
	a  FromString[A]
	b  FromString[B]
	c  FromString[C]
	d  FromString[D]
	e  FromString[E]
	f  FromString[F]
	r  ToString[R]
	fn func(A, B, C, D, E, F) R
}

func (s *func6[A, B, C, D, E, F, R]) arity() int { return 6 }

func (s *func6[A, B, C, D, E, F, R]) dispatch(tokens []string) (string, error) {
	var errs []error
	a := arg(s.a, tokens, 0, &errs)
	b := arg(s.b, tokens, 1, &errs)
	c := arg(s.c, tokens, 2, &errs)
	d := arg(s.d, tokens, 3, &errs)
	e := arg(s.e, tokens, 4, &errs)
	f := arg(s.f, tokens, 5, &errs)
	if err := bound(errs); err != nil {
		return "", err
	}
	return s.r.ToString(s.fn(a, b, c, d, e, f)), nil
}

// Func0 binds a function that takes no arguments.
func Func0[R any](r ToString[R], fn func() R) Invoker {
	return Invoker{&func0[R]{r: r, fn: fn}}
}

// Func1 binds a one-argument function. a converts its token and r formats
// the result.
//
//	quill.Func1(quill.Int, quill.Int, func(x int) int { return x * 2 })
func Func1[A, R any](a FromString[A], r ToString[R], fn func(A) R) Invoker {
	return Invoker{&func1[A, R]{a: a, r: r, fn: fn}}
}

// Func2 binds a two-argument function.
func Func2[A, B, R any](a FromString[A], b FromString[B], r ToString[R], fn func(A, B) R) Invoker {
	return Invoker{&func2[A, B, R]{a: a, b: b, r: r, fn: fn}}
}

// Func3 binds a 3-argument function.
func Func3[A, B, C, R any](a FromString[A], b FromString[B], c FromString[C], r ToString[R], fn func(A, B, C) R) Invoker {
	return Invoker{&func3[A, B, C, R]{a: a, b: b, c: c, r: r, fn: fn}}
}

// Func4 binds a 4-argument function.
func Func4[A, B, C, D, R any](a FromString[A], b FromString[B], c FromString[C], d FromString[D], r ToString[R], fn func(A, B, C, D) R) Invoker {
	return Invoker{&func4[A, B, C, D, R]{a: a, b: b, c: c, d: d, r: r, fn: fn}}
}

// Func5 binds a 5-argument function.
func Func5[A, B, C, D, E, R any](a FromString[A], b FromString[B], c FromString[C], d FromString[D], e FromString[E], r ToString[R], fn func(A, B, C, D, E) R) Invoker {
	return Invoker{&func5[A, B, C, D, E, R]{a: a, b: b, c: c, d: d, e: e, r: r, fn: fn}}
}

// Func6 binds a 6-argument function.
func Func6[A, B, C, D, E, F, R any](a FromString[A], b FromString[B], c FromString[C], d FromString[D], e FromString[E], f FromString[F], r ToString[R], fn func(A, B, C, D, E, F) R) Invoker {
	return Invoker{&func6[A, B, C, D, E, F, R]{a: a, b: b, c: c, d: d, e: e, f: f, r: r, fn: fn}}
}

// Proc0 binds a function with no arguments and no result.
// A successful call yields "".
func Proc0(fn func()) Invoker {
	return Func0(VoidCodec, func() Void {
		fn()
		return Void{}
	})
}

// Proc1 binds a one-argument function with no result.
func Proc1[A any](a FromString[A], fn func(A)) Invoker {
	return Func1(a, VoidCodec, func(a0 A) Void {
		fn(a0)
		return Void{}
	})
}

// Proc2 is Proc1 for 2 arguments.
func Proc2[A, B any](a FromString[A], b FromString[B], fn func(A, B)) Invoker {
	return Func2(a, b, VoidCodec, func(a0 A, a1 B) Void {
		fn(a0, a1)
		return Void{}
	})
}

// Proc3 is Proc1 for 3 arguments.
func Proc3[A, B, C any](a FromString[A], b FromString[B], c FromString[C], fn func(A, B, C)) Invoker {
	return Func3(a, b, c, VoidCodec, func(a0 A, a1 B, a2 C) Void {
		fn(a0, a1, a2)
		return Void{}
	})
}

// Proc4 is Proc1 for 4 arguments.
func Proc4[A, B, C, D any](a FromString[A], b FromString[B], c FromString[C], d FromString[D], fn func(A, B, C, D)) Invoker {
	return Func4(a, b, c, d, VoidCodec, func(a0 A, a1 B, a2 C, a3 D) Void {
		fn(a0, a1, a2, a3)
		return Void{}
	})
}

// Proc5 is Proc1 for 5 arguments.
func Proc5[A, B, C, D, E any](a FromString[A], b FromString[B], c FromString[C], d FromString[D], e FromString[E], fn func(A, B, C, D, E)) Invoker {
	return Func5(a, b, c, d, e, VoidCodec, func(a0 A, a1 B, a2 C, a3 D, a4 E) Void {
		fn(a0, a1, a2, a3, a4)
		return Void{}
	})
}

// Proc6 is Proc1 for 6 arguments.
func Proc6[A, B, C, D, E, F any](a FromString[A], b FromString[B], c FromString[C], d FromString[D], e FromString[E], f FromString[F], fn func(A, B, C, D, E, F)) Invoker {
	return Func6(a, b, c, d, e, f, VoidCodec, func(a0 A, a1 B, a2 C, a3 D, a4 E, a5 F) Void {
		fn(a0, a1, a2, a3, a4, a5)
		return Void{}
	})
}
