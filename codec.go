package quill

import (
	"encoding"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// FromString converts a token into a parameter value of type T.
//
// Implementations must not have side effects: every argument of a call is
// converted before the function runs, and a failure in any of them aborts
// the call.
type FromString[T any] interface {
	FromString(tok string) (T, error)
}

// ToString converts a result value of type T into the output string.
type ToString[T any] interface {
	ToString(v T) string
}

// Codec pairs a parse and a format function for T and satisfies both
// [FromString] and [ToString]. Either function may be nil when the codec is
// only used in one direction.
type Codec[T any] struct {
	Parse  func(tok string) (T, error)
	Format func(v T) string
}

// Convert returns a Codec built from parse and format.
//
//	var Celsius = quill.Convert(parseCelsius, func(c Celsius) string { return c.String() })
func Convert[T any](parse func(string) (T, error), format func(T) string) Codec[T] {
	return Codec[T]{Parse: parse, Format: format}
}

func (c Codec[T]) FromString(tok string) (T, error) {
	if c.Parse == nil {
		var zero T
		return zero, fmt.Errorf("no parser for %T", zero)
	}
	return c.Parse(tok)
}

func (c Codec[T]) ToString(v T) string {
	if c.Format == nil {
		return fmt.Sprint(v)
	}
	return c.Format(v)
}

// Void is the result type of functions that return nothing.
// It always formats as the empty string.
type Void struct{}

// VoidCodec formats Void as "".
var VoidCodec = Codec[Void]{
	Parse:  func(string) (Void, error) { return Void{}, nil },
	Format: func(Void) string { return "" },
}

// -----------------------------------------------------------------------------
// Strings
// -----------------------------------------------------------------------------

// String passes tokens through unchanged.
var String = Codec[string]{
	Parse:  func(tok string) (string, error) { return tok, nil },
	Format: func(s string) string { return s },
}

// Bytes passes tokens through as a fresh byte slice.
var Bytes = Codec[[]byte]{
	Parse:  func(tok string) ([]byte, error) { return []byte(tok), nil },
	Format: func(b []byte) string { return string(b) },
}

// -----------------------------------------------------------------------------
// Numbers
// -----------------------------------------------------------------------------

// Integer returns the codec for any integer type, including named ones.
//
// Parsing is base 10 and must consume the whole token: an optional '-' (for
// signed types), then digits. A leading '+', underscores, surrounding space
// and values outside T's range are all rejected.
func Integer[T constraints.Integer]() Codec[T] {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	signed := ^zero < 0

	return Codec[T]{
		Parse: func(tok string) (T, error) {
			if !isDecimalInteger(tok, signed) {
				return 0, fmt.Errorf("expected integer but got %q", tok)
			}
			if signed {
				v, err := strconv.ParseInt(tok, 10, bits)
				if err != nil {
					return 0, numError(tok, "integer", err)
				}
				return T(v), nil
			}
			v, err := strconv.ParseUint(tok, 10, bits)
			if err != nil {
				return 0, numError(tok, "integer", err)
			}
			return T(v), nil
		},
		Format: func(v T) string {
			if signed {
				return string(strconv.AppendInt(nil, int64(v), 10))
			}
			return string(strconv.AppendUint(nil, uint64(v), 10))
		},
	}
}

// Float returns the codec for any floating point type, including named ones.
//
// Parsing accepts decimal and exponent forms plus inf, infinity and nan in
// any case, each with an optional '-'. A leading '+', hexadecimal floats,
// underscores and out of range magnitudes are rejected.
// Formatting produces the shortest text that parses back to the same value,
// with infinities and NaN written as inf, -inf and nan.
func Float[T constraints.Float]() Codec[T] {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	return Codec[T]{
		Parse: func(tok string) (T, error) {
			if !isDecimalFloat(tok) {
				return 0, fmt.Errorf("expected floating-point number but got %q", tok)
			}
			v, err := strconv.ParseFloat(tok, bits)
			if err != nil {
				return 0, numError(tok, "floating-point number", err)
			}
			return T(v), nil
		},
		Format: func(v T) string {
			f := float64(v)
			switch {
			case math.IsInf(f, 1):
				return "inf"
			case math.IsInf(f, -1):
				return "-inf"
			case math.IsNaN(f):
				return "nan"
			}
			return string(strconv.AppendFloat(nil, f, 'g', -1, bits))
		},
	}
}

var (
	Int     = Integer[int]()
	Int8    = Integer[int8]()
	Int16   = Integer[int16]()
	Int32   = Integer[int32]()
	Int64   = Integer[int64]()
	Uint    = Integer[uint]()
	Uint8   = Integer[uint8]()
	Uint16  = Integer[uint16]()
	Uint32  = Integer[uint32]()
	Uint64  = Integer[uint64]()
	Uintptr = Integer[uintptr]()

	Float32 = Float[float32]()
	Float64 = Float[float64]()
)

func numError(tok, kind string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return fmt.Errorf("%s out of range: %q", kind, tok)
	}
	return fmt.Errorf("expected %s but got %q", kind, tok)
}

// isDecimalInteger reports whether s is an optional '-' followed by at least
// one ASCII digit. strconv alone would also accept a leading '+'.
func isDecimalInteger(s string, signed bool) bool {
	if signed && strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDecimalFloat rejects the forms strconv.ParseFloat accepts beyond the
// plain decimal grammar: a leading '+', hex mantissas and underscores.
func isDecimalFloat(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" || s[0] == '+' {
		return false
	}
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return false
	}
	return !strings.ContainsRune(s, '_')
}

// -----------------------------------------------------------------------------
// Other built-ins
// -----------------------------------------------------------------------------

// Bool accepts 1, true, yes, on and 0, false, no, off in any case, and
// formats as 1 or 0.
var Bool = Codec[bool]{
	Parse: func(tok string) (bool, error) {
		switch strings.ToLower(tok) {
		case "1", "true", "yes", "on":
			return true, nil
		case "0", "false", "no", "off":
			return false, nil
		default:
			return false, fmt.Errorf("expected boolean but got %q", tok)
		}
	},
	Format: func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	},
}

// Duration uses time.ParseDuration syntax, e.g. 1h30m or 250ms.
var Duration = Codec[time.Duration]{
	Parse: func(tok string) (time.Duration, error) {
		d, err := time.ParseDuration(tok)
		if err != nil {
			return 0, fmt.Errorf("expected duration but got %q", tok)
		}
		return d, nil
	},
	Format: time.Duration.String,
}

// textPtr is satisfied by *T when T round-trips through text marshaling.
type textPtr[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Text returns a codec for a type that implements encoding.TextMarshaler
// on its value and encoding.TextUnmarshaler on its pointer, such as
// netip.Addr or netip.Prefix.
//
//	reg.Register("ping", quill.Proc1(quill.Text[netip.Addr](), ping))
func Text[T encoding.TextMarshaler, PT textPtr[T]]() Codec[T] {
	return Codec[T]{
		Parse: func(tok string) (T, error) {
			var v T
			if err := PT(&v).UnmarshalText([]byte(tok)); err != nil {
				return v, fmt.Errorf("expected %T but got %q: %w", v, tok, err)
			}
			return v, nil
		},
		Format: func(v T) string {
			b, err := v.MarshalText()
			if err != nil {
				return fmt.Sprint(v)
			}
			return string(b)
		},
	}
}
