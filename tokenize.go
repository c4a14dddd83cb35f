package quill

import "strings"

// QuoteState reports whether Tokenize stopped inside a quoted span.
type QuoteState int

const (
	QuoteNone   QuoteState = iota // input was complete
	QuoteSingle                   // input ended inside '...'
	QuoteDouble                   // input ended inside "..."
)

func (q QuoteState) String() string {
	switch q {
	case QuoteNone:
		return "none"
	case QuoteSingle:
		return "single quote"
	case QuoteDouble:
		return "double quote"
	default:
		return "unknown quote state"
	}
}

// Rune returns the quote character left open, or 0 for QuoteNone.
func (q QuoteState) Rune() rune {
	switch q {
	case QuoteSingle:
		return '\''
	case QuoteDouble:
		return '"'
	default:
		return 0
	}
}

// Tokenize splits line into tokens with bash-like quoting, e.g.
//
//	a b'c d'e f'"g"'
//
// yields the tokens
//
//	a
//	bc de
//	f"g"
//
// Tokens are separated by runs of spaces. Single and double quotes group
// text verbatim: there are no escapes and the other quote character is an
// ordinary byte inside a span. Quoted and unquoted spans that touch are
// joined into one token.
//
// If line ends inside a quote, the partial token is still returned and the
// QuoteState names the open quote. Callers should treat that as incomplete
// input, not as a usable result.
func Tokenize(line string) ([]string, QuoteState) {
	var (
		tokens []string
		cur    strings.Builder
		state  = QuoteNone
	)

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for len(line) > 0 {
		switch state {
		case QuoteSingle, QuoteDouble:
			end := strings.IndexByte(line, byte(state.Rune()))
			if end < 0 {
				cur.WriteString(line)
				tokens = append(tokens, cur.String())
				return tokens, state
			}
			cur.WriteString(line[:end])
			line = line[end+1:]
			state = QuoteNone

		default:
			end := strings.IndexAny(line, " '\"")
			if end < 0 {
				cur.WriteString(line)
				line = ""
				continue
			}
			cur.WriteString(line[:end])
			switch line[end] {
			case ' ':
				flush()
			case '\'':
				state = QuoteSingle
			case '"':
				state = QuoteDouble
			}
			line = line[end+1:]
		}
	}

	if state != QuoteNone {
		// Line ended right after an opening quote.
		tokens = append(tokens, cur.String())
		return tokens, state
	}
	flush()
	return tokens, QuoteNone
}

// Quote returns tok in a form that Tokenize reads back as the same single
// token. Tokens that need no quoting are returned unchanged.
//
// The empty token is rendered as '' even though Tokenize drops empty spans;
// there is no input that produces an empty token.
func Quote(tok string) string {
	if tok == "" {
		return "''"
	}
	if !strings.ContainsAny(tok, " '\"") {
		return tok
	}

	var b strings.Builder
	delim := byte('\'')
	if tok[0] == '\'' {
		delim = '"'
	}
	b.WriteByte(delim)
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c == delim {
			// Close this span and continue in the other quote kind.
			b.WriteByte(delim)
			if delim == '\'' {
				delim = '"'
			} else {
				delim = '\''
			}
			b.WriteByte(delim)
		}
		b.WriteByte(c)
	}
	b.WriteByte(delim)
	return b.String()
}
