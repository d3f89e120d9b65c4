package lexer

import "fmt"

// ErrorKind enumerates every diagnosable lexical error. The set is closed;
// the downstream parser decides whether to abort on the first error item or
// collect them all.
type ErrorKind int

const (
	ErrBadLineContinuation ErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedTripleString
	ErrInvalidCharacter
	ErrDedent
	ErrHexEscapeShort
	ErrMalformedUnicodeEscape
	ErrMalformedNamedUnicodeEscape
	ErrUnknownUnicodeName
	ErrMissingDigits
	ErrMalformedFloat
	ErrMalformedImaginary
	ErrInvalidSymbol
	ErrInternal
)

var errorKindNames = [...]string{
	ErrBadLineContinuation:         "BadLineContinuation",
	ErrUnterminatedString:          "UnterminatedString",
	ErrUnterminatedTripleString:    "UnterminatedTripleString",
	ErrInvalidCharacter:            "InvalidCharacter",
	ErrDedent:                      "Dedent",
	ErrHexEscapeShort:              "HexEscapeShort",
	ErrMalformedUnicodeEscape:      "MalformedUnicodeEscape",
	ErrMalformedNamedUnicodeEscape: "MalformedNamedUnicodeEscape",
	ErrUnknownUnicodeName:          "UnknownUnicodeName",
	ErrMissingDigits:               "MissingDigits",
	ErrMalformedFloat:              "MalformedFloat",
	ErrMalformedImaginary:          "MalformedImaginary",
	ErrInvalidSymbol:               "InvalidSymbol",
	ErrInternal:                    "Internal",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// LexError is one lexical error carried in place of a token. Ch holds the
// offending character for InvalidSymbol/InvalidCharacter; Name holds the
// unresolved name for UnknownUnicodeName, or a detail for Internal.
type LexError struct {
	Kind ErrorKind
	Ch   rune
	Name string
}

func (e *LexError) Error() string {
	switch e.Kind {
	case ErrBadLineContinuation:
		return "unexpected character after line continuation character"
	case ErrUnterminatedString:
		return "unterminated string literal"
	case ErrUnterminatedTripleString:
		return "unterminated triple-quoted string literal"
	case ErrInvalidCharacter:
		return fmt.Sprintf("invalid character %q in byte literal escape", e.Ch)
	case ErrDedent:
		return "unindent does not match any outer indentation level"
	case ErrHexEscapeShort:
		return "\\x escape requires exactly two hex digits"
	case ErrMalformedUnicodeEscape:
		return "truncated \\u or \\U escape"
	case ErrMalformedNamedUnicodeEscape:
		return "malformed \\N character name escape"
	case ErrUnknownUnicodeName:
		return fmt.Sprintf("unknown Unicode character name %q", e.Name)
	case ErrMissingDigits:
		return "radix prefix or exponent with no digits"
	case ErrMalformedFloat:
		return "malformed floating point literal"
	case ErrMalformedImaginary:
		return "malformed imaginary literal"
	case ErrInvalidSymbol:
		return fmt.Sprintf("invalid symbol %q", e.Ch)
	case ErrInternal:
		return fmt.Sprintf("internal lexer error: %s", e.Name)
	}
	return fmt.Sprintf("lexer error %d", int(e.Kind))
}
