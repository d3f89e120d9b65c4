package lexer

import "github.com/funvibe/pylex/internal/token"

// scanNumber dispatches on the first character of a numeric literal: a zero
// opens the radix-prefixed path, a dot the dot-prefixed float path, and any
// other digit the decimal path. Lexemes keep their exact source text.
func (s *Scanner) scanNumber(ln *line) Item {
	var tok token.Token
	var err *LexError
	switch {
	case ln.peek() == '0':
		tok, err = scanZeroPrefixed(ln)
	case ln.peek() == '.':
		tok, err = scanDotPrefixed(ln)
	default:
		tok, err = requireDigits("", ln, 10, token.DEC_INT)
		tok, err = floatPart(tok, err, ln)
	}
	if err != nil {
		return Item{Line: ln.number, Err: err}
	}
	return Item{Line: ln.number, Tok: tok}
}

func scanDotPrefixed(ln *line) (token.Token, *LexError) {
	lex := string(ln.advance())
	if !isDigit(ln.peek()) {
		// dispatch only routes here with a digit after the dot
		return token.Token{}, &LexError{Kind: ErrInternal, Name: "dot-prefixed number without digits"}
	}
	tok, err := requireDigits(lex, ln, 10, token.FLOAT)
	tok, err = expFloat(tok, err, ln)
	return imagFloat(tok, err, ln)
}

func scanZeroPrefixed(ln *line) (token.Token, *LexError) {
	lex := string(ln.advance())
	switch c := ln.peek(); {
	case c == 'o' || c == 'O':
		lex += string(ln.advance())
		return requireDigits(lex, ln, 8, token.OCT_INT)
	case c == 'x' || c == 'X':
		lex += string(ln.advance())
		return requireDigits(lex, ln, 16, token.HEX_INT)
	case c == 'b' || c == 'B':
		lex += string(ln.advance())
		return requireDigits(lex, ln, 2, token.BIN_INT)
	case c == '0':
		for ln.peek() == '0' {
			lex += string(ln.advance())
		}
		if isDigit(ln.peek()) {
			// looks like a legacy octal literal; only a float or imaginary
			// continuation makes it legal
			tok, err := requireDigits(lex, ln, 10, token.DEC_INT)
			return requireFloatPart(tok, err, ln)
		}
		return floatPart(token.Token{Type: token.DEC_INT, Literal: lex}, nil, ln)
	case isDigit(c):
		tok, err := requireDigits(lex, ln, 10, token.DEC_INT)
		return requireFloatPart(tok, err, ln)
	default:
		return floatPart(token.Token{Type: token.DEC_INT, Literal: lex}, nil, ln)
	}
}

// requireDigits appends a non-empty run of digits in the given radix to lex,
// or reports MissingDigits.
func requireDigits(lex string, ln *line, radix int, typ token.Type) (token.Token, *LexError) {
	if !isRadixDigit(ln.peek(), radix) {
		return token.Token{}, &LexError{Kind: ErrMissingDigits}
	}
	for isRadixDigit(ln.peek(), radix) {
		lex += string(ln.advance())
	}
	return token.Token{Type: typ, Literal: lex}, nil
}

// floatPart applies the optional point, exponent, and imaginary extensions
// in order, each gated on the kind produced so far.
func floatPart(tok token.Token, err *LexError, ln *line) (token.Token, *LexError) {
	tok, err = pointFloat(tok, err, ln)
	tok, err = expFloat(tok, err, ln)
	return imagFloat(tok, err, ln)
}

// requireFloatPart demands that a float or imaginary marker follow, for
// integer lexemes that would otherwise read as legacy octal.
func requireFloatPart(tok token.Token, err *LexError, ln *line) (token.Token, *LexError) {
	if err != nil {
		return tok, err
	}
	switch ln.peek() {
	case '.', 'e', 'E', 'j', 'J':
		return floatPart(tok, nil, ln)
	}
	return token.Token{}, &LexError{Kind: ErrMalformedFloat}
}

func pointFloat(tok token.Token, err *LexError, ln *line) (token.Token, *LexError) {
	if err != nil || ln.peek() != '.' {
		return tok, err
	}
	if tok.Type != token.DEC_INT {
		return token.Token{}, &LexError{Kind: ErrMalformedFloat}
	}
	lex := tok.Literal + string(ln.advance())
	if isDigit(ln.peek()) {
		return requireDigits(lex, ln, 10, token.FLOAT)
	}
	return token.Token{Type: token.FLOAT, Literal: lex}, nil
}

func expFloat(tok token.Token, err *LexError, ln *line) (token.Token, *LexError) {
	if err != nil || (ln.peek() != 'e' && ln.peek() != 'E') {
		return tok, err
	}
	if tok.Type != token.DEC_INT && tok.Type != token.FLOAT {
		return token.Token{}, &LexError{Kind: ErrMalformedFloat}
	}
	lex := tok.Literal + string(ln.advance())
	if ln.peek() == '+' || ln.peek() == '-' {
		lex += string(ln.advance())
	}
	return requireDigits(lex, ln, 10, token.FLOAT)
}

func imagFloat(tok token.Token, err *LexError, ln *line) (token.Token, *LexError) {
	if err != nil || (ln.peek() != 'j' && ln.peek() != 'J') {
		return tok, err
	}
	if tok.Type != token.DEC_INT && tok.Type != token.FLOAT {
		return token.Token{}, &LexError{Kind: ErrMalformedImaginary}
	}
	lex := tok.Literal + string(ln.advance())
	return token.Token{Type: token.IMAGINARY, Literal: lex}, nil
}

func isRadixDigit(c rune, radix int) bool {
	switch radix {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return isDigit(c)
	}
}
