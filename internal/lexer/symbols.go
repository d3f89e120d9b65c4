package lexer

import "github.com/funvibe/pylex/internal/token"

// scanSymbol matches one operator or delimiter with greedy, family-ordered
// longest match. Opening and closing brackets adjust the nesting depth that
// gates implicit line joining; the closing side clamps at zero since true
// bracket matching belongs to the parser. Any character matching no rule
// is consumed as an InvalidSymbol error so scanning always makes progress.
func (s *Scanner) scanSymbol(ln *line) Item {
	c := ln.advance()
	var typ token.Type
	switch c {
	case '(':
		s.depth++
		typ = token.LPAREN
	case ')':
		if s.depth > 0 {
			s.depth--
		}
		typ = token.RPAREN
	case '[':
		s.depth++
		typ = token.LBRACKET
	case ']':
		if s.depth > 0 {
			s.depth--
		}
		typ = token.RBRACKET
	case '{':
		s.depth++
		typ = token.LBRACE
	case '}':
		if s.depth > 0 {
			s.depth--
		}
		typ = token.RBRACE
	case ',':
		typ = token.COMMA
	case ':':
		typ = token.COLON
	case ';':
		typ = token.SEMICOLON
	case '~':
		typ = token.TILDE
	case '=':
		typ = matchAssign(ln, token.ASSIGN, token.EQ)
	case '@':
		typ = matchAssign(ln, token.AT, token.AT_ASSIGN)
	case '%':
		typ = matchAssign(ln, token.PERCENT, token.PERCENT_ASSIGN)
	case '&':
		typ = matchAssign(ln, token.AMP, token.AMP_ASSIGN)
	case '|':
		typ = matchAssign(ln, token.PIPE, token.PIPE_ASSIGN)
	case '^':
		typ = matchAssign(ln, token.CARET, token.CARET_ASSIGN)
	case '+':
		typ = matchAssign(ln, token.PLUS, token.PLUS_ASSIGN)
	case '*':
		typ = matchDoubled(ln, '*',
			token.ASTERISK, token.ASTERISK_ASSIGN,
			token.POWER, token.POWER_ASSIGN)
	case '/':
		typ = matchDoubled(ln, '/',
			token.SLASH, token.SLASH_ASSIGN,
			token.FLOOR_DIV, token.FLOOR_DIV_ASSIGN)
	case '<':
		typ = matchDoubled(ln, '<',
			token.LT, token.LTE,
			token.LSHIFT, token.LSHIFT_ASSIGN)
	case '>':
		typ = matchDoubled(ln, '>',
			token.GT, token.GTE,
			token.RSHIFT, token.RSHIFT_ASSIGN)
	case '-':
		typ = token.MINUS
		switch ln.peek() {
		case '=':
			ln.advance()
			typ = token.MINUS_ASSIGN
		case '>':
			ln.advance()
			typ = token.ARROW
		}
	case '!':
		// only valid as part of !=
		if ln.peek() != '=' {
			return Item{Line: ln.number, Err: &LexError{Kind: ErrInvalidSymbol, Ch: '!'}}
		}
		ln.advance()
		typ = token.NOT_EQ
	case '.':
		typ = token.DOT
		if ln.peek() == '.' && ln.peekAt(1) == '.' {
			ln.advance()
			ln.advance()
			typ = token.ELLIPSIS
		}
	default:
		return Item{Line: ln.number, Err: &LexError{Kind: ErrInvalidSymbol, Ch: c}}
	}
	return Item{Line: ln.number, Tok: token.Token{Type: typ, Literal: string(typ)}}
}

// matchAssign extends a single-character operator with a trailing = when
// present.
func matchAssign(ln *line, plain, withEq token.Type) token.Type {
	if ln.peek() == '=' {
		ln.advance()
		return withEq
	}
	return plain
}

// matchDoubled disambiguates the c / c= / cc / cc= operator families
// (longest match first within a family).
func matchDoubled(ln *line, c rune, single, singleEq, double, doubleEq token.Type) token.Type {
	if ln.peek() == c {
		ln.advance()
		return matchAssign(ln, double, doubleEq)
	}
	return matchAssign(ln, single, singleEq)
}
