package lexer

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	"github.com/funvibe/pylex/internal/token"
	"github.com/funvibe/pylex/internal/unicodename"
)

// scanString consumes an optional u/U prefix, an optional r/R raw marker,
// and the opening quote(s) of a text literal, then scans its body.
func (s *Scanner) scanString(ln *line) Item {
	if c := ln.peek(); c == 'u' || c == 'U' {
		ln.advance()
	}
	raw := false
	if c := ln.peek(); c == 'r' || c == 'R' {
		raw = true
		ln.advance()
	}
	quote := ln.advance()
	triple := ln.peek() == quote && ln.peekAt(1) == quote
	if triple {
		ln.advance()
		ln.advance()
	}
	return s.buildString(ln, quote, raw, triple)
}

// scanBytes consumes the b/B prefix, possibly combined with r/R in either
// order, and the opening quote(s) of a byte literal.
func (s *Scanner) scanBytes(ln *line) Item {
	raw := false
	if c := ln.peekAt(1); c == 'r' || c == 'R' || ln.peek() == 'r' || ln.peek() == 'R' {
		ln.advance()
		ln.advance()
		raw = true
	} else {
		ln.advance()
	}
	quote := ln.advance()
	triple := ln.peek() == quote && ln.peekAt(1) == quote
	if triple {
		ln.advance()
		ln.advance()
	}
	return s.buildBytes(ln, quote, raw, triple)
}

// buildString scans a text literal body to its closing quote(s), decoding
// escapes unless raw. A triple literal continues across physical lines,
// keeping each continuation line's leading whitespace verbatim; a non-triple
// literal hitting end of line is unterminated with no resynchronization.
func (s *Scanner) buildString(ln *line, quote rune, raw, triple bool) Item {
	first := ln.number
	var sb strings.Builder
	cur := ln
	for {
		if cur.eol() {
			if !triple {
				s.cur = cur
				return Item{Line: cur.number, Err: &LexError{Kind: ErrUnterminatedString}}
			}
			sb.WriteByte('\n')
			next, ok := s.lines.next()
			if !ok {
				s.cur = nil
				return Item{Line: cur.number + 1, Err: &LexError{Kind: ErrUnterminatedTripleString}}
			}
			sb.WriteString(next.leading)
			cur = next
			continue
		}
		c := cur.advance()
		switch {
		case c == '\\':
			num := cur.number
			next, lexErr := s.textEscape(cur, &sb, raw)
			if lexErr != nil {
				s.cur = cur
				return Item{Line: num, Err: lexErr}
			}
			if next == nil {
				s.cur = nil
				kind := ErrUnterminatedString
				if triple {
					kind = ErrUnterminatedTripleString
				}
				return Item{Line: num + 1, Err: &LexError{Kind: kind}}
			}
			cur = next
		case c == quote:
			if !triple {
				s.cur = cur
				return Item{Line: first, Tok: token.Token{Type: token.STRING, Literal: sb.String()}}
			}
			if cur.peek() == quote && cur.peekAt(1) == quote {
				cur.advance()
				cur.advance()
				s.cur = cur
				return Item{Line: first, Tok: token.Token{Type: token.STRING, Literal: sb.String()}}
			}
			sb.WriteRune(c)
		default:
			sb.WriteRune(c)
		}
	}
}

// textEscape decodes one escape sequence whose backslash has already been
// consumed. At end of line it joins to the next physical line (raw mode
// re-emits the backslash and newline first); it returns the line scanning
// continues on, or nil when the input ran out mid-join.
func (s *Scanner) textEscape(cur *line, sb *strings.Builder, raw bool) (*line, *LexError) {
	if cur.eol() {
		if raw {
			sb.WriteString("\\\n")
		}
		next, ok := s.lines.next()
		if !ok {
			return nil, nil
		}
		sb.WriteString(next.leading)
		return next, nil
	}
	c := cur.advance()
	if raw {
		sb.WriteRune('\\')
		sb.WriteRune(c)
		return cur, nil
	}
	switch c {
	case '\\', '\'', '"':
		sb.WriteRune(c)
	case 'a':
		sb.WriteByte(0x07)
	case 'b':
		sb.WriteByte(0x08)
	case 'f':
		sb.WriteByte(0x0C)
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'v':
		sb.WriteByte(0x0B)
	case 'x':
		v, ok := takeHex(cur, 2)
		if !ok {
			return cur, &LexError{Kind: ErrHexEscapeShort}
		}
		sb.WriteRune(rune(v))
	case 'u':
		v, ok := takeHex(cur, 4)
		if !ok {
			return cur, &LexError{Kind: ErrMalformedUnicodeEscape}
		}
		sb.WriteRune(rune(v))
	case 'U':
		v, ok := takeHex(cur, 8)
		if !ok {
			return cur, &LexError{Kind: ErrMalformedUnicodeEscape}
		}
		sb.WriteRune(rune(v))
	case 'N':
		r, lexErr := namedEscape(cur)
		if lexErr != nil {
			return cur, lexErr
		}
		sb.WriteRune(r)
	default:
		if c >= '0' && c <= '7' {
			sb.WriteRune(rune(takeOctal(cur, c)))
		} else {
			// unknown escapes keep the backslash and character
			sb.WriteRune('\\')
			sb.WriteRune(c)
		}
	}
	return cur, nil
}

// buildBytes mirrors buildString for byte literals: every character and
// escape result narrows to a single byte, and only the short, simple,
// octal, and hex escape forms are allowed.
func (s *Scanner) buildBytes(ln *line, quote rune, raw, triple bool) Item {
	first := ln.number
	var buf bytes.Buffer
	cur := ln
	for {
		if cur.eol() {
			if !triple {
				s.cur = cur
				return Item{Line: cur.number, Err: &LexError{Kind: ErrUnterminatedString}}
			}
			buf.WriteByte('\n')
			next, ok := s.lines.next()
			if !ok {
				s.cur = nil
				return Item{Line: cur.number + 1, Err: &LexError{Kind: ErrUnterminatedTripleString}}
			}
			buf.WriteString(next.leading)
			cur = next
			continue
		}
		c := cur.advance()
		switch {
		case c == '\\':
			num := cur.number
			next, lexErr := s.byteEscape(cur, &buf, raw)
			if lexErr != nil {
				s.cur = cur
				return Item{Line: num, Err: lexErr}
			}
			if next == nil {
				s.cur = nil
				kind := ErrUnterminatedString
				if triple {
					kind = ErrUnterminatedTripleString
				}
				return Item{Line: num + 1, Err: &LexError{Kind: kind}}
			}
			cur = next
		case c == quote:
			if !triple {
				s.cur = cur
				return Item{Line: first, Tok: token.Token{Type: token.BYTES, Bytes: buf.Bytes()}}
			}
			if cur.peek() == quote && cur.peekAt(1) == quote {
				cur.advance()
				cur.advance()
				s.cur = cur
				return Item{Line: first, Tok: token.Token{Type: token.BYTES, Bytes: buf.Bytes()}}
			}
			buf.WriteByte(byte(c))
		default:
			buf.WriteByte(byte(c))
		}
	}
}

// byteEscape is the byte-literal counterpart of textEscape. The \u, \U,
// and \N forms are invalid here, as is any non-ASCII escaped character.
func (s *Scanner) byteEscape(cur *line, buf *bytes.Buffer, raw bool) (*line, *LexError) {
	if cur.eol() {
		if raw {
			buf.WriteString("\\\n")
		}
		next, ok := s.lines.next()
		if !ok {
			return nil, nil
		}
		buf.WriteString(next.leading)
		return next, nil
	}
	c := cur.advance()
	if !raw {
		switch c {
		case '\\', '\'', '"':
			buf.WriteByte(byte(c))
			return cur, nil
		case 'a':
			buf.WriteByte(0x07)
			return cur, nil
		case 'b':
			buf.WriteByte(0x08)
			return cur, nil
		case 'f':
			buf.WriteByte(0x0C)
			return cur, nil
		case 'n':
			buf.WriteByte('\n')
			return cur, nil
		case 'r':
			buf.WriteByte('\r')
			return cur, nil
		case 't':
			buf.WriteByte('\t')
			return cur, nil
		case 'v':
			buf.WriteByte(0x0B)
			return cur, nil
		case 'x':
			v, ok := takeHex(cur, 2)
			if !ok {
				return cur, &LexError{Kind: ErrHexEscapeShort}
			}
			buf.WriteByte(byte(v))
			return cur, nil
		case 'u', 'U', 'N':
			return cur, &LexError{Kind: ErrInvalidCharacter, Ch: c}
		}
		if c >= '0' && c <= '7' {
			buf.WriteByte(byte(takeOctal(cur, c)))
			return cur, nil
		}
	}
	if c > unicode.MaxASCII {
		return cur, &LexError{Kind: ErrInvalidCharacter, Ch: c}
	}
	buf.WriteByte('\\')
	buf.WriteByte(byte(c))
	return cur, nil
}

// takeHex consumes exactly n hex digits and returns their value; ok is
// false when fewer are present.
func takeHex(cur *line, n int) (uint32, bool) {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if !isRadixDigit(cur.peek(), 16) {
			return 0, false
		}
		sb.WriteRune(cur.advance())
	}
	v, err := strconv.ParseUint(sb.String(), 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// takeOctal consumes up to two more octal digits after the first and
// returns the combined value (at most 0o777).
func takeOctal(cur *line, first rune) uint32 {
	v := uint32(first - '0')
	for i := 0; i < 2 && cur.peek() >= '0' && cur.peek() <= '7'; i++ {
		v = v*8 + uint32(cur.advance()-'0')
	}
	return v
}

// namedEscape resolves a \N{NAME} escape; the N has already been consumed.
func namedEscape(cur *line) (rune, *LexError) {
	if cur.peek() != '{' {
		return 0, &LexError{Kind: ErrMalformedNamedUnicodeEscape}
	}
	cur.advance()
	var sb strings.Builder
	for !cur.eol() && cur.peek() != '}' {
		sb.WriteRune(cur.advance())
	}
	if cur.peek() != '}' {
		return 0, &LexError{Kind: ErrMalformedNamedUnicodeEscape}
	}
	cur.advance()
	name := sb.String()
	r, ok := unicodename.Lookup(name)
	if !ok {
		return 0, &LexError{Kind: ErrUnknownUnicodeName, Name: name}
	}
	return r, nil
}
