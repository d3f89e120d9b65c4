// Package lexer tokenizes Python-family source text. The core Scanner turns
// an in-memory buffer into a lazy stream of (line, token-or-error) items:
// keywords, operators, literals, and the synthetic NEWLINE/INDENT/DEDENT
// layout tokens driven by significant indentation. New wraps the scanner in
// the byte- and string-literal joining stages a downstream parser expects.
package lexer

import (
	"strings"
	"unicode"

	"github.com/funvibe/pylex/internal/token"
)

// Item is one element of the lexed stream: a token or a lexical error,
// tagged with the 1-based physical line it was produced on. Trailing
// synthetic DEDENT tokens at end of input carry the sentinel line 0.
type Item struct {
	Line int
	Tok  token.Token
	Err  *LexError
}

// Stream is the shared pull contract implemented by the scanner and the
// literal-joining stages that wrap it. Items arrive strictly in source
// order, one per pull; ok is false only once all pending dedents at end of
// input have drained.
type Stream interface {
	Next() (Item, bool)
}

// Scanner is the core tokenizer. It owns the indentation stack, the pending
// dedent state, and the bracket nesting depth that gates implicit line
// joining. It is not safe for concurrent use; construct one per input.
type Scanner struct {
	lines *lineReader
	cur   *line

	indents []int // indentation stack, always starts with the 0 sentinel
	pending int   // dedent levels still to emit, one per pull
	// misaligned records that the last dedent landed between stack levels;
	// exactly one Dedent error is emitted before the remaining dedents.
	misaligned bool
	depth      int // open ( [ { nesting; newlines are swallowed while > 0
}

// NewScanner returns the core scanner without the literal-joining stages.
func NewScanner(source string) *Scanner {
	return &Scanner{lines: newLineReader(source), indents: []int{0}}
}

// Next returns the next token or error item. After the input is exhausted
// one DEDENT per open indentation level is synthesized, then ok is false.
func (s *Scanner) Next() (Item, bool) {
	for {
		if s.cur == nil {
			ln, ok := s.lines.next()
			if !ok {
				if len(s.indents) <= 1 {
					return Item{}, false
				}
				s.indents = s.indents[:len(s.indents)-1]
				return Item{Line: 0, Tok: token.Token{Type: token.DEDENT}}, true
			}
			if it, emitted := s.beginLine(ln); emitted {
				return it, true
			}
			continue
		}

		if s.misaligned || s.pending > 0 {
			return s.nextDedent(), true
		}

		s.skipSpace()
		ln := s.cur
		c := ln.peek()
		switch {
		case ln.eol() || c == '#':
			if it, emitted := s.endOfLine(); emitted {
				return it, true
			}
		case c == 'u' || c == 'U':
			if isQuote(ln.peekAt(1)) {
				return s.scanString(ln), true
			}
			return s.scanIdentifier(ln), true
		case c == 'r' || c == 'R':
			if isQuote(ln.peekAt(1)) {
				return s.scanString(ln), true
			}
			if (ln.peekAt(1) == 'b' || ln.peekAt(1) == 'B') && isQuote(ln.peekAt(2)) {
				return s.scanBytes(ln), true
			}
			return s.scanIdentifier(ln), true
		case c == 'b' || c == 'B':
			if isQuote(ln.peekAt(1)) ||
				((ln.peekAt(1) == 'r' || ln.peekAt(1) == 'R') && isQuote(ln.peekAt(2))) {
				return s.scanBytes(ln), true
			}
			return s.scanIdentifier(ln), true
		case isIdentStart(c):
			return s.scanIdentifier(ln), true
		case isDigit(c):
			return s.scanNumber(ln), true
		case c == '.':
			if isDigit(ln.peekAt(1)) {
				return s.scanNumber(ln), true
			}
			return s.scanSymbol(ln), true
		case c == '\\':
			if it, emitted := s.lineJoin(ln); emitted {
				return it, true
			}
		case isQuote(c):
			return s.scanString(ln), true
		default:
			return s.scanSymbol(ln), true
		}
	}
}

// beginLine applies indentation tracking at the start of a physical line
// reached outside any bracket. Blank and comment-only lines emit nothing
// and leave the stack untouched.
func (s *Scanner) beginLine(ln *line) (Item, bool) {
	if len(s.indents) == 0 {
		panic("lexer: indentation stack exhausted")
	}
	if ln.eol() || ln.peek() == '#' {
		return Item{}, false
	}
	top := s.indents[len(s.indents)-1]
	switch {
	case ln.indent > top:
		s.indents = append(s.indents, ln.indent)
		s.cur = ln
		return Item{Line: ln.number, Tok: token.Token{Type: token.INDENT}}, true
	case ln.indent < top:
		popped := 0
		for ln.indent < s.indents[len(s.indents)-1] {
			s.indents = s.indents[:len(s.indents)-1]
			popped++
		}
		if s.indents[len(s.indents)-1] != ln.indent {
			s.misaligned = true
			s.pending = popped - 1
		} else {
			s.pending = popped
		}
		s.cur = ln
		return Item{}, false
	default:
		s.cur = ln
		return Item{}, false
	}
}

// nextDedent drains the pending dedent state one item per pull: the single
// misalignment error first, then one ordinary DEDENT per remaining level.
func (s *Scanner) nextDedent() Item {
	if s.misaligned {
		s.misaligned = false
		return Item{Line: s.cur.number, Err: &LexError{Kind: ErrDedent}}
	}
	s.pending--
	return Item{Line: s.cur.number, Tok: token.Token{Type: token.DEDENT}}
}

// endOfLine finishes the current physical line: a NEWLINE at bracket depth
// zero, or a silent advance to the next line inside brackets.
func (s *Scanner) endOfLine() (Item, bool) {
	if s.depth == 0 {
		it := Item{Line: s.cur.number, Tok: token.Token{Type: token.NEWLINE}}
		s.cur = nil
		return it, true
	}
	next, ok := s.lines.next()
	if !ok {
		s.cur = nil
	} else {
		s.cur = next
	}
	return Item{}, false
}

// lineJoin handles an explicit backslash continuation. A backslash anywhere
// but immediately before end of line is an error; scanning resumes after it.
func (s *Scanner) lineJoin(ln *line) (Item, bool) {
	ln.advance()
	if !ln.eol() {
		return Item{Line: ln.number, Err: &LexError{Kind: ErrBadLineContinuation}}, true
	}
	next, ok := s.lines.next()
	if !ok {
		s.cur = nil
	} else {
		s.cur = next
	}
	return Item{}, false
}

func (s *Scanner) scanIdentifier(ln *line) Item {
	var sb strings.Builder
	sb.WriteRune(ln.advance())
	for isIdentContinue(ln.peek()) {
		sb.WriteRune(ln.advance())
	}
	lit := sb.String()
	return Item{Line: ln.number, Tok: token.Token{Type: token.LookupIdent(lit), Literal: lit}}
}

func (s *Scanner) skipSpace() {
	for !s.cur.eol() && isSpace(s.cur.peek()) {
		s.cur.advance()
	}
}

func isQuote(c rune) bool { return c == '\'' || c == '"' }

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

// isIdentStart approximates XID_Start with alphabetic-or-underscore; a
// documented simplification of the full Unicode identifier rules.
func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

// isIdentContinue approximates XID_Continue with alphanumeric-or-underscore.
func isIdentContinue(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsNumber(c) || c == '_'
}
