package lexer

import "strings"

// tabStop is the column multiple a tab advances indentation to.
const tabStop = 8

// line is the cursor over one physical line. The leading whitespace has
// already been consumed into leading/indent; rest holds the remainder of
// the line with pos as the scan position.
type line struct {
	number  int
	indent  int
	leading string
	rest    []rune
	pos     int
}

func (l *line) eol() bool { return l.pos >= len(l.rest) }

func (l *line) peek() rune { return l.peekAt(0) }

func (l *line) peekAt(n int) rune {
	if l.pos+n >= len(l.rest) {
		return 0
	}
	return l.rest[l.pos+n]
}

// advance consumes and returns the next character, or 0 at end of line.
func (l *line) advance() rune {
	if l.eol() {
		return 0
	}
	c := l.rest[l.pos]
	l.pos++
	return c
}

// lineReader produces line cursors lazily, numbering from 1.
type lineReader struct {
	lines []string
	n     int
}

func newLineReader(source string) *lineReader {
	return &lineReader{lines: splitLines(source)}
}

func (r *lineReader) next() (*line, bool) {
	if r.n >= len(r.lines) {
		return nil, false
	}
	raw := r.lines[r.n]
	r.n++
	indent, leading := countIndent(raw)
	return &line{
		number:  r.n,
		indent:  indent,
		leading: leading,
		rest:    []rune(raw[len(leading):]),
	}, true
}

// splitLines breaks the source into physical lines: the terminator is \n,
// one trailing \r per line is stripped, and a terminator at end of input
// does not produce a final empty line.
func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// countIndent measures the indentation width of a raw line and returns the
// leading whitespace verbatim. Space, form feed, and carriage return count
// one column; a tab advances to the next multiple of tabStop.
func countIndent(s string) (int, string) {
	width := 0
	for i, c := range s {
		if !isSpace(c) {
			return width, s[:i]
		}
		if c == '\t' {
			width += tabStop - width%tabStop
		} else {
			width++
		}
	}
	return width, s
}

// isSpace reports intra-line whitespace. Carriage return is treated as
// generic whitespace rather than a line terminator; a documented limitation.
func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\x0C' || c == '\r'
}
