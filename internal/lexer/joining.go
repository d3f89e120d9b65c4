package lexer

import "github.com/funvibe/pylex/internal/token"

// New returns the full stage chain a parser consumes: the core scanner
// wrapped by the byte-literal joining stage, wrapped by the string joining
// stage. Adjacent literals of the same kind merge into one token carrying
// the first constituent's line number; mixed string/byte adjacency never
// merges.
func New(source string) Stream {
	return newStringJoiner(newBytesJoiner(NewScanner(source)))
}

// peeker adds single-item lookahead over a Stream.
type peeker struct {
	inner Stream
	buf   *Item
}

func (p *peeker) peek() (Item, bool) {
	if p.buf == nil {
		it, ok := p.inner.Next()
		if !ok {
			return Item{}, false
		}
		p.buf = &it
	}
	return *p.buf, true
}

func (p *peeker) next() (Item, bool) {
	if p.buf != nil {
		it := *p.buf
		p.buf = nil
		return it, true
	}
	return p.inner.Next()
}

// stringJoiner merges runs of adjacent STRING tokens.
type stringJoiner struct {
	in peeker
}

func newStringJoiner(s Stream) *stringJoiner {
	return &stringJoiner{in: peeker{inner: s}}
}

func (j *stringJoiner) Next() (Item, bool) {
	it, ok := j.in.next()
	if !ok || it.Err != nil || it.Tok.Type != token.STRING {
		return it, ok
	}
	for {
		follow, ok := j.in.peek()
		if !ok || follow.Err != nil || follow.Tok.Type != token.STRING {
			break
		}
		j.in.next()
		it.Tok.Literal += follow.Tok.Literal
	}
	return it, true
}

// bytesJoiner merges runs of adjacent BYTES tokens.
type bytesJoiner struct {
	in peeker
}

func newBytesJoiner(s Stream) *bytesJoiner {
	return &bytesJoiner{in: peeker{inner: s}}
}

func (j *bytesJoiner) Next() (Item, bool) {
	it, ok := j.in.next()
	if !ok || it.Err != nil || it.Tok.Type != token.BYTES {
		return it, ok
	}
	var merged []byte
	merged = append(merged, it.Tok.Bytes...)
	for {
		follow, ok := j.in.peek()
		if !ok || follow.Err != nil || follow.Tok.Type != token.BYTES {
			break
		}
		j.in.next()
		merged = append(merged, follow.Tok.Bytes...)
	}
	it.Tok.Bytes = merged
	return it, true
}
