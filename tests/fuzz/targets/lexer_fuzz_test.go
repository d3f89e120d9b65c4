package targets

import (
	"testing"

	"github.com/funvibe/pylex/internal/lexer"
	"github.com/funvibe/pylex/internal/token"
)

// FuzzLexer is the entry point for fuzzing the token stream. It checks the
// structural invariants that hold for arbitrary input: the stream
// terminates, line numbers never decrease (except the trailing sentinel
// dedents), every item is a token or an error but never both, and every
// INDENT is balanced by a DEDENT before the stream ends.
func FuzzLexer(f *testing.F) {
	f.Add("def abc(a, g,\n         c):\n   first\n")
	f.Add("x = 1 + 2.5e-1j # tail\n")
	f.Add("'''abc\\\n \tdef\\\n123'''\n")
	f.Add("b'\\x26\\040\\700' rb'abc\\' '\n")
	f.Add("(1 +\n  [2,\n   {3: 4}])\n")
	f.Add("if x:\n        a\n    b\n")
	f.Add("'\\N{BLACK STAR}' '\\u262f'\n")
	f.Add("0x 0123 00000e+00000 12..3\n")

	f.Fuzz(func(t *testing.T, source string) {
		stream := lexer.New(source)
		limit := 4*len(source) + 64

		lastLine := 0
		atTrailer := false
		openIndents := 0
		for i := 0; ; i++ {
			if i > limit {
				t.Fatalf("stream produced more than %d items", limit)
			}
			it, ok := stream.Next()
			if !ok {
				break
			}
			if it.Err != nil && it.Tok.Type != "" {
				t.Fatalf("item %d carries both a token and an error", i)
			}
			if it.Line == 0 {
				atTrailer = true
				if it.Tok.Type != token.DEDENT {
					t.Fatalf("line 0 on non-DEDENT item %d", i)
				}
			} else {
				if atTrailer {
					t.Fatalf("item %d follows a trailing dedent", i)
				}
				if it.Line < lastLine {
					t.Fatalf("line went backwards: %d after %d", it.Line, lastLine)
				}
				lastLine = it.Line
			}
			switch {
			case it.Tok.Type == token.INDENT:
				openIndents++
			case it.Tok.Type == token.DEDENT:
				openIndents--
			case it.Err != nil && it.Err.Kind == lexer.ErrDedent:
				// a misaligned dedent stands in for one closed level
				openIndents--
			}
		}
		if openIndents != 0 {
			t.Fatalf("unbalanced layout: %d INDENT tokens left open", openIndents)
		}
	})
}
