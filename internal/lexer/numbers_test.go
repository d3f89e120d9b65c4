package lexer_test

import (
	"testing"

	"github.com/funvibe/pylex/internal/lexer"
	"github.com/funvibe/pylex/internal/token"
)

func TestNumbers(t *testing.T) {
	source := "1 123 456 45 23.742 23. 12..3 .14 0123.2192 077e010 12e17 12e+17 12E-17 0 00000 00003 0.2 .e12 0o724 0X32facb7 0b10101010 0x 00000e+00000 79228162514264337593543950336 0xdeadbeef 037j 2.3j 2.j .3j . 3..2\n"
	assertStream(t, source, []lexer.Item{
		tok(1, token.DEC_INT, "1"),
		tok(1, token.DEC_INT, "123"),
		tok(1, token.DEC_INT, "456"),
		tok(1, token.DEC_INT, "45"),
		tok(1, token.FLOAT, "23.742"),
		tok(1, token.FLOAT, "23."),
		tok(1, token.FLOAT, "12."),
		tok(1, token.FLOAT, ".3"),
		tok(1, token.FLOAT, ".14"),
		tok(1, token.FLOAT, "0123.2192"),
		tok(1, token.FLOAT, "077e010"),
		tok(1, token.FLOAT, "12e17"),
		tok(1, token.FLOAT, "12e+17"),
		tok(1, token.FLOAT, "12E-17"),
		tok(1, token.DEC_INT, "0"),
		tok(1, token.DEC_INT, "00000"),
		lexErr(1, lexer.ErrMalformedFloat),
		tok(1, token.FLOAT, "0.2"),
		sym(1, token.DOT),
		ident(1, "e12"),
		tok(1, token.OCT_INT, "0o724"),
		tok(1, token.HEX_INT, "0X32facb7"),
		tok(1, token.BIN_INT, "0b10101010"),
		lexErr(1, lexer.ErrMissingDigits),
		tok(1, token.FLOAT, "00000e+00000"),
		tok(1, token.DEC_INT, "79228162514264337593543950336"),
		tok(1, token.HEX_INT, "0xdeadbeef"),
		tok(1, token.IMAGINARY, "037j"),
		tok(1, token.IMAGINARY, "2.3j"),
		tok(1, token.IMAGINARY, "2.j"),
		tok(1, token.IMAGINARY, ".3j"),
		sym(1, token.DOT),
		tok(1, token.FLOAT, "3."),
		tok(1, token.FLOAT, ".2"),
		nl(1),
	})
}

func TestNumberExponentNeedsDigits(t *testing.T) {
	assertStream(t, "12e+\n", []lexer.Item{
		lexErr(1, lexer.ErrMissingDigits),
		nl(1),
	})
}

func TestNumberRadixDigitsStopAtBoundary(t *testing.T) {
	// a binary literal ends at the first non-binary digit
	assertStream(t, "0b102\n", []lexer.Item{
		tok(1, token.BIN_INT, "0b10"),
		tok(1, token.DEC_INT, "2"),
		nl(1),
	})
}

func TestNumberHexFollowedByImaginaryMarker(t *testing.T) {
	// j binds only to decimal and float lexemes
	assertStream(t, "0x12j\n", []lexer.Item{
		tok(1, token.HEX_INT, "0x12"),
		ident(1, "j"),
		nl(1),
	})
}
