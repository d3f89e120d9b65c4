// Package token defines the closed set of lexical tokens produced for
// Python-family source text, including the synthetic layout tokens driven
// by significant indentation.
package token

// Type identifies a token variant. Operator types use their canonical
// lexeme as the value; keyword and literal classes use an uppercase name.
type Type string

// Token is one classified lexeme. Numeric literals keep their exact source
// text in Literal (prefix and exponent case preserved); STRING carries the
// decoded text and BYTES the decoded byte sequence.
type Token struct {
	Type    Type
	Literal string
	Bytes   []byte
}

const (
	// Layout tokens synthesized at line boundaries.
	NEWLINE Type = "NEWLINE"
	INDENT  Type = "INDENT"
	DEDENT  Type = "DEDENT"

	// Literal classes.
	IDENT     Type = "IDENT"
	STRING    Type = "STRING"
	BYTES     Type = "BYTES"
	DEC_INT   Type = "DEC_INT"
	BIN_INT   Type = "BIN_INT"
	OCT_INT   Type = "OCT_INT"
	HEX_INT   Type = "HEX_INT"
	FLOAT     Type = "FLOAT"
	IMAGINARY Type = "IMAGINARY"

	// Operators and delimiters.
	PLUS      Type = "+"
	MINUS     Type = "-"
	ASTERISK  Type = "*"
	POWER     Type = "**"
	SLASH     Type = "/"
	FLOOR_DIV Type = "//"
	PERCENT   Type = "%"
	AT        Type = "@"
	LSHIFT    Type = "<<"
	RSHIFT    Type = ">>"
	AMP       Type = "&"
	PIPE      Type = "|"
	CARET     Type = "^"
	TILDE     Type = "~"
	LT        Type = "<"
	GT        Type = ">"
	LTE       Type = "<="
	GTE       Type = ">="
	EQ        Type = "=="
	NOT_EQ    Type = "!="

	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACKET  Type = "["
	RBRACKET  Type = "]"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	COMMA     Type = ","
	COLON     Type = ":"
	SEMICOLON Type = ";"
	DOT       Type = "."
	ELLIPSIS  Type = "..."
	ARROW     Type = "->"

	ASSIGN           Type = "="
	PLUS_ASSIGN      Type = "+="
	MINUS_ASSIGN     Type = "-="
	ASTERISK_ASSIGN  Type = "*="
	SLASH_ASSIGN     Type = "/="
	FLOOR_DIV_ASSIGN Type = "//="
	PERCENT_ASSIGN   Type = "%="
	AT_ASSIGN        Type = "@="
	AMP_ASSIGN       Type = "&="
	PIPE_ASSIGN      Type = "|="
	CARET_ASSIGN     Type = "^="
	LSHIFT_ASSIGN    Type = "<<="
	RSHIFT_ASSIGN    Type = ">>="
	POWER_ASSIGN     Type = "**="

	// Keywords. async and await are deliberately absent; they lex as
	// ordinary identifiers.
	FALSE    Type = "FALSE"
	NONE     Type = "NONE"
	TRUE     Type = "TRUE"
	AND      Type = "AND"
	AS       Type = "AS"
	ASSERT   Type = "ASSERT"
	BREAK    Type = "BREAK"
	CLASS    Type = "CLASS"
	CONTINUE Type = "CONTINUE"
	DEF      Type = "DEF"
	DEL      Type = "DEL"
	ELIF     Type = "ELIF"
	ELSE     Type = "ELSE"
	EXCEPT   Type = "EXCEPT"
	FINALLY  Type = "FINALLY"
	FOR      Type = "FOR"
	FROM     Type = "FROM"
	GLOBAL   Type = "GLOBAL"
	IF       Type = "IF"
	IMPORT   Type = "IMPORT"
	IN       Type = "IN"
	IS       Type = "IS"
	LAMBDA   Type = "LAMBDA"
	NONLOCAL Type = "NONLOCAL"
	NOT      Type = "NOT"
	OR       Type = "OR"
	PASS     Type = "PASS"
	RAISE    Type = "RAISE"
	RETURN   Type = "RETURN"
	TRY      Type = "TRY"
	WHILE    Type = "WHILE"
	WITH     Type = "WITH"
	YIELD    Type = "YIELD"
)

var keywords = map[string]Type{
	"False":    FALSE,
	"None":     NONE,
	"True":     TRUE,
	"and":      AND,
	"as":       AS,
	"assert":   ASSERT,
	"break":    BREAK,
	"class":    CLASS,
	"continue": CONTINUE,
	"def":      DEF,
	"del":      DEL,
	"elif":     ELIF,
	"else":     ELSE,
	"except":   EXCEPT,
	"finally":  FINALLY,
	"for":      FOR,
	"from":     FROM,
	"global":   GLOBAL,
	"if":       IF,
	"import":   IMPORT,
	"in":       IN,
	"is":       IS,
	"lambda":   LAMBDA,
	"nonlocal": NONLOCAL,
	"not":      NOT,
	"or":       OR,
	"pass":     PASS,
	"raise":    RAISE,
	"return":   RETURN,
	"try":      TRY,
	"while":    WHILE,
	"with":     WITH,
	"yield":    YIELD,
}

// LookupIdent maps a scanned identifier to its keyword type, or IDENT if it
// is not reserved.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

// IsKeyword reports whether name is one of the reserved words.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}
