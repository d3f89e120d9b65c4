package token_test

import (
	"testing"

	"github.com/funvibe/pylex/internal/token"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
	}{
		{"def", token.DEF},
		{"False", token.FALSE},
		{"None", token.NONE},
		{"True", token.TRUE},
		{"lambda", token.LAMBDA},
		{"yield", token.YIELD},
		{"false", token.IDENT},
		{"true", token.IDENT},
		{"defdel", token.IDENT},
		{"async", token.IDENT},
		{"await", token.IDENT},
		{"x", token.IDENT},
		{"_", token.IDENT},
	}
	for _, tt := range tests {
		if got := token.LookupIdent(tt.input); got != tt.expected {
			t.Errorf("LookupIdent(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"and", "or", "not", "in", "is", "while", "with"} {
		if !token.IsKeyword(kw) {
			t.Errorf("IsKeyword(%q) = false", kw)
		}
	}
	for _, name := range []string{"async", "await", "print", "And", "IS"} {
		if token.IsKeyword(name) {
			t.Errorf("IsKeyword(%q) = true", name)
		}
	}
}
