package unicodename_test

import (
	"testing"

	"github.com/funvibe/pylex/internal/unicodename"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		expected rune
	}{
		{"BLACK STAR", '★'},
		{"YIN YANG", '☯'},
		{"MONKEY", '\U0001F412'},
		{"LATIN SMALL LETTER A", 'a'},
	}
	for _, tt := range tests {
		r, ok := unicodename.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.name)
			continue
		}
		if r != tt.expected {
			t.Errorf("Lookup(%q) = %U, want %U", tt.name, r, tt.expected)
		}
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	r, ok := unicodename.Lookup("monkey")
	if !ok || r != '\U0001F412' {
		t.Fatalf("Lookup(monkey) = %U, %v", r, ok)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := unicodename.Lookup("fhefaefi"); ok {
		t.Fatal("Lookup(fhefaefi) found a rune")
	}
}
