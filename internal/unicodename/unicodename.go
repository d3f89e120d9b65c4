// Package unicodename resolves Unicode character names to runes, backing
// the \N{NAME} escape in string literals.
package unicodename

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

var (
	once  sync.Once
	index map[string]rune
)

// buildIndex inverts the runenames table. Surrogates and the bracketed
// placeholder labels (control, private use, ideograph ranges) are skipped.
func buildIndex() {
	index = make(map[string]rune, 1<<17)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if unicode.Is(unicode.Cs, r) {
			continue
		}
		name := runenames.Name(r)
		if name == "" || strings.HasPrefix(name, "<") {
			continue
		}
		index[name] = r
	}
}

// Lookup resolves a Unicode character name, ignoring case. The reverse
// index is built once on first use.
func Lookup(name string) (rune, bool) {
	once.Do(buildIndex)
	r, ok := index[strings.ToUpper(name)]
	return r, ok
}
