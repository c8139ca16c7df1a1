package sentiment

import (
	"strings"
	"unicode"
)

func isDelimiter(r rune) bool {
	switch r {
	case ',', '!', '.', '?':
		return true
	}
	return unicode.IsSpace(r)
}

// Tokenize lower-cases text and splits it on runs of whitespace and , ! . ?
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), isDelimiter)
}
