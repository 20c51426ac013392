package search

import (
	"strings"
	"unicode"
)

// Tokenize normalizes text into comparable tokens: lower-cased words split
// on non-alphanumeric boundaries, with empty tokens discarded. It is used
// unchanged for both document indexing and query text so that matching is
// symmetric. Text consisting entirely of separators yields no tokens.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// tokenSet returns the tokens of text as a membership set.
func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
