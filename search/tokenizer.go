package search

import (
	"strings"
	"unicode"
)

// Tokenize normalizes text into an ordered sequence of indexable terms:
// lowercased, split on any run of non-letter, non-digit characters, with
// empty tokens dropped. It is pure and total; the empty string yields a
// nil slice.
//
// Indexing, query scoring, and domain detection all share this function
// so a query term can never miss a document term over normalization.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// tokenSet returns the unique tokens of a sequence.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
