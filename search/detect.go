package search

import (
	"fmt"

	"github.com/poiesic/authdex/core"
	"github.com/poiesic/authdex/dataset"
)

// DetectDomain picks the registered domain whose curated keywords best
// match the query tokens. A keyword counts as present when every one of
// its tokens (keywords may be multi-word, e.g. "authorization code")
// appears in the query's token set. The domain with the most matching
// keywords wins; ties go to the earliest-registered domain.
//
// With zero keyword evidence the selector refuses to guess and returns
// core.ErrAmbiguousQuery.
func DetectDomain(registry *dataset.Registry, queryTokens []string) (string, error) {
	querySet := tokenSet(queryTokens)

	best := ""
	bestCount := 0
	for _, domain := range registry.Domains() {
		count := 0
		for _, keyword := range domain.Keywords {
			if keywordPresent(keyword, querySet) {
				count++
			}
		}
		// Strictly greater keeps the registration-order tie-break.
		if count > bestCount {
			best = domain.Name
			bestCount = count
		}
	}

	if bestCount == 0 {
		return "", fmt.Errorf("%w: no domain keywords in query", core.ErrAmbiguousQuery)
	}
	return best, nil
}

// keywordPresent reports whether every token of the keyword appears in
// the query token set. Keywords pass through the same tokenizer as
// documents and queries.
func keywordPresent(keyword string, querySet map[string]struct{}) bool {
	keywordTokens := Tokenize(keyword)
	if len(keywordTokens) == 0 {
		return false
	}
	for _, token := range keywordTokens {
		if _, ok := querySet[token]; !ok {
			return false
		}
	}
	return true
}
