package search

import (
	"math"
	"sort"

	"github.com/poiesic/authdex/core"
)

// BM25 parameters. Fixed for all domains: these datasets are uniform
// enough that tuning per domain buys nothing.
const (
	bm25K1 = 1.5  // term-frequency saturation
	bm25B  = 0.75 // length-normalization strength
)

// Rank scores every record against the query tokens and returns the
// matches in descending score order. Records sharing no term with the
// query are excluded entirely. Ties are broken by ascending record
// position, so identical inputs always produce identical ordering.
//
// Repeated query terms are collapsed to a set; a duplicated term gains
// weight only through document term frequency, per standard BM25.
func (idx *DomainIndex) Rank(queryTokens []string) []*core.SearchResult {
	terms := tokenSet(queryTokens)

	var results []*core.SearchResult
	for i, record := range idx.records {
		score := idx.scoreRecord(i, terms)
		if score <= 0 {
			continue
		}
		results = append(results, &core.SearchResult{
			Record: record,
			Score:  score,
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}
		return results[a].Record.Position < results[b].Record.Position
	})

	for i, result := range results {
		result.Rank = i + 1
	}

	return results
}

// scoreRecord computes the BM25 score of one record against the unique
// query terms.
func (idx *DomainIndex) scoreRecord(i int, terms map[string]struct{}) float64 {
	docLen := float64(idx.docLens[i])
	freqs := idx.termFreqs[i]

	score := 0.0
	for term := range terms {
		tf := float64(freqs[term])
		if tf == 0 {
			continue
		}

		numerator := tf * (bm25K1 + 1)
		denominator := tf + bm25K1*(1-bm25B+bm25B*docLen/idx.avgDocLen)
		score += idx.idf(term) * numerator / denominator
	}
	return score
}

// idf computes ln((N - n + 0.5) / (n + 0.5) + 1) for a term. The +1
// inside the log keeps the value non-negative even for terms present in
// every document.
func (idx *DomainIndex) idf(term string) float64 {
	n := float64(idx.docFreq[term])
	total := float64(len(idx.records))
	return math.Log((total-n+0.5)/(n+0.5) + 1)
}
