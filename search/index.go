package search

import (
	"github.com/poiesic/authdex/core"
)

// DomainIndex holds one domain's records together with the term and
// document statistics BM25 scoring needs. An index is immutable after
// BuildIndex returns and is safe for concurrent readers.
type DomainIndex struct {
	domain    string
	records   []*core.Record
	termFreqs []map[string]int // per record: term -> occurrences
	docLens   []int            // per record: token count
	docFreq   map[string]int   // term -> records containing it
	avgDocLen float64
}

// BuildIndex tokenizes every record's search text and computes term
// frequencies, document frequencies, and the average document length.
// Records keep their dataset order; an empty record list is a valid
// index that matches nothing.
func BuildIndex(domain string, records []*core.Record) *DomainIndex {
	idx := &DomainIndex{
		domain:    domain,
		records:   records,
		termFreqs: make([]map[string]int, len(records)),
		docLens:   make([]int, len(records)),
		docFreq:   make(map[string]int),
	}

	totalLen := 0
	for i, record := range records {
		tokens := Tokenize(record.SearchText)
		freqs := make(map[string]int, len(tokens))
		for _, token := range tokens {
			freqs[token]++
		}
		idx.termFreqs[i] = freqs
		idx.docLens[i] = len(tokens)
		totalLen += len(tokens)

		// Document frequency counts each record once per term.
		for term := range freqs {
			idx.docFreq[term]++
		}
	}

	if len(records) > 0 {
		idx.avgDocLen = float64(totalLen) / float64(len(records))
	}

	return idx
}

// Domain returns the name of the domain this index covers.
func (idx *DomainIndex) Domain() string {
	return idx.domain
}

// Len returns the number of indexed records.
func (idx *DomainIndex) Len() int {
	return len(idx.records)
}

// DocFreq returns the number of records containing the term.
func (idx *DomainIndex) DocFreq(term string) int {
	return idx.docFreq[term]
}

// AvgDocLen returns the mean token count across the domain's records.
func (idx *DomainIndex) AvgDocLen() float64 {
	return idx.avgDocLen
}
