package core

// Record is one row of a domain dataset.
type Record struct {
	// Position is the 0-based row position within the domain dataset.
	// It is the record's stable identifier: datasets are read-only, so
	// the position never changes for the life of the process.
	Position int

	// Domain is the name of the dataset this record belongs to.
	Domain string

	// Fields maps column name to raw cell value. Every record of a
	// domain has the same set of fields (rectangular schema).
	Fields map[string]string

	// SearchText is the record's indexable text: the values of the
	// domain's search columns joined in their configured order.
	SearchText string
}

// Field returns the value of the named field, or "" if the domain's
// schema has no such column.
func (r *Record) Field(name string) string {
	return r.Fields[name]
}

// SearchResult is a scored record returned by a search.
type SearchResult struct {
	Record *Record

	// Score is the BM25 relevance score, always > 0 for returned
	// results (zero-score records are excluded entirely).
	Score float64

	// Rank is the 1-based dense rank within the returned result list.
	Rank int
}

// Query describes one search request.
type Query struct {
	// Text is the raw query string. Must be non-blank.
	Text string

	// Domain optionally names the dataset to search. When empty the
	// engine auto-detects a domain from the query text.
	Domain string

	// Stack optionally restricts results to records whose stack field
	// matches this value, case-insensitively.
	Stack string

	// Limit caps the number of results returned. Zero or negative
	// means DefaultLimit.
	Limit int
}

// DefaultLimit is the result cap applied when a query does not set one.
const DefaultLimit = 10
