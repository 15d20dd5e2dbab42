package search

import (
	"testing"

	"github.com/poiesic/authdex/core"
	"github.com/stretchr/testify/assert"
)

// testRecords builds records whose search text is the given string,
// positioned in slice order.
func testRecords(domain string, texts ...string) []*core.Record {
	records := make([]*core.Record, len(texts))
	for i, text := range texts {
		records[i] = &core.Record{
			Position:   i,
			Domain:     domain,
			Fields:     map[string]string{"Text": text},
			SearchText: text,
		}
	}
	return records
}

func TestBuildIndex_Stats(t *testing.T) {
	index := BuildIndex("test", testRecords("test",
		"apple banana",
		"apple cherry cherry",
		"durian",
	))

	assert.Equal(t, "test", index.Domain())
	assert.Equal(t, 3, index.Len())

	// Document frequency counts records, not occurrences.
	assert.Equal(t, 2, index.DocFreq("apple"))
	assert.Equal(t, 1, index.DocFreq("cherry"))
	assert.Equal(t, 1, index.DocFreq("durian"))
	assert.Equal(t, 0, index.DocFreq("elderberry"))

	// Lengths 2, 3, 1 -> mean 2.
	assert.InDelta(t, 2.0, index.AvgDocLen(), 1e-9)
}

func TestBuildIndex_Empty(t *testing.T) {
	index := BuildIndex("empty", nil)

	assert.Equal(t, 0, index.Len())
	assert.Equal(t, 0.0, index.AvgDocLen())
	assert.Empty(t, index.Rank(Tokenize("anything at all")))
}

func TestBuildIndex_NormalizesLikeQueries(t *testing.T) {
	index := BuildIndex("test", testRecords("test", "OAuth2, PKCE: Mobile-Apps!"))

	// Record text passed through the shared tokenizer.
	assert.Equal(t, 1, index.DocFreq("oauth2"))
	assert.Equal(t, 1, index.DocFreq("pkce"))
	assert.Equal(t, 1, index.DocFreq("mobile"))
	assert.Equal(t, 1, index.DocFreq("apps"))
	assert.Equal(t, 0, index.DocFreq("OAuth2"))
}
