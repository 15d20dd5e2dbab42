package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/poiesic/authdex/core"
	"github.com/poiesic/authdex/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flowsConfig() *dataset.DomainConfig {
	return &dataset.DomainConfig{
		Name:          "flows",
		File:          "flows.csv",
		SearchColumns: []string{"Flow Name", "Use Case"},
		OutputColumns: []string{"Flow Name", "Use Case", "Security Level"},
	}
}

func sampleResults() []*core.SearchResult {
	return []*core.SearchResult{
		{
			Record: &core.Record{
				Position: 1,
				Domain:   "flows",
				Fields: map[string]string{
					"Flow Name":      "Authorization Code + PKCE",
					"Use Case":       "SPA, Mobile apps",
					"Security Level": "High",
				},
			},
			Score: 3.217,
			Rank:  1,
		},
		{
			Record: &core.Record{
				Position: 0,
				Domain:   "flows",
				Fields: map[string]string{
					"Flow Name":      "Authorization Code",
					"Use Case":       "Server-side web apps",
					"Security Level": "High",
				},
			},
			Score: 1.004,
			Rank:  2,
		},
	}
}

func TestFormatText(t *testing.T) {
	out := formatText("flows", "PKCE mobile", flowsConfig(), sampleResults())

	assert.Contains(t, out, "## Search Results")
	assert.Contains(t, out, "**Domain:** flows | **Query:** PKCE mobile")
	assert.Contains(t, out, "**Source:** flows.csv | **Found:** 2 results")
	assert.Contains(t, out, "### Result 1 (score: 3.217)")
	assert.Contains(t, out, "- **Flow Name:** Authorization Code + PKCE")
	assert.Contains(t, out, "### Result 2 (score: 1.004)")

	// Output columns render in their configured order.
	flowIdx := strings.Index(out, "- **Flow Name:**")
	useIdx := strings.Index(out, "- **Use Case:**")
	levelIdx := strings.Index(out, "- **Security Level:**")
	assert.Less(t, flowIdx, useIdx)
	assert.Less(t, useIdx, levelIdx)
}

func TestFormatText_TruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 600)
	results := []*core.SearchResult{
		{
			Record: &core.Record{
				Fields: map[string]string{
					"Flow Name":      long,
					"Use Case":       "y",
					"Security Level": "z",
				},
			},
			Score: 1,
			Rank:  1,
		},
	}

	out := formatText("flows", "q", flowsConfig(), results)
	assert.Contains(t, out, strings.Repeat("x", maxFieldLength)+"...")
	assert.NotContains(t, out, strings.Repeat("x", maxFieldLength+1))
}

func TestFormatText_NoResults(t *testing.T) {
	out := formatText("flows", "nothing", flowsConfig(), nil)
	assert.Contains(t, out, "**Found:** 0 results")
	assert.NotContains(t, out, "### Result")
}

func TestFormatJSON(t *testing.T) {
	out, err := formatJSON("flows", "PKCE mobile", flowsConfig(), sampleResults())
	require.NoError(t, err)

	var envelope struct {
		Domain  string `json:"domain"`
		Query   string `json:"query"`
		File    string `json:"file"`
		Count   int    `json:"count"`
		Results []struct {
			Rank   int               `json:"rank"`
			Score  float64           `json:"score"`
			Fields map[string]string `json:"fields"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))

	assert.Equal(t, "flows", envelope.Domain)
	assert.Equal(t, "PKCE mobile", envelope.Query)
	assert.Equal(t, "flows.csv", envelope.File)
	assert.Equal(t, 2, envelope.Count)
	require.Len(t, envelope.Results, 2)
	assert.Equal(t, 1, envelope.Results[0].Rank)
	assert.Equal(t, 3.217, envelope.Results[0].Score)
	assert.Equal(t, "Authorization Code + PKCE", envelope.Results[0].Fields["Flow Name"])
	assert.Equal(t, 2, envelope.Results[1].Rank)
}

func TestFormatJSON_EmptyResults(t *testing.T) {
	out, err := formatJSON("flows", "nothing", flowsConfig(), nil)
	require.NoError(t, err)

	// Zero hits still emits a well-formed envelope with an empty array.
	assert.Contains(t, out, `"count": 0`)
	assert.Contains(t, out, `"results": []`)
}

func TestSearchErrorMessage(t *testing.T) {
	registry, err := dataset.NewRegistry([]dataset.DomainConfig{
		*flowsConfig(),
		{
			Name:          "guides",
			File:          "guides.csv",
			SearchColumns: []string{"Guideline"},
			OutputColumns: []string{"Guideline"},
		},
	})
	require.NoError(t, err)

	t.Run("empty query", func(t *testing.T) {
		msg := searchErrorMessage(core.ErrEmptyQuery, registry)
		assert.Equal(t, "Error: query cannot be empty", msg)
	})

	t.Run("domain not found lists valid domains", func(t *testing.T) {
		err := fmt.Errorf("%w: %q", core.ErrDomainNotFound, "nonexistent-domain")
		msg := searchErrorMessage(err, registry)
		assert.Contains(t, msg, "nonexistent-domain")
		assert.Contains(t, msg, "flows, guides")
	})

	t.Run("ambiguous query lists valid domains", func(t *testing.T) {
		msg := searchErrorMessage(core.ErrAmbiguousQuery, registry)
		assert.Contains(t, msg, "please specify one with --domain")
		assert.Contains(t, msg, "flows, guides")
	})

	t.Run("dataset read failure passes through", func(t *testing.T) {
		err := fmt.Errorf("%w: %q: missing column", dataset.ErrDatasetRead, "flows.csv")
		msg := searchErrorMessage(err, registry)
		assert.Contains(t, msg, "dataset read failure")
	})
}
