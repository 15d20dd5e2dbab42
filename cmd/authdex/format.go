package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poiesic/authdex/core"
	"github.com/poiesic/authdex/dataset"
)

// maxFieldLength caps rendered field values so one verbose cell does
// not drown the result list.
const maxFieldLength = 400

// formatText renders results as labeled blocks, one per result, with
// the domain's output columns in their configured order.
func formatText(domain, query string, config *dataset.DomainConfig, results []*core.SearchResult) string {
	var out []string
	out = append(out, "## Search Results")
	out = append(out, fmt.Sprintf("**Domain:** %s | **Query:** %s", domain, query))
	out = append(out, fmt.Sprintf("**Source:** %s | **Found:** %d results\n", config.File, len(results)))

	for _, result := range results {
		out = append(out, fmt.Sprintf("### Result %d (score: %.3f)", result.Rank, result.Score))
		for _, column := range config.OutputColumns {
			value := result.Record.Field(column)
			if len(value) > maxFieldLength {
				value = value[:maxFieldLength] + "..."
			}
			out = append(out, fmt.Sprintf("- **%s:** %s", column, value))
		}
		out = append(out, "")
	}

	return strings.Join(out, "\n")
}

type jsonResult struct {
	Rank   int               `json:"rank"`
	Score  float64           `json:"score"`
	Fields map[string]string `json:"fields"`
}

type jsonEnvelope struct {
	Domain  string       `json:"domain"`
	Query   string       `json:"query"`
	File    string       `json:"file"`
	Count   int          `json:"count"`
	Results []jsonResult `json:"results"`
}

// formatJSON renders results as a machine-consumable envelope. Each
// result carries the record's output fields, score, and rank; the
// results array preserves ranking order.
func formatJSON(domain, query string, config *dataset.DomainConfig, results []*core.SearchResult) (string, error) {
	envelope := jsonEnvelope{
		Domain:  domain,
		Query:   query,
		File:    config.File,
		Count:   len(results),
		Results: make([]jsonResult, 0, len(results)),
	}

	for _, result := range results {
		fields := make(map[string]string, len(config.OutputColumns))
		for _, column := range config.OutputColumns {
			fields[column] = result.Record.Field(column)
		}
		envelope.Results = append(envelope.Results, jsonResult{
			Rank:   result.Rank,
			Score:  result.Score,
			Fields: fields,
		})
	}

	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
