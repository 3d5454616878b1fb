// Package convert drives the conversion pipeline: normalize the
// input, split it into clauses, classify the event type, render the
// target fragments, and assemble the result.
package convert

import (
	"log/slog"

	"nrql2dql/internal/domain"
	"nrql2dql/internal/dql"
	"nrql2dql/internal/mappings"
	"nrql2dql/internal/nrql"
)

// Converter turns source queries into target queries. It is stateless
// apart from its translation tables and safe for concurrent use.
type Converter struct {
	tables *mappings.Tables
	logger *slog.Logger
}

// New returns a Converter over the given tables. Nil tables mean the
// built-in defaults; a nil logger means slog.Default().
func New(tables *mappings.Tables, logger *slog.Logger) *Converter {
	if tables == nil {
		tables = mappings.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{tables: tables, logger: logger}
}

// Tables returns the translation tables the converter consults.
func (c *Converter) Tables() *mappings.Tables {
	return c.tables
}

// Convert translates one query. It never fails: input it cannot
// convert cleanly comes back with warnings, manual-review items, and a
// lowered confidence instead of an error, and the converted query is
// never empty.
func (c *Converter) Convert(query string) domain.Result {
	var d domain.Diagnostics

	parsed := nrql.Parse(nrql.Normalize(query))
	target, queryType := c.classify(parsed.From, &d)

	timeRange := dql.BuildTimeRange(parsed.Since, parsed.Until, c.tables, &d)
	fetch := dql.BuildFetch(target, timeRange)

	var pipes []string
	if pipe, ok := dql.BuildFilter(parsed.Where, c.tables, &d); ok {
		pipes = append(pipes, pipe)
	}
	if pipe, ok := dql.BuildSummarize(parsed.Selections, parsed.Facets, c.tables, &d); ok {
		pipes = append(pipes, pipe)
	}
	if pipe, ok := dql.BuildSort(parsed.OrderBy, c.tables, &d); ok {
		pipes = append(pipes, pipe)
	}
	if pipe, ok := dql.BuildLimit(parsed.Limit); ok {
		pipes = append(pipes, pipe)
	}

	if parsed.TimeSeries != "" {
		d.Warnf("TIMESERIES clause has no direct DQL equivalent - configure time bucketing on the dashboard")
	}
	if parsed.CompareWith != "" {
		d.Reviewf("COMPARE WITH '%s' requires manual implementation in DQL", parsed.CompareWith)
	}

	result := domain.Result{
		OriginalQuery:        query,
		ConvertedQuery:       dql.Assemble(fetch, pipes),
		QueryType:            queryType,
		Confidence:           d.Confidence(),
		Warnings:             d.Warnings(),
		ManualReviewItems:    d.ManualReview(),
		FieldMappingsApplied: d.FieldMappings(),
	}

	c.logger.Debug("query converted",
		"query_type", result.QueryType,
		"confidence", result.Confidence,
		"warnings", len(result.Warnings),
		"manual_review", len(result.ManualReviewItems))

	return result
}
