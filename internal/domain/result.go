// Package domain holds the types shared across the conversion
// pipeline: query classification, confidence grading, and the result
// returned to every caller surface (CLI, API, UI).
package domain

// QueryType identifies which observability domain a converted query
// reads from.
type QueryType string

const (
	QueryTypeMetrics QueryType = "metrics"
	QueryTypeLogs    QueryType = "logs"
	QueryTypeTraces  QueryType = "traces"
	QueryTypeEvents  QueryType = "events"
	QueryTypeUnknown QueryType = "unknown"
)

// Confidence grades how trustworthy a conversion is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// FieldMapping records one source attribute renamed during conversion,
// keyed by the spelling the query used.
type FieldMapping struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Result is the outcome of converting a single query. ConvertedQuery
// is always populated, even when nothing could be made of the input;
// the slices are never nil so the JSON encoding stays [] rather than
// null.
type Result struct {
	OriginalQuery        string         `json:"original_query"`
	ConvertedQuery       string         `json:"converted_query"`
	QueryType            QueryType      `json:"query_type"`
	Confidence           Confidence     `json:"confidence"`
	Warnings             []string       `json:"warnings"`
	ManualReviewItems    []string       `json:"manual_review_items"`
	FieldMappingsApplied []FieldMapping `json:"field_mappings_applied"`
}
