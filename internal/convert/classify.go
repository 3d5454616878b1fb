package convert

import (
	"strings"

	"nrql2dql/internal/domain"
	"nrql2dql/internal/mappings"
)

// classify resolves the FROM clause to a fetch target and query type.
// Explicit source names win over the event-type table so "logs" is
// Logs even if an overlay repurposes the Log event type. Event types
// nobody mapped land in bizevents with a warning; a missing FROM
// clause leaves the type unknown.
func (c *Converter) classify(from string, d *domain.Diagnostics) (mappings.EventTarget, domain.QueryType) {
	if from == "" {
		d.Warnf("No FROM clause found - could not determine data source")
		return mappings.EventTarget{Source: mappings.SourceBizevents}, domain.QueryTypeUnknown
	}

	switch strings.ToLower(from) {
	case "log", "logs":
		return mappings.EventTarget{Source: mappings.SourceLogs}, domain.QueryTypeLogs
	case "span", "spans", "distributedtrace":
		return mappings.EventTarget{Source: mappings.SourceSpans}, domain.QueryTypeTraces
	case "metric", "metrics":
		return mappings.EventTarget{Source: mappings.SourceTimeseries}, domain.QueryTypeMetrics
	}

	if target, ok := c.tables.EventType(from); ok {
		return target, queryTypeFor(target.Source)
	}

	d.Warnf("Event type '%s' mapped to bizevents - verify this is correct", from)
	return mappings.EventTarget{Source: mappings.SourceBizevents}, domain.QueryTypeEvents
}

func queryTypeFor(source string) domain.QueryType {
	switch source {
	case mappings.SourceLogs:
		return domain.QueryTypeLogs
	case mappings.SourceSpans:
		return domain.QueryTypeTraces
	case mappings.SourceTimeseries:
		return domain.QueryTypeMetrics
	default:
		return domain.QueryTypeEvents
	}
}
