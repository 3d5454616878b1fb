package dql

import (
	"regexp"
	"strconv"
	"strings"

	"nrql2dql/internal/domain"
	"nrql2dql/internal/mappings"
	"nrql2dql/internal/nrql"
)

// relTimePattern parses relative time phrases not covered by the
// literal table. Only the start is anchored, so trailing text a loose
// extraction picked up does not break parsing.
var relTimePattern = regexp.MustCompile(`^(\d+)\s+(minute|hour|day|week|month)s?\s+ago`)

// BuildTimeRange renders the from/to arguments appended to the fetch
// line, e.g. ", from:now()-24h, to:now()-1h". Phrases that cannot be
// parsed produce a warning and are left off.
func BuildTimeRange(since, until string, tables *mappings.Tables, d *domain.Diagnostics) string {
	var parts []string
	if since != "" {
		if suffix, ok := timeSuffix(since, tables); ok {
			parts = append(parts, "from:now()-"+suffix)
		} else {
			d.Warnf("Could not convert time range: %s", since)
		}
	}
	if until != "" {
		if suffix, ok := timeSuffix(until, tables); ok {
			parts = append(parts, "to:now()-"+suffix)
		} else {
			d.Warnf("Could not convert time range: %s", until)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return ", " + strings.Join(parts, ", ")
}

// timeSuffix resolves a phrase like "1 hour ago" to a duration suffix
// like "1h", first through the literal table and then by pattern.
// Weeks and months have no suffix of their own and normalize to days.
func timeSuffix(phrase string, tables *mappings.Tables) (string, bool) {
	if suffix, ok := tables.TimeLiteral(phrase); ok {
		return suffix, true
	}
	m := relTimePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(phrase)))
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	switch m[2] {
	case "week":
		return strconv.Itoa(n*7) + "d", true
	case "month":
		return strconv.Itoa(n*30) + "d", true
	default:
		return m[1] + m[2][:1], true
	}
}

// BuildFetch renders the first line of the converted query. Timeseries
// targets with a metric key read that series directly; ones without a
// key fall back to the service entity table.
func BuildFetch(target mappings.EventTarget, timeRange string) string {
	switch target.Source {
	case mappings.SourceLogs:
		return "fetch logs" + timeRange
	case mappings.SourceSpans:
		return "fetch spans" + timeRange
	case mappings.SourceTimeseries:
		if target.MetricKey != "" {
			return "timeseries " + target.MetricKey + timeRange
		}
		return "fetch dt.entity.service" + timeRange
	default:
		return "fetch bizevents" + timeRange
	}
}

// BuildFilter renders the filter pipe for a WHERE condition.
func BuildFilter(cond string, tables *mappings.Tables, d *domain.Diagnostics) (string, bool) {
	if cond == "" {
		return "", false
	}
	return "filter " + RewriteCondition(cond, tables, d), true
}

// BuildSummarize renders the summarize pipe from the aggregations in
// the SELECT list and the FACET fields. Plain selections contribute
// nothing; a FACET with no aggregations still groups.
func BuildSummarize(sels []nrql.Selection, facets []string, tables *mappings.Tables, d *domain.Diagnostics) (string, bool) {
	var aggs []string
	for _, sel := range sels {
		if sel.Kind != nrql.SelectionAggregation {
			continue
		}
		expr := aggExpr(sel, tables, d)
		if sel.Alias != "" {
			expr = sel.Alias + " = " + expr
		}
		aggs = append(aggs, expr)
	}

	grouped := make([]string, 0, len(facets))
	for _, f := range facets {
		grouped = append(grouped, mapName(f, tables, d))
	}

	switch {
	case len(aggs) > 0 && len(grouped) > 0:
		return "summarize " + strings.Join(aggs, ", ") + ", by: {" + strings.Join(grouped, ", ") + "}", true
	case len(aggs) > 0:
		return "summarize " + strings.Join(aggs, ", "), true
	case len(grouped) > 0:
		return "summarize by: {" + strings.Join(grouped, ", ") + "}", true
	default:
		return "", false
	}
}

// aggExpr renders one aggregation call. Unknown and known-unsupported
// functions come back as written and flag manual review.
func aggExpr(sel nrql.Selection, tables *mappings.Tables, d *domain.Diagnostics) string {
	target, known := tables.Function(sel.Function)
	if !known || target == "" {
		d.Reviewf("Aggregation '%s' needs manual conversion", sel.Function)
		return sel.Function + "(" + mapName(sel.Field, tables, d) + ")"
	}
	// Targets carrying their own parens take no argument: count() is
	// count() whatever the source counted.
	if strings.HasSuffix(target, "()") {
		return target
	}
	if target == "percentile" {
		field, pct := splitPercentileArgs(sel.Field)
		return "percentile(" + mapName(field, tables, d) + ", " + pct + ")"
	}
	return target + "(" + mapName(sel.Field, tables, d) + ")"
}

// splitPercentileArgs splits "duration, 95" into field and percentile,
// defaulting to 95 when the percentile is missing or not a number.
func splitPercentileArgs(args string) (string, string) {
	if i := strings.LastIndexByte(args, ','); i >= 0 {
		field := strings.TrimSpace(args[:i])
		pct := strings.TrimSpace(args[i+1:])
		if field != "" && isDigits(pct) {
			return field, pct
		}
	}
	return strings.TrimSpace(args), "95"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// BuildSort renders the sort pipe for an ORDER BY clause. Direction
// keywords are lowercased; a missing direction is left to the target's
// default.
func BuildSort(orderBy string, tables *mappings.Tables, d *domain.Diagnostics) (string, bool) {
	if orderBy == "" {
		return "", false
	}
	parts := strings.Split(orderBy, ",")
	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		words := strings.Fields(part)
		if len(words) == 0 {
			continue
		}
		dir := ""
		last := words[len(words)-1]
		if strings.EqualFold(last, "asc") || strings.EqualFold(last, "desc") {
			dir = " " + strings.ToLower(last)
			words = words[:len(words)-1]
		}
		if len(words) == 0 {
			continue
		}
		rendered = append(rendered, mapName(strings.Join(words, " "), tables, d)+dir)
	}
	if len(rendered) == 0 {
		return "", false
	}
	return "sort " + strings.Join(rendered, ", "), true
}

// BuildLimit renders the limit pipe. Zero means no limit was given.
func BuildLimit(limit int) (string, bool) {
	if limit <= 0 {
		return "", false
	}
	return "limit " + strconv.Itoa(limit), true
}
