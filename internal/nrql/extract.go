package nrql

import (
	"strconv"
	"strings"
)

// ParsedQuery holds the clauses extracted from a single NRQL query.
// Absent clauses are zero-valued: empty strings, nil slices, Limit 0.
type ParsedQuery struct {
	Selections  []Selection
	From        string   // event type name, e.g. Transaction
	Where       string   // raw condition text
	Facets      []string // FACET field names, in written order
	Since       string   // raw time phrase, e.g. "1 hour ago"
	Until       string   // raw time phrase
	Limit       int      // 0 when absent
	TimeSeries  string   // "AUTO" or "<N> <unit>" when present
	CompareWith string   // raw baseline phrase
	OrderBy     string   // raw sort text, e.g. "duration DESC"
}

// Normalize collapses runs of whitespace (including newlines) to single
// spaces and trims the ends. Empty input stays empty.
func Normalize(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

// Clause stop sets. A clause's text runs from just after its keyword to
// the first following token in its stop set, or end of input. Each clause
// is located by an independent scan over the token stream, so clause
// order does not matter and keywords inside string literals are ignored.
var (
	selectStops  = stopSet(TOKEN_FROM)
	whereStops   = stopSet(TOKEN_FACET, TOKEN_SINCE, TOKEN_UNTIL, TOKEN_LIMIT, TOKEN_TIMESERIES, TOKEN_COMPARE, TOKEN_ORDER)
	facetStops   = stopSet(TOKEN_SINCE, TOKEN_UNTIL, TOKEN_LIMIT, TOKEN_TIMESERIES, TOKEN_COMPARE, TOKEN_ORDER)
	sinceStops   = stopSet(TOKEN_FACET, TOKEN_UNTIL, TOKEN_LIMIT, TOKEN_TIMESERIES, TOKEN_COMPARE, TOKEN_ORDER)
	untilStops   = stopSet(TOKEN_FACET, TOKEN_LIMIT, TOKEN_TIMESERIES, TOKEN_COMPARE, TOKEN_ORDER)
	compareStops = stopSet(TOKEN_LIMIT, TOKEN_ORDER)
	orderStops   = stopSet(TOKEN_LIMIT)
)

func stopSet(types ...TokenType) map[TokenType]bool {
	set := make(map[TokenType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// Parse splits a query into its clauses. The input should already be
// Normalize'd. Parse itself never fails; clauses it cannot make sense
// of are absent from the result.
func Parse(query string) ParsedQuery {
	toks := Tokens(query)
	var p ParsedQuery

	if text, ok := clauseText(query, toks, TOKEN_SELECT, selectStops); ok {
		p.Selections = parseSelections(text)
	}
	if i, ok := find(toks, TOKEN_FROM); ok && toks[i+1].Type == TOKEN_IDENT {
		p.From = toks[i+1].Literal
	}
	if text, ok := clauseText(query, toks, TOKEN_WHERE, whereStops); ok {
		p.Where = text
	}
	if text, ok := clauseText(query, toks, TOKEN_FACET, facetStops); ok {
		p.Facets = splitFields(text)
	}
	if text, ok := clauseText(query, toks, TOKEN_SINCE, sinceStops); ok {
		p.Since = text
	}
	if text, ok := clauseText(query, toks, TOKEN_UNTIL, untilStops); ok {
		p.Until = text
	}
	if i, ok := find(toks, TOKEN_LIMIT); ok && toks[i+1].Type == TOKEN_NUMBER {
		if n, err := strconv.Atoi(toks[i+1].Literal); err == nil {
			p.Limit = n
		}
	}
	if i, ok := find(toks, TOKEN_TIMESERIES); ok {
		p.TimeSeries = "AUTO"
		if toks[i+1].Type == TOKEN_NUMBER && toks[i+2].Type == TOKEN_IDENT {
			p.TimeSeries = toks[i+1].Literal + " " + toks[i+2].Literal
		}
	}
	if i, ok := find(toks, TOKEN_COMPARE); ok && toks[i+1].Type == TOKEN_WITH {
		if text, ok := textAfter(query, toks, i+2, compareStops); ok {
			p.CompareWith = text
		}
	}
	if i, ok := find(toks, TOKEN_ORDER); ok && toks[i+1].Type == TOKEN_BY {
		if text, ok := textAfter(query, toks, i+2, orderStops); ok {
			p.OrderBy = text
		}
	}

	return p
}

// find returns the index of the first token of the given type. The
// stream always ends in EOF and find never matches EOF, so toks[i+1] is
// in bounds for every hit.
func find(toks []Token, t TokenType) (int, bool) {
	for i, tok := range toks {
		if tok.Type == t {
			return i, true
		}
	}
	return 0, false
}

// clauseText locates the first keyword token of the given type and
// slices the raw text between it and its first stop token.
func clauseText(input string, toks []Token, kw TokenType, stops map[TokenType]bool) (string, bool) {
	i, ok := find(toks, kw)
	if !ok {
		return "", false
	}
	return textAfter(input, toks, i+1, stops)
}

// textAfter slices the raw input from the token at index j up to the
// first stop token (or end of input). Empty content reads as absent.
func textAfter(input string, toks []Token, j int, stops map[TokenType]bool) (string, bool) {
	if j >= len(toks) || toks[j].Type == TOKEN_EOF {
		return "", false
	}
	start := toks[j].Pos
	end := len(input)
	for k := j; k < len(toks); k++ {
		if toks[k].Type == TOKEN_EOF || stops[toks[k].Type] {
			end = toks[k].Pos
			break
		}
	}
	text := strings.TrimSpace(input[start:end])
	if text == "" {
		return "", false
	}
	return text, true
}

// splitFields splits comma-separated field names, trimming each and
// dropping empties.
func splitFields(text string) []string {
	parts := strings.Split(text, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if f := strings.TrimSpace(part); f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
