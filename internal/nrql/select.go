package nrql

import "strings"

// SelectionKind classifies one comma-separated item of a SELECT list.
type SelectionKind int

const (
	// SelectionAll is the bare "*".
	SelectionAll SelectionKind = iota
	// SelectionExpression is anything that is not a recognizable
	// aggregation call: plain fields, arithmetic, nested calls.
	SelectionExpression
	// SelectionAggregation is a single name(args) call, optionally
	// followed by an AS alias.
	SelectionAggregation
)

// Selection is one item of a SELECT list.
type Selection struct {
	Kind     SelectionKind
	Expr     string // the item exactly as written
	Function string // aggregation name, lowercased
	Field    string // raw argument text between the parentheses
	Alias    string // alias without quotes, empty when none
}

// parseSelections splits a SELECT clause body on top-level commas and
// classifies each part. Commas inside parentheses do not split, so
// percentile(duration, 95) stays one selection.
func parseSelections(text string) []Selection {
	parts := splitTopLevel(text)
	sels := make([]Selection, 0, len(parts))
	for _, part := range parts {
		sels = append(sels, parseSelection(part))
	}
	if len(sels) == 0 {
		return nil
	}
	return sels
}

// splitTopLevel splits on commas outside parentheses and outside single
// quotes, trimming each piece and dropping empties.
func splitTopLevel(text string) []string {
	var parts []string
	depth := 0
	inString := false
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\'':
			inString = !inString
		case '(':
			if !inString {
				depth++
			}
		case ')':
			if !inString && depth > 0 {
				depth--
			}
		case ',':
			if !inString && depth == 0 {
				if p := strings.TrimSpace(text[start:i]); p != "" {
					parts = append(parts, p)
				}
				start = i + 1
			}
		}
	}
	if p := strings.TrimSpace(text[start:]); p != "" {
		parts = append(parts, p)
	}
	return parts
}

// parseSelection classifies one SELECT item. Anything that does not
// parse cleanly as name(args) with at most an AS alias after it falls
// back to SelectionExpression and is carried through untouched.
func parseSelection(part string) Selection {
	part = strings.TrimSpace(part)
	if part == "*" {
		return Selection{Kind: SelectionAll, Expr: part}
	}
	sel := Selection{Kind: SelectionExpression, Expr: part}

	open := strings.IndexByte(part, '(')
	if open <= 0 {
		return sel
	}
	name := strings.TrimSpace(part[:open])
	if !isIdentText(name) {
		return sel
	}
	end := matchingParen(part, open)
	if end < 0 {
		return sel
	}
	args := strings.TrimSpace(part[open+1 : end])
	if args == "" {
		return sel
	}
	alias, ok := parseAlias(strings.TrimSpace(part[end+1:]))
	if !ok {
		// Trailing text that is not an alias, e.g. count(*)/2.
		return sel
	}

	sel.Kind = SelectionAggregation
	sel.Function = strings.ToLower(name)
	sel.Field = args
	sel.Alias = alias
	return sel
}

// parseAlias reads an optional "AS name" tail. It reports false when
// the tail is present but is not an alias at all; an AS with an alias
// too odd to keep (quoted multi-word names) parses as no alias.
func parseAlias(rest string) (string, bool) {
	if rest == "" {
		return "", true
	}
	fields := strings.Fields(rest)
	if !strings.EqualFold(fields[0], "as") {
		return "", false
	}
	if len(fields) == 2 {
		alias := strings.Trim(fields[1], `'"`)
		if isIdentText(alias) {
			return alias, true
		}
	}
	return "", true
}

// matchingParen returns the index of the ')' that closes the '(' at
// open, or -1 when unbalanced. Parens inside single quotes are skipped.
func matchingParen(s string, open int) int {
	depth := 0
	inString := false
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inString = !inString
		case '(':
			if !inString {
				depth++
			}
		case ')':
			if !inString {
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	}
	return -1
}

// isIdentText reports whether s is a plain identifier: a letter or
// underscore followed by letters, digits, or underscores.
func isIdentText(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			continue
		}
		if i > 0 && '0' <= c && c <= '9' {
			continue
		}
		return false
	}
	return true
}
