// Package dql renders the target-language query: the fetch line,
// rewritten filter conditions, and the summarize, sort, and limit
// pipes. Builders report problems through domain.Diagnostics instead
// of failing; a best-effort query always comes back.
package dql

import (
	"strconv"
	"strings"

	"nrql2dql/internal/domain"
	"nrql2dql/internal/mappings"
	"nrql2dql/internal/nrql"
)

type atomKind int

const (
	atomWord atomKind = iota
	atomOp
	atomOpen
	atomClose
	atomComma
)

// atom is one rendered piece of a condition. Synthesized calls like
// isNull(field) are a single word atom so spacing treats them as a
// unit.
type atom struct {
	text string
	kind atomKind
}

// RewriteCondition translates a WHERE condition into the target filter
// language: attributes are renamed, = becomes ==, boolean connectives
// are lowercased, and the LIKE, IN, and IS NULL forms become function
// calls. Anything unrecognized passes through as written.
func RewriteCondition(cond string, tables *mappings.Tables, d *domain.Diagnostics) string {
	return renderAtoms(rewriteTokens(nrql.Tokens(cond), tables, d))
}

func rewriteTokens(toks []nrql.Token, tables *mappings.Tables, d *domain.Diagnostics) []atom {
	var atoms []atom
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Type {
		case nrql.TOKEN_EOF:
			return atoms
		case nrql.TOKEN_IDENT:
			if a, next, ok := rewriteComparison(toks, i, tables, d); ok {
				atoms = append(atoms, a...)
				i = next
				continue
			}
			atoms = append(atoms, atom{text: mapName(tok.Literal, tables, d), kind: atomWord})
		case nrql.TOKEN_EQ:
			atoms = append(atoms, atom{text: "==", kind: atomOp})
		case nrql.TOKEN_NE:
			atoms = append(atoms, atom{text: "!=", kind: atomOp})
		case nrql.TOKEN_AND, nrql.TOKEN_OR, nrql.TOKEN_NOT:
			// Connectives are atomOp so "and (" keeps its space.
			atoms = append(atoms, atom{text: strings.ToLower(tok.Literal), kind: atomOp})
		case nrql.TOKEN_TRUE, nrql.TOKEN_FALSE, nrql.TOKEN_NULL:
			atoms = append(atoms, atom{text: strings.ToLower(tok.Literal), kind: atomWord})
		case nrql.TOKEN_STRING:
			atoms = append(atoms, atom{text: singleQuote(tok.Literal), kind: atomWord})
		case nrql.TOKEN_NUMBER:
			atoms = append(atoms, atom{text: tok.Literal, kind: atomWord})
		case nrql.TOKEN_LPAREN:
			atoms = append(atoms, atom{text: "(", kind: atomOpen})
		case nrql.TOKEN_RPAREN:
			atoms = append(atoms, atom{text: ")", kind: atomClose})
		case nrql.TOKEN_COMMA:
			atoms = append(atoms, atom{text: ",", kind: atomComma})
		default:
			atoms = append(atoms, atom{text: tok.Literal, kind: atomOp})
		}
	}
	return atoms
}

// rewriteComparison handles the comparison forms that change shape:
//
//	field [NOT] LIKE 'pattern'  ->  [not ]matchesPhrase/startsWith/endsWith(field, "core")
//	field [NOT] IN (a, b)       ->  [not ]in(field, a, b)
//	field IS [NOT] NULL         ->  isNull(field) / isNotNull(field)
//
// It reports the index of the last consumed token. When the tokens at
// i do not form one of these shapes it reports ok=false and consumes
// nothing.
func rewriteComparison(toks []nrql.Token, i int, tables *mappings.Tables, d *domain.Diagnostics) ([]atom, int, bool) {
	j := i + 1
	if j < len(toks) && toks[j].Type == nrql.TOKEN_IS {
		k := j + 1
		call := "isNull"
		if k < len(toks) && toks[k].Type == nrql.TOKEN_NOT {
			call = "isNotNull"
			k++
		}
		if k < len(toks) && toks[k].Type == nrql.TOKEN_NULL {
			field := mapName(toks[i].Literal, tables, d)
			return []atom{{text: call + "(" + field + ")", kind: atomWord}}, k, true
		}
		return nil, 0, false
	}

	negated := false
	if j < len(toks) && toks[j].Type == nrql.TOKEN_NOT {
		negated = true
		j++
	}
	if j >= len(toks) {
		return nil, 0, false
	}

	switch toks[j].Type {
	case nrql.TOKEN_LIKE:
		if j+1 < len(toks) && toks[j+1].Type == nrql.TOKEN_STRING {
			field := mapName(toks[i].Literal, tables, d)
			return negate(negated, likeCall(field, toks[j+1].Literal)), j + 1, true
		}
	case nrql.TOKEN_IN:
		if j+1 < len(toks) && toks[j+1].Type == nrql.TOKEN_LPAREN {
			end := matchParenTokens(toks, j+1)
			if end > 0 {
				field := mapName(toks[i].Literal, tables, d)
				inner := renderAtoms(rewriteTokens(toks[j+2:end], tables, d))
				return negate(negated, "in("+field+", "+inner+")"), end, true
			}
		}
	}
	return nil, 0, false
}

func negate(negated bool, call string) []atom {
	if negated {
		return []atom{{text: "not", kind: atomWord}, {text: call, kind: atomWord}}
	}
	return []atom{{text: call, kind: atomWord}}
}

// likeCall picks the string-match function from the wildcard shape of
// the pattern. A pattern with no wildcards also reads as a phrase
// match, which is looser than equality but is what LIKE without
// wildcards means in practice.
func likeCall(field, pattern string) string {
	core := strings.Trim(pattern, "%")
	leading := strings.HasPrefix(pattern, "%")
	trailing := strings.HasSuffix(pattern, "%")
	switch {
	case trailing && !leading:
		return "startsWith(" + field + ", " + strconv.Quote(core) + ")"
	case leading && !trailing:
		return "endsWith(" + field + ", " + strconv.Quote(core) + ")"
	default:
		return "matchesPhrase(" + field + ", " + strconv.Quote(core) + ")"
	}
}

// matchParenTokens returns the index of the RPAREN matching the LPAREN
// at open, or -1.
func matchParenTokens(toks []nrql.Token, open int) int {
	depth := 0
	for k := open; k < len(toks); k++ {
		switch toks[k].Type {
		case nrql.TOKEN_LPAREN:
			depth++
		case nrql.TOKEN_RPAREN:
			depth--
			if depth == 0 {
				return k
			}
		case nrql.TOKEN_EOF:
			return -1
		}
	}
	return -1
}

// mapName renames one attribute through the field table, recording the
// rename. Names not in the table and identity mappings pass silently.
func mapName(name string, tables *mappings.Tables, d *domain.Diagnostics) string {
	name = strings.TrimSpace(name)
	target, ok := tables.Field(name)
	if !ok {
		return name
	}
	if target != name {
		d.RecordFieldMapping(name, target)
	}
	return target
}

// singleQuote renders a string literal back in single quotes, doubling
// embedded quotes.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func renderAtoms(atoms []atom) string {
	var b strings.Builder
	for i, a := range atoms {
		if i > 0 && needSpace(atoms[i-1], a) {
			b.WriteByte(' ')
		}
		b.WriteString(a.text)
	}
	return b.String()
}

// needSpace keeps calls tight and everything else spaced: no space
// after an opening paren, none before a closing paren or comma, and
// none before an opening paren that follows a word (a call).
func needSpace(prev, cur atom) bool {
	switch {
	case cur.kind == atomClose || cur.kind == atomComma:
		return false
	case prev.kind == atomOpen:
		return false
	case cur.kind == atomOpen:
		return prev.kind != atomWord
	default:
		return true
	}
}
