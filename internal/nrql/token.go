// Package nrql provides a lexer and clause-level parser for NRQL, the
// SQL-flavoured monitoring query language (SELECT/FROM/WHERE/FACET/SINCE).
//
// NRQL has no published grammar, and real-world queries are frequently
// hand-written and slightly malformed, so the parser is deliberately
// forgiving: clauses are located independently of each other, unknown
// constructs are preserved as raw text, and nothing here ever fails.
// Downstream conversion decides what to do with unrecognized pieces.
package nrql

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

// TOKEN_EOF and friends enumerate all token types produced by the lexer.
const (
	TOKEN_EOF     TokenType = iota // end of input
	TOKEN_ILLEGAL                  // unexpected character

	TOKEN_IDENT  // identifier, including dotted names (http.statusCode)
	TOKEN_NUMBER // 123, 45.67, 1e10
	TOKEN_STRING // 'hello'

	TOKEN_EQ     // =
	TOKEN_NE     // != or <>
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LE     // <=
	TOKEN_GE     // >=
	TOKEN_PLUS   // +
	TOKEN_MINUS  // -
	TOKEN_STAR   // *
	TOKEN_SLASH  // /
	TOKEN_MOD    // %
	TOKEN_DOT    // . (stray; dots inside names are part of the IDENT)
	TOKEN_COMMA  // ,
	TOKEN_LPAREN // (
	TOKEN_RPAREN // )

	// TOKEN_AND and below are NRQL keywords (alphabetical).
	TOKEN_AND
	TOKEN_AS
	TOKEN_ASC
	TOKEN_BY
	TOKEN_COMPARE
	TOKEN_DESC
	TOKEN_FACET
	TOKEN_FALSE
	TOKEN_FROM
	TOKEN_IN
	TOKEN_IS
	TOKEN_LIKE
	TOKEN_LIMIT
	TOKEN_NOT
	TOKEN_NULL
	TOKEN_OR
	TOKEN_ORDER
	TOKEN_SELECT
	TOKEN_SINCE
	TOKEN_TIMESERIES
	TOKEN_TRUE
	TOKEN_UNTIL
	TOKEN_WHERE
	TOKEN_WITH
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	TOKEN_EOF:     "EOF",
	TOKEN_ILLEGAL: "ILLEGAL",
	TOKEN_IDENT:   "IDENT",
	TOKEN_NUMBER:  "NUMBER",
	TOKEN_STRING:  "STRING",

	TOKEN_EQ:     "=",
	TOKEN_NE:     "!=",
	TOKEN_LT:     "<",
	TOKEN_GT:     ">",
	TOKEN_LE:     "<=",
	TOKEN_GE:     ">=",
	TOKEN_PLUS:   "+",
	TOKEN_MINUS:  "-",
	TOKEN_STAR:   "*",
	TOKEN_SLASH:  "/",
	TOKEN_MOD:    "%",
	TOKEN_DOT:    ".",
	TOKEN_COMMA:  ",",
	TOKEN_LPAREN: "(",
	TOKEN_RPAREN: ")",

	TOKEN_AND:        "AND",
	TOKEN_AS:         "AS",
	TOKEN_ASC:        "ASC",
	TOKEN_BY:         "BY",
	TOKEN_COMPARE:    "COMPARE",
	TOKEN_DESC:       "DESC",
	TOKEN_FACET:      "FACET",
	TOKEN_FALSE:      "FALSE",
	TOKEN_FROM:       "FROM",
	TOKEN_IN:         "IN",
	TOKEN_IS:         "IS",
	TOKEN_LIKE:       "LIKE",
	TOKEN_LIMIT:      "LIMIT",
	TOKEN_NOT:        "NOT",
	TOKEN_NULL:       "NULL",
	TOKEN_OR:         "OR",
	TOKEN_ORDER:      "ORDER",
	TOKEN_SELECT:     "SELECT",
	TOKEN_SINCE:      "SINCE",
	TOKEN_TIMESERIES: "TIMESERIES",
	TOKEN_TRUE:       "TRUE",
	TOKEN_UNTIL:      "UNTIL",
	TOKEN_WHERE:      "WHERE",
	TOKEN_WITH:       "WITH",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]TokenType{
	"and":        TOKEN_AND,
	"as":         TOKEN_AS,
	"asc":        TOKEN_ASC,
	"by":         TOKEN_BY,
	"compare":    TOKEN_COMPARE,
	"desc":       TOKEN_DESC,
	"facet":      TOKEN_FACET,
	"false":      TOKEN_FALSE,
	"from":       TOKEN_FROM,
	"in":         TOKEN_IN,
	"is":         TOKEN_IS,
	"like":       TOKEN_LIKE,
	"limit":      TOKEN_LIMIT,
	"not":        TOKEN_NOT,
	"null":       TOKEN_NULL,
	"or":         TOKEN_OR,
	"order":      TOKEN_ORDER,
	"select":     TOKEN_SELECT,
	"since":      TOKEN_SINCE,
	"timeseries": TOKEN_TIMESERIES,
	"true":       TOKEN_TRUE,
	"until":      TOKEN_UNTIL,
	"where":      TOKEN_WHERE,
	"with":       TOKEN_WITH,
}

// lookupKeyword returns the token type for the given lowercase identifier.
// Returns TOKEN_IDENT if it's not a keyword.
func lookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

// Token represents a lexical token with its literal value.
// Pos is the byte offset of the token's first character in the input;
// the clause extractor uses it to slice raw clause text out of the query.
// Keyword tokens keep the literal as written (NRQL keywords are
// case-insensitive, so FACET and facet produce the same type).
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}
