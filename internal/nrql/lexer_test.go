package nrql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Punctuation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType TokenType
		wantLit  string
	}{
		{"eq", "=", TOKEN_EQ, "="},
		{"ne_bang", "!=", TOKEN_NE, "!="},
		{"ne_diamond", "<>", TOKEN_NE, "<>"},
		{"lt", "<", TOKEN_LT, "<"},
		{"gt", ">", TOKEN_GT, ">"},
		{"le", "<=", TOKEN_LE, "<="},
		{"ge", ">=", TOKEN_GE, ">="},
		{"plus", "+", TOKEN_PLUS, "+"},
		{"minus", "-", TOKEN_MINUS, "-"},
		{"star", "*", TOKEN_STAR, "*"},
		{"slash", "/", TOKEN_SLASH, "/"},
		{"mod", "%", TOKEN_MOD, "%"},
		{"comma", ",", TOKEN_COMMA, ","},
		{"lparen", "(", TOKEN_LPAREN, "("},
		{"rparen", ")", TOKEN_RPAREN, ")"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLexer(tc.input)
			tok := l.NextToken()
			assert.Equal(t, tc.wantType, tok.Type, "token type")
			assert.Equal(t, tc.wantLit, tok.Literal, "token literal")
		})
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLit string
	}{
		{"integer", "42", "42"},
		{"decimal", "3.14", "3.14"},
		{"scientific", "1e10", "1e10"},
		{"zero", "0", "0"},
		{"large_integer", "3000000000", "3000000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLexer(tc.input)
			tok := l.NextToken()
			assert.Equal(t, TOKEN_NUMBER, tok.Type)
			assert.Equal(t, tc.wantLit, tok.Literal)
		})
	}
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLit string
	}{
		{"simple", "'hello'", "hello"},
		{"empty", "''", ""},
		{"with_spaces", "'hello world'", "hello world"},
		{"escaped_quote", "'it''s'", "it's"},
		{"wildcards", "'%login%'", "%login%"},
		{"keyword_inside", "'SELECT SINCE WHERE'", "SELECT SINCE WHERE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLexer(tc.input)
			tok := l.NextToken()
			assert.Equal(t, TOKEN_STRING, tok.Type)
			assert.Equal(t, tc.wantLit, tok.Literal)
		})
	}
}

func TestLexer_Keywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType TokenType
	}{
		{"select_upper", "SELECT", TOKEN_SELECT},
		{"select_lower", "select", TOKEN_SELECT},
		{"select_mixed", "Select", TOKEN_SELECT},
		{"from", "FROM", TOKEN_FROM},
		{"where", "WHERE", TOKEN_WHERE},
		{"facet", "FACET", TOKEN_FACET},
		{"since", "SINCE", TOKEN_SINCE},
		{"until", "UNTIL", TOKEN_UNTIL},
		{"limit", "LIMIT", TOKEN_LIMIT},
		{"timeseries", "TIMESERIES", TOKEN_TIMESERIES},
		{"compare", "COMPARE", TOKEN_COMPARE},
		{"with", "WITH", TOKEN_WITH},
		{"order", "ORDER", TOKEN_ORDER},
		{"by", "BY", TOKEN_BY},
		{"like", "LIKE", TOKEN_LIKE},
		{"in", "IN", TOKEN_IN},
		{"is", "IS", TOKEN_IS},
		{"null", "NULL", TOKEN_NULL},
		{"and", "AND", TOKEN_AND},
		{"or", "OR", TOKEN_OR},
		{"not", "NOT", TOKEN_NOT},
		{"as", "AS", TOKEN_AS},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLexer(tc.input)
			tok := l.NextToken()
			assert.Equal(t, tc.wantType, tok.Type)
			assert.Equal(t, tc.input, tok.Literal, "keywords keep their written casing")
		})
	}
}

func TestLexer_Identifiers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLit string
	}{
		{"simple", "duration", "duration"},
		{"camel", "appName", "appName"},
		{"underscore", "response_time", "response_time"},
		{"dotted", "error.class", "error.class"},
		{"dotted_deep", "http.request.method", "http.request.method"},
		{"not_a_keyword", "selector", "selector"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLexer(tc.input)
			tok := l.NextToken()
			assert.Equal(t, TOKEN_IDENT, tok.Type)
			assert.Equal(t, tc.wantLit, tok.Literal)
		})
	}
}

func TestLexer_TrailingDotNotSwallowed(t *testing.T) {
	l := NewLexer("name.")
	tok := l.NextToken()
	assert.Equal(t, TOKEN_IDENT, tok.Type)
	assert.Equal(t, "name", tok.Literal)
	tok = l.NextToken()
	assert.Equal(t, TOKEN_DOT, tok.Type)
}

func TestLexer_FullQuery(t *testing.T) {
	input := "SELECT count(*) FROM Transaction WHERE appName = 'MyApp' SINCE 1 hour ago"

	wantTypes := []TokenType{
		TOKEN_SELECT,
		TOKEN_IDENT, TOKEN_LPAREN, TOKEN_STAR, TOKEN_RPAREN,
		TOKEN_FROM, TOKEN_IDENT,
		TOKEN_WHERE, TOKEN_IDENT, TOKEN_EQ, TOKEN_STRING,
		TOKEN_SINCE, TOKEN_NUMBER, TOKEN_IDENT, TOKEN_IDENT,
		TOKEN_EOF,
	}

	toks := Tokens(input)
	require.Len(t, toks, len(wantTypes))
	for i, want := range wantTypes {
		assert.Equal(t, want, toks[i].Type, "token %d (%q)", i, toks[i].Literal)
	}
}

func TestLexer_PosOffsets(t *testing.T) {
	input := "WHERE appName = 'MyApp'"
	toks := Tokens(input)

	require.GreaterOrEqual(t, len(toks), 4)
	assert.Equal(t, 0, toks[0].Pos)
	assert.Equal(t, 6, toks[1].Pos)
	// Slicing from a token's Pos recovers the raw tail of the input.
	assert.Equal(t, "appName = 'MyApp'", input[toks[1].Pos:])
}

func TestLexer_KeywordInsideStringStaysString(t *testing.T) {
	toks := Tokens("msg = 'drop WHERE everything'")
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{TOKEN_IDENT, TOKEN_EQ, TOKEN_STRING, TOKEN_EOF}, types)
}
