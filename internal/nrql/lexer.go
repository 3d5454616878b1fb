package nrql

import (
	"strings"
	"unicode"
)

// Lexer tokenizes NRQL input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokens consumes the whole input and returns every token up to and
// including the EOF token.
func Tokens(input string) []Token {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == TOKEN_EOF {
			return toks
		}
	}
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Pos: l.pos}

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF
		tok.Literal = ""
		return tok
	case '+':
		tok.Type, tok.Literal = TOKEN_PLUS, "+"
	case '-':
		tok.Type, tok.Literal = TOKEN_MINUS, "-"
	case '*':
		tok.Type, tok.Literal = TOKEN_STAR, "*"
	case '/':
		tok.Type, tok.Literal = TOKEN_SLASH, "/"
	case '%':
		tok.Type, tok.Literal = TOKEN_MOD, "%"
	case '=':
		tok.Type, tok.Literal = TOKEN_EQ, "="
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok.Type, tok.Literal = TOKEN_LE, "<="
		case '>':
			l.readChar()
			tok.Type, tok.Literal = TOKEN_NE, "<>"
		default:
			tok.Type, tok.Literal = TOKEN_LT, "<"
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type, tok.Literal = TOKEN_GE, ">="
		} else {
			tok.Type, tok.Literal = TOKEN_GT, ">"
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type, tok.Literal = TOKEN_NE, "!="
		} else {
			tok.Type, tok.Literal = TOKEN_ILLEGAL, string(l.ch)
		}
	case '.':
		tok.Type, tok.Literal = TOKEN_DOT, "."
	case ',':
		tok.Type, tok.Literal = TOKEN_COMMA, ","
	case '(':
		tok.Type, tok.Literal = TOKEN_LPAREN, "("
	case ')':
		tok.Type, tok.Literal = TOKEN_RPAREN, ")"
	case '\'':
		tok.Type = TOKEN_STRING
		tok.Literal = l.readString()
		return tok
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			literal := l.readIdentifier()
			tok.Literal = literal
			tok.Type = lookupKeyword(strings.ToLower(literal))
			return tok
		case isDigit(l.ch):
			tok.Type = TOKEN_NUMBER
			tok.Literal = l.readNumber()
			return tok
		default:
			tok.Type, tok.Literal = TOKEN_ILLEGAL, string(l.ch)
		}
	}

	l.readChar()
	return tok
}

// skipWhitespace skips whitespace. NRQL has no comment syntax; comment
// handling for query files lives in the batch reader.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a single-quoted string literal.
// Handles '' escape for embedded quotes. The returned literal
// excludes the surrounding quotes.
func (l *Lexer) readString() string {
	l.readChar() // skip opening quote
	var result strings.Builder
	for l.ch != 0 {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				result.WriteByte('\'')
				l.readChar()
				l.readChar()
			} else {
				l.readChar() // skip closing quote
				break
			}
		} else {
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
	return result.String()
}

// readIdentifier reads an unquoted identifier. Attribute names may be
// dotted (error.class, http.statusCode); a dot is part of the identifier
// only when it is directly followed by another name character, so a
// trailing dot is never swallowed.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for {
		for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		next := l.peekChar()
		if l.ch == '.' && (isLetter(next) || next == '_') {
			l.readChar()
			continue
		}
		break
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip .
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
