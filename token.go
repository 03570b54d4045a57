package lambda

import "fmt"

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	IDENT = "IDENT"

	LAMBDA  = "LAMBDA"
	DOT     = "."
	COLON   = ":"
	LPAREN  = "("
	RPAREN  = ")"
	NEWLINE = "NEWLINE"
)

// lookupKeyword maps the word spelling of the lambda marker to its token
// type. Every other identifier is a generic IDENT.
func lookupKeyword(ident string) TokenType {
	if ident == "lambda" {
		return LAMBDA
	}
	return IDENT
}

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func newToken(tokenType TokenType, ch byte, line int, column int) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: line, Column: column}
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, Line: %d, Column: %d)", t.Type, t.Literal, t.Line, t.Column)
}

func isIdentifierChar(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || isDigit(ch) || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
