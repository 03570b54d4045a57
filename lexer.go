package lambda

type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// NextToken returns the next token in the input. Line breaks are significant
// and come back as NEWLINE tokens; intra-line whitespace and # comments are
// skipped. Characters outside the token grammar produce an ILLEGAL token that
// the parser turns into a lex error.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()
	var tok Token
	switch l.ch {
	case '.':
		tok = newToken(DOT, l.ch, l.line, l.column)
	case ':':
		tok = newToken(COLON, l.ch, l.line, l.column)
	case '(':
		tok = newToken(LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(RPAREN, l.ch, l.line, l.column)
	case '\\':
		tok = Token{Type: LAMBDA, Literal: `\`, Line: l.line, Column: l.column}
	case '\n':
		tok = Token{Type: NEWLINE, Literal: "\n", Line: l.line, Column: l.column}
	case '\r':
		tok = Token{Type: NEWLINE, Literal: "\n", Line: l.line, Column: l.column}
		if l.peekChar() == '\n' {
			l.readChar()
		}
	case lambdaByte0:
		// The λ rune is two bytes in UTF-8.
		if l.peekChar() == lambdaByte1 {
			tok = Token{Type: LAMBDA, Literal: "λ", Line: l.line, Column: l.column}
			l.readChar()
		} else {
			tok = newToken(ILLEGAL, l.ch, l.line, l.column)
		}
	case 0:
		tok.Literal = ""
		tok.Type = EOF
	default:
		if isIdentifierChar(l.ch) {
			tok.Line = l.line
			tok.Column = l.column
			literal := l.readIdentifier()
			tok.Type = lookupKeyword(literal)
			tok.Literal = literal
			return tok
		}
		tok = newToken(ILLEGAL, l.ch, l.line, l.column)
	}
	l.readChar()
	return tok
}

const (
	lambdaByte0 = 0xCE
	lambdaByte1 = 0xBB
)

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentifierChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespaceAndComments discards spaces, tabs and # line comments. It
// never consumes a line break: those terminate statements.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		if l.ch == ' ' || l.ch == '\t' {
			l.readChar()
			continue
		}
		if l.ch == '#' {
			l.skipLineComment()
			continue
		}
		break
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
}

// Reset restarts the lexer over a new input, reusing the allocation.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.position = 0
	l.readPosition = 0
	l.line = 1
	l.column = 0
	l.readChar()
}
