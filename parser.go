package lambda

import "fmt"

// Parser consumes the token stream with a single forward cursor and one
// token of lookahead. It owns no evaluation logic and performs no recovery:
// a malformed statement is returned as an error and the caller decides how
// to continue.
type Parser struct {
	l         *Lexer
	curToken  Token
	peekToken Token
}

func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// expect consumes and returns the current token when it has the wanted type,
// and reports a syntax error otherwise. ILLEGAL tokens surface as lex errors
// regardless of what was expected.
func (p *Parser) expect(t TokenType) (Token, error) {
	if p.curToken.Type == ILLEGAL {
		return p.curToken, newLexError(p.curToken)
	}
	if p.curToken.Type != t {
		return p.curToken, newSyntaxError(t, p.curToken)
	}
	tok := p.curToken
	p.nextToken()
	return tok, nil
}

// ParseStatement parses one statement: `name : expression` becomes a
// Binding, anything else a bare ExpressionStatement.
func (p *Parser) ParseStatement() (Statement, error) {
	if p.curToken.Type == IDENT && p.peekToken.Type == COLON {
		name := p.curToken.Literal
		p.nextToken()
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Binding{Name: name, Value: expr}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ExpressionStatement{Expr: expr}, nil
}

func (p *Parser) parseExpression() (Expression, error) {
	switch p.curToken.Type {
	case ILLEGAL:
		return nil, newLexError(p.curToken)
	case IDENT:
		name := &Name{Value: p.curToken.Literal}
		p.nextToken()
		return name, nil
	case LPAREN:
		p.nextToken()
		if p.curToken.Type == LAMBDA {
			return p.parseAbstraction()
		}
		return p.parseApplication()
	default:
		return nil, &Error{
			Code:    ErrCodeSyntax,
			Message: fmt.Sprintf("unexpected token %s", p.curToken),
			Found:   p.curToken,
		}
	}
}

// parseAbstraction parses `identifier '.' expression ')'` with the opening
// paren consumed and the lambda marker as the current token.
func (p *Parser) parseAbstraction() (Expression, error) {
	p.nextToken()
	param, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(DOT); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return &Abstraction{Param: param.Literal, Body: body}, nil
}

// parseApplication parses `expression expression ')'` with the opening paren
// already consumed.
func (p *Parser) parseApplication() (Expression, error) {
	fn, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return &Application{Fn: fn, Arg: arg}, nil
}

// synchronize skips tokens up to the next statement boundary so a session
// can resume after a malformed statement.
func (p *Parser) synchronize() {
	for p.curToken.Type != NEWLINE && p.curToken.Type != EOF {
		p.nextToken()
	}
}
