package lambda

import "fmt"

// Expression is the closed set of lambda term shapes. The unexported marker
// keeps the sum closed so substitution and evaluation can switch
// exhaustively over the three variants.
type Expression interface {
	expressionNode()
	String() string
}

// Name is a variable reference.
type Name struct {
	Value string
}

func (n *Name) expressionNode() {}
func (n *Name) String() string  { return n.Value }

// Abstraction binds Param over Body.
type Abstraction struct {
	Param string
	Body  Expression
}

func (a *Abstraction) expressionNode() {}
func (a *Abstraction) String() string {
	return fmt.Sprintf("(λ%s.%s)", a.Param, a.Body)
}

// Application applies Fn to Arg.
type Application struct {
	Fn  Expression
	Arg Expression
}

func (a *Application) expressionNode() {}
func (a *Application) String() string {
	return fmt.Sprintf("(%s %s)", a.Fn, a.Arg)
}

// Statement is one line of a session: either a name binding or a bare
// expression to evaluate.
type Statement interface {
	statementNode()
	String() string
}

// Binding associates a name with an unevaluated expression.
type Binding struct {
	Name  string
	Value Expression
}

func (b *Binding) statementNode() {}
func (b *Binding) String() string { return fmt.Sprintf("%s: %s", b.Name, b.Value) }

// ExpressionStatement wraps a bare expression statement.
type ExpressionStatement struct {
	Expr Expression
}

func (es *ExpressionStatement) statementNode() {}
func (es *ExpressionStatement) String() string { return es.Expr.String() }
