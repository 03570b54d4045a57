package lambda

import "fmt"

type ErrorCode string

const (
	ErrCodeLex    ErrorCode = "LEX_ERROR"
	ErrCodeSyntax ErrorCode = "SYNTAX_ERROR"
	ErrCodeBudget ErrorCode = "STEP_BUDGET_EXCEEDED"
)

// Error is the structured error returned by the parser and the bounded
// reducer. Syntax errors carry the token kind the parser expected and the
// token actually found.
type Error struct {
	Code     ErrorCode
	Message  string
	Expected TokenType
	Found    Token
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newSyntaxError(expected TokenType, found Token) *Error {
	return &Error{
		Code:     ErrCodeSyntax,
		Message:  fmt.Sprintf("expected %s, got %s", expected, found),
		Expected: expected,
		Found:    found,
	}
}

func newLexError(found Token) *Error {
	return &Error{
		Code:    ErrCodeLex,
		Message: fmt.Sprintf("unrecognized character %q at line %d, column %d", found.Literal, found.Line, found.Column),
		Found:   found,
	}
}
