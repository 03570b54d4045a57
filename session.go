package lambda

import (
	"github.com/oarkflow/log"
)

// Result is the outcome of one statement. Exactly one of Binding, Value or
// Err is populated: Binding when the statement defined a name, Value when a
// bare expression was reduced to normal form, Err when the statement failed
// to lex, parse or reduce.
type Result struct {
	Binding *Binding
	Value   Expression
	Err     error
}

// Session runs statements against a mutable environment. The environment is
// owned by the caller and mutated only between statements; rendering of
// results stays with the caller.
type Session struct {
	env    *Environment
	logger *log.Logger
	steps  int
}

type SessionOption func(*Session)

func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithStepLimit caps every evaluation at n reduction steps. Zero means
// unlimited, matching the pure evaluator.
func WithStepLimit(n int) SessionOption {
	return func(s *Session) {
		s.steps = n
	}
}

func NewSession(env *Environment, opts ...SessionOption) *Session {
	s := &Session{
		env:    env,
		logger: &log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Env() *Environment {
	return s.env
}

// Run feeds every statement in src through the parser, storing bindings and
// evaluating bare expressions in order. A failing statement yields a Result
// carrying its error and processing resumes at the next line; an error never
// aborts the remaining statements.
func (s *Session) Run(src string) []Result {
	p := NewParser(NewLexer(src))
	var results []Result
	for p.curToken.Type != EOF {
		if p.curToken.Type == NEWLINE {
			p.nextToken()
			continue
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			results = append(results, Result{Err: err})
			p.synchronize()
			continue
		}
		if p.curToken.Type == NEWLINE {
			p.nextToken()
		}
		results = append(results, s.execute(stmt))
	}
	return results
}

// RunStatement parses and executes a single statement, the per-line REPL
// contract.
func (s *Session) RunStatement(line string) Result {
	p := NewParser(NewLexer(line))
	stmt, err := p.ParseStatement()
	if err != nil {
		return Result{Err: err}
	}
	return s.execute(stmt)
}

func (s *Session) execute(stmt Statement) Result {
	switch st := stmt.(type) {
	case *Binding:
		s.env.Define(st.Name, st.Value)
		s.logger.Debug().Str("name", st.Name).Str("expr", st.Value.String()).Msg("definition stored")
		return Result{Binding: st}
	case *ExpressionStatement:
		if s.steps > 0 {
			value, spent, err := ReduceWithLimit(st.Expr, s.env, s.steps)
			if err != nil {
				s.logger.Warn().Int("steps", spent).Err(err).Msg("evaluation aborted")
				return Result{Err: err}
			}
			return Result{Value: value}
		}
		return Result{Value: Evaluate(st.Expr, s.env)}
	}
	return Result{}
}
