package lambda

import "fmt"

// ReduceWithLimit reduces expr like Evaluate but spends one unit of budget
// per reduction event (a beta-reduction or an environment expansion) and
// stops with a STEP_BUDGET_EXCEEDED error once maxSteps are spent. It exists
// for callers that must not hang on divergent terms; the reduction strategy
// and results for terminating terms are identical to Evaluate. A maxSteps of
// zero or less means no limit.
//
// It returns the normal form and the number of steps spent.
func ReduceWithLimit(expr Expression, env *Environment, maxSteps int) (Expression, int, error) {
	if maxSteps <= 0 {
		return Evaluate(expr, env), 0, nil
	}
	r := &reducer{env: env, limit: maxSteps}
	result, err := r.evaluate(expr)
	return result, r.steps, err
}

type reducer struct {
	env   *Environment
	limit int
	steps int
}

func (r *reducer) spend() error {
	r.steps++
	if r.steps > r.limit {
		return &Error{
			Code:    ErrCodeBudget,
			Message: fmt.Sprintf("no normal form reached within %d reduction steps", r.limit),
		}
	}
	return nil
}

func (r *reducer) evaluate(expr Expression) (Expression, error) {
	switch node := expr.(type) {
	case *Name:
		if bound, ok := r.env.Lookup(node.Value); ok {
			if err := r.spend(); err != nil {
				return nil, err
			}
			return r.evaluate(bound)
		}
		return node, nil
	case *Application:
		fn, err := r.evaluate(node.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := r.evaluate(node.Arg)
		if err != nil {
			return nil, err
		}
		if abs, ok := fn.(*Abstraction); ok {
			if err := r.spend(); err != nil {
				return nil, err
			}
			return r.evaluate(Substitute(abs.Body, abs.Param, arg))
		}
		return &Application{Fn: fn, Arg: arg}, nil
	case *Abstraction:
		body, err := r.evaluate(node.Body)
		if err != nil {
			return nil, err
		}
		return &Abstraction{Param: node.Param, Body: body}, nil
	}
	panic(fmt.Sprintf("unknown expression %T", expr))
}
