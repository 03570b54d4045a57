package lambda

import "fmt"

// Evaluate reduces expr to normal form under env using applicative-order
// reduction: both sides of an application are always reduced, beta-reduction
// fires whenever the head reduces to an abstraction, and reduction continues
// under binders. Environment lookup is transparent: a bound name is
// re-evaluated on every reference, never memoized.
//
// Evaluation is pure and unbounded. Terms with no normal form, and
// self-referential environment bindings not guarded by an abstraction, do
// not terminate; callers that need protection wrap this with ReduceWithLimit.
func Evaluate(expr Expression, env *Environment) Expression {
	switch node := expr.(type) {
	case *Name:
		if bound, ok := env.Lookup(node.Value); ok {
			return Evaluate(bound, env)
		}
		// Free names are valid normal forms.
		return node
	case *Application:
		fn := Evaluate(node.Fn, env)
		arg := Evaluate(node.Arg, env)
		if abs, ok := fn.(*Abstraction); ok {
			return Evaluate(Substitute(abs.Body, abs.Param, arg), env)
		}
		// Stuck: the head is a free name or another stuck application.
		return &Application{Fn: fn, Arg: arg}
	case *Abstraction:
		return &Abstraction{Param: node.Param, Body: Evaluate(node.Body, env)}
	}
	panic(fmt.Sprintf("unknown expression %T", expr))
}
