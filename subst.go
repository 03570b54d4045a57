package lambda

import "fmt"

// FreeVars returns the set of names occurring free in expr.
func FreeVars(expr Expression) map[string]struct{} {
	switch node := expr.(type) {
	case *Name:
		return map[string]struct{}{node.Value: {}}
	case *Abstraction:
		free := FreeVars(node.Body)
		delete(free, node.Param)
		return free
	case *Application:
		free := FreeVars(node.Fn)
		for name := range FreeVars(node.Arg) {
			free[name] = struct{}{}
		}
		return free
	}
	panic(fmt.Sprintf("unknown expression %T", expr))
}

// freshName returns the first of base_0, base_1, ... absent from forbidden.
func freshName(base string, forbidden map[string]struct{}) string {
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if _, taken := forbidden[candidate]; !taken {
			return candidate
		}
	}
}

// Substitute replaces free occurrences of name in expr with value,
// alpha-renaming bound parameters as needed so no free variable of value is
// captured. Expressions are immutable: the result shares unmodified subtrees
// with the input.
func Substitute(expr Expression, name string, value Expression) Expression {
	switch node := expr.(type) {
	case *Name:
		if node.Value == name {
			return value
		}
		return node
	case *Application:
		return &Application{
			Fn:  Substitute(node.Fn, name, value),
			Arg: Substitute(node.Arg, name, value),
		}
	case *Abstraction:
		if node.Param == name {
			// The binder shadows name; substitution stops here.
			return node
		}
		if _, captures := FreeVars(value)[node.Param]; captures {
			forbidden := FreeVars(node.Body)
			for v := range FreeVars(value) {
				forbidden[v] = struct{}{}
			}
			renamed := freshName(node.Param, forbidden)
			body := Substitute(node.Body, node.Param, &Name{Value: renamed})
			return &Abstraction{Param: renamed, Body: Substitute(body, name, value)}
		}
		return &Abstraction{Param: node.Param, Body: Substitute(node.Body, name, value)}
	}
	panic(fmt.Sprintf("unknown expression %T", expr))
}
