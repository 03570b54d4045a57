package lambda

import "sort"

// Environment maps names to unevaluated expressions. Definitions are stored
// as written; the evaluator re-evaluates a binding on every reference. Keys
// are unique and last write wins; entries are never removed.
type Environment struct {
	store map[string]Expression
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Expression)}
}

func (e *Environment) Define(name string, expr Expression) {
	e.store[name] = expr
}

func (e *Environment) Lookup(name string) (Expression, bool) {
	if e == nil || e.store == nil {
		return nil, false
	}
	expr, ok := e.store[name]
	return expr, ok
}

func (e *Environment) Len() int {
	if e == nil {
		return 0
	}
	return len(e.store)
}

// Names returns the defined names in sorted order.
func (e *Environment) Names() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
