package lambda

import (
	"errors"
	"testing"
)

func TestBetaReductionIdentity(t *testing.T) {
	env := NewEnvironment()
	got := Evaluate(parseExpr(t, "((λx.x) y)"), env)
	if got.String() != "y" {
		t.Fatalf("expected y, got %s", got)
	}
}

func TestFreeNamePassesThrough(t *testing.T) {
	got := Evaluate(&Name{Value: "z"}, NewEnvironment())
	if name, ok := got.(*Name); !ok || name.Value != "z" {
		t.Fatalf("expected free name z, got %s", got)
	}
}

func TestEnvironmentTransparency(t *testing.T) {
	env := NewEnvironment()
	env.Define("id", parseExpr(t, "(λx.x)"))
	got := Evaluate(parseExpr(t, "(id w)"), env)
	if got.String() != "w" {
		t.Fatalf("expected w, got %s", got)
	}
}

func TestDefinitionIsReEvaluatedOnEveryReference(t *testing.T) {
	// Bindings are stored unevaluated and resolved through the current
	// environment, so redefining a referenced name changes later results.
	env := NewEnvironment()
	env.Define("f", &Name{Value: "g"})
	env.Define("g", &Name{Value: "a"})
	if got := Evaluate(&Name{Value: "f"}, env); got.String() != "a" {
		t.Fatalf("expected a, got %s", got)
	}
	env.Define("g", &Name{Value: "b"})
	if got := Evaluate(&Name{Value: "f"}, env); got.String() != "b" {
		t.Fatalf("expected b after redefinition, got %s", got)
	}
}

func TestNormalizationUnderBinders(t *testing.T) {
	got := Evaluate(parseExpr(t, "(λx.((λy.y) x))"), NewEnvironment())
	if got.String() != "(λx.x)" {
		t.Fatalf("expected (λx.x), got %s", got)
	}
}

func TestStuckApplicationIsReturnedReduced(t *testing.T) {
	env := NewEnvironment()
	got := Evaluate(parseExpr(t, "((f ((λx.x) y)) z)"), env)
	if got.String() != "((f y) z)" {
		t.Fatalf("expected ((f y) z), got %s", got)
	}
}

func TestChurchSuccessor(t *testing.T) {
	env := NewEnvironment()
	env.Define("zero", parseExpr(t, "(λf.(λx.x))"))
	env.Define("succ", parseExpr(t, "(λn.(λf.(λx.(f ((n f) x)))))"))
	got := Evaluate(parseExpr(t, "(succ zero)"), env)
	if got.String() != "(λf.(λx.(f x)))" {
		t.Fatalf("expected church one, got %s", got)
	}
	got = Evaluate(parseExpr(t, "(succ (succ zero))"), env)
	if got.String() != "(λf.(λx.(f (f x))))" {
		t.Fatalf("expected church two, got %s", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	env := NewEnvironment()
	env.Define("v", &Name{Value: "first"})
	env.Define("v", &Name{Value: "second"})
	if env.Len() != 1 {
		t.Fatalf("expected one entry, got %d", env.Len())
	}
	if got := Evaluate(&Name{Value: "v"}, env); got.String() != "second" {
		t.Fatalf("expected second, got %s", got)
	}
}

func TestReduceWithLimitMatchesEvaluateOnTerminatingTerms(t *testing.T) {
	env := NewEnvironment()
	env.Define("id", parseExpr(t, "(λx.x)"))
	expr := parseExpr(t, "((λf.(f (f w))) id)")
	want := Evaluate(expr, env)
	got, steps, err := ReduceWithLimit(expr, env, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != want.String() {
		t.Fatalf("bounded result %s differs from %s", got, want)
	}
	if steps == 0 {
		t.Fatalf("expected reduction steps to be counted")
	}
}

func TestSelfApplicationDoesNotNormalize(t *testing.T) {
	omega := parseExpr(t, "((λx.(x x)) (λx.(x x)))")
	_, steps, err := ReduceWithLimit(omega, NewEnvironment(), 1000)
	if err == nil {
		t.Fatalf("expected the step budget to be exhausted")
	}
	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if rerr.Code != ErrCodeBudget {
		t.Fatalf("expected %s, got %s", ErrCodeBudget, rerr.Code)
	}
	if steps < 1000 {
		t.Fatalf("expected the full budget to be spent, got %d", steps)
	}
}

func TestSelfReferentialBindingDoesNotNormalize(t *testing.T) {
	env := NewEnvironment()
	env.Define("loop", &Name{Value: "loop"})
	_, _, err := ReduceWithLimit(&Name{Value: "loop"}, env, 100)
	var rerr *Error
	if !errors.As(err, &rerr) || rerr.Code != ErrCodeBudget {
		t.Fatalf("expected budget error, got %v", err)
	}
}

func TestKCombinatorDiscardsSecondArgument(t *testing.T) {
	env := NewEnvironment()
	env.Define("k", parseExpr(t, "(λx.(λy.x))"))
	got := Evaluate(parseExpr(t, "((k a) b)"), env)
	if got.String() != "a" {
		t.Fatalf("expected a, got %s", got)
	}
}

func BenchmarkEvaluateChurchArithmetic(b *testing.B) {
	env := NewEnvironment()
	p := NewParser(NewLexer("(λf.(λx.x))"))
	stmt, err := p.ParseStatement()
	if err != nil {
		b.Fatalf("parse failed: %v", err)
	}
	env.Define("zero", stmt.(*ExpressionStatement).Expr)
	p = NewParser(NewLexer("(λn.(λf.(λx.(f ((n f) x)))))"))
	stmt, err = p.ParseStatement()
	if err != nil {
		b.Fatalf("parse failed: %v", err)
	}
	env.Define("succ", stmt.(*ExpressionStatement).Expr)
	p = NewParser(NewLexer("(succ (succ (succ zero)))"))
	stmt, err = p.ParseStatement()
	if err != nil {
		b.Fatalf("parse failed: %v", err)
	}
	expr := stmt.(*ExpressionStatement).Expr
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Evaluate(expr, env)
	}
}
