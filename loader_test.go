package lambda

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	content := `# church booleans
true: (λx.(λy.x))

false: (λx.(λy.y))
@@ not a valid line
id: (\x.x)
`
	path := filepath.Join(t.TempDir(), "church.lam")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	env := NewEnvironment()
	if err := LoadFile(path, env, nil); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if env.Len() != 3 {
		t.Fatalf("expected 3 definitions, got %d (%v)", env.Len(), env.Names())
	}
	expr, ok := env.Lookup("true")
	if !ok {
		t.Fatalf("expected true to be defined")
	}
	if expr.String() != "(λx.(λy.x))" {
		t.Fatalf("unexpected stored expression %s", expr)
	}
}

func TestLoadFileMissing(t *testing.T) {
	env := NewEnvironment()
	if err := LoadFile(filepath.Join(t.TempDir(), "absent.lam"), env, nil); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if env.Len() != 0 {
		t.Fatalf("environment must stay untouched, got %d entries", env.Len())
	}
}
