package resolver

import (
	"testing"

	"github.com/gosuda/golox/loxerr"
	"github.com/gosuda/golox/parser"
	"github.com/gosuda/golox/scanner"
)

func resolveSource(t *testing.T, source string) *loxerr.CollectingReporter {
	t.Helper()
	reporter := loxerr.NewCollectingReporter()
	toks := scanner.New(source, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError() {
		t.Fatalf("unexpected parse errors before resolving: %v", reporter.ParseErrors)
	}
	New(reporter).Resolve(stmts)
	return reporter
}

func TestSelfReferentialInitializerIsAnError(t *testing.T) {
	reporter := resolveSource(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	if !reporter.HadError() {
		t.Fatal("expected a resolve error reading a local in its own initializer")
	}
}

func TestLocalRedeclarationIsAnErrorButGlobalIsNot(t *testing.T) {
	reporter := resolveSource(t, `
		var x = 1;
		var x = 2;
	`)
	if reporter.HadError() {
		t.Fatalf("global redeclaration should be permitted, got: %v", reporter.ParseErrors)
	}

	reporter = resolveSource(t, `
		{
			var x = 1;
			var x = 2;
		}
	`)
	if !reporter.HadError() {
		t.Fatal("expected a resolve error for local redeclaration in the same scope")
	}
}

func TestReturnOutsideFunctionIsAnError(t *testing.T) {
	reporter := resolveSource(t, `return 1;`)
	if !reporter.HadError() {
		t.Fatal("expected a resolve error for a top-level return")
	}
}

func TestReturnValueInInitializerIsAnError(t *testing.T) {
	reporter := resolveSource(t, `
		class Box {
			init() {
				return 1;
			}
		}
	`)
	if !reporter.HadError() {
		t.Fatal("expected a resolve error returning a value from init")
	}

	reporter = resolveSource(t, `
		class Box {
			init() {
				return;
			}
		}
	`)
	if reporter.HadError() {
		t.Fatalf("bare return from init should be permitted, got: %v", reporter.ParseErrors)
	}
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	reporter := resolveSource(t, `print this;`)
	if !reporter.HadError() {
		t.Fatal("expected a resolve error using this outside a class")
	}
}

func TestSuperOutsideClassAndWithoutSuperclassAreErrors(t *testing.T) {
	reporter := resolveSource(t, `print super.foo;`)
	if !reporter.HadError() {
		t.Fatal("expected a resolve error using super outside a class")
	}

	reporter = resolveSource(t, `
		class A {
			bad() {
				return super.foo();
			}
		}
	`)
	if !reporter.HadError() {
		t.Fatal("expected a resolve error using super in a class with no superclass")
	}
}

func TestClassCannotInheritFromItself(t *testing.T) {
	reporter := resolveSource(t, `class Oroboros < Oroboros {}`)
	if !reporter.HadError() {
		t.Fatal("expected a resolve error for a class inheriting from itself")
	}
}

func TestValidSubclassResolvesCleanly(t *testing.T) {
	reporter := resolveSource(t, `
		class Animal {
			speak() { return "..."; }
		}
		class Dog < Animal {
			speak() { return super.speak(); }
		}
	`)
	if reporter.HadError() {
		t.Fatalf("unexpected resolve errors: %v", reporter.ParseErrors)
	}
}

func TestHopDistanceMatchesLexicalNesting(t *testing.T) {
	reporter := loxerr.NewCollectingReporter()
	source := `
		var a = "global";
		{
			var b = "outer";
			{
				print a;
				print b;
			}
		}
	`
	toks := scanner.New(source, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError() {
		t.Fatalf("unexpected parse errors: %v", reporter.ParseErrors)
	}

	r := New(reporter)
	r.Resolve(stmts)
	if reporter.HadError() {
		t.Fatalf("unexpected resolve errors: %v", reporter.ParseErrors)
	}

	// "a" is global (no annotation is stored for it); "b" is one scope up
	// from its reference, which is itself one scope inside the outer block.
	var distances []int
	for _, d := range r.Locals() {
		distances = append(distances, d)
	}
	if len(distances) != 1 {
		t.Fatalf("got %d annotated references, want exactly 1 (for b); distances=%v", len(distances), distances)
	}
	if distances[0] != 1 {
		t.Errorf("hop distance for b = %d, want 1", distances[0])
	}
}
