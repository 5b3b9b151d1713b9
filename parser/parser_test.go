package parser

import (
	"testing"

	"github.com/gosuda/golox/ast"
	"github.com/gosuda/golox/loxerr"
	"github.com/gosuda/golox/scanner"
)

func parseSource(t *testing.T, source string) ([]ast.Stmt, *loxerr.CollectingReporter) {
	t.Helper()
	reporter := loxerr.NewCollectingReporter()
	toks := scanner.New(source, reporter).ScanTokens()
	stmts := New(toks, reporter).Parse()
	return stmts, reporter
}

func TestExpressionPrecedenceRoundTrips(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3;", "(+ 1 (* 2 3));"},
		{"(1 + 2) * 3;", "(* (group (+ 1 2)) 3);"},
		{"-1 + 2;", "(+ (- 1) 2);"},
		{"1 < 2 == 3 < 4;", "(== (< 1 2) (< 3 4));"},
		{"a or b and c;", "(or a (and b c));"},
	}
	for _, tt := range tests {
		stmts, reporter := parseSource(t, tt.source)
		if reporter.HadError() {
			t.Fatalf("source %q: unexpected parse errors: %v", tt.source, reporter.ParseErrors)
		}
		if len(stmts) != 1 {
			t.Fatalf("source %q: got %d statements, want 1", tt.source, len(stmts))
		}
		got := ast.PrintStmts(stmts)
		if got != tt.want {
			t.Errorf("source %q:\n got  %q\n want %q", tt.source, got, tt.want)
		}
	}
}

func TestForLoopDesugarsToWhileInsideBlocks(t *testing.T) {
	stmts, reporter := parseSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if reporter.HadError() {
		t.Fatalf("unexpected parse errors: %v", reporter.ParseErrors)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	block, ok := stmts[0].(ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want ast.BlockStmt wrapping the initializer and while loop", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements in desugared block, want 2 (init, while)", len(block.Statements))
	}
	if _, ok := block.Statements[0].(ast.VarStmt); !ok {
		t.Errorf("first statement = %T, want ast.VarStmt", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement = %T, want ast.WhileStmt", block.Statements[1])
	}
	innerBlock, ok := whileStmt.Body.(ast.BlockStmt)
	if !ok {
		t.Fatalf("while body = %T, want ast.BlockStmt wrapping (body, increment)", whileStmt.Body)
	}
	if len(innerBlock.Statements) != 2 {
		t.Fatalf("got %d statements in while body, want 2 (print, increment)", len(innerBlock.Statements))
	}
}

func TestForLoopWithOmittedClausesDefaultsConditionTrue(t *testing.T) {
	stmts, reporter := parseSource(t, `for (;;) { break_out_manually; }`)
	if reporter.HadError() {
		t.Fatalf("unexpected parse errors: %v", reporter.ParseErrors)
	}
	whileStmt, ok := stmts[0].(ast.WhileStmt)
	if !ok {
		t.Fatalf("got %T, want ast.WhileStmt (no initializer to wrap in a block)", stmts[0])
	}
	lit, ok := whileStmt.Condition.(ast.Literal)
	if !ok || lit.Value != true {
		t.Errorf("condition = %#v, want literal true", whileStmt.Condition)
	}
}

func TestAssignmentTargetDispatchesVariableVsGet(t *testing.T) {
	stmts, reporter := parseSource(t, `x = 1; obj.field = 2;`)
	if reporter.HadError() {
		t.Fatalf("unexpected parse errors: %v", reporter.ParseErrors)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	es1 := stmts[0].(ast.ExpressionStmt)
	if _, ok := es1.Expr.(*ast.Assign); !ok {
		t.Errorf("first assignment = %T, want *ast.Assign", es1.Expr)
	}
	es2 := stmts[1].(ast.ExpressionStmt)
	if _, ok := es2.Expr.(ast.Set); !ok {
		t.Errorf("second assignment = %T, want ast.Set", es2.Expr)
	}
}

func TestInvalidAssignmentTargetReportsErrorAndContinues(t *testing.T) {
	_, reporter := parseSource(t, `1 = 2; print "after";`)
	if !reporter.HadError() {
		t.Fatal("expected a parse error for an invalid assignment target")
	}
}

func TestPanicModeRecoversAtNextStatement(t *testing.T) {
	stmts, reporter := parseSource(t, `
		var a = ;
		var b = 2;
	`)
	if !reporter.HadError() {
		t.Fatal("expected a parse error from the missing initializer expression")
	}
	// synchronize() should discard the broken declaration and resume cleanly
	// at "var b = 2;" — no nil entries should ever reach the statement slice.
	for i, s := range stmts {
		if s == nil {
			t.Fatalf("statement %d is nil; declarationOrNil must filter failed declarations", i)
		}
	}
	found := false
	for _, s := range stmts {
		if v, ok := s.(ast.VarStmt); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected recovery to reach the var b declaration")
	}
}

func TestMaxParameterCountReportsErrorPastLimit(t *testing.T) {
	var params string
	for i := 0; i < 256; i++ {
		if i > 0 {
			params += ", "
		}
		params += "p"
	}
	_, reporter := parseSource(t, "fun f("+params+") {}")
	if !reporter.HadError() {
		t.Fatal("expected a parse error exceeding the 255-parameter limit")
	}
}

func TestMaxArgumentCountReportsErrorPastLimit(t *testing.T) {
	var args string
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	_, reporter := parseSource(t, "f("+args+");")
	if !reporter.HadError() {
		t.Fatal("expected a parse error exceeding the 255-argument call-site limit")
	}
}

func TestClassBodyParsesSuperclassAndMethods(t *testing.T) {
	stmts, reporter := parseSource(t, `
		class Animal {
			speak() { return "..."; }
		}
		class Dog < Animal {
			speak() { return "woof"; }
			fetch(item) { return item; }
		}
	`)
	if reporter.HadError() {
		t.Fatalf("unexpected parse errors: %v", reporter.ParseErrors)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	dog := stmts[1].(ast.ClassStmt)
	if dog.Superclass == nil || dog.Superclass.Name.Lexeme != "Animal" {
		t.Fatalf("got superclass %#v, want Animal", dog.Superclass)
	}
	if len(dog.Methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(dog.Methods))
	}
}
