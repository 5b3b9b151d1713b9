package ast

import (
	"testing"

	"github.com/gosuda/golox/token"
)

func TestPrintNestedExpression(t *testing.T) {
	// -123 * (45.67)
	expr := Binary{
		Left: Unary{
			Op:    token.New(token.Minus, "-", nil, 1),
			Right: Literal{Value: 123.0},
		},
		Op:    token.New(token.Star, "*", nil, 1),
		Right: Grouping{Inner: Literal{Value: 45.67}},
	}
	got := Print(expr)
	want := "(* (- 123) (group 45.67))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintNilLiteral(t *testing.T) {
	if got := Print(Literal{Value: nil}); got != "nil" {
		t.Errorf("got %q, want %q", got, "nil")
	}
}

func TestPrintStmtsJoinsWithNewlines(t *testing.T) {
	stmts := []Stmt{
		PrintStmt{Expr: Literal{Value: 1.0}},
		ExpressionStmt{Expr: Literal{Value: 2.0}},
	}
	got := PrintStmts(stmts)
	want := "(print 1)\n2;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
