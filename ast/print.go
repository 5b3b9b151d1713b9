package ast

import (
	"fmt"
	"strings"
)

// Print renders an expression as a parenthesized prefix form, e.g.
// "(+ 1 (* 2 3))". Grounded on the Java original's AstPrinter: used by
// the parser's round-trip test and by the `golox -ast` debug command.
func Print(e Expr) string {
	switch v := e.(type) {
	case Literal:
		if v.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", v.Value)
	case Grouping:
		return parenthesize("group", v.Inner)
	case Unary:
		return parenthesize(v.Op.Lexeme, v.Right)
	case Binary:
		return parenthesize(v.Op.Lexeme, v.Left, v.Right)
	case Logical:
		return parenthesize(v.Op.Lexeme, v.Left, v.Right)
	case *Variable:
		return v.Name.Lexeme
	case *Assign:
		return parenthesize("= "+v.Name.Lexeme, v.Value)
	case Call:
		args := append([]Expr{v.Callee}, v.Args...)
		return parenthesize("call", args...)
	case Get:
		return parenthesize("."+v.Name.Lexeme, v.Object)
	case Set:
		return parenthesize("set-"+v.Name.Lexeme, v.Object, v.Value)
	case *This:
		return "this"
	case *Super:
		return "(super " + v.Method.Lexeme + ")"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}

// PrintStmts renders a statement sequence, one parenthesized form per line,
// for the `golox -ast` debug command.
func PrintStmts(stmts []Stmt) string {
	var b strings.Builder
	for i, s := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(printStmt(s))
	}
	return b.String()
}

func printStmt(s Stmt) string {
	switch v := s.(type) {
	case ExpressionStmt:
		return Print(v.Expr) + ";"
	case PrintStmt:
		return parenthesize("print", v.Expr)
	case VarStmt:
		if v.Initializer == nil {
			return fmt.Sprintf("(var %s)", v.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", v.Name.Lexeme, Print(v.Initializer))
	case BlockStmt:
		var b strings.Builder
		b.WriteString("(block")
		for _, st := range v.Statements {
			b.WriteByte(' ')
			b.WriteString(printStmt(st))
		}
		b.WriteByte(')')
		return b.String()
	case IfStmt:
		if v.Else == nil {
			return fmt.Sprintf("(if %s %s)", Print(v.Condition), printStmt(v.Then))
		}
		return fmt.Sprintf("(if %s %s %s)", Print(v.Condition), printStmt(v.Then), printStmt(v.Else))
	case WhileStmt:
		return fmt.Sprintf("(while %s %s)", Print(v.Condition), printStmt(v.Body))
	case *FunctionStmt:
		return fmt.Sprintf("(fun %s)", v.Name.Lexeme)
	case ReturnStmt:
		if v.Value == nil {
			return "(return)"
		}
		return parenthesize("return", v.Value)
	case ClassStmt:
		return fmt.Sprintf("(class %s)", v.Name.Lexeme)
	default:
		return fmt.Sprintf("<%T>", s)
	}
}
