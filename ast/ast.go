// Package ast defines the Lox abstract syntax tree as tagged sum types:
// each expression or statement kind is its own struct implementing a
// marker method, and the interpreter/resolver switch over the concrete
// type with a type switch instead of double-dispatch visitors.
package ast

import "github.com/gosuda/golox/token"

// Expr is any expression node. The reference nodes (*Variable, *Assign,
// *This, *Super) are pointer types and thus usable as map keys, which is how
// the resolver attaches scope-depth annotations to the exact node that
// referenced a variable. Value-typed nodes such as Call are not keyed.
type Expr interface {
	isExpr()
}

type Literal struct {
	Value interface{} // nil, bool, float64, or string
}

func (Literal) isExpr() {}

type Grouping struct {
	Inner Expr
}

func (Grouping) isExpr() {}

type Unary struct {
	Op    token.Token
	Right Expr
}

func (Unary) isExpr() {}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (Binary) isExpr() {}

type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (Logical) isExpr() {}

// Variable is a reference node; its address is the resolver annotation key.
type Variable struct {
	Name token.Token
}

func (*Variable) isExpr() {}

type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) isExpr() {}

type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (Call) isExpr() {}

type Get struct {
	Object Expr
	Name   token.Token
}

func (Get) isExpr() {}

type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (Set) isExpr() {}

type This struct {
	Keyword token.Token
}

func (*This) isExpr() {}

type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Super) isExpr() {}

// Stmt is any statement node.
type Stmt interface {
	isStmt()
}

type ExpressionStmt struct {
	Expr Expr
}

func (ExpressionStmt) isStmt() {}

type PrintStmt struct {
	Expr Expr
}

func (PrintStmt) isStmt() {}

type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

func (VarStmt) isStmt() {}

type BlockStmt struct {
	Statements []Stmt
}

func (BlockStmt) isStmt() {}

type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

func (IfStmt) isStmt() {}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (WhileStmt) isStmt() {}

type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FunctionStmt) isStmt() {}

type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

func (ReturnStmt) isStmt() {}

type ClassStmt struct {
	Name       token.Token
	Superclass *Variable // nil if absent
	Methods    []*FunctionStmt
}

func (ClassStmt) isStmt() {}
