// Package resolver performs the static scope-analysis pass described in
// spec.md §4.3: it annotates every variable reference with the number of
// scope hops between the reference and the scope that declares it.
package resolver

import (
	"github.com/gosuda/golox/ast"
	"github.com/gosuda/golox/loxerr"
	"github.com/gosuda/golox/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	clsNone classType = iota
	clsClass
	clsSubclass
)

// status is a name's two-state slot within a scope: declared but not yet
// defined (false) or fully defined (true).
type scope map[string]bool

// Resolver walks the AST once before evaluation, producing a map from
// reference-node identity to hop distance. Expr keys are the pointer-typed
// Variable/Assign/This/Super nodes created by the parser.
type Resolver struct {
	scopes      []scope
	locals      map[ast.Expr]int
	reporter    loxerr.Reporter
	currentFn   functionType
	currentCls  classType
}

func New(reporter loxerr.Reporter) *Resolver {
	return &Resolver{
		locals:     map[ast.Expr]int{},
		reporter:   reporter,
		currentFn:  fnNone,
		currentCls: clsNone,
	}
}

// Locals returns the hop-distance annotations produced by Resolve, keyed by
// the exact Variable/Assign/This/Super node.
func (r *Resolver) Locals() map[ast.Expr]int { return r.locals }

func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch v := s.(type) {
	case ast.ExpressionStmt:
		r.resolveExpr(v.Expr)
	case ast.PrintStmt:
		r.resolveExpr(v.Expr)
	case ast.VarStmt:
		r.declare(v.Name)
		if v.Initializer != nil {
			r.resolveExpr(v.Initializer)
		}
		r.define(v.Name)
	case ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(v.Statements)
		r.endScope()
	case ast.IfStmt:
		r.resolveExpr(v.Condition)
		r.resolveStmt(v.Then)
		if v.Else != nil {
			r.resolveStmt(v.Else)
		}
	case ast.WhileStmt:
		r.resolveExpr(v.Condition)
		r.resolveStmt(v.Body)
	case *ast.FunctionStmt:
		r.declare(v.Name)
		r.define(v.Name)
		r.resolveFunction(v, fnFunction)
	case ast.ReturnStmt:
		if r.currentFn == fnNone {
			r.reportAt(v.Keyword, "Can't return from top-level code.")
		}
		if v.Value != nil {
			if r.currentFn == fnInitializer {
				r.reportAt(v.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(v.Value)
		}
	case ast.ClassStmt:
		r.resolveClass(v)
	}
}

func (r *Resolver) resolveClass(v ast.ClassStmt) {
	enclosingCls := r.currentCls
	r.currentCls = clsClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(v.Name)
	r.define(v.Name)

	if v.Superclass != nil {
		if v.Superclass.Name.Lexeme == v.Name.Lexeme {
			r.reportAt(v.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentCls = clsSubclass
		r.resolveExpr(v.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range v.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if v.Superclass != nil {
		r.endScope()
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	defer func() { r.currentFn = enclosingFn }()

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch v := e.(type) {
	case ast.Literal:
		// nothing to resolve
	case ast.Grouping:
		r.resolveExpr(v.Inner)
	case ast.Unary:
		r.resolveExpr(v.Right)
	case ast.Binary:
		r.resolveExpr(v.Left)
		r.resolveExpr(v.Right)
	case ast.Logical:
		r.resolveExpr(v.Left)
		r.resolveExpr(v.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][v.Name.Lexeme]; ok && !defined {
				r.reportAt(v.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(v, v.Name)
	case *ast.Assign:
		r.resolveExpr(v.Value)
		r.resolveLocal(v, v.Name)
	case ast.Call:
		r.resolveExpr(v.Callee)
		for _, a := range v.Args {
			r.resolveExpr(a)
		}
	case ast.Get:
		r.resolveExpr(v.Object)
	case ast.Set:
		r.resolveExpr(v.Value)
		r.resolveExpr(v.Object)
	case *ast.This:
		if r.currentCls == clsNone {
			r.reportAt(v.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(v, v.Keyword)
	case *ast.Super:
		switch r.currentCls {
		case clsNone:
			r.reportAt(v.Keyword, "Can't use 'super' outside of a class.")
		case clsClass:
			r.reportAt(v.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(v, v.Keyword)
	}
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any scope: treated as a global lookup at runtime, no
	// annotation stored.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return // global scope permits redeclaration
	}
	cur := r.scopes[len(r.scopes)-1]
	if _, ok := cur[name.Lexeme]; ok {
		r.reportAt(name, "Already a variable with this name in this scope.")
	}
	cur[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) reportAt(tok token.Token, message string) {
	r.reporter.Report(loxerr.NewParseError(tok, message))
}
