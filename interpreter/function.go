package interpreter

import (
	"github.com/gosuda/golox/ast"
	"github.com/gosuda/golox/token"
)

// thisToken is a synthetic lookup key for the "this" binding a bound
// method's closure carries at distance 0; only Lexeme is used by
// Environment.GetAt, so the other token fields are irrelevant here.
var thisToken = token.Token{Kind: token.This, Lexeme: "this"}

// Function is a user-defined function or method value. It captures the
// environment active at its declaration (the closure) independent of
// whatever environment chain is active at call time, per spec.md §3.5
// invariant (b).
type Function struct {
	decl          *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

func NewFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.decl.Params) }

func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.decl.Body, env)
	if val, ok := asReturn(err); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, thisToken)
		}
		return val, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, thisToken)
	}
	return nil, nil
}

func (f *Function) String() string { return "<fn " + f.decl.Name.Lexeme + ">" }

// Bind creates a fresh function value whose closure is a new environment,
// one level inside the method's original closure, defining "this" as the
// target instance — spec.md §4.4.7.
func (f *Function) Bind(inst *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", inst)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}
