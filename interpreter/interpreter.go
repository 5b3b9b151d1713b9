// Package interpreter walks the resolved AST and evaluates it directly
// against an in-memory environment chain, per spec.md §4.4.
package interpreter

import (
	"fmt"

	"github.com/gosuda/golox/ast"
	"github.com/gosuda/golox/loxerr"
	"github.com/gosuda/golox/token"
)

// PrintSink receives one formatted line per `print` statement (spec.md §1).
type PrintSink func(string)

// Interpreter holds the current environment pointer, the global
// environment, and the resolver's hop-distance annotations, per spec.md
// §4.4. It is strictly single-threaded and synchronous (spec.md §5).
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int
	print   PrintSink
}

// New constructs an interpreter with the global `clock` native bound, per
// spec.md §1. clock defaults to wall-clock time; tests may override it via
// SetClock before running anything.
func New(print PrintSink, locals map[ast.Expr]int) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{globals: globals, env: globals, locals: locals, print: print}
	globals.Define("clock", &clockFn{source: DefaultClock})
	return in
}

// SetClock overrides the native clock's time source, for deterministic tests.
func (in *Interpreter) SetClock(source func() float64) {
	in.globals.Define("clock", &clockFn{source: source})
}

// SetLocals adds a new set of resolver hop-distance annotations to the ones
// already in use. The REPL (spec.md §9) resolves each submitted line
// independently against the persistent global environment, so it calls this
// before every Interpret; annotations from earlier lines are kept so that
// closures declared on those lines still resolve their locals.
func (in *Interpreter) SetLocals(locals map[ast.Expr]int) {
	if in.locals == nil {
		in.locals = map[ast.Expr]int{}
	}
	for node, depth := range locals {
		in.locals[node] = depth
	}
}

// Interpret evaluates a full statement sequence. A runtime error aborts the
// run at the point of detection and is returned to the caller; the REPL
// resets between submissions by constructing interpretation per-line against
// a persisted *Interpreter (only the compile-error flag is line-scoped).
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			if rt, ok := err.(loxerr.RuntimeError); ok {
				return rt
			}
			if _, ok := asReturn(err); ok {
				return loxerr.RuntimeError{Message: "Can't return from top-level code."}
			}
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(s ast.Stmt) error {
	switch v := s.(type) {
	case ast.ExpressionStmt:
		_, err := in.evaluate(v.Expr)
		return err
	case ast.PrintStmt:
		val, err := in.evaluate(v.Expr)
		if err != nil {
			return err
		}
		in.print(Stringify(val))
		return nil
	case ast.VarStmt:
		var value Value
		if v.Initializer != nil {
			var err error
			value, err = in.evaluate(v.Initializer)
			if err != nil {
				return err
			}
		}
		in.env.Define(v.Name.Lexeme, value)
		return nil
	case ast.BlockStmt:
		return in.executeBlock(v.Statements, NewEnvironment(in.env))
	case ast.IfStmt:
		cond, err := in.evaluate(v.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return in.execute(v.Then)
		}
		if v.Else != nil {
			return in.execute(v.Else)
		}
		return nil
	case ast.WhileStmt:
		for {
			cond, err := in.evaluate(v.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := in.execute(v.Body); err != nil {
				return err
			}
		}
	case *ast.FunctionStmt:
		fn := NewFunction(v, in.env, false)
		in.env.Define(v.Name.Lexeme, fn)
		return nil
	case ast.ReturnStmt:
		var value Value
		if v.Value != nil {
			var err error
			value, err = in.evaluate(v.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: value}
	case ast.ClassStmt:
		return in.executeClass(v)
	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", s)
	}
}

// executeBlock implements spec.md §4.4.3's Block semantics: a child
// environment is active for the statement sequence, and the previous
// environment is restored on every exit path, including an unwind.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClass(v ast.ClassStmt) error {
	var superclass *Class
	if v.Superclass != nil {
		sup, err := in.evaluate(v.Superclass)
		if err != nil {
			return err
		}
		cls, ok := sup.(*Class)
		if !ok {
			return loxerr.RuntimeError{Token: v.Superclass.Name, Message: "Superclass must be a class."}
		}
		superclass = cls
	}

	in.env.Define(v.Name.Lexeme, nil)

	envForMethods := in.env
	if superclass != nil {
		envForMethods = NewEnvironment(in.env)
		envForMethods.Define("super", superclass)
	}

	methods := map[string]*Function{}
	for _, m := range v.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, envForMethods, m.Name.Lexeme == "init")
	}

	class := NewClass(v.Name.Lexeme, superclass, methods)
	return in.env.AssignGlobal(v.Name, class)
}

func (in *Interpreter) evaluate(e ast.Expr) (Value, error) {
	switch v := e.(type) {
	case ast.Literal:
		return v.Value, nil
	case ast.Grouping:
		return in.evaluate(v.Inner)
	case ast.Unary:
		return in.evalUnary(v)
	case ast.Binary:
		return in.evalBinary(v)
	case ast.Logical:
		return in.evalLogical(v)
	case *ast.Variable:
		return in.lookupVariable(v.Name, v)
	case *ast.Assign:
		return in.evalAssign(v)
	case ast.Call:
		return in.evalCall(v)
	case ast.Get:
		return in.evalGet(v)
	case ast.Set:
		return in.evalSet(v)
	case *ast.This:
		return in.lookupVariable(v.Keyword, v)
	case *ast.Super:
		return in.evalSuper(v)
	default:
		return nil, fmt.Errorf("interpreter: unhandled expression type %T", e)
	}
}

func (in *Interpreter) lookupVariable(name token.Token, node ast.Expr) (Value, error) {
	if distance, ok := in.locals[node]; ok {
		return in.env.GetAt(distance, name)
	}
	return in.globals.GetGlobal(name)
}

func (in *Interpreter) evalAssign(v *ast.Assign) (Value, error) {
	value, err := in.evaluate(v.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[v]; ok {
		in.env.AssignAt(distance, v.Name, value)
		return value, nil
	}
	if err := in.globals.AssignGlobal(v.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) evalUnary(v ast.Unary) (Value, error) {
	right, err := in.evaluate(v.Right)
	if err != nil {
		return nil, err
	}
	switch v.Op.Kind {
	case token.Minus:
		n, err := checkNumber(v.Op, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case token.Bang:
		return !IsTruthy(right), nil
	}
	return nil, fmt.Errorf("interpreter: unknown unary operator %s", v.Op.Lexeme)
}

func (in *Interpreter) evalLogical(v ast.Logical) (Value, error) {
	left, err := in.evaluate(v.Left)
	if err != nil {
		return nil, err
	}
	if v.Op.Kind == token.Or {
		if IsTruthy(left) {
			return left, nil
		}
		return in.evaluate(v.Right)
	}
	// and
	if !IsTruthy(left) {
		return left, nil
	}
	return in.evaluate(v.Right)
}

func (in *Interpreter) evalBinary(v ast.Binary) (Value, error) {
	left, err := in.evaluate(v.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(v.Right)
	if err != nil {
		return nil, err
	}

	switch v.Op.Kind {
	case token.Minus:
		l, r, err := checkNumbers(v.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.Slash:
		l, r, err := checkNumbers(v.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case token.Star:
		l, r, err := checkNumbers(v.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.Plus:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.RuntimeError{Token: v.Op, Message: "Operands must be two numbers or two strings."}
	case token.Greater:
		l, r, err := checkNumbers(v.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case token.GreaterEqual:
		l, r, err := checkNumbers(v.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case token.Less:
		l, r, err := checkNumbers(v.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case token.LessEqual:
		l, r, err := checkNumbers(v.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case token.BangEqual:
		return !IsEqual(left, right), nil
	case token.EqualEqual:
		return IsEqual(left, right), nil
	}
	return nil, fmt.Errorf("interpreter: unknown binary operator %s", v.Op.Lexeme)
}

func checkNumber(op token.Token, v Value) (float64, error) {
	if n, ok := v.(float64); ok {
		return n, nil
	}
	return 0, loxerr.RuntimeError{Token: op, Message: "Operand must be a number."}
}

func checkNumbers(op token.Token, a, b Value) (float64, float64, error) {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if !aok || !bok {
		return 0, 0, loxerr.RuntimeError{Token: op, Message: "Operands must be numbers."}
	}
	return af, bf, nil
}

func (in *Interpreter) evalCall(v ast.Call) (Value, error) {
	callee, err := in.evaluate(v.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(v.Args))
	for i, a := range v.Args {
		val, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, loxerr.RuntimeError{Token: v.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != callable.Arity() {
		return nil, loxerr.RuntimeError{
			Token:   v.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)),
		}
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(v ast.Get) (Value, error) {
	obj, err := in.evaluate(v.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, loxerr.RuntimeError{Token: v.Name, Message: "Only instances have properties."}
	}
	if val, ok := inst.Get(v.Name.Lexeme); ok {
		return val, nil
	}
	return nil, loxerr.RuntimeError{Token: v.Name, Message: "Undefined property '" + v.Name.Lexeme + "'."}
}

func (in *Interpreter) evalSet(v ast.Set) (Value, error) {
	obj, err := in.evaluate(v.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, loxerr.RuntimeError{Token: v.Name, Message: "Only instances have fields."}
	}
	value, err := in.evaluate(v.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(v.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) evalSuper(v *ast.Super) (Value, error) {
	distance := in.locals[v]
	superVal, err := in.env.GetAt(distance, v.Keyword)
	if err != nil {
		return nil, err
	}
	superclass := superVal.(*Class)

	// "this" sits exactly one scope inside the "super" scope, per spec.md §4.4.6.
	thisVal, err := in.env.GetAt(distance-1, thisToken)
	if err != nil {
		return nil, err
	}
	inst := thisVal.(*Instance)

	method := superclass.FindMethod(v.Method.Lexeme)
	if method == nil {
		return nil, loxerr.RuntimeError{Token: v.Method, Message: "Undefined property '" + v.Method.Lexeme + "'."}
	}
	return method.Bind(inst), nil
}
