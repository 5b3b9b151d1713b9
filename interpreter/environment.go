package interpreter

import (
	"fmt"

	"github.com/gosuda/golox/loxerr"
	"github.com/gosuda/golox/token"
)

// Environment is a node in the singly-linked scope chain described in
// spec.md §3.5: a name-to-value map plus a parent pointer. The root
// (global) node has a nil Enclosing.
type Environment struct {
	Enclosing *Environment
	values    map[string]Value
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{Enclosing: enclosing, values: map[string]Value{}}
}

// Define binds name to value in this environment, overwriting any existing
// binding (global scope permits redeclaration; the resolver statically
// rejects local redeclaration before this ever runs).
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// getOwn looks up name in this environment only.
func (e *Environment) getOwn(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// GetGlobal resolves an unannotated reference (no resolver depth) against
// this environment treated as the global scope.
func (e *Environment) GetGlobal(name token.Token) (Value, error) {
	if v, ok := e.getOwn(name.Lexeme); ok {
		return v, nil
	}
	return nil, loxerr.RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// AssignGlobal assigns to a name already bound in this environment.
func (e *Environment) AssignGlobal(name token.Token, value Value) error {
	if _, ok := e.getOwn(name.Lexeme); ok {
		e.values[name.Lexeme] = value
		return nil
	}
	return loxerr.RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// ancestor walks exactly distance parents up the chain, per spec.md §3.5
// invariant (c): a resolver depth d must land precisely there.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name from the environment exactly distance hops up. The
// resolver guarantees presence; a defensive check still reports a runtime
// error instead of panicking if that invariant is ever violated.
func (e *Environment) GetAt(distance int, name token.Token) (Value, error) {
	env := e.ancestor(distance)
	if v, ok := env.getOwn(name.Lexeme); ok {
		return v, nil
	}
	return nil, loxerr.RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// AssignAt stores value at the slot exactly distance hops up.
func (e *Environment) AssignAt(distance int, name token.Token, value Value) {
	env := e.ancestor(distance)
	env.values[name.Lexeme] = value
}
