// Package golox wires the scanner, parser, resolver, and interpreter into
// the single entry point described in spec.md §1 and §2: source text in,
// print-sink output and an exit-code-shaped error out.
package golox

import (
	"github.com/gosuda/golox/ast"
	"github.com/gosuda/golox/interpreter"
	"github.com/gosuda/golox/loxerr"
	"github.com/gosuda/golox/parser"
	"github.com/gosuda/golox/resolver"
	"github.com/gosuda/golox/scanner"
)

// Status distinguishes the three exit codes spec.md §6 assigns a run: a
// clean pipeline (0), a static diagnostic caught before any statement
// executed (65), or a runtime error mid-execution (70).
type Status int

const (
	StatusOK         Status = 0
	StatusStaticErr  Status = 65
	StatusRuntimeErr Status = 70
)

// Run drives one full pipeline pass — scan, parse, resolve, interpret —
// over source, writing `print` output through printLine. It reports
// diagnostics through the supplied reporter and returns the exit status
// the caller should use, per spec.md §6.
func Run(source string, printLine func(string), reporter loxerr.Reporter) Status {
	stmts, ok := Parse(source, reporter)
	if !ok {
		return StatusStaticErr
	}

	locals, ok := Resolve(stmts, reporter)
	if !ok {
		return StatusStaticErr
	}

	in := interpreter.New(printLine, locals)
	if err := in.Interpret(stmts); err != nil {
		if rt, ok := err.(loxerr.RuntimeError); ok {
			reporter.ReportRuntime(rt)
		} else {
			reporter.ReportRuntime(loxerr.RuntimeError{Message: err.Error()})
		}
		return StatusRuntimeErr
	}
	return StatusOK
}

// RunWithInterpreter reuses a caller-supplied interpreter rather than
// constructing a fresh one, so callers like the REPL (spec.md §9) can
// persist global state and closures across successive submissions while
// each submission still gets its own scan/parse/resolve pass.
func RunWithInterpreter(in *interpreter.Interpreter, source string, reporter loxerr.Reporter) Status {
	stmts, ok := Parse(source, reporter)
	if !ok {
		return StatusStaticErr
	}

	locals, ok := Resolve(stmts, reporter)
	if !ok {
		return StatusStaticErr
	}
	in.SetLocals(locals)

	if err := in.Interpret(stmts); err != nil {
		if rt, ok := err.(loxerr.RuntimeError); ok {
			reporter.ReportRuntime(rt)
		} else {
			reporter.ReportRuntime(loxerr.RuntimeError{Message: err.Error()})
		}
		return StatusRuntimeErr
	}
	return StatusOK
}

// Parse runs the scan+parse stages only, for tooling that needs the AST
// without running it (the -ast debug flag, §7).
func Parse(source string, reporter loxerr.Reporter) ([]ast.Stmt, bool) {
	toks := scanner.New(source, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()

	if reporter.HadError() {
		return nil, false
	}
	return stmts, true
}

// Resolve runs the static resolution pass, returning the hop-distance
// annotations the interpreter needs per spec.md §4.3–§4.4.
func Resolve(stmts []ast.Stmt, reporter loxerr.Reporter) (map[ast.Expr]int, bool) {
	r := resolver.New(reporter)
	r.Resolve(stmts)

	if reporter.HadError() {
		return nil, false
	}
	return r.Locals(), true
}

// NewInterpreter constructs a fresh interpreter with an empty global
// environment and no resolver annotations yet bound; callers that reuse
// one interpreter across several Parse+Resolve passes (the REPL) call
// RunWithInterpreter instead of Run.
func NewInterpreter(printLine func(string)) *interpreter.Interpreter {
	return interpreter.New(printLine, nil)
}
