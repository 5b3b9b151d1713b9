// Package loxerr defines the diagnostic surface shared by the scanner,
// parser, resolver, and interpreter.
package loxerr

import (
	"fmt"

	"github.com/gosuda/golox/token"
)

// ParseError is a static (lexical, syntactic, or semantic) diagnostic.
type ParseError struct {
	Line    int
	Where   string
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// NewParseError builds a ParseError whose Where clause is derived from
// the offending token, per spec: " at end" for EOF, " at 'LEXEME'" otherwise.
func NewParseError(tok token.Token, message string) ParseError {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	return ParseError{Line: tok.Line, Where: where, Message: message}
}

// NewLexError builds a ParseError with no Where clause, for scanner-level
// diagnostics that have no token in hand.
func NewLexError(line int, message string) ParseError {
	return ParseError{Line: line, Where: "", Message: message}
}

// RuntimeError is a diagnostic raised while evaluating the AST.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// Reporter receives diagnostics from any pipeline stage. HadError and
// HadRuntimeError let the driver check for a prior diagnostic without
// knowing which concrete Reporter it was handed — the scan/parse/resolve-
// then-interpret pipeline refuses to invoke the evaluator once HadError is
// set, per spec.md §7; HadRuntimeError is not consulted by the pipeline.
type Reporter interface {
	Report(ParseError)
	ReportRuntime(RuntimeError)
	HadError() bool
	HadRuntimeError() bool
}

// CollectingReporter accumulates diagnostics in memory, for tests and for
// driving the compile-error/runtime-error flags.
type CollectingReporter struct {
	ParseErrors   []ParseError
	RuntimeErrors []RuntimeError
}

func NewCollectingReporter() *CollectingReporter {
	return &CollectingReporter{}
}

func (r *CollectingReporter) Report(e ParseError)        { r.ParseErrors = append(r.ParseErrors, e) }
func (r *CollectingReporter) ReportRuntime(e RuntimeError) {
	r.RuntimeErrors = append(r.RuntimeErrors, e)
}

func (r *CollectingReporter) HadError() bool        { return len(r.ParseErrors) > 0 }
func (r *CollectingReporter) HadRuntimeError() bool { return len(r.RuntimeErrors) > 0 }

// Reset clears both flags, used by the REPL between submissions.
func (r *CollectingReporter) Reset() {
	r.ParseErrors = nil
	r.RuntimeErrors = nil
}
