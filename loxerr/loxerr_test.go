package loxerr

import (
	"testing"

	"github.com/gosuda/golox/token"
)

func TestNewParseErrorWhereClauseForEOF(t *testing.T) {
	eof := token.New(token.EOF, "", nil, 3)
	err := NewParseError(eof, "Expect expression.")
	want := "[line 3] Error at end: Expect expression."
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestNewParseErrorWhereClauseForToken(t *testing.T) {
	tok := token.New(token.Identifier, "foo", nil, 5)
	err := NewParseError(tok, "Expect ';' after value.")
	want := "[line 5] Error at 'foo': Expect ';' after value."
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestCollectingReporterResetClearsBothFlags(t *testing.T) {
	r := NewCollectingReporter()
	r.Report(NewLexError(1, "Unexpected character."))
	r.ReportRuntime(RuntimeError{Message: "boom"})
	if !r.HadError() || !r.HadRuntimeError() {
		t.Fatal("expected both flags set after reporting")
	}
	r.Reset()
	if r.HadError() || r.HadRuntimeError() {
		t.Fatal("expected both flags cleared after Reset")
	}
}
