package scanner

import (
	"testing"

	"github.com/gosuda/golox/loxerr"
	"github.com/gosuda/golox/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []token.Kind
	}{
		{"empty", "", []token.Kind{token.EOF}},
		{"single chars", "(){},.-+;*", []token.Kind{
			token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
			token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star, token.EOF,
		}},
		{"two char ops", "!= == <= >= ! = < >", []token.Kind{
			token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
			token.Bang, token.Equal, token.Less, token.Greater, token.EOF,
		}},
		{"comment skipped", "1 // a comment\n2", []token.Kind{token.Number, token.Number, token.EOF}},
		{"keywords", "and class else false fun for if nil or print return super this true var while",
			[]token.Kind{token.And, token.Class, token.Else, token.False, token.Fun, token.For, token.If,
				token.Nil, token.Or, token.Print, token.Return, token.Super, token.This, token.True,
				token.Var, token.While, token.EOF}},
		{"identifier", "foo_bar123", []token.Kind{token.Identifier, token.EOF}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := loxerr.NewCollectingReporter()
			toks := New(tc.source, r).ScanTokens()
			got := kinds(toks)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("token %d: got %v, want %v (all got=%v)", i, got[i], tc.want[i], got)
				}
			}
		})
	}
}

func TestStringLiteral(t *testing.T) {
	r := loxerr.NewCollectingReporter()
	toks := New(`"hello world"`, r).ScanTokens()
	if r.HadError() {
		t.Fatalf("unexpected errors: %v", r.ParseErrors)
	}
	if toks[0].Kind != token.String || toks[0].Literal != "hello world" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestMultilineString(t *testing.T) {
	r := loxerr.NewCollectingReporter()
	toks := New("\"a\nb\"\n1", r).ScanTokens()
	if r.HadError() {
		t.Fatalf("unexpected errors: %v", r.ParseErrors)
	}
	// the NUMBER token should be on line 3
	for _, tk := range toks {
		if tk.Kind == token.Number && tk.Line != 3 {
			t.Fatalf("expected number on line 3, got %d", tk.Line)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	r := loxerr.NewCollectingReporter()
	New(`"abc`, r).ScanTokens()
	if !r.HadError() {
		t.Fatalf("expected error")
	}
	if r.ParseErrors[0].Message != "Unterminated string." {
		t.Fatalf("got %q", r.ParseErrors[0].Message)
	}
}

func TestNumberLiteral(t *testing.T) {
	r := loxerr.NewCollectingReporter()
	toks := New("123 1.5", r).ScanTokens()
	if toks[0].Literal.(float64) != 123 {
		t.Fatalf("got %v", toks[0].Literal)
	}
	if toks[1].Literal.(float64) != 1.5 {
		t.Fatalf("got %v", toks[1].Literal)
	}
}

func TestLeadingTrailingDotNotNumber(t *testing.T) {
	r := loxerr.NewCollectingReporter()
	toks := New("123.", r).ScanTokens()
	// "123" then "." separately: NUMBER DOT EOF
	got := kinds(toks)
	want := []token.Kind{token.Number, token.Dot, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestUnexpectedCharacterContinuesScanning(t *testing.T) {
	r := loxerr.NewCollectingReporter()
	toks := New("1 @ 2", r).ScanTokens()
	if !r.HadError() {
		t.Fatalf("expected error")
	}
	got := kinds(toks)
	want := []token.Kind{token.Number, token.Number, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
}
