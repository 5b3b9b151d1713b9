// Package scanner turns Lox source text into a stream of tokens.
package scanner

import (
	"strconv"

	"github.com/gosuda/golox/loxerr"
	"github.com/gosuda/golox/token"
)

// Scanner classifies source characters into tokens, matching spec.md §4.1:
// single-character dispatch over (start, current, line), maximal munch for
// identifiers and two-character operators, and no escape sequences.
type Scanner struct {
	source   string
	tokens   []token.Token
	start    int
	current  int
	line     int
	reporter loxerr.Reporter
}

func New(source string, reporter loxerr.Reporter) *Scanner {
	return &Scanner{source: source, line: 1, reporter: reporter}
}

// ScanTokens consumes the entire source and returns every token, including
// a terminating EOF.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", nil, s.line))
	return s.tokens
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen, nil)
	case ')':
		s.addToken(token.RightParen, nil)
	case '{':
		s.addToken(token.LeftBrace, nil)
	case '}':
		s.addToken(token.RightBrace, nil)
	case ',':
		s.addToken(token.Comma, nil)
	case '.':
		s.addToken(token.Dot, nil)
	case '-':
		s.addToken(token.Minus, nil)
	case '+':
		s.addToken(token.Plus, nil)
	case ';':
		s.addToken(token.Semicolon, nil)
	case '*':
		s.addToken(token.Star, nil)
	case '!':
		s.addToken(s.either('=', token.BangEqual, token.Bang), nil)
	case '=':
		s.addToken(s.either('=', token.EqualEqual, token.Equal), nil)
	case '<':
		s.addToken(s.either('=', token.LessEqual, token.Less), nil)
	case '>':
		s.addToken(s.either('=', token.GreaterEqual, token.Greater), nil)
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash, nil)
		}
	case ' ', '\r', '\t':
		// skip whitespace
	case '\n':
		s.line++
	case '"':
		s.string()
	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			s.reporter.Report(loxerr.NewLexError(s.line, "Unexpected character."))
		}
	}
}

func (s *Scanner) either(expected byte, ifMatch, otherwise token.Kind) token.Kind {
	if s.match(expected) {
		return ifMatch
	}
	return otherwise
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(kind token.Kind, literal interface{}) {
	lexeme := s.source[s.start:s.current]
	s.tokens = append(s.tokens, token.New(kind, lexeme, literal, s.line))
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.reporter.Report(loxerr.NewLexError(s.line, "Unterminated string."))
		return
	}
	s.advance() // closing quote
	value := s.source[s.start+1 : s.current-1]
	s.addToken(token.String, value)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addToken(token.Number, value)
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	if kind, ok := token.Keywords[text]; ok {
		s.addToken(kind, nil)
		return
	}
	s.addToken(token.Identifier, nil)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
