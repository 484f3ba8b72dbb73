package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const eof = -1

// Lexer converts a JSONPath query into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go"
// technique.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	width   int    // Width of last rune read
	errMsg  string // First lexical error message encountered
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls. On a lexical error it returns TokenIllegal and further
// calls keep returning TokenEOF; ErrMessage describes the error.
func (l *Lexer) Next() Token {
	l.skipWhitespace()

	ch := l.nextRune()
	if ch == eof {
		return l.eofToken()
	}

	switch ch {
	case '$':
		return l.newToken(TokenRoot)
	case '*':
		return l.newToken(TokenStar)
	case '[':
		return l.newToken(TokenLBracket)
	case ']':
		return l.newToken(TokenRBracket)
	case ',':
		return l.newToken(TokenComma)
	case ':':
		return l.newToken(TokenColon)
	case '.':
		if l.acceptRune('.') {
			return l.newToken(TokenDotDot)
		}
		return l.newToken(TokenDot)
	}

	// String literals (single or double quoted)
	if ch == '\'' || ch == '"' {
		l.ignore()
		return l.scanString(ch)
	}

	// Integer literals, including a leading minus
	if ch == '-' || isDigit(ch) {
		l.backup()
		return l.scanInt()
	}

	// Member-name shorthand
	if isNameStart(ch) {
		l.backup()
		return l.scanName()
	}

	return l.error(fmt.Sprintf("unrecognized character %q", ch))
}

// ErrMessage returns the first lexical error message, if any.
func (l *Lexer) ErrMessage() string {
	return l.errMsg
}

// scanString reads a string literal from the current position.
// The opening quote has already been consumed. The token value is the raw
// text between the quotes; escape decoding happens in the parser so that
// malformed escapes fail with an exact offset.
func (l *Lexer) scanString(quote rune) Token {
Loop:
	for {
		switch l.nextRune() {
		case quote:
			break Loop
		case '\\':
			// Consume escaped character
			if r := l.nextRune(); r != eof {
				break
			}
			fallthrough
		case eof:
			return l.error("unterminated string literal")
		}
	}

	l.backup()
	t := l.newToken(TokenString)
	l.acceptRune(quote)
	l.ignore()
	return t
}

// scanInt reads an integer literal from the current position.
// Format: -?(0|[1-9][0-9]*). Leading zeros are rejected, matching JSON
// number syntax.
func (l *Lexer) scanInt() Token {
	l.acceptRune('-')

	if l.acceptRune('0') {
		if l.accept(isDigit) {
			return l.error("integer has a leading zero")
		}
		return l.newToken(TokenInt)
	}

	if !l.accept(isNonZeroDigit) {
		return l.error("minus sign not followed by digits")
	}
	l.acceptAll(isDigit)

	return l.newToken(TokenInt)
}

// scanName reads a member-name shorthand from the current position.
func (l *Lexer) scanName() Token {
	for {
		ch := l.nextRune()
		if ch == eof {
			break
		}
		if !isNamePart(ch) {
			l.backup()
			break
		}
	}
	return l.newToken(TokenName)
}

// Helper methods

func (l *Lexer) eofToken() Token {
	return Token{
		Type:     TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) error(message string) Token {
	t := l.newToken(TokenIllegal)
	if l.errMsg == "" {
		l.errMsg = message
	}
	return t
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.errMsg != "" || l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
	l.width = 0
}

func (l *Lexer) ignore() {
	l.start = l.current
}

func (l *Lexer) acceptRune(r rune) bool {
	return l.accept(func(c rune) bool {
		return c == r
	})
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	accepted := false
	for l.accept(isValid) {
		accepted = true
	}
	return accepted
}

func (l *Lexer) skipWhitespace() {
	l.acceptAll(isWhitespace)
	l.ignore()
}

// Character classes

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isNonZeroDigit(ch rune) bool {
	return ch >= '1' && ch <= '9'
}

func isNameStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isNamePart(ch rune) bool {
	return ch == '_' || ch == '-' || unicode.IsLetter(ch) || isDigit(ch)
}
