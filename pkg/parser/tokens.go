package parser

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Structural symbols
	TokenRoot     // $
	TokenDot      // .
	TokenDotDot   // ..
	TokenStar     // *
	TokenLBracket // [
	TokenRBracket // ]
	TokenComma    // ,
	TokenColon    // :

	// Literals
	TokenString // 'name' or "name"
	TokenInt    // 42, -1
	TokenName   // member-name shorthand
)

// String returns the canonical uppercase name of the token type, as used
// in diagnostics.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenRoot:
		return "ROOT"
	case TokenDot:
		return "DOT"
	case TokenDotDot:
		return "DOTDOT"
	case TokenStar:
		return "STAR"
	case TokenLBracket:
		return "LBRACKET"
	case TokenRBracket:
		return "RBRACKET"
	case TokenComma:
		return "COMMA"
	case TokenColon:
		return "COLON"
	case TokenString:
		return "STRING"
	case TokenInt:
		return "INT"
	case TokenName:
		return "NAME"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical token with its zero-based byte offset into the
// input. For TokenString the value is the raw text between the quotes,
// escape sequences intact; for all other types it is the matched text.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// String renders the token for diagnostics, e.g. INT '4'.
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s '%s'", t.Type, t.Value)
}
