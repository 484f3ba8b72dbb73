package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/querylabs/gojsonpath/pkg/ast"
	"github.com/querylabs/gojsonpath/pkg/result"
)

// maxSafeInt is the I-JSON interoperability bound (2^53 - 1). Indexes and
// slice bounds beyond it are syntactically valid integers but semantically
// unusable, so they are rejected through FilterOrElse rather than by the
// tokenizer.
const maxSafeInt = int64(1)<<53 - 1

type parser struct {
	lexer   *Lexer
	input   string
	current Token
	opts    Options
}

func newParser(input string, opts Options) *parser {
	p := &parser{
		lexer: NewLexer(input),
		input: input,
		opts:  opts,
	}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.current = p.lexer.Next()
}

// unexpected reports the current token against the expected alternatives,
// or surfaces the pending lexical error when the current token is ILLEGAL.
func unexpected[T any](p *parser, expected ...TokenType) result.Result[T] {
	if p.current.Type == TokenIllegal {
		return result.Failure[T](p.lexer.ErrMessage(), p.current.Position, p.input)
	}
	return UnexpectedToken[T](p.input, p.current, expected...)
}

// parsePath is the start production: an optional root identifier (or a
// bare leading member name in lenient mode) followed by any number of
// segments.
func (p *parser) parsePath() result.Result[*ast.Path] {
	var segments []ast.Segment

	switch {
	case p.current.Type == TokenRoot:
		p.advance()
	case p.opts.StrictRoot:
		return unexpected[*ast.Path](p, TokenRoot)
	case p.current.Type == TokenName:
		segments = append(segments, ast.Segment{
			Selectors: []ast.Selector{{Kind: ast.SelectorName, Name: p.current.Value}},
		})
		p.advance()
	default:
		return unexpected[*ast.Path](p, TokenRoot, TokenName)
	}

	collected := result.TailRec(segments, p.stepSegment)
	return result.Map(collected, func(segs []ast.Segment) *ast.Path {
		return &ast.Path{Segments: segs, Input: p.input}
	})
}

// stepSegment is one iteration of the segment loop: done at end of input,
// otherwise parse one segment and continue. The loop runs through TailRec
// so that arbitrarily long segment chains parse in constant stack space.
func (p *parser) stepSegment(acc []ast.Segment) result.Result[result.Step[[]ast.Segment, []ast.Segment]] {
	if p.current.Type == TokenEOF {
		return result.Success(result.Done[[]ast.Segment](acc))
	}
	return result.Map(p.parseSegment(), func(seg ast.Segment) result.Step[[]ast.Segment, []ast.Segment] {
		return result.Continue[[]ast.Segment, []ast.Segment](append(acc, seg))
	})
}

func (p *parser) parseSegment() result.Result[ast.Segment] {
	switch p.current.Type {
	case TokenDot:
		p.advance()
		return p.parseShorthand(false)
	case TokenDotDot:
		p.advance()
		if p.current.Type == TokenLBracket {
			return result.Map(p.parseBracket(), func(sels []ast.Selector) ast.Segment {
				return ast.Segment{Descendant: true, Selectors: sels}
			})
		}
		return p.parseShorthand(true)
	case TokenLBracket:
		return result.Map(p.parseBracket(), func(sels []ast.Selector) ast.Segment {
			return ast.Segment{Selectors: sels}
		})
	default:
		return unexpected[ast.Segment](p, TokenDot, TokenDotDot, TokenLBracket)
	}
}

// parseShorthand parses the member form after a dot or a descendant
// prefix: a bare name or the * wildcard.
func (p *parser) parseShorthand(descendant bool) result.Result[ast.Segment] {
	switch p.current.Type {
	case TokenName:
		seg := ast.Segment{
			Descendant: descendant,
			Selectors:  []ast.Selector{{Kind: ast.SelectorName, Name: p.current.Value}},
		}
		p.advance()
		return result.Success(seg)
	case TokenStar:
		p.advance()
		return result.Success(ast.Segment{
			Descendant: descendant,
			Selectors:  []ast.Selector{{Kind: ast.SelectorWildcard}},
		})
	default:
		return unexpected[ast.Segment](p, TokenName, TokenStar)
	}
}

// parseBracket consumes a bracketed selector list. The comma-separated
// spans are collected first and then parsed through Traverse, so the list
// fails with the first failing selector's diagnostic and later selectors
// are never examined.
func (p *parser) parseBracket() result.Result[[]ast.Selector] {
	return result.Bind(p.expect(TokenLBracket), func(Token) result.Result[[]ast.Selector] {
		return result.Bind(p.selectorSpans(), func(spans [][]Token) result.Result[[]ast.Selector] {
			return result.Traverse(spans, p.parseSelector)
		})
	})
}

func (p *parser) expect(tt TokenType) result.Result[Token] {
	if p.current.Type != tt {
		return unexpected[Token](p, tt)
	}
	tok := p.current
	p.advance()
	return result.Success(tok)
}

// selectorSpans splits the bracket body into comma-separated token spans,
// consuming through the closing bracket.
func (p *parser) selectorSpans() result.Result[[][]Token] {
	var spans [][]Token
	var span []Token
	for {
		switch p.current.Type {
		case TokenRBracket:
			if len(span) == 0 {
				return unexpected[[][]Token](p, TokenString, TokenInt, TokenStar, TokenColon)
			}
			p.advance()
			return result.Success(append(spans, span))
		case TokenComma:
			if len(span) == 0 {
				return unexpected[[][]Token](p, TokenString, TokenInt, TokenStar, TokenColon)
			}
			spans = append(spans, span)
			span = nil
			p.advance()
		case TokenEOF, TokenIllegal:
			if len(span) == 0 {
				return unexpected[[][]Token](p, TokenString, TokenInt, TokenStar, TokenColon)
			}
			return unexpected[[][]Token](p, TokenRBracket, TokenComma)
		default:
			span = append(span, p.current)
			p.advance()
		}
	}
}

func (p *parser) parseSelector(span []Token) result.Result[ast.Selector] {
	first := span[0]
	switch first.Type {
	case TokenStar:
		if len(span) > 1 {
			return UnexpectedToken[ast.Selector](p.input, span[1], TokenRBracket, TokenComma)
		}
		return result.Success(ast.Selector{Kind: ast.SelectorWildcard})
	case TokenString:
		if len(span) > 1 {
			return UnexpectedToken[ast.Selector](p.input, span[1], TokenRBracket, TokenComma)
		}
		return result.Map(p.decodeString(first), func(name string) ast.Selector {
			return ast.Selector{Kind: ast.SelectorName, Name: name}
		})
	case TokenInt:
		if len(span) == 1 {
			return result.Map(p.parseIndex(first), func(n int64) ast.Selector {
				return ast.Selector{Kind: ast.SelectorIndex, Index: n}
			})
		}
		return p.parseSlice(span)
	case TokenColon:
		return p.parseSlice(span)
	default:
		return UnexpectedToken[ast.Selector](p.input, first, TokenString, TokenInt, TokenStar, TokenColon)
	}
}

// parseIndex converts an INT token, rejecting values outside the safe
// integer range as semantically invalid.
func (p *parser) parseIndex(tok Token) result.Result[int64] {
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return result.Failure[int64](fmt.Sprintf("integer selector %s overflows", tok.Value), tok.Position, p.input)
	}
	return result.Success(n).FilterOrElse(
		func(v int64) bool { return v >= -maxSafeInt && v <= maxSafeInt },
		func() result.Result[int64] {
			return result.Failure[int64](
				fmt.Sprintf("integer selector %s exceeds the interoperable range", tok.Value),
				tok.Position, p.input)
		})
}

// parseSlice parses [start]:[end][:[step]] from a selector span. The
// bound and colon steps sequence through Bind so the first invalid bound
// stops the whole selector.
func (p *parser) parseSlice(span []Token) result.Result[ast.Selector] {
	c := &spanCursor{p: p, span: span}
	return result.Bind(c.optionalInt(), func(start *int64) result.Result[ast.Selector] {
		return result.Bind(c.expectColon(), func(Token) result.Result[ast.Selector] {
			return result.Bind(c.optionalInt(), func(end *int64) result.Result[ast.Selector] {
				return result.Bind(c.optionalColonInt(), func(step *int64) result.Result[ast.Selector] {
					return result.Bind(c.expectEnd(), func(struct{}) result.Result[ast.Selector] {
						sel := ast.Selector{Kind: ast.SelectorSlice, Start: start, End: end, Step: step}
						return result.Success(sel).FilterOrElse(
							func(s ast.Selector) bool { return s.Step == nil || *s.Step != 0 },
							func() result.Result[ast.Selector] {
								return result.Failure[ast.Selector]("slice step must not be zero", c.lastInt.Position, p.input)
							})
					})
				})
			})
		})
	})
}

// spanCursor walks one selector span during slice parsing.
type spanCursor struct {
	p       *parser
	span    []Token
	i       int
	lastInt Token
}

func (c *spanCursor) optionalInt() result.Result[*int64] {
	if c.i >= len(c.span) || c.span[c.i].Type != TokenInt {
		return result.Success[*int64](nil)
	}
	tok := c.span[c.i]
	c.i++
	c.lastInt = tok
	return result.Map(c.p.parseIndex(tok), func(n int64) *int64 {
		v := n
		return &v
	})
}

func (c *spanCursor) expectColon() result.Result[Token] {
	if c.i < len(c.span) && c.span[c.i].Type == TokenColon {
		tok := c.span[c.i]
		c.i++
		return result.Success(tok)
	}
	return UnexpectedToken[Token](c.p.input, c.observed(), TokenColon)
}

func (c *spanCursor) optionalColonInt() result.Result[*int64] {
	if c.i >= len(c.span) {
		return result.Success[*int64](nil)
	}
	if c.span[c.i].Type != TokenColon {
		return UnexpectedToken[*int64](c.p.input, c.span[c.i], TokenColon)
	}
	c.i++
	return c.optionalInt()
}

func (c *spanCursor) expectEnd() result.Result[struct{}] {
	if c.i >= len(c.span) {
		return result.Success(struct{}{})
	}
	return UnexpectedToken[struct{}](c.p.input, c.span[c.i], TokenRBracket, TokenComma)
}

func (c *spanCursor) observed() Token {
	if c.i < len(c.span) {
		return c.span[c.i]
	}
	last := c.span[len(c.span)-1]
	return Token{Type: TokenEOF, Position: last.Position + len(last.Value)}
}

// decodeString decodes the escape sequences of a STRING token into the
// member name it denotes. Malformed escapes fail at their exact offset.
func (p *parser) decodeString(tok Token) result.Result[string] {
	raw := tok.Value
	if !strings.ContainsRune(raw, '\\') {
		return result.Success(raw)
	}

	var b strings.Builder
	for i := 0; i < len(raw); {
		ch := raw[i]
		if ch != '\\' {
			b.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return result.Failure[string]("truncated escape sequence", tok.Position+i, p.input)
		}
		switch esc := raw[i+1]; esc {
		case '\'', '"', '\\', '/':
			b.WriteByte(esc)
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r, size, ok := decodeUnicodeEscape(raw[i:])
			if !ok {
				return result.Failure[string]("invalid unicode escape", tok.Position+i, p.input)
			}
			b.WriteRune(r)
			i += size
		default:
			return result.Failure[string](fmt.Sprintf("invalid escape sequence '\\%c'", esc), tok.Position+i, p.input)
		}
	}
	return result.Success(b.String())
}

// decodeUnicodeEscape decodes a \uXXXX sequence at the start of s,
// combining UTF-16 surrogate pairs when both halves are present. An
// unpaired surrogate decodes to the replacement character.
func decodeUnicodeEscape(s string) (rune, int, bool) {
	if len(s) < 6 {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 6, true
	}
	if len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
		v2, err := strconv.ParseUint(s[8:12], 16, 32)
		if err == nil {
			if combined := utf16.DecodeRune(r, rune(v2)); combined != utf8.RuneError {
				return combined, 12, true
			}
		}
	}
	return utf8.RuneError, 6, true
}
