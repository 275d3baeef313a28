package parser

import (
	"github.com/apawn/boa/token"
)

// cursor provides buffered lookahead over the lexer's token stream. peek
// never fails; end of input is represented by Eof tokens, which the cursor
// hands out indefinitely.
type cursor struct {
	lex *lexer
	buf []lexToken
}

func newCursor(src string) *cursor {
	return &cursor{lex: newLexer(src)}
}

func (c *cursor) fill(n int) {
	for len(c.buf) <= n {
		c.buf = append(c.buf, c.lex.next())
	}
}

// peek returns the token offset positions ahead without consuming anything.
func (c *cursor) peek(offset int) lexToken {
	c.fill(offset)
	return c.buf[offset]
}

// next consumes and returns the next token.
func (c *cursor) next() lexToken {
	c.fill(0)
	tok := c.buf[0]
	c.buf = c.buf[1:]
	return tok
}

// expect consumes the next token if it is of the expected kind; otherwise it
// reports AbruptEnd at end of input and UnexpectedToken for a mismatch.
func (c *cursor) expect(expected token.Token, context string) (lexToken, error) {
	tok := c.peek(0)
	if tok.Kind == token.Eof {
		return tok, &Error{Kind: AbruptEnd, Found: token.Eof, Line: tok.Line, Offset: tok.Offset}
	}
	if tok.Kind != expected {
		return tok, &Error{
			Kind:     UnexpectedToken,
			Expected: []token.Token{expected},
			Found:    tok.Kind,
			Literal:  tok.Literal,
			Context:  context,
			Line:     tok.Line,
			Offset:   tok.Offset,
		}
	}
	return c.next(), nil
}

// peekNoLineTerminator returns the token offset positions ahead, failing
// with RestrictedProduction when a line terminator precedes it and with
// AbruptEnd at end of input.
func (c *cursor) peekNoLineTerminator(offset int, context string) (lexToken, error) {
	tok := c.peek(offset)
	if tok.Kind == token.Eof {
		return tok, &Error{Kind: AbruptEnd, Found: token.Eof, Line: tok.Line, Offset: tok.Offset}
	}
	if tok.OnNewLine {
		return tok, &Error{Kind: RestrictedProduction, Context: context, Line: tok.Line, Offset: tok.Offset}
	}
	return tok, nil
}
