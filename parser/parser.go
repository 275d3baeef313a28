// Package parser implements a recursive-descent parser for JavaScript
// expression and statement syntax, producing trees of ast nodes. Parsing is
// single-threaded and fail-fast: the first grammar violation aborts the
// enclosing parse and surfaces as a structured *Error.
package parser

import (
	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/token"
)

// maxParseDepth bounds grammar recursion. Nesting depth is input-controlled
// (e.g. `new new new ...`), so exceeding the bound is reported as
// RecursionLimitExceeded instead of overflowing the stack.
const maxParseDepth = 512

// flags carries the contextual grammar parameters: whether the `in`
// operator, `yield` and `await` are legal at the current position. A flags
// value is never mutated; each grammar layer derives a narrowed copy for its
// children.
type flags struct {
	in    bool
	yield bool
	await bool
}

// parser ...
type parser struct {
	cursor *cursor

	depth int

	inFunction  bool
	inIteration bool
}

func newParser(src string) *parser {
	return &parser{cursor: newCursor(src)}
}

// ParseFile parses the source code of a single JavaScript source file and
// returns the corresponding ast.Program node.
func ParseFile(src string) (*ast.Program, error) {
	p := newParser(src)
	body, err := p.parseStatementList(flags{in: true}, token.Eof)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Body: body}, nil
}

// ParseExpression parses src as a single expression and requires the whole
// input to be consumed.
func ParseExpression(src string) (ast.Expr, error) {
	p := newParser(src)
	expr, err := p.parseExpression(flags{in: true})
	if err != nil {
		return nil, err
	}
	if kind := p.currentKind(); kind != token.Eof {
		return nil, p.errorUnexpectedToken("expression")
	}
	return expr, nil
}

func (p *parser) currentKind() token.Token {
	return p.cursor.peek(0).Kind
}

// require returns the token offset positions ahead, failing with AbruptEnd
// when the stream is exhausted there.
func (p *parser) require(offset int) (lexToken, error) {
	tok := p.cursor.peek(offset)
	if tok.Kind == token.Eof {
		return tok, p.errorAbruptEnd()
	}
	return tok, nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxParseDepth {
		return p.errorRecursionLimit()
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) canInsertSemicolon() bool {
	tok := p.cursor.peek(0)
	return tok.Kind == token.Semicolon || tok.Kind == token.RightBrace || tok.Kind == token.Eof || tok.OnNewLine
}

// semicolon performs automatic semicolon insertion at a statement boundary.
func (p *parser) semicolon(context string) error {
	if !p.canInsertSemicolon() {
		return p.errorUnexpectedToken(context, token.Semicolon)
	}
	if p.currentKind() == token.Semicolon {
		p.cursor.next()
	}
	return nil
}

// isBindingID reports whether the token kind may serve as a binding
// identifier under f. `yield` and `await` are identifiers exactly when the
// corresponding context flag is off.
func (p *parser) isBindingID(kind token.Token, f flags) bool {
	if kind == token.Identifier {
		return true
	}
	if kind == token.Await {
		return !f.await
	}
	if kind == token.Yield {
		return !f.yield
	}
	return token.UnreservedWord(kind)
}
