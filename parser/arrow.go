package parser

import (
	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/token"
)

// parseArrowFunction parses
//
//	ArrowFunction := BindingIdentifier "=>" ConciseBody
//	               |  "(" FormalParameters ")" "=>" ConciseBody
//
// The caller has already decided, via the cover-grammar lookahead in
// parseAssignmentExpression, that an arrow function starts here; this parser
// commits to that interpretation without backtracking. Formal parameters are
// parsed under the enclosing scope's yield/await sensitivity, while the body
// only receives the allow-in context. For async arrows the caller has
// consumed the `async` token and the parameters and body are await-aware.
func (p *parser) parseArrowFunction(f flags, async bool) (*ast.ArrowFunctionDecl, error) {
	tok, err := p.require(0)
	if err != nil {
		return nil, err
	}

	paramFlags := flags{yield: f.yield, await: f.await}
	if async {
		paramFlags.await = true
	}

	var params []ast.FormalParameter
	if tok.Kind == token.LeftParenthesis {
		p.cursor.next()
		params, err = p.parseFormalParameters(paramFlags)
		if err != nil {
			return nil, err
		}
		if _, err := p.cursor.expect(token.RightParenthesis, "arrow function"); err != nil {
			return nil, err
		}
	} else {
		id, err := p.parseBindingIdentifier(paramFlags)
		if err != nil {
			return nil, err
		}
		params = []ast.FormalParameter{{Name: id}}
	}

	// The `=>` must appear on the same line as the end of the parameter
	// list; this is a restricted production, not statement-level ASI.
	if _, err := p.cursor.peekNoLineTerminator(0, "arrow function"); err != nil {
		return nil, err
	}
	if _, err := p.cursor.expect(token.Arrow, "arrow function"); err != nil {
		return nil, err
	}

	body, err := p.parseConciseBody(flags{in: f.in}, async)
	if err != nil {
		return nil, err
	}
	return &ast.ArrowFunctionDecl{Params: params, Body: body, Async: async}, nil
}

// parseConciseBody parses the arrow body. A braced body is a plain function
// body; yield/await legality is not inherited from the surrounding scope. An
// expression body is normalized into a single synthesized return statement,
// so every arrow function body is a StatementList.
func (p *parser) parseConciseBody(f flags, async bool) (ast.StatementList, error) {
	tok, err := p.require(0)
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.LeftBrace {
		p.cursor.next()
		body, err := p.parseFunctionBody(flags{in: true, await: async})
		if err != nil {
			return nil, err
		}
		if _, err := p.cursor.expect(token.RightBrace, "arrow function"); err != nil {
			return nil, err
		}
		return body, nil
	}

	expr, err := p.parseExpressionBody(flags{in: f.in, await: async})
	if err != nil {
		return nil, err
	}
	return ast.StatementList{&ast.ReturnStatement{Argument: expr}}, nil
}

// parseExpressionBody parses one assignment expression under the given
// allow-in and allow-await context; yield is never legal here.
func (p *parser) parseExpressionBody(f flags) (ast.Expr, error) {
	return p.parseAssignmentExpression(flags{in: f.in, await: f.await})
}

// parseFormalParameters parses a comma-separated parameter list up to, but
// not including, the closing parenthesis. Defaults are parsed under the
// caller's yield/await context; a rest parameter must come last.
func (p *parser) parseFormalParameters(f flags) ([]ast.FormalParameter, error) {
	params := []ast.FormalParameter{}
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			p.cursor.next()
			id, err := p.parseBindingIdentifier(f)
			if err != nil {
				return nil, err
			}
			params = append(params, ast.FormalParameter{Name: id, Rest: true})
			if p.currentKind() != token.RightParenthesis {
				return nil, p.errorUnexpectedToken("rest parameter", token.RightParenthesis)
			}
			break
		}

		id, err := p.parseBindingIdentifier(f)
		if err != nil {
			return nil, err
		}
		param := ast.FormalParameter{Name: id}
		if p.currentKind() == token.Assign {
			p.cursor.next()
			param.Default, err = p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
			if err != nil {
				return nil, err
			}
		}
		params = append(params, param)

		if p.currentKind() != token.RightParenthesis {
			if _, err := p.cursor.expect(token.Comma, "formal parameters"); err != nil {
				return nil, err
			}
		}
	}
	return params, nil
}

// parseBindingIdentifier parses a single identifier binding, honoring the
// contextual legality of `yield` and `await`.
func (p *parser) parseBindingIdentifier(f flags) (*ast.Identifier, error) {
	tok, err := p.require(0)
	if err != nil {
		return nil, err
	}
	if !p.isBindingID(tok.Kind, f) {
		return nil, p.errorUnexpectedToken("binding identifier", token.Identifier)
	}
	p.cursor.next()
	return &ast.Identifier{Name: tok.Literal}, nil
}
