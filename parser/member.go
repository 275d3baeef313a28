package parser

import (
	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/token"
)

// parseMemberExpression parses
//
//	MemberExpression := "new" MemberExpression Arguments
//	                  |  PrimaryExpression ( "." IdentifierName | "[" Expression "]" )*
//
// The `new` branch invokes this parser recursively, which is what allows
// arbitrarily nested `new new X()` forms; the argument list is required once
// `new` has been consumed, and each `new` wraps exactly one Call built from
// the recursively parsed target.
func (p *parser) parseMemberExpression(f flags) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok, err := p.require(0)
	if err != nil {
		return nil, err
	}

	var lhs ast.Expr
	if tok.Kind == token.New {
		p.cursor.next()
		target, err := p.parseMemberExpression(f)
		if err != nil {
			return nil, err
		}
		args, err := p.parseArguments(f)
		if err != nil {
			return nil, err
		}
		lhs = &ast.New{Call: &ast.Call{Callee: target, Arguments: args}}
	} else {
		lhs, err = p.parsePrimaryExpression(f)
		if err != nil {
			return nil, err
		}
	}

	return p.parseMemberAccessors(lhs, f)
}

// parseMemberAccessors consumes zero or more trailing `.name` and `[expr]`
// accessors, left-associatively. A single dispatch on the next token's kind
// selects the accessor form or terminates the loop; consumed tokens are
// never re-examined.
func (p *parser) parseMemberAccessors(lhs ast.Expr, f flags) (ast.Expr, error) {
	for {
		switch p.currentKind() {
		case token.Period:
			field, err := p.parseDotMember()
			if err != nil {
				return nil, err
			}
			lhs = &ast.GetConstField{Base: lhs, Field: field}
		case token.LeftBracket:
			index, err := p.parseBracketMember(f)
			if err != nil {
				return nil, err
			}
			lhs = &ast.GetField{Base: lhs, Index: index}
		default:
			return lhs, nil
		}
	}
}

// parseDotMember consumes `.` and the following IdentifierName. Keywords
// are permitted as property names after `.`.
func (p *parser) parseDotMember() (string, error) {
	p.cursor.next()
	tok, err := p.require(0)
	if err != nil {
		return "", err
	}
	if !token.ID(tok.Kind) {
		return "", p.errorUnexpectedToken("member expression", token.Identifier)
	}
	p.cursor.next()
	return tok.Literal, nil
}

// parseBracketMember consumes `[ Expression ]`. The enclosing statement's
// in-restriction does not propagate into a bracketed subexpression.
func (p *parser) parseBracketMember(f flags) (ast.Expr, error) {
	p.cursor.next()
	index, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.expect(token.RightBracket, "member expression"); err != nil {
		return nil, err
	}
	return index, nil
}

// parseLeftHandSideExpression parses a member expression followed by any
// number of call, dot and bracket suffixes, left-associatively.
func (p *parser) parseLeftHandSideExpression(f flags) (ast.Expr, error) {
	lhs, err := p.parseMemberExpression(f)
	if err != nil {
		return nil, err
	}
	for {
		switch p.currentKind() {
		case token.LeftParenthesis:
			args, err := p.parseArguments(f)
			if err != nil {
				return nil, err
			}
			lhs = &ast.Call{Callee: lhs, Arguments: args}
		case token.Period:
			field, err := p.parseDotMember()
			if err != nil {
				return nil, err
			}
			lhs = &ast.GetConstField{Base: lhs, Field: field}
		case token.LeftBracket:
			index, err := p.parseBracketMember(f)
			if err != nil {
				return nil, err
			}
			lhs = &ast.GetField{Base: lhs, Index: index}
		default:
			return lhs, nil
		}
	}
}

// parseArguments parses a parenthesized argument list, tolerating a trailing
// comma and accepting spread elements.
func (p *parser) parseArguments(f flags) ([]ast.Expr, error) {
	if _, err := p.cursor.expect(token.LeftParenthesis, "arguments"); err != nil {
		return nil, err
	}
	args := []ast.Expr{}
	for p.currentKind() != token.RightParenthesis {
		var arg ast.Expr
		var err error
		if p.currentKind() == token.Ellipsis {
			p.cursor.next()
			expr, err := p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
			if err != nil {
				return nil, err
			}
			arg = &ast.SpreadElement{Expression: expr}
		} else {
			arg, err = p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
			if err != nil {
				return nil, err
			}
		}
		args = append(args, arg)
		if p.currentKind() != token.Comma {
			break
		}
		p.cursor.next()
	}
	if _, err := p.cursor.expect(token.RightParenthesis, "arguments"); err != nil {
		return nil, err
	}
	return args, nil
}
