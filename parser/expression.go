package parser

import (
	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/token"
)

func (p *parser) parsePrimaryExpression(f flags) (ast.Expr, error) {
	tok, err := p.require(0)
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Identifier:
		p.cursor.next()
		return &ast.Identifier{Name: tok.Literal}, nil
	case token.Null:
		p.cursor.next()
		return &ast.NullLiteral{}, nil
	case token.Boolean:
		p.cursor.next()
		return &ast.BooleanLiteral{Value: tok.Literal == "true"}, nil
	case token.Number:
		value, convErr := parseNumberLiteral(tok.Literal)
		if convErr != nil {
			return nil, p.errorUnexpectedToken("numeric literal")
		}
		p.cursor.next()
		return &ast.NumberLiteral{Value: value, Raw: tok.Raw}, nil
	case token.String:
		p.cursor.next()
		return &ast.StringLiteral{Value: tok.Literal, Raw: tok.Raw}, nil
	case token.This:
		p.cursor.next()
		return &ast.ThisExpression{}, nil
	case token.LeftBracket:
		return p.parseArrayLiteral(f)
	case token.LeftBrace:
		return p.parseObjectLiteral(f)
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression(f)
	}

	if p.isBindingID(tok.Kind, f) {
		p.cursor.next()
		return &ast.Identifier{Name: tok.Literal}, nil
	}

	return nil, p.errorUnexpectedToken("expression")
}

func (p *parser) parseParenthesisedExpression(f flags) (ast.Expr, error) {
	if _, err := p.cursor.expect(token.LeftParenthesis, "parenthesized expression"); err != nil {
		return nil, err
	}
	if p.currentKind() == token.RightParenthesis {
		return nil, p.errorUnexpectedToken("parenthesized expression")
	}
	expr, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.expect(token.RightParenthesis, "parenthesized expression"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) parseArrayLiteral(f flags) (ast.Expr, error) {
	if _, err := p.cursor.expect(token.LeftBracket, "array literal"); err != nil {
		return nil, err
	}
	var value []ast.Expr
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		if p.currentKind() == token.Comma {
			p.cursor.next()
			value = append(value, nil)
			continue
		}
		if p.currentKind() == token.Ellipsis {
			p.cursor.next()
			expr, err := p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
			if err != nil {
				return nil, err
			}
			value = append(value, &ast.SpreadElement{Expression: expr})
		} else {
			expr, err := p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
			if err != nil {
				return nil, err
			}
			value = append(value, expr)
		}
		if p.currentKind() != token.RightBracket {
			if _, err := p.cursor.expect(token.Comma, "array literal"); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.cursor.expect(token.RightBracket, "array literal"); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Value: value}, nil
}

func (p *parser) parseObjectLiteral(f flags) (ast.Expr, error) {
	if _, err := p.cursor.expect(token.LeftBrace, "object literal"); err != nil {
		return nil, err
	}
	var properties []ast.Property
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		property, err := p.parseObjectProperty(f)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
		if p.currentKind() != token.RightBrace {
			if _, err := p.cursor.expect(token.Comma, "object literal"); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.cursor.expect(token.RightBrace, "object literal"); err != nil {
		return nil, err
	}
	return &ast.ObjectLiteral{Properties: properties}, nil
}

func (p *parser) parseObjectProperty(f flags) (ast.Property, error) {
	inner := flags{in: true, yield: f.yield, await: f.await}

	if p.currentKind() == token.Ellipsis {
		p.cursor.next()
		expr, err := p.parseAssignmentExpression(inner)
		if err != nil {
			return ast.Property{}, err
		}
		return ast.Property{Kind: ast.PropertySpread, Value: expr}, nil
	}

	if p.currentKind() == token.LeftBracket {
		p.cursor.next()
		key, err := p.parseAssignmentExpression(inner)
		if err != nil {
			return ast.Property{}, err
		}
		if _, err := p.cursor.expect(token.RightBracket, "computed property name"); err != nil {
			return ast.Property{}, err
		}
		if _, err := p.cursor.expect(token.Colon, "object literal"); err != nil {
			return ast.Property{}, err
		}
		value, err := p.parseAssignmentExpression(inner)
		if err != nil {
			return ast.Property{}, err
		}
		return ast.Property{Kind: ast.PropertyKeyed, Key: key, Computed: true, Value: value}, nil
	}

	tok, err := p.require(0)
	if err != nil {
		return ast.Property{}, err
	}
	if !token.ID(tok.Kind) && tok.Kind != token.String && tok.Kind != token.Number {
		return ast.Property{}, p.errorUnexpectedToken("object literal")
	}

	// Shorthand is only legal for binding identifiers; any IdentifierName,
	// string or number works as a keyed property name.
	if p.cursor.peek(1).Kind == token.Comma || p.cursor.peek(1).Kind == token.RightBrace {
		if !p.isBindingID(tok.Kind, f) {
			return ast.Property{}, p.errorUnexpectedToken("object literal")
		}
		p.cursor.next()
		return ast.Property{Kind: ast.PropertyShorthand, Name: &ast.Identifier{Name: tok.Literal}}, nil
	}

	p.cursor.next()
	var key ast.Expr
	if tok.Kind == token.Number {
		value, convErr := parseNumberLiteral(tok.Literal)
		if convErr != nil {
			return ast.Property{}, p.errorUnexpectedToken("numeric literal")
		}
		key = &ast.NumberLiteral{Value: value, Raw: tok.Raw}
	} else {
		key = &ast.StringLiteral{Value: tok.Literal, Raw: tok.Raw}
	}
	if _, err := p.cursor.expect(token.Colon, "object literal"); err != nil {
		return ast.Property{}, err
	}
	value, err := p.parseAssignmentExpression(inner)
	if err != nil {
		return ast.Property{}, err
	}
	return ast.Property{Kind: ast.PropertyKeyed, Key: key, Value: value}, nil
}

func (p *parser) parseUnaryExpression(f flags) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch kind := p.currentKind(); kind {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete:
		p.cursor.next()
		operand, err := p.parseUnaryExpression(f)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operator: kind, Operand: operand}, nil
	case token.Await:
		if f.await {
			p.cursor.next()
			operand, err := p.parseUnaryExpression(f)
			if err != nil {
				return nil, err
			}
			return &ast.AwaitExpression{Operand: operand}, nil
		}
	}

	return p.parseUpdateExpression(f)
}

func (p *parser) parseUpdateExpression(f flags) (ast.Expr, error) {
	if kind := p.currentKind(); kind == token.Increment || kind == token.Decrement {
		p.cursor.next()
		operand, err := p.parseUnaryExpression(f)
		if err != nil {
			return nil, err
		}
		if !isSimpleAssignTarget(operand) {
			return nil, p.errorInvalidAssignmentTarget("update expression")
		}
		return &ast.UpdateExpression{Operator: kind, Operand: operand}, nil
	}

	operand, err := p.parseLeftHandSideExpression(f)
	if err != nil {
		return nil, err
	}
	// A postfix operator on the next line does not attach.
	if tok := p.cursor.peek(0); (tok.Kind == token.Increment || tok.Kind == token.Decrement) && !tok.OnNewLine {
		if !isSimpleAssignTarget(operand) {
			return nil, p.errorInvalidAssignmentTarget("update expression")
		}
		p.cursor.next()
		return &ast.UpdateExpression{Operator: tok.Kind, Operand: operand, Postfix: true}, nil
	}
	return operand, nil
}

func (p *parser) parseBinaryExpression(f flags, minPrecedence int) (ast.Expr, error) {
	left, err := p.parseUnaryExpression(f)
	if err != nil {
		return nil, err
	}
	for {
		kind := p.currentKind()
		precedence := kind.Precedence(f.in)
		if precedence == 0 || precedence <= minPrecedence {
			return left, nil
		}
		p.cursor.next()

		var right ast.Expr
		if kind == token.Exponent {
			// Right-associative.
			right, err = p.parseBinaryExpression(f, precedence-1)
		} else {
			right, err = p.parseBinaryExpression(f, precedence)
		}
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Operator: kind, Left: left, Right: right}
	}
}

func (p *parser) parseConditionalExpression(f flags) (ast.Expr, error) {
	left, err := p.parseBinaryExpression(f, 0)
	if err != nil {
		return nil, err
	}
	if p.currentKind() != token.QuestionMark {
		return left, nil
	}
	p.cursor.next()
	consequent, err := p.parseAssignmentExpression(flags{in: true, yield: f.yield, await: f.await})
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.expect(token.Colon, "conditional expression"); err != nil {
		return nil, err
	}
	alternate, err := p.parseAssignmentExpression(f)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{Test: left, Consequent: consequent, Alternate: alternate}, nil
}

// parseAssignmentExpression is the entry point of the expression grammar's
// assignment layer. Arrow-function disambiguation happens here, before
// parseArrowFunction is committed to: a bounded lookahead decides between a
// parenthesized expression and an arrow parameter list by scanning to the
// matching close parenthesis and checking for `=>`.
func (p *parser) parseAssignmentExpression(f flags) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok, err := p.require(0)
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Kind == token.Yield && f.yield:
		return p.parseYieldExpression(f)
	case p.isBindingID(tok.Kind, f) && p.cursor.peek(1).Kind == token.Arrow:
		// Covers `async => ...` as well: async is a binding identifier here.
		return p.parseArrowFunction(f, false)
	case tok.Kind == token.LeftParenthesis && p.coverParenIsArrowParams(0):
		return p.parseArrowFunction(f, false)
	case tok.Kind == token.Async && !p.cursor.peek(1).OnNewLine:
		if next := p.cursor.peek(1); p.isBindingID(next.Kind, flags{await: true}) && p.cursor.peek(2).Kind == token.Arrow {
			p.cursor.next()
			return p.parseArrowFunction(f, true)
		} else if next.Kind == token.LeftParenthesis && p.coverParenIsArrowParams(1) {
			p.cursor.next()
			return p.parseArrowFunction(f, true)
		}
	}

	left, err := p.parseConditionalExpression(f)
	if err != nil {
		return nil, err
	}

	kind := p.currentKind()
	if !isAssignOperator(kind) {
		return left, nil
	}
	if !isSimpleAssignTarget(left) {
		return nil, p.errorInvalidAssignmentTarget("assignment")
	}
	p.cursor.next()
	right, err := p.parseAssignmentExpression(f)
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpression{Operator: kind, Left: left, Right: right}, nil
}

// coverParenIsArrowParams reports whether the parenthesized span starting at
// offset is followed by `=>`, i.e. whether it covers an arrow parameter list
// rather than a parenthesized expression.
func (p *parser) coverParenIsArrowParams(offset int) bool {
	depth := 0
	for i := offset; ; i++ {
		switch p.cursor.peek(i).Kind {
		case token.LeftParenthesis:
			depth++
		case token.RightParenthesis:
			depth--
			if depth == 0 {
				return p.cursor.peek(i + 1).Kind == token.Arrow
			}
		case token.Eof:
			return false
		}
	}
}

func (p *parser) parseYieldExpression(f flags) (ast.Expr, error) {
	if _, err := p.cursor.expect(token.Yield, "yield expression"); err != nil {
		return nil, err
	}

	node := &ast.YieldExpression{}
	if tok := p.cursor.peek(0); tok.Kind == token.Multiply && !tok.OnNewLine {
		node.Delegate = true
		p.cursor.next()
	}

	if p.canInsertSemicolon() && !node.Delegate {
		return node, nil
	}
	switch p.currentKind() {
	case token.RightParenthesis, token.RightBracket, token.Comma, token.Colon, token.Semicolon:
		if !node.Delegate {
			return node, nil
		}
	}
	argument, err := p.parseAssignmentExpression(f)
	if err != nil {
		return nil, err
	}
	node.Argument = argument
	return node, nil
}

func (p *parser) parseExpression(f flags) (ast.Expr, error) {
	left, err := p.parseAssignmentExpression(f)
	if err != nil {
		return nil, err
	}
	if p.currentKind() != token.Comma {
		return left, nil
	}
	sequence := []ast.Expr{left}
	for p.currentKind() == token.Comma {
		p.cursor.next()
		next, err := p.parseAssignmentExpression(f)
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, next)
	}
	return &ast.SequenceExpression{Sequence: sequence}, nil
}

func isAssignOperator(kind token.Token) bool {
	switch kind {
	case token.Assign,
		token.AddAssign, token.SubtractAssign, token.MultiplyAssign, token.ExponentAssign,
		token.QuotientAssign, token.RemainderAssign,
		token.AndAssign, token.OrAssign, token.ExclusiveOrAssign,
		token.ShiftLeftAssign, token.ShiftRightAssign, token.UnsignedShiftRightAssign,
		token.LogicalAndAssign, token.LogicalOrAssign, token.CoalesceAssign:
		return true
	}
	return false
}

// isSimpleAssignTarget reports whether expr may appear on the left of an
// assignment or as an update operand.
func isSimpleAssignTarget(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.GetConstField, *ast.GetField:
		return true
	}
	return false
}

// errorInvalidAssignmentTarget ...
func (p *parser) errorInvalidAssignmentTarget(context string) error {
	tok := p.cursor.peek(0)
	return &Error{
		Kind:    UnexpectedToken,
		Found:   tok.Kind,
		Literal: tok.Literal,
		Context: context + ": invalid assignment target",
		Line:    tok.Line,
		Offset:  tok.Offset,
	}
}
