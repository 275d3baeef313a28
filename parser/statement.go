package parser

import (
	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/token"
)

func (p *parser) parseStatementList(f flags, until token.Token) (ast.StatementList, error) {
	var list ast.StatementList
	for p.currentKind() != until && p.currentKind() != token.Eof {
		stmt, err := p.parseStatement(f)
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)
	}
	return list, nil
}

// parseFunctionBody parses the statement list of a function body, up to but
// not including the closing brace. Return statements become legal and the
// enclosing loop context does not leak in.
func (p *parser) parseFunctionBody(f flags) (ast.StatementList, error) {
	savedFunction, savedIteration := p.inFunction, p.inIteration
	p.inFunction, p.inIteration = true, false
	defer func() {
		p.inFunction, p.inIteration = savedFunction, savedIteration
	}()
	return p.parseStatementList(f, token.RightBrace)
}

func (p *parser) parseStatement(f flags) (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.currentKind() {
	case token.Eof:
		return nil, p.errorAbruptEnd()
	case token.Semicolon:
		p.cursor.next()
		return &ast.EmptyStatement{}, nil
	case token.LeftBrace:
		return p.parseBlockStatement(f)
	case token.If:
		return p.parseIfStatement(f)
	case token.While:
		return p.parseWhileStatement(f)
	case token.Do:
		return p.parseDoWhileStatement(f)
	case token.For:
		return p.parseForStatement(f)
	case token.Var, token.Const:
		return p.parseLexicalDeclaration(f)
	case token.Let:
		// `let` is only a declaration when a binding follows; otherwise it
		// is an ordinary identifier.
		if p.isBindingID(p.cursor.peek(1).Kind, f) {
			return p.parseLexicalDeclaration(f)
		}
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Return:
		return p.parseReturnStatement(f)
	}

	expression, err := p.parseExpression(f)
	if err != nil {
		return nil, err
	}
	if err := p.semicolon("expression statement"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expression}, nil
}

func (p *parser) parseBlockStatement(f flags) (ast.Stmt, error) {
	if _, err := p.cursor.expect(token.LeftBrace, "block statement"); err != nil {
		return nil, err
	}
	list, err := p.parseStatementList(f, token.RightBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.expect(token.RightBrace, "block statement"); err != nil {
		return nil, err
	}
	return &ast.BlockStatement{List: list}, nil
}

func (p *parser) parseLexicalDeclaration(f flags) (ast.Stmt, error) {
	kind := p.cursor.next().Kind

	var list []ast.VariableDeclarator
	for {
		declarator, err := p.parseVariableDeclarator(f, kind)
		if err != nil {
			return nil, err
		}
		list = append(list, declarator)
		if p.currentKind() != token.Comma {
			break
		}
		p.cursor.next()
	}

	if err := p.semicolon("variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Kind: kind, List: list}, nil
}

func (p *parser) parseVariableDeclarator(f flags, kind token.Token) (ast.VariableDeclarator, error) {
	target, err := p.parseBindingIdentifier(flags{yield: f.yield, await: f.await})
	if err != nil {
		return ast.VariableDeclarator{}, err
	}
	node := ast.VariableDeclarator{Target: target}
	if p.currentKind() == token.Assign {
		p.cursor.next()
		node.Initializer, err = p.parseAssignmentExpression(f)
		if err != nil {
			return ast.VariableDeclarator{}, err
		}
	} else if kind == token.Const {
		return ast.VariableDeclarator{}, p.errorUnexpectedToken("const declaration", token.Assign)
	}
	return node, nil
}

func (p *parser) parseIfStatement(f flags) (ast.Stmt, error) {
	p.cursor.next()
	test, err := p.parseParenthesisedExpression(f)
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement(f)
	if err != nil {
		return nil, err
	}
	node := &ast.IfStatement{Test: test, Consequent: consequent}
	if p.currentKind() == token.Else {
		p.cursor.next()
		node.Alternate, err = p.parseStatement(f)
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *parser) parseIterationBody(f flags) (ast.Stmt, error) {
	saved := p.inIteration
	p.inIteration = true
	defer func() {
		p.inIteration = saved
	}()
	return p.parseStatement(f)
}

func (p *parser) parseWhileStatement(f flags) (ast.Stmt, error) {
	p.cursor.next()
	test, err := p.parseParenthesisedExpression(f)
	if err != nil {
		return nil, err
	}
	body, err := p.parseIterationBody(f)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Test: test, Body: body}, nil
}

func (p *parser) parseDoWhileStatement(f flags) (ast.Stmt, error) {
	p.cursor.next()
	body, err := p.parseIterationBody(f)
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.expect(token.While, "do-while statement"); err != nil {
		return nil, err
	}
	test, err := p.parseParenthesisedExpression(f)
	if err != nil {
		return nil, err
	}
	if p.currentKind() == token.Semicolon {
		p.cursor.next()
	}
	return &ast.DoWhileStatement{Body: body, Test: test}, nil
}

// parseForStatement parses both the classic three-clause form and for-in.
// The head's initializer is parsed with `in` disallowed, so that the `in`
// token can be recognized as the for-in separator rather than a relational
// operator.
func (p *parser) parseForStatement(f flags) (ast.Stmt, error) {
	p.cursor.next()
	if _, err := p.cursor.expect(token.LeftParenthesis, "for statement"); err != nil {
		return nil, err
	}

	headFlags := flags{in: false, yield: f.yield, await: f.await}

	var initializer ast.Stmt
	switch p.currentKind() {
	case token.Semicolon:
		p.cursor.next()
	case token.Var, token.Let, token.Const:
		kind := p.cursor.next().Kind
		declarator, err := p.parseVariableDeclarator(headFlags, token.Var)
		if err != nil {
			return nil, err
		}
		if p.currentKind() == token.In && declarator.Initializer == nil {
			p.cursor.next()
			decl := &ast.VariableDeclaration{Kind: kind, List: []ast.VariableDeclarator{declarator}}
			return p.parseForInTail(f, decl)
		}
		if kind == token.Const && declarator.Initializer == nil {
			return nil, p.errorUnexpectedToken("const declaration", token.Assign)
		}
		list := []ast.VariableDeclarator{declarator}
		for p.currentKind() == token.Comma {
			p.cursor.next()
			declarator, err := p.parseVariableDeclarator(headFlags, kind)
			if err != nil {
				return nil, err
			}
			list = append(list, declarator)
		}
		if _, err := p.cursor.expect(token.Semicolon, "for statement"); err != nil {
			return nil, err
		}
		initializer = &ast.VariableDeclaration{Kind: kind, List: list}
	default:
		expr, err := p.parseExpression(headFlags)
		if err != nil {
			return nil, err
		}
		if p.currentKind() == token.In {
			if !isSimpleAssignTarget(expr) {
				return nil, p.errorInvalidAssignmentTarget("for-in statement")
			}
			p.cursor.next()
			return p.parseForInTail(f, expr)
		}
		if _, err := p.cursor.expect(token.Semicolon, "for statement"); err != nil {
			return nil, err
		}
		initializer = &ast.ExpressionStatement{Expression: expr}
	}

	node := &ast.ForStatement{Initializer: initializer}
	var err error
	if p.currentKind() != token.Semicolon {
		node.Test, err = p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.cursor.expect(token.Semicolon, "for statement"); err != nil {
		return nil, err
	}
	if p.currentKind() != token.RightParenthesis {
		node.Update, err = p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.cursor.expect(token.RightParenthesis, "for statement"); err != nil {
		return nil, err
	}
	node.Body, err = p.parseIterationBody(f)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseForInTail(f flags, into ast.Node) (ast.Stmt, error) {
	source, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.expect(token.RightParenthesis, "for-in statement"); err != nil {
		return nil, err
	}
	body, err := p.parseIterationBody(f)
	if err != nil {
		return nil, err
	}
	return &ast.ForInStatement{Into: into, Source: source, Body: body}, nil
}

func (p *parser) parseBreakStatement() (ast.Stmt, error) {
	if !p.inIteration {
		return nil, p.errorUnexpectedToken("break statement outside of iteration")
	}
	p.cursor.next()
	if err := p.semicolon("break statement"); err != nil {
		return nil, err
	}
	return &ast.BreakStatement{}, nil
}

func (p *parser) parseContinueStatement() (ast.Stmt, error) {
	if !p.inIteration {
		return nil, p.errorUnexpectedToken("continue statement outside of iteration")
	}
	p.cursor.next()
	if err := p.semicolon("continue statement"); err != nil {
		return nil, err
	}
	return &ast.ContinueStatement{}, nil
}

func (p *parser) parseReturnStatement(f flags) (ast.Stmt, error) {
	if !p.inFunction {
		return nil, p.errorUnexpectedToken("return statement outside of function")
	}
	p.cursor.next()
	node := &ast.ReturnStatement{}
	if !p.canInsertSemicolon() {
		argument, err := p.parseExpression(flags{in: true, yield: f.yield, await: f.await})
		if err != nil {
			return nil, err
		}
		node.Argument = argument
	}
	if err := p.semicolon("return statement"); err != nil {
		return nil, err
	}
	return node, nil
}
