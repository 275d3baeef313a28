package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/parser"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	require.NoError(t, err, "Failed to parse:\n%s", code)
	return p
}

// mustParseExpr parses code as a single expression.
func mustParseExpr(t *testing.T, code string) ast.Expr {
	t.Helper()
	e, err := parser.ParseExpression(code)
	require.NoError(t, err, "Failed to parse expression:\n%s", code)
	return e
}

// exprOf extracts the expression from the i-th top-level statement.
func exprOf(t *testing.T, p *ast.Program, i int) ast.Expr {
	t.Helper()
	stmt, ok := p.Body[i].(*ast.ExpressionStatement)
	require.True(t, ok, "statement %d is %T, want ExpressionStatement", i, p.Body[i])
	return stmt.Expression
}

// kindOf extracts the structured error kind and fails if err is not a parser
// error.
func kindOf(t *testing.T, err error) parser.ErrorKind {
	t.Helper()
	require.Error(t, err)
	kind, ok := parser.ErrorKindOf(err)
	require.True(t, ok, "error %v is not a parser.Error", err)
	return kind
}

// ---------------------------------------------------------------------------
// Arrow functions
// ---------------------------------------------------------------------------

func TestArrowShorthandEqualsParenthesized(t *testing.T) {
	shorthand := exprOf(t, mustParse(t, "x => x"), 0)
	parenthesized := exprOf(t, mustParse(t, "(x) => x"), 0)

	arrow, ok := shorthand.(*ast.ArrowFunctionDecl)
	require.True(t, ok)
	require.Len(t, arrow.Params, 1)
	assert.Equal(t, "x", arrow.Params[0].Name.Name)
	assert.Nil(t, arrow.Params[0].Default)
	assert.False(t, arrow.Params[0].Rest)

	assert.Equal(t, shorthand, parenthesized)
}

func TestArrowConciseBodyNormalization(t *testing.T) {
	concise := exprOf(t, mustParse(t, "p => p + 1"), 0)
	block := exprOf(t, mustParse(t, "p => { return p + 1; }"), 0)
	assert.Equal(t, block, concise)

	arrow := concise.(*ast.ArrowFunctionDecl)
	require.Len(t, arrow.Body, 1)
	ret, ok := arrow.Body[0].(*ast.ReturnStatement)
	require.True(t, ok, "concise body must normalize to a return statement")
	assert.NotNil(t, ret.Argument)
}

func TestArrowRestrictedProduction(t *testing.T) {
	_, err := parser.ParseFile("(x)\n=> x")
	assert.Equal(t, parser.RestrictedProduction, kindOf(t, err))

	_, err = parser.ParseFile("(x) => x")
	assert.NoError(t, err)
}

func TestArrowParameterForms(t *testing.T) {
	arrow := exprOf(t, mustParse(t, "(a, b = 1, ...rest) => 0"), 0).(*ast.ArrowFunctionDecl)
	require.Len(t, arrow.Params, 3)
	assert.Equal(t, "a", arrow.Params[0].Name.Name)
	assert.Equal(t, "b", arrow.Params[1].Name.Name)
	assert.NotNil(t, arrow.Params[1].Default)
	assert.Equal(t, "rest", arrow.Params[2].Name.Name)
	assert.True(t, arrow.Params[2].Rest)

	empty := exprOf(t, mustParse(t, "() => 0"), 0).(*ast.ArrowFunctionDecl)
	assert.Empty(t, empty.Params)
}

func TestArrowRestMustBeLast(t *testing.T) {
	_, err := parser.ParseFile("(...a, b) => 0")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))
}

func TestArrowBodyDoesNotInheritYield(t *testing.T) {
	// Inside the arrow body `yield` is an ordinary identifier even though
	// block bodies reset the surrounding context entirely.
	arrow := exprOf(t, mustParse(t, "x => yield"), 0).(*ast.ArrowFunctionDecl)
	ret := arrow.Body[0].(*ast.ReturnStatement)
	id, ok := ret.Argument.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "yield", id.Name)
}

func TestAsyncArrow(t *testing.T) {
	arrow := exprOf(t, mustParse(t, "async x => await x"), 0).(*ast.ArrowFunctionDecl)
	assert.True(t, arrow.Async)
	ret := arrow.Body[0].(*ast.ReturnStatement)
	await, ok := ret.Argument.(*ast.AwaitExpression)
	require.True(t, ok, "await must parse as an await expression in an async arrow body")
	assert.Equal(t, &ast.Identifier{Name: "x"}, await.Operand)

	parenthesized := exprOf(t, mustParse(t, "async (a, b) => a"), 0).(*ast.ArrowFunctionDecl)
	assert.True(t, parenthesized.Async)
	require.Len(t, parenthesized.Params, 2)
}

func TestAwaitIsIdentifierOutsideAsync(t *testing.T) {
	arrow := exprOf(t, mustParse(t, "await => await"), 0).(*ast.ArrowFunctionDecl)
	require.Len(t, arrow.Params, 1)
	assert.Equal(t, "await", arrow.Params[0].Name.Name)

	ret := arrow.Body[0].(*ast.ReturnStatement)
	assert.Equal(t, &ast.Identifier{Name: "await"}, ret.Argument)
}

func TestAsyncAloneIsIdentifier(t *testing.T) {
	p := mustParse(t, "async\nx => x")
	require.Len(t, p.Body, 2)
	assert.Equal(t, &ast.Identifier{Name: "async"}, exprOf(t, p, 0))
	_, ok := exprOf(t, p, 1).(*ast.ArrowFunctionDecl)
	assert.True(t, ok)
}

// ---------------------------------------------------------------------------
// Member expressions
// ---------------------------------------------------------------------------

func TestMemberChainLeftAssociative(t *testing.T) {
	expr := mustParseExpr(t, "a.b.c")
	assert.Equal(t, `GetConstField(GetConstField(a, "b"), "c")`, ast.Dump(expr))
}

func TestComputedVsConstantAccess(t *testing.T) {
	computed := mustParseExpr(t, `a["b"]`)
	assert.Equal(t, `GetField(a, StringLiteral("b"))`, ast.Dump(computed))

	constant := mustParseExpr(t, "a.b")
	assert.Equal(t, `GetConstField(a, "b")`, ast.Dump(constant))
	assert.IsType(t, &ast.GetConstField{}, constant)
	assert.IsType(t, &ast.GetField{}, computed)
}

func TestNewChainNesting(t *testing.T) {
	expr := mustParseExpr(t, "new new Foo()()")
	assert.Equal(t, "New(Call(New(Call(Foo, [])), []))", ast.Dump(expr))
}

func TestNewRequiresArguments(t *testing.T) {
	_, err := parser.ParseExpression("new Foo;")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))

	_, err = parser.ParseExpression("new Foo")
	assert.Equal(t, parser.AbruptEnd, kindOf(t, err))
}

func TestKeywordAsPropertyName(t *testing.T) {
	expr := mustParseExpr(t, "a.new")
	assert.Equal(t, `GetConstField(a, "new")`, ast.Dump(expr))

	expr = mustParseExpr(t, "a.if.else")
	assert.Equal(t, `GetConstField(GetConstField(a, "if"), "else")`, ast.Dump(expr))
}

func TestDotRequiresIdentifierName(t *testing.T) {
	_, err := parser.ParseExpression("a.[0]")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))

	// `.1` lexes as a numeric literal, not as an accessor.
	_, err = parser.ParseExpression("a.1")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))
}

func TestMissingClosingBracket(t *testing.T) {
	_, err := parser.ParseExpression("a[b")
	assert.Equal(t, parser.AbruptEnd, kindOf(t, err))

	_, err = parser.ParseExpression("a[b;")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))
}

func TestCallChains(t *testing.T) {
	expr := mustParseExpr(t, "f(a)(b).c[0]")
	assert.Equal(t, `GetField(GetConstField(Call(Call(f, [a]), [b]), "c"), NumberLiteral(0))`, ast.Dump(expr))
}

func TestNewChainRecursionLimit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 600; i++ {
		sb.WriteString("new ")
	}
	sb.WriteString("X")
	for i := 0; i < 600; i++ {
		sb.WriteString("()")
	}
	_, err := parser.ParseExpression(sb.String())
	assert.Equal(t, parser.RecursionLimitExceeded, kindOf(t, err))
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestAbruptEnd(t *testing.T) {
	_, err := parser.ParseFile("(")
	assert.Equal(t, parser.AbruptEnd, kindOf(t, err))

	_, err = parser.ParseFile("x =>")
	assert.Equal(t, parser.AbruptEnd, kindOf(t, err))

	_, err = parser.ParseFile("a.")
	assert.Equal(t, parser.AbruptEnd, kindOf(t, err))
}

func TestUnexpectedTokenCarriesExpectations(t *testing.T) {
	_, err := parser.ParseExpression("a[b)")
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	assert.Equal(t, parser.UnexpectedToken, perr.Kind)
	assert.NotEmpty(t, perr.Expected)
	assert.Contains(t, err.Error(), "']'")
}

func TestErrorLineNumbers(t *testing.T) {
	_, err := parser.ParseFile("a;\nb;\nc .")
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	assert.Equal(t, 3, perr.Line)
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func TestAutomaticSemicolonInsertion(t *testing.T) {
	p := mustParse(t, "a\nb")
	assert.Len(t, p.Body, 2)

	_, err := parser.ParseFile("a b")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))
}

func TestPostfixUpdateDoesNotCrossNewline(t *testing.T) {
	p := mustParse(t, "a\n++\nb")
	require.Len(t, p.Body, 2)
	assert.Equal(t, &ast.Identifier{Name: "a"}, exprOf(t, p, 0))

	update, ok := exprOf(t, p, 1).(*ast.UpdateExpression)
	require.True(t, ok)
	assert.False(t, update.Postfix)
}

func TestVariableDeclarations(t *testing.T) {
	p := mustParse(t, "var a = 1, b\nlet c = a\nconst d = 2")
	require.Len(t, p.Body, 3)

	_, err := parser.ParseFile("const x;")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))
}

func TestLetAsIdentifier(t *testing.T) {
	p := mustParse(t, "let = 1")
	assign, ok := exprOf(t, p, 0).(*ast.AssignExpression)
	require.True(t, ok)
	assert.Equal(t, &ast.Identifier{Name: "let"}, assign.Left)
}

func TestForInVsClassicFor(t *testing.T) {
	p := mustParse(t, "for (var k in obj) f(k)")
	forIn, ok := p.Body[0].(*ast.ForInStatement)
	require.True(t, ok)
	decl, ok := forIn.Into.(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "k", decl.List[0].Target.Name)

	p = mustParse(t, "for (var i = 0; i < 10; i++) f(i)")
	classic, ok := p.Body[0].(*ast.ForStatement)
	require.True(t, ok)
	assert.NotNil(t, classic.Test)
	assert.NotNil(t, classic.Update)
}

func TestInOperatorAllowedOutsideForHead(t *testing.T) {
	expr := mustParseExpr(t, `"k" in obj`)
	binary, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "in", binary.Operator.String())

	// Brackets re-enable `in` even inside a for head.
	p := mustParse(t, `for (a["k" in b]; ; ) break`)
	_, ok = p.Body[0].(*ast.ForStatement)
	assert.True(t, ok)
}

func TestReturnOutsideFunction(t *testing.T) {
	_, err := parser.ParseFile("return 1")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))

	p := mustParse(t, "f = () => { return 1; }")
	_, ok := exprOf(t, p, 0).(*ast.AssignExpression)
	assert.True(t, ok)
}

func TestBreakOutsideIteration(t *testing.T) {
	_, err := parser.ParseFile("break")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))

	_, err = parser.ParseFile("while (a) { break; continue; }")
	assert.NoError(t, err)

	// Loop context does not leak into function bodies.
	_, err = parser.ParseFile("while (a) { f = () => { break; }; }")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))
}

func TestIfElseAndNestedBlocks(t *testing.T) {
	p := mustParse(t, "if (a) { b; } else if (c) d; else { ; }")
	stmt, ok := p.Body[0].(*ast.IfStatement)
	require.True(t, ok)
	nested, ok := stmt.Alternate.(*ast.IfStatement)
	require.True(t, ok)
	assert.NotNil(t, nested.Alternate)
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func TestOperatorPrecedence(t *testing.T) {
	expr := mustParseExpr(t, "a + b * c")
	assert.Equal(t, `Binary("+", a, Binary("*", b, c))`, ast.Dump(expr))

	expr = mustParseExpr(t, "a * b + c")
	assert.Equal(t, `Binary("+", Binary("*", a, b), c)`, ast.Dump(expr))

	// Exponentiation is right-associative.
	expr = mustParseExpr(t, "a ** b ** c")
	assert.Equal(t, `Binary("**", a, Binary("**", b, c))`, ast.Dump(expr))
}

func TestConditionalAndAssignment(t *testing.T) {
	expr := mustParseExpr(t, "a = b ? c : d")
	assign, ok := expr.(*ast.AssignExpression)
	require.True(t, ok)
	_, ok = assign.Right.(*ast.ConditionalExpression)
	assert.True(t, ok)

	// Assignment is right-associative.
	expr = mustParseExpr(t, "a = b = c")
	assert.Equal(t, `Assign("=", a, Assign("=", b, c))`, ast.Dump(expr))
}

func TestInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.ParseExpression("a + b = c")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))

	_, err = parser.ParseExpression("++1")
	assert.Equal(t, parser.UnexpectedToken, kindOf(t, err))
}

func TestSequenceExpression(t *testing.T) {
	expr := mustParseExpr(t, "a, b, c")
	seq, ok := expr.(*ast.SequenceExpression)
	require.True(t, ok)
	assert.Len(t, seq.Sequence, 3)
}

func TestArrayAndObjectLiterals(t *testing.T) {
	arr := mustParseExpr(t, "[1, , 'two', ...rest]").(*ast.ArrayLiteral)
	require.Len(t, arr.Value, 4)
	assert.Nil(t, arr.Value[1])
	assert.IsType(t, &ast.SpreadElement{}, arr.Value[3])

	obj := mustParseExpr(t, "({ a: 1, b, [k]: 2, 'c': 3, ...rest })").(*ast.ObjectLiteral)
	require.Len(t, obj.Properties, 5)
	assert.Equal(t, ast.PropertyKeyed, obj.Properties[0].Kind)
	assert.Equal(t, ast.PropertyShorthand, obj.Properties[1].Kind)
	assert.True(t, obj.Properties[2].Computed)
	assert.Equal(t, ast.PropertySpread, obj.Properties[4].Kind)
}

func TestParenthesizedExpressionIsNotArrow(t *testing.T) {
	expr := mustParseExpr(t, "(a, b)")
	_, ok := expr.(*ast.SequenceExpression)
	assert.True(t, ok, "parenthesized sequence must stay a sequence when no => follows")

	expr = mustParseExpr(t, "(a)")
	assert.Equal(t, &ast.Identifier{Name: "a"}, expr)
}

func TestUnaryOperators(t *testing.T) {
	expr := mustParseExpr(t, "typeof !a")
	assert.Equal(t, `Unary("typeof", Unary("!", a))`, ast.Dump(expr))

	expr = mustParseExpr(t, "delete a.b")
	assert.Equal(t, `Unary("delete", GetConstField(a, "b"))`, ast.Dump(expr))
}
