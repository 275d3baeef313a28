package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/token"
)

func TestYieldContextFlag(t *testing.T) {
	p := newParser("yield a")
	expr, err := p.parseAssignmentExpression(flags{in: true, yield: true})
	require.NoError(t, err)
	y, ok := expr.(*ast.YieldExpression)
	require.True(t, ok)
	assert.False(t, y.Delegate)
	assert.Equal(t, &ast.Identifier{Name: "a"}, y.Argument)

	p = newParser("yield * g()")
	expr, err = p.parseAssignmentExpression(flags{in: true, yield: true})
	require.NoError(t, err)
	y = expr.(*ast.YieldExpression)
	assert.True(t, y.Delegate)
	assert.IsType(t, &ast.Call{}, y.Argument)

	// With the flag off, yield is an ordinary identifier.
	p = newParser("yield")
	expr, err = p.parseAssignmentExpression(flags{in: true})
	require.NoError(t, err)
	assert.Equal(t, &ast.Identifier{Name: "yield"}, expr)
}

func TestYieldWithoutArgument(t *testing.T) {
	for _, src := range []string{"yield", "yield)", "yield,", "yield\na"} {
		p := newParser(src)
		expr, err := p.parseAssignmentExpression(flags{in: true, yield: true})
		require.NoError(t, err, "src: %s", src)
		y, ok := expr.(*ast.YieldExpression)
		require.True(t, ok, "src: %s", src)
		assert.Nil(t, y.Argument, "src: %s", src)
	}
}

func TestAwaitContextFlag(t *testing.T) {
	p := newParser("await a")
	expr, err := p.parseAssignmentExpression(flags{in: true, await: true})
	require.NoError(t, err)
	await, ok := expr.(*ast.AwaitExpression)
	require.True(t, ok)
	assert.Equal(t, &ast.Identifier{Name: "a"}, await.Operand)

	p = newParser("await")
	expr, err = p.parseAssignmentExpression(flags{in: true})
	require.NoError(t, err)
	assert.Equal(t, &ast.Identifier{Name: "await"}, expr)
}

func TestArrowParametersInheritYieldSensitivity(t *testing.T) {
	// The parameter list is parsed under the enclosing yield context, so
	// `yield` cannot bind as a parameter name there.
	p := newParser("(yield) => 0")
	_, err := p.parseAssignmentExpression(flags{in: true, yield: true})
	require.Error(t, err)
	kind, ok := ErrorKindOf(err)
	require.True(t, ok)
	assert.Equal(t, UnexpectedToken, kind)

	// Outside a yield context the same source is fine.
	p = newParser("(yield) => 0")
	_, err = p.parseAssignmentExpression(flags{in: true})
	assert.NoError(t, err)
}

func TestInFlagStopsRelationalIn(t *testing.T) {
	p := newParser("a in b")
	expr, err := p.parseBinaryExpression(flags{}, 0)
	require.NoError(t, err)
	assert.Equal(t, &ast.Identifier{Name: "a"}, expr)
	assert.Equal(t, token.In, p.currentKind())

	p = newParser("a in b")
	expr, err = p.parseBinaryExpression(flags{in: true}, 0)
	require.NoError(t, err)
	assert.IsType(t, &ast.BinaryExpression{}, expr)
}

func TestCoverScanFindsArrow(t *testing.T) {
	cases := map[string]bool{
		"(a, b) => 0":       true,
		"() => 0":           true,
		"(a = (b, c)) => 0": true,
		"(a, b)":            false,
		"(a) + b":           false,
		"(a":                false,
	}
	for src, want := range cases {
		p := newParser(src)
		assert.Equal(t, want, p.coverParenIsArrowParams(0), "src: %s", src)
	}
}

func TestRecursionDepthRestored(t *testing.T) {
	p := newParser("a + b(c.d)")
	_, err := p.parseAssignmentExpression(flags{in: true})
	require.NoError(t, err)
	assert.Zero(t, p.depth)
}

func TestCursorLookahead(t *testing.T) {
	c := newCursor("a => b")
	assert.Equal(t, token.Identifier, c.peek(0).Kind)
	assert.Equal(t, token.Arrow, c.peek(1).Kind)
	assert.Equal(t, token.Identifier, c.peek(2).Kind)
	assert.Equal(t, token.Eof, c.peek(3).Kind)
	assert.Equal(t, token.Eof, c.peek(9).Kind)

	assert.Equal(t, "a", c.next().Literal)
	tok, err := c.expect(token.Arrow, "arrow function")
	require.NoError(t, err)
	assert.Equal(t, token.Arrow, tok.Kind)
	assert.Equal(t, "b", c.next().Literal)
	assert.Equal(t, token.Eof, c.next().Kind)
	assert.Equal(t, token.Eof, c.next().Kind)
}

func TestCursorExpectErrors(t *testing.T) {
	c := newCursor("a")
	_, err := c.expect(token.Arrow, "arrow function")
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, UnexpectedToken, perr.Kind)
	assert.Equal(t, []token.Token{token.Arrow}, perr.Expected)
	assert.Equal(t, token.Identifier, perr.Found)

	c.next()
	_, err = c.expect(token.Arrow, "arrow function")
	require.Error(t, err)
	assert.Equal(t, AbruptEnd, err.(*Error).Kind)
}

func TestCursorPeekNoLineTerminator(t *testing.T) {
	c := newCursor("a\n=> b")
	_, err := c.peekNoLineTerminator(1, "arrow function")
	require.Error(t, err)
	assert.Equal(t, RestrictedProduction, err.(*Error).Kind)

	c = newCursor("a => b")
	tok, err := c.peekNoLineTerminator(1, "arrow function")
	require.NoError(t, err)
	assert.Equal(t, token.Arrow, tok.Kind)

	c = newCursor("a")
	_, err = c.peekNoLineTerminator(1, "arrow function")
	require.Error(t, err)
	assert.Equal(t, AbruptEnd, err.(*Error).Kind)
}
