package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "=>", Arrow.String())
	assert.Equal(t, "instanceof", InstanceOf.String())
	assert.Equal(t, "Identifier", Identifier.String())
	assert.Equal(t, "UNKNOWN", Undetermined.String())
	assert.Equal(t, "token(9999)", Token(9999).String())
}

func TestPrecedence(t *testing.T) {
	assert.Greater(t, Multiply.Precedence(true), Plus.Precedence(true))
	assert.Greater(t, Exponent.Precedence(true), Multiply.Precedence(true))
	assert.Greater(t, LogicalOr.Precedence(true), Coalesce.Precedence(true))
	assert.Equal(t, Less.Precedence(true), In.Precedence(true))
	assert.Equal(t, Less.Precedence(true), InstanceOf.Precedence(true))

	// Non-operators have no binding power, and `in` loses its binding power
	// when the context disallows it.
	assert.Zero(t, Arrow.Precedence(true))
	assert.Zero(t, Identifier.Precedence(true))
	assert.Zero(t, In.Precedence(false))
	assert.NotZero(t, InstanceOf.Precedence(false))
}

func TestLiteralKeyword(t *testing.T) {
	assert.Equal(t, New, LiteralKeyword("new"))
	assert.Equal(t, Async, LiteralKeyword("async"))
	assert.Equal(t, Boolean, LiteralKeyword("true"))
	assert.Equal(t, Null, LiteralKeyword("null"))
	assert.Equal(t, Keyword, LiteralKeyword("enum"))
	assert.Equal(t, Token(0), LiteralKeyword("foo"))
	assert.Equal(t, Token(0), LiteralKeyword("News"))
}

func TestID(t *testing.T) {
	assert.True(t, ID(Identifier))
	assert.True(t, ID(New))
	assert.True(t, ID(Yield))
	assert.False(t, ID(Number))
	assert.False(t, ID(LeftParenthesis))
}

func TestUnreservedWord(t *testing.T) {
	for _, tkn := range []Token{Of, Let, Static, Async, Await, Yield} {
		assert.True(t, UnreservedWord(tkn), tkn.String())
	}
	for _, tkn := range []Token{New, Return, If, Identifier, This} {
		assert.False(t, UnreservedWord(tkn), tkn.String())
	}
}
