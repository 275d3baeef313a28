package token

import (
	"strconv"
)

// Token is the set of lexical tokens in JavaScript (ECMAScript expressions
// plus the statement keywords this front-end understands).
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binary operator binding power of the token, or 0
// when the token is not a binary operator. The in parameter controls whether
// the `in` operator is legal in the current grammar context.
func (t Token) Precedence(in bool) int {
	switch t {
	case Coalesce:
		return 1
	case LogicalOr:
		return 2
	case LogicalAnd:
		return 3
	case Or:
		return 4
	case ExclusiveOr:
		return 5
	case And:
		return 6
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 7
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 8
	case In:
		if in {
			return 8
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 9
	case Plus, Minus:
		return 10
	case Multiply, Slash, Remainder:
		return 11
	case Exponent:
		return 12
	}
	return 0
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
}

// LiteralKeyword returns the token for literal if literal is a keyword, the
// generic Keyword token if it is a future reserved word, or 0 otherwise.
func LiteralKeyword(literal string) Token {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword
		}
		return k.token
	}
	return 0
}

// ID reports whether the token can act as an IdentifierName, i.e. a plain
// identifier or any keyword (keywords are legal property names after `.`).
func ID(token Token) bool {
	return token >= Identifier
}

// UnreservedWord reports whether the token is only contextually reserved
// (of, let, static, async, await, yield) and may serve as a binding
// identifier where the context permits.
func UnreservedWord(token Token) bool {
	return token >= Of
}
