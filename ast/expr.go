package ast

import (
	"github.com/apawn/boa/token"
)

// ThisExpression ...
type ThisExpression struct{}

// ArrayLiteral holds the element expressions; a nil element represents an
// elision.
type ArrayLiteral struct {
	Value []Expr
}

// ObjectLiteral ...
type ObjectLiteral struct {
	Properties []Property
}

// PropertyKind distinguishes the forms an object literal property can take.
type PropertyKind int

const (
	PropertyKeyed PropertyKind = iota
	PropertyShorthand
	PropertySpread
)

// Property is a single object literal property. Keyed properties carry a Key
// (and Computed when the key is bracketed), shorthand properties only a
// Name, spread properties only a Value.
type Property struct {
	Kind     PropertyKind
	Key      Expr
	Computed bool
	Name     *Identifier
	Value    Expr
}

// SequenceExpression is a comma-separated expression list.
type SequenceExpression struct {
	Sequence []Expr
}

// SpreadElement is `...expr` in an argument or array element position.
type SpreadElement struct {
	Expression Expr
}

// BinaryExpression ...
type BinaryExpression struct {
	Operator token.Token
	Left     Expr
	Right    Expr
}

// UnaryExpression ...
type UnaryExpression struct {
	Operator token.Token
	Operand  Expr
}

// UpdateExpression is `++x`, `--x`, `x++` or `x--`.
type UpdateExpression struct {
	Operator token.Token
	Operand  Expr
	Postfix  bool
}

// ConditionalExpression ...
type ConditionalExpression struct {
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// AssignExpression covers plain and compound assignment.
type AssignExpression struct {
	Operator token.Token
	Left     Expr
	Right    Expr
}

// Call owns a callee and an ordered argument list.
type Call struct {
	Callee    Expr
	Arguments []Expr
}

// New owns the single Call that describes what to construct and with which
// arguments.
type New struct {
	Call *Call
}

// GetConstField is property access through a statically-known name, i.e.
// `base.field`. The field may be spelled with a keyword; keywords are legal
// property names after `.`.
type GetConstField struct {
	Base  Expr
	Field string
}

// GetField is computed property access, i.e. `base[index]`.
type GetField struct {
	Base  Expr
	Index Expr
}

// AwaitExpression ...
type AwaitExpression struct {
	Operand Expr
}

// YieldExpression ...
type YieldExpression struct {
	Argument Expr
	Delegate bool
}

func (*ThisExpression) node()        {}
func (*ThisExpression) expr()        {}
func (*ArrayLiteral) node()          {}
func (*ArrayLiteral) expr()          {}
func (*ObjectLiteral) node()         {}
func (*ObjectLiteral) expr()         {}
func (*SequenceExpression) node()    {}
func (*SequenceExpression) expr()    {}
func (*SpreadElement) node()         {}
func (*SpreadElement) expr()         {}
func (*BinaryExpression) node()      {}
func (*BinaryExpression) expr()      {}
func (*UnaryExpression) node()       {}
func (*UnaryExpression) expr()       {}
func (*UpdateExpression) node()      {}
func (*UpdateExpression) expr()      {}
func (*ConditionalExpression) node() {}
func (*ConditionalExpression) expr() {}
func (*AssignExpression) node()      {}
func (*AssignExpression) expr()      {}
func (*Call) node()                  {}
func (*Call) expr()                  {}
func (*New) node()                   {}
func (*New) expr()                   {}
func (*GetConstField) node()         {}
func (*GetConstField) expr()         {}
func (*GetField) node()              {}
func (*GetField) expr()              {}
func (*AwaitExpression) node()       {}
func (*AwaitExpression) expr()       {}
func (*YieldExpression) node()       {}
func (*YieldExpression) expr()       {}
