package ast

// NullLiteral ...
type NullLiteral struct{}

// BooleanLiteral ...
type BooleanLiteral struct {
	Value bool
}

// NumberLiteral carries the parsed value alongside the raw source text so
// the generator can reproduce the original spelling.
type NumberLiteral struct {
	Value float64
	Raw   string
}

// StringLiteral ...
type StringLiteral struct {
	Value string
	Raw   string
}

func (*NullLiteral) node()    {}
func (*NullLiteral) expr()    {}
func (*BooleanLiteral) node() {}
func (*BooleanLiteral) expr() {}
func (*NumberLiteral) node()  {}
func (*NumberLiteral) expr()  {}
func (*StringLiteral) node()  {}
func (*StringLiteral) expr()  {}
