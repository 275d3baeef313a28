package ast

// Identifier ...
type Identifier struct {
	Name string
}

func (*Identifier) node() {}
func (*Identifier) expr() {}
