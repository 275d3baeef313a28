// Package ast declares the node types of the syntax tree produced by the
// parser. Every node is a fully-formed, self-contained subtree: parsers
// construct nodes bottom-up and partial nodes never escape. Nodes own their
// children exclusively and are not mutated after construction.
package ast

// Node is implemented by every node in the tree.
type Node interface {
	node()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmt()
}

// StatementList is an ordered sequence of statements. Expression-bodied
// arrow functions are normalized into a one-element list wrapping a
// ReturnStatement, so downstream consumers see every function body in the
// same shape.
type StatementList []Stmt

// Program is the root node of a parsed source text.
type Program struct {
	Body StatementList
}

func (*Program) node() {}
