package ast

import (
	"github.com/apawn/boa/token"
)

// ExpressionStatement ...
type ExpressionStatement struct {
	Expression Expr
}

// EmptyStatement ...
type EmptyStatement struct{}

// BlockStatement ...
type BlockStatement struct {
	List StatementList
}

// VariableDeclaration is a `var`, `let` or `const` statement.
type VariableDeclaration struct {
	Kind token.Token
	List []VariableDeclarator
}

// VariableDeclarator ...
type VariableDeclarator struct {
	Target      *Identifier
	Initializer Expr
}

// IfStatement ...
type IfStatement struct {
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

// WhileStatement ...
type WhileStatement struct {
	Test Expr
	Body Stmt
}

// DoWhileStatement ...
type DoWhileStatement struct {
	Body Stmt
	Test Expr
}

// ForStatement is the classic three-clause for loop; any clause may be nil.
// Initializer is either a VariableDeclaration or an ExpressionStatement.
type ForStatement struct {
	Initializer Stmt
	Test        Expr
	Update      Expr
	Body        Stmt
}

// ForInStatement ...
type ForInStatement struct {
	Into   Node
	Source Expr
	Body   Stmt
}

// BreakStatement ...
type BreakStatement struct{}

// ContinueStatement ...
type ContinueStatement struct{}

// ReturnStatement ...
type ReturnStatement struct {
	Argument Expr
}

func (*ExpressionStatement) node() {}
func (*ExpressionStatement) stmt() {}
func (*EmptyStatement) node()      {}
func (*EmptyStatement) stmt()      {}
func (*BlockStatement) node()      {}
func (*BlockStatement) stmt()      {}
func (*VariableDeclaration) node() {}
func (*VariableDeclaration) stmt() {}
func (*IfStatement) node()         {}
func (*IfStatement) stmt()         {}
func (*WhileStatement) node()      {}
func (*WhileStatement) stmt()      {}
func (*DoWhileStatement) node()    {}
func (*DoWhileStatement) stmt()    {}
func (*ForStatement) node()        {}
func (*ForStatement) stmt()        {}
func (*ForInStatement) node()      {}
func (*ForInStatement) stmt()      {}
func (*BreakStatement) node()      {}
func (*BreakStatement) stmt()      {}
func (*ContinueStatement) node()   {}
func (*ContinueStatement) stmt()   {}
func (*ReturnStatement) node()     {}
func (*ReturnStatement) stmt()     {}
