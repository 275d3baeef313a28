package ast

// ArrowFunctionDecl owns an ordered parameter list and a statement list
// body. A concise (expression) body has already been normalized by the
// parser into a single ReturnStatement, so Body is uniform across both
// source forms. Parameter names need not be unique at parse time.
type ArrowFunctionDecl struct {
	Params []FormalParameter
	Body   StatementList
	Async  bool
}

// FormalParameter owns a binding target, an optional default value and a
// rest flag. A parameter built from the single-identifier shorthand arrow
// form has no default and is not rest.
type FormalParameter struct {
	Name    *Identifier
	Default Expr
	Rest    bool
}

func (*ArrowFunctionDecl) node() {}
func (*ArrowFunctionDecl) expr() {}
