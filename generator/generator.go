// Package generator renders syntax trees back into source text. The output
// is canonical rather than a byte-for-byte reproduction: parentheses are
// re-derived from precedence, statements are separated by newlines and every
// statement is explicitly terminated.
package generator

import (
	"strconv"
	"strings"

	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/token"
)

// Generate returns the source form of node.
func Generate(node ast.Node) string {
	var b strings.Builder
	switch n := node.(type) {
	case *ast.Program:
		genStatements(&b, n.Body, "\n")
	case ast.Expr:
		genExpr(&b, n, precSequence)
	case ast.Stmt:
		genStmt(&b, n)
	}
	return b.String()
}

// Expression precedence tiers, higher binds tighter. Binary operators map
// into the band between precAssign and precUnary via token.Precedence.
const (
	precSequence = 1
	precAssign   = 2
	precTernary  = 3
	precBinary   = 4 // plus token precedence 1..12
	precUnary    = 17
	precPostfix  = 18
	precCall     = 19
	precPrimary  = 20
)

func exprPrecedence(expr ast.Expr) int {
	switch e := expr.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignExpression, *ast.ArrowFunctionDecl, *ast.YieldExpression:
		return precAssign
	case *ast.ConditionalExpression:
		return precTernary
	case *ast.BinaryExpression:
		return precBinary + e.Operator.Precedence(true)
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return precUnary
	case *ast.UpdateExpression:
		if e.Postfix {
			return precPostfix
		}
		return precUnary
	case *ast.Call, *ast.New, *ast.GetConstField, *ast.GetField:
		return precCall
	}
	return precPrimary
}

func genExpr(b *strings.Builder, expr ast.Expr, min int) {
	if exprPrecedence(expr) < min {
		b.WriteString("(")
		genExprInner(b, expr)
		b.WriteString(")")
		return
	}
	genExprInner(b, expr)
}

func genExprInner(b *strings.Builder, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Identifier:
		b.WriteString(e.Name)
	case *ast.NullLiteral:
		b.WriteString("null")
	case *ast.BooleanLiteral:
		b.WriteString(strconv.FormatBool(e.Value))
	case *ast.NumberLiteral:
		if e.Raw != "" {
			b.WriteString(e.Raw)
		} else {
			b.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
		}
	case *ast.StringLiteral:
		if e.Raw != "" {
			b.WriteString(e.Raw)
		} else {
			b.WriteString(strconv.Quote(e.Value))
		}
	case *ast.ThisExpression:
		b.WriteString("this")
	case *ast.ArrayLiteral:
		b.WriteString("[")
		for i, element := range e.Value {
			if i > 0 {
				b.WriteString(", ")
			}
			if element != nil {
				genExpr(b, element, precAssign)
			}
		}
		b.WriteString("]")
	case *ast.ObjectLiteral:
		if len(e.Properties) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{ ")
		for i, property := range e.Properties {
			if i > 0 {
				b.WriteString(", ")
			}
			genProperty(b, property)
		}
		b.WriteString(" }")
	case *ast.SequenceExpression:
		for i, item := range e.Sequence {
			if i > 0 {
				b.WriteString(", ")
			}
			genExpr(b, item, precAssign)
		}
	case *ast.SpreadElement:
		b.WriteString("...")
		genExpr(b, e.Expression, precAssign)
	case *ast.BinaryExpression:
		prec := precBinary + e.Operator.Precedence(true)
		if e.Operator == token.Exponent {
			genExpr(b, e.Left, prec+1)
			b.WriteString(" " + e.Operator.String() + " ")
			genExpr(b, e.Right, prec)
		} else {
			genExpr(b, e.Left, prec)
			b.WriteString(" " + e.Operator.String() + " ")
			genExpr(b, e.Right, prec+1)
		}
	case *ast.UnaryExpression:
		b.WriteString(e.Operator.String())
		switch e.Operator {
		case token.Typeof, token.Void, token.Delete:
			b.WriteString(" ")
		default:
			if needsOperatorGap(e.Operator, e.Operand) {
				b.WriteString(" ")
			}
		}
		genExpr(b, e.Operand, precUnary)
	case *ast.UpdateExpression:
		if e.Postfix {
			genExpr(b, e.Operand, precCall)
			b.WriteString(e.Operator.String())
		} else {
			b.WriteString(e.Operator.String())
			genExpr(b, e.Operand, precUnary)
		}
	case *ast.ConditionalExpression:
		genExpr(b, e.Test, precTernary+1)
		b.WriteString(" ? ")
		genExpr(b, e.Consequent, precAssign)
		b.WriteString(" : ")
		genExpr(b, e.Alternate, precAssign)
	case *ast.AssignExpression:
		genExpr(b, e.Left, precCall)
		b.WriteString(" " + e.Operator.String() + " ")
		genExpr(b, e.Right, precAssign)
	case *ast.Call:
		genExpr(b, e.Callee, precCall)
		genArguments(b, e.Arguments)
	case *ast.New:
		b.WriteString("new ")
		genExpr(b, e.Call.Callee, precCall)
		genArguments(b, e.Call.Arguments)
	case *ast.GetConstField:
		genMemberBase(b, e.Base)
		b.WriteString(".")
		b.WriteString(e.Field)
	case *ast.GetField:
		genMemberBase(b, e.Base)
		b.WriteString("[")
		genExpr(b, e.Index, precSequence)
		b.WriteString("]")
	case *ast.AwaitExpression:
		b.WriteString("await ")
		genExpr(b, e.Operand, precUnary)
	case *ast.YieldExpression:
		b.WriteString("yield")
		if e.Delegate {
			b.WriteString("*")
		}
		if e.Argument != nil {
			b.WriteString(" ")
			genExpr(b, e.Argument, precAssign)
		}
	case *ast.ArrowFunctionDecl:
		if e.Async {
			b.WriteString("async ")
		}
		b.WriteString("(")
		for i, param := range e.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			genParameter(b, param)
		}
		b.WriteString(") => ")
		genArrowBody(b, e.Body)
	}
}

func genProperty(b *strings.Builder, property ast.Property) {
	switch property.Kind {
	case ast.PropertySpread:
		b.WriteString("...")
		genExpr(b, property.Value, precAssign)
	case ast.PropertyShorthand:
		b.WriteString(property.Name.Name)
	default:
		if property.Computed {
			b.WriteString("[")
			genExpr(b, property.Key, precAssign)
			b.WriteString("]")
		} else if key, ok := property.Key.(*ast.StringLiteral); ok && key.Raw == "" {
			// Identifier-shaped keys carry no raw spelling; render them bare.
			b.WriteString(key.Value)
		} else {
			genExpr(b, property.Key, precPrimary)
		}
		b.WriteString(": ")
		genExpr(b, property.Value, precAssign)
	}
}

// genMemberBase keeps a numeric base from fusing with the following `.`.
func genMemberBase(b *strings.Builder, base ast.Expr) {
	if _, ok := base.(*ast.NumberLiteral); ok {
		b.WriteString("(")
		genExprInner(b, base)
		b.WriteString(")")
		return
	}
	genExpr(b, base, precCall)
}

// needsOperatorGap prevents `-` `-x` from fusing into a decrement (and the
// same for `+`).
func needsOperatorGap(op token.Token, operand ast.Expr) bool {
	if op != token.Minus && op != token.Plus {
		return false
	}
	switch o := operand.(type) {
	case *ast.UnaryExpression:
		return o.Operator == op
	case *ast.UpdateExpression:
		return !o.Postfix && (op == token.Minus && o.Operator == token.Decrement ||
			op == token.Plus && o.Operator == token.Increment)
	}
	return false
}

func genArguments(b *strings.Builder, args []ast.Expr) {
	b.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		genExpr(b, arg, precAssign)
	}
	b.WriteString(")")
}

func genParameter(b *strings.Builder, param ast.FormalParameter) {
	if param.Rest {
		b.WriteString("...")
	}
	b.WriteString(param.Name.Name)
	if param.Default != nil {
		b.WriteString(" = ")
		genExpr(b, param.Default, precAssign)
	}
}

// genArrowBody renders a single synthesized return as a concise body and
// everything else as a block.
func genArrowBody(b *strings.Builder, body ast.StatementList) {
	if len(body) == 1 {
		if ret, ok := body[0].(*ast.ReturnStatement); ok && ret.Argument != nil {
			if _, isObject := ret.Argument.(*ast.ObjectLiteral); isObject {
				b.WriteString("(")
				genExprInner(b, ret.Argument)
				b.WriteString(")")
				return
			}
			genExpr(b, ret.Argument, precAssign)
			return
		}
	}
	b.WriteString("{ ")
	genStatements(b, body, " ")
	b.WriteString(" }")
}

func genStatements(b *strings.Builder, list ast.StatementList, sep string) {
	for i, stmt := range list {
		if i > 0 {
			b.WriteString(sep)
		}
		genStmt(b, stmt)
	}
}

func genStmt(b *strings.Builder, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		if _, isObject := s.Expression.(*ast.ObjectLiteral); isObject {
			b.WriteString("(")
			genExprInner(b, s.Expression)
			b.WriteString(");")
			return
		}
		genExpr(b, s.Expression, precSequence)
		b.WriteString(";")
	case *ast.EmptyStatement:
		b.WriteString(";")
	case *ast.BlockStatement:
		if len(s.List) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{ ")
		genStatements(b, s.List, " ")
		b.WriteString(" }")
	case *ast.VariableDeclaration:
		genDeclaration(b, s)
		b.WriteString(";")
	case *ast.IfStatement:
		b.WriteString("if (")
		genExpr(b, s.Test, precSequence)
		b.WriteString(") ")
		genStmt(b, s.Consequent)
		if s.Alternate != nil {
			b.WriteString(" else ")
			genStmt(b, s.Alternate)
		}
	case *ast.WhileStatement:
		b.WriteString("while (")
		genExpr(b, s.Test, precSequence)
		b.WriteString(") ")
		genStmt(b, s.Body)
	case *ast.DoWhileStatement:
		b.WriteString("do ")
		genStmt(b, s.Body)
		b.WriteString(" while (")
		genExpr(b, s.Test, precSequence)
		b.WriteString(");")
	case *ast.ForStatement:
		b.WriteString("for (")
		switch initializer := s.Initializer.(type) {
		case *ast.VariableDeclaration:
			genDeclaration(b, initializer)
		case *ast.ExpressionStatement:
			genExpr(b, initializer.Expression, precSequence)
		}
		b.WriteString("; ")
		if s.Test != nil {
			genExpr(b, s.Test, precSequence)
		}
		b.WriteString("; ")
		if s.Update != nil {
			genExpr(b, s.Update, precSequence)
		}
		b.WriteString(") ")
		genStmt(b, s.Body)
	case *ast.ForInStatement:
		b.WriteString("for (")
		switch into := s.Into.(type) {
		case *ast.VariableDeclaration:
			genDeclaration(b, into)
		case ast.Expr:
			genExpr(b, into, precCall)
		}
		b.WriteString(" in ")
		genExpr(b, s.Source, precSequence)
		b.WriteString(") ")
		genStmt(b, s.Body)
	case *ast.BreakStatement:
		b.WriteString("break;")
	case *ast.ContinueStatement:
		b.WriteString("continue;")
	case *ast.ReturnStatement:
		if s.Argument == nil {
			b.WriteString("return;")
			return
		}
		b.WriteString("return ")
		genExpr(b, s.Argument, precSequence)
		b.WriteString(";")
	}
}

func genDeclaration(b *strings.Builder, decl *ast.VariableDeclaration) {
	b.WriteString(decl.Kind.String())
	b.WriteString(" ")
	for i, declarator := range decl.List {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(declarator.Target.Name)
		if declarator.Initializer != nil {
			b.WriteString(" = ")
			genExpr(b, declarator.Initializer, precAssign)
		}
	}
}
