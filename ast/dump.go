package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders a compact structural form of the tree, one node per
// constructor-style term. Identifiers render bare, so a member chain reads
// as GetConstField(GetConstField(a, "b"), "c"). The output is meant for
// tests and diagnostics, not for regeneration; see the generator package for
// source output.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node)
	return b.String()
}

func dump(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Program:
		dumpList(b, "Program", n.Body)
	case *Identifier:
		b.WriteString(n.Name)
	case *NullLiteral:
		b.WriteString("Null")
	case *BooleanLiteral:
		fmt.Fprintf(b, "Boolean(%t)", n.Value)
	case *NumberLiteral:
		b.WriteString("NumberLiteral(")
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
		b.WriteString(")")
	case *StringLiteral:
		fmt.Fprintf(b, "StringLiteral(%q)", n.Value)
	case *ThisExpression:
		b.WriteString("This")
	case *ArrayLiteral:
		b.WriteString("ArrayLiteral[")
		for i, e := range n.Value {
			if i > 0 {
				b.WriteString(", ")
			}
			if e == nil {
				b.WriteString("<elision>")
			} else {
				dump(b, e)
			}
		}
		b.WriteString("]")
	case *ObjectLiteral:
		b.WriteString("ObjectLiteral{")
		for i, p := range n.Properties {
			if i > 0 {
				b.WriteString(", ")
			}
			dumpProperty(b, p)
		}
		b.WriteString("}")
	case *SequenceExpression:
		b.WriteString("Sequence(")
		for i, e := range n.Sequence {
			if i > 0 {
				b.WriteString(", ")
			}
			dump(b, e)
		}
		b.WriteString(")")
	case *SpreadElement:
		b.WriteString("Spread(")
		dump(b, n.Expression)
		b.WriteString(")")
	case *BinaryExpression:
		fmt.Fprintf(b, "Binary(%q, ", n.Operator.String())
		dump(b, n.Left)
		b.WriteString(", ")
		dump(b, n.Right)
		b.WriteString(")")
	case *UnaryExpression:
		fmt.Fprintf(b, "Unary(%q, ", n.Operator.String())
		dump(b, n.Operand)
		b.WriteString(")")
	case *UpdateExpression:
		pos := "prefix"
		if n.Postfix {
			pos = "postfix"
		}
		fmt.Fprintf(b, "Update(%q, %s, ", n.Operator.String(), pos)
		dump(b, n.Operand)
		b.WriteString(")")
	case *ConditionalExpression:
		b.WriteString("Conditional(")
		dump(b, n.Test)
		b.WriteString(", ")
		dump(b, n.Consequent)
		b.WriteString(", ")
		dump(b, n.Alternate)
		b.WriteString(")")
	case *AssignExpression:
		fmt.Fprintf(b, "Assign(%q, ", n.Operator.String())
		dump(b, n.Left)
		b.WriteString(", ")
		dump(b, n.Right)
		b.WriteString(")")
	case *Call:
		b.WriteString("Call(")
		dump(b, n.Callee)
		b.WriteString(", [")
		for i, a := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			dump(b, a)
		}
		b.WriteString("])")
	case *New:
		b.WriteString("New(")
		dump(b, n.Call)
		b.WriteString(")")
	case *GetConstField:
		b.WriteString("GetConstField(")
		dump(b, n.Base)
		fmt.Fprintf(b, ", %q)", n.Field)
	case *GetField:
		b.WriteString("GetField(")
		dump(b, n.Base)
		b.WriteString(", ")
		dump(b, n.Index)
		b.WriteString(")")
	case *AwaitExpression:
		b.WriteString("Await(")
		dump(b, n.Operand)
		b.WriteString(")")
	case *YieldExpression:
		b.WriteString("Yield(")
		if n.Delegate {
			b.WriteString("delegate, ")
		}
		dump(b, n.Argument)
		b.WriteString(")")
	case *ArrowFunctionDecl:
		b.WriteString("ArrowFunction(")
		if n.Async {
			b.WriteString("async, ")
		}
		b.WriteString("[")
		for i, p := range n.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			dumpParameter(b, p)
		}
		b.WriteString("], [")
		for i, s := range n.Body {
			if i > 0 {
				b.WriteString(", ")
			}
			dump(b, s)
		}
		b.WriteString("])")
	case *ExpressionStatement:
		dump(b, n.Expression)
	case *EmptyStatement:
		b.WriteString("Empty")
	case *BlockStatement:
		dumpList(b, "Block", n.List)
	case *VariableDeclaration:
		b.WriteString("VariableDeclaration(")
		b.WriteString(n.Kind.String())
		for _, d := range n.List {
			b.WriteString(", ")
			b.WriteString(d.Target.Name)
			if d.Initializer != nil {
				b.WriteString(" = ")
				dump(b, d.Initializer)
			}
		}
		b.WriteString(")")
	case *IfStatement:
		b.WriteString("If(")
		dump(b, n.Test)
		b.WriteString(", ")
		dump(b, n.Consequent)
		if n.Alternate != nil {
			b.WriteString(", ")
			dump(b, n.Alternate)
		}
		b.WriteString(")")
	case *WhileStatement:
		b.WriteString("While(")
		dump(b, n.Test)
		b.WriteString(", ")
		dump(b, n.Body)
		b.WriteString(")")
	case *DoWhileStatement:
		b.WriteString("DoWhile(")
		dump(b, n.Body)
		b.WriteString(", ")
		dump(b, n.Test)
		b.WriteString(")")
	case *ForStatement:
		b.WriteString("For(")
		dump(b, n.Initializer)
		b.WriteString("; ")
		dump(b, n.Test)
		b.WriteString("; ")
		dump(b, n.Update)
		b.WriteString(", ")
		dump(b, n.Body)
		b.WriteString(")")
	case *ForInStatement:
		b.WriteString("ForIn(")
		dump(b, n.Into)
		b.WriteString(", ")
		dump(b, n.Source)
		b.WriteString(", ")
		dump(b, n.Body)
		b.WriteString(")")
	case *BreakStatement:
		b.WriteString("Break")
	case *ContinueStatement:
		b.WriteString("Continue")
	case *ReturnStatement:
		if n.Argument == nil {
			b.WriteString("Return")
			break
		}
		b.WriteString("Return(")
		dump(b, n.Argument)
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "<%T>", node)
	}
}

func dumpList(b *strings.Builder, name string, list StatementList) {
	b.WriteString(name)
	b.WriteString("[")
	for i, s := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		dump(b, s)
	}
	b.WriteString("]")
}

func dumpProperty(b *strings.Builder, p Property) {
	switch p.Kind {
	case PropertySpread:
		b.WriteString("Spread(")
		dump(b, p.Value)
		b.WriteString(")")
	case PropertyShorthand:
		b.WriteString(p.Name.Name)
	default:
		if p.Computed {
			b.WriteString("[")
			dump(b, p.Key)
			b.WriteString("]: ")
		} else {
			dump(b, p.Key)
			b.WriteString(": ")
		}
		dump(b, p.Value)
	}
}

func dumpParameter(b *strings.Builder, p FormalParameter) {
	if p.Rest {
		b.WriteString("...")
	}
	b.WriteString(p.Name.Name)
	if p.Default != nil {
		b.WriteString(" = ")
		dump(b, p.Default)
	}
}
