package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders an expression as its canonical parenthesized form, e.g.
// `(+ 1 (* 2 3))`. It is a pure consumer of the tree: it never evaluates
// anything and has no side effects. Ported from the upstream AstPrinter.py
// visitor; here a type switch stands in for the visitor pattern since the
// node set is closed.
func Print(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return literalString(n.Value)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return parenthesize("=", &Variable{Name: n.Name}, n.Value)
	case *Unary:
		return parenthesize(n.Op.Lexeme, n.Operand)
	case *Binary:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *Logical:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *Grouping:
		return parenthesize("group", n.Inner)
	case *Call:
		return parenthesize("call", append([]Expr{n.Callee}, n.Args...)...)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func literalString(v any) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return `"` + val + `"`
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}
