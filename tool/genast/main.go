// Command genast emits the internal/ast node declarations from a small
// type-description table, the same job the upstream Expr_gen.py tool does
// for the Python AST. It is not part of the build graph — internal/ast's
// hand-maintained source is authoritative — but regenerates the file if the
// node shapes ever change.
//
// Usage: genast <output directory>
package main

import (
	"fmt"
	"os"
	"strings"
)

type typeDef struct {
	name   string
	fields string // "Field type, Field type"
}

var exprTypes = []typeDef{
	{"Literal", "Value any"},
	{"Variable", "Name token.Token"},
	{"Assign", "Name token.Token, Value Expr"},
	{"Unary", "Op token.Token, Operand Expr"},
	{"Binary", "Left Expr, Op token.Token, Right Expr"},
	{"Logical", "Left Expr, Op token.Token, Right Expr"},
	{"Grouping", "Inner Expr"},
	{"Call", "Callee Expr, Paren token.Token, Args []Expr"},
}

var stmtTypes = []typeDef{
	{"ExpressionStmt", "Expr Expr"},
	{"PutStmt", "Expr Expr"},
	{"VarStmt", "Name token.Token, Init Expr"},
	{"BlockStmt", "Stmts []Stmt"},
	{"IfStmt", "Cond Expr, Then Stmt, Else Stmt"},
	{"WhileStmt", "Cond Expr, Body Stmt"},
	{"FunctionStmt", "Name token.Token, Params []token.Token, Body []Stmt"},
	{"ReturnStmt", "Keyword token.Token, Value Expr"},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: genast <output directory>")
		os.Exit(64)
	}
	outputDir := os.Args[1]

	var b strings.Builder
	b.WriteString("// Code generated by tool/genast. DO NOT EDIT.\n\n")
	b.WriteString("package ast\n\n")
	b.WriteString("import \"github.com/aledsdavies/lox/internal/token\"\n\n")

	defineAST(&b, "Expr", "exprNode", exprTypes)
	defineAST(&b, "Stmt", "stmtNode", stmtTypes)

	path := outputDir + "/ast_generated.go"
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "genast:", err)
		os.Exit(1)
	}
}

func defineAST(b *strings.Builder, baseName, marker string, types []typeDef) {
	fmt.Fprintf(b, "type %s interface {\n\t%s()\n}\n\n", baseName, marker)
	for _, t := range types {
		fmt.Fprintf(b, "type %s struct {\n", t.name)
		for _, field := range strings.Split(t.fields, ", ") {
			fmt.Fprintf(b, "\t%s\n", field)
		}
		b.WriteString("}\n\n")
	}
	for _, t := range types {
		fmt.Fprintf(b, "func (*%s) %s() {}\n", t.name, marker)
	}
	b.WriteString("\n")
}
