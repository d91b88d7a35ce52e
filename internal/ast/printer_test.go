package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aledsdavies/lox/internal/token"
)

func tok(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: 1}
}

func TestPrint_literalsAndNil(t *testing.T) {
	assert.Equal(t, "nil", Print(&Literal{Value: nil}))
	assert.Equal(t, "true", Print(&Literal{Value: true}))
	assert.Equal(t, "3", Print(&Literal{Value: 3.0}))
	assert.Equal(t, "2.5", Print(&Literal{Value: 2.5}))
	assert.Equal(t, `"hi"`, Print(&Literal{Value: "hi"}))
}

func TestPrint_binaryAndGrouping(t *testing.T) {
	// (1 + 2) * 3
	expr := &Binary{
		Left:  &Grouping{Inner: &Binary{Left: &Literal{Value: 1.0}, Op: tok(token.PLUS, "+"), Right: &Literal{Value: 2.0}}},
		Op:    tok(token.STAR, "*"),
		Right: &Literal{Value: 3.0},
	}
	assert.Equal(t, "(* (group (+ 1 2)) 3)", Print(expr))
}

func TestPrint_unary(t *testing.T) {
	expr := &Unary{Op: tok(token.MINUS, "-"), Operand: &Literal{Value: 5.0}}
	assert.Equal(t, "(- 5)", Print(expr))
}

func TestPrint_variableAndAssign(t *testing.T) {
	name := tok(token.IDENTIFIER, "x")
	assert.Equal(t, "x", Print(&Variable{Name: name}))
	assert.Equal(t, "(= x 1)", Print(&Assign{Name: name, Value: &Literal{Value: 1.0}}))
}

func TestPrint_call(t *testing.T) {
	callee := &Variable{Name: tok(token.IDENTIFIER, "fib")}
	expr := &Call{Callee: callee, Paren: tok(token.RIGHT_PAREN, ")"), Args: []Expr{&Literal{Value: 10.0}}}
	assert.Equal(t, "(call fib 10)", Print(expr))
}
