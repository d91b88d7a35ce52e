// Package ast defines the tree-walking interpreter's syntax tree: a closed
// set of expression and statement node variants. Each node carries whatever
// source token it needs to report errors against; there is no separate
// position type since every node already has the token it arose from.
//
// The shapes here were originally sketched by tool/genast (a port of the
// upstream Expr_gen.py code generator) and then hand-maintained; genast stays
// in the repo as a reference for how the node shapes were derived, not as a
// build-time dependency.
package ast

import "github.com/aledsdavies/lox/internal/token"

// Expr is the closed set of expression node variants. A type switch over the
// concrete type is the only form of dispatch; there is no visitor interface.
type Expr interface {
	exprNode()
}

// Literal is a constant value: nil, a bool, a number, or a string.
type Literal struct {
	Value any
}

// Variable reads the current value bound to Name in the active environment.
type Variable struct {
	Name token.Token
}

// Assign evaluates Value and stores it under Name, then yields that value.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Unary applies Op (BANG or MINUS) to Operand.
type Unary struct {
	Op      token.Token
	Operand Expr
}

// Binary applies Op to Left and Right. Op is one of the arithmetic,
// comparison, or equality operators; logical and/or use Logical instead
// because of their short-circuit semantics.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical implements short-circuiting `and`/`or`.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized sub-expression, kept distinct from its inner
// expression so the printer can render "(group ...)".
type Grouping struct {
	Inner Expr
}

// Call invokes Callee with Args. Paren is the closing ")" token, used to
// report arity and callability errors at a stable location.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Call) exprNode()     {}

// Stmt is the closed set of statement node variants.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates Expr for its side effects and discards the value.
type ExpressionStmt struct {
	Expr Expr
}

// PutStmt evaluates Expr, stringifies it, and writes it followed by a
// newline. It is spelled "put" in source; see token.PUT.
type PutStmt struct {
	Expr Expr
}

// VarStmt declares Name in the current scope, bound to Init's value, or nil
// if Init is absent.
type VarStmt struct {
	Name token.Token
	Init Expr // nil when no initializer was given
}

// BlockStmt introduces a new lexical scope around Stmts.
type BlockStmt struct {
	Stmts []Stmt
}

// IfStmt runs Then when Cond is truthy, otherwise Else (which may be nil).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no else branch
}

// WhileStmt re-evaluates Cond before each run of Body.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FunctionStmt declares a function named Name taking Params and running Body
// when called.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt unwinds to the nearest enclosing call frame carrying Value's
// result, or nil if Value is absent.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil when no value was given
}

func (*ExpressionStmt) stmtNode() {}
func (*PutStmt) stmtNode()        {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
