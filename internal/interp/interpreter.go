// Package interp is the tree-walking evaluator: it executes an AST produced
// by the parser against a chain of Environment frames, producing side
// effects (put, natives) and reporting runtime errors through a
// diagnostics.Sink.
package interp

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aledsdavies/lox/internal/ast"
	"github.com/aledsdavies/lox/internal/diagnostics"
	"github.com/aledsdavies/lox/internal/token"
)

// Interpreter walks a statement list against a single mutable
// current-environment pointer, initially globals (spec.md §4.4).
type Interpreter struct {
	globals *Environment
	env     *Environment

	out    io.Writer
	sink   diagnostics.Sink
	logger *slog.Logger
}

// New returns an Interpreter writing `put` output to out and reporting
// runtime errors to sink. A nil logger disables debug tracing. The globals
// frame is populated with the native registry immediately.
func New(out io.Writer, sink diagnostics.Sink, logger *slog.Logger) *Interpreter {
	globals := NewEnvironment(nil)
	outFile, _ := out.(*os.File)
	if outFile == nil {
		outFile = os.Stdout
	}
	defineNatives(globals, outFile)

	return &Interpreter{
		globals: globals,
		env:     globals,
		out:     out,
		sink:    sink,
		logger:  logger,
	}
}

// Interpret executes each statement in order, stopping at the first runtime
// error (spec.md §4.6: evaluation stops for the current program but the
// driver continues with fresh error flags on the next REPL line).
func (in *Interpreter) Interpret(stmts []ast.Stmt) (err error) {
	// A `return` at the top level (outside any function call frame) has
	// nowhere to unwind to; per spec.md §4.4 it simply terminates execution
	// rather than propagating as an error.
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(returnSignal); !ok {
				panic(r)
			}
		}
	}()

	for _, s := range stmts {
		if err = in.execute(s); err != nil {
			if rerr, ok := err.(*RuntimeError); ok {
				in.sink.RuntimeError(rerr.Token.Line, rerr.Message)
			}
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(s ast.Stmt) error {
	if in.logger != nil {
		in.logger.Debug("executing statement", "type", fmt.Sprintf("%T", s))
	}
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		_, err := in.eval(n.Expr)
		return err
	case *ast.PutStmt:
		v, err := in.eval(n.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, stringify(v))
		return nil
	case *ast.VarStmt:
		var value any
		if n.Init != nil {
			v, err := in.eval(n.Init)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(n.Name.Lexeme, value)
		return nil
	case *ast.BlockStmt:
		return in.executeBlock(n.Stmts, NewEnvironment(in.env))
	case *ast.IfStmt:
		cond, err := in.eval(n.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(n.Then)
		}
		if n.Else != nil {
			return in.execute(n.Else)
		}
		return nil
	case *ast.WhileStmt:
		for {
			cond, err := in.eval(n.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(n.Body); err != nil {
				return err
			}
		}
	case *ast.FunctionStmt:
		in.env.Define(n.Name.Lexeme, NewFunction(n))
		return nil
	case *ast.ReturnStmt:
		var value any
		if n.Value != nil {
			v, err := in.eval(n.Value)
			if err != nil {
				return err
			}
			value = v
		}
		panic(returnSignal{value: value})
	default:
		return fmt.Errorf("interp: unhandled statement type %T", s)
	}
}

// executeBlock runs stmts under frame, restoring the prior environment on
// every exit path — normal completion, a runtime error, or a return unwind
// panicking through (spec.md §5: this must hold on every exit path).
func (in *Interpreter) executeBlock(stmts []ast.Stmt, frame *Environment) (err error) {
	previous := in.env
	in.env = frame
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err = in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) eval(e ast.Expr) (any, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return n.Value, nil
	case *ast.Grouping:
		return in.eval(n.Inner)
	case *ast.Variable:
		return in.env.Get(n.Name)
	case *ast.Assign:
		value, err := in.eval(n.Value)
		if err != nil {
			return nil, err
		}
		if err := in.env.Assign(n.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	case *ast.Logical:
		return in.evalLogical(n)
	case *ast.Unary:
		return in.evalUnary(n)
	case *ast.Binary:
		return in.evalBinary(n)
	case *ast.Call:
		return in.evalCall(n)
	default:
		return nil, fmt.Errorf("interp: unhandled expr type %T", e)
	}
}

func (in *Interpreter) evalLogical(n *ast.Logical) (any, error) {
	left, err := in.eval(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op.Kind == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.eval(n.Right)
}

func (in *Interpreter) evalUnary(n *ast.Unary) (any, error) {
	operand, err := in.eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op.Kind {
	case token.BANG:
		return !isTruthy(operand), nil
	case token.MINUS:
		num, ok := operand.(float64)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operand must be a number."}
		}
		return -num, nil
	default:
		return nil, &RuntimeError{Token: n.Op, Message: "Unknown unary operator."}
	}
}

func (in *Interpreter) evalBinary(n *ast.Binary) (any, error) {
	left, err := in.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	case token.PLUS:
		return addValues(left, right, n.Op)
	case token.MINUS, token.STAR, token.SLASH, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		lnum, lok := left.(float64)
		rnum, rok := right.(float64)
		if !lok || !rok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operands must be numbers."}
		}
		switch n.Op.Kind {
		case token.MINUS:
			return lnum - rnum, nil
		case token.STAR:
			return lnum * rnum, nil
		case token.SLASH:
			return lnum / rnum, nil
		case token.GREATER:
			return lnum > rnum, nil
		case token.GREATER_EQUAL:
			return lnum >= rnum, nil
		case token.LESS:
			return lnum < rnum, nil
		case token.LESS_EQUAL:
			return lnum <= rnum, nil
		}
	}
	return nil, &RuntimeError{Token: n.Op, Message: "Unknown binary operator."}
}

// addValues implements spec.md §4.4's `+`: numbers add, strings concatenate,
// any other combination is a runtime error.
func addValues(left, right any, op token.Token) (any, error) {
	if lnum, ok := left.(float64); ok {
		if rnum, ok := right.(float64); ok {
			return lnum + rnum, nil
		}
	}
	if lstr, ok := left.(string); ok {
		if rstr, ok := right.(string); ok {
			return lstr + rstr, nil
		}
	}
	return nil, &RuntimeError{Token: op, Message: "Operand must be two numbers or two strings"}
}

func (in *Interpreter) evalCall(n *ast.Call) (any, error) {
	callee, err := in.eval(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: n.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, &RuntimeError{Token: n.Paren, Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args))}
	}
	if in.logger != nil {
		in.logger.Debug("calling function", "callee", fn.String(), "argc", len(args))
	}
	return fn.Call(in, args)
}
