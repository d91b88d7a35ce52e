package interp

import (
	"fmt"

	"github.com/aledsdavies/lox/internal/ast"
)

// returnSignal is the sentinel panicked by a `return` statement and caught at
// the call boundary in Function.Call (or, for a `return` outside any
// function, at the top of Interpreter.Interpret); it never escapes this
// package.
type returnSignal struct {
	value any
}

// Function is a user-declared callable. Per spec.md §4.3/§4.6 ("Function
// parent frame"), its call frame's enclosing environment is always the
// interpreter's globals, not the environment active at declaration time —
// local functions cannot close over local variables. This is a documented
// limitation of the source language, not a bug.
type Function struct {
	decl *ast.FunctionStmt
}

// NewFunction wraps a function declaration as a callable value.
func NewFunction(decl *ast.FunctionStmt) *Function {
	return &Function{decl: decl}
}

func (f *Function) Arity() int { return len(f.decl.Params) }

func (f *Function) Call(in *Interpreter, args []any) (result any, err error) {
	frame := NewEnvironment(in.globals)
	for i, param := range f.decl.Params {
		frame.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			result, err = sig.value, nil
		}
	}()

	if execErr := in.executeBlock(f.decl.Body, frame); execErr != nil {
		return nil, execErr
	}
	return nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme)
}
