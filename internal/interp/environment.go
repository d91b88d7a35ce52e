package interp

import (
	"fmt"

	"github.com/aledsdavies/lox/internal/token"
)

// Environment is one frame in the variable scope chain: a flat mapping plus
// an optional enclosing frame. The chain is acyclic and bounded by call/block
// depth (spec.md §9's "Environment chain" design note).
type Environment struct {
	values    map[string]any
	enclosing *Environment
}

// NewEnvironment returns a frame enclosed by parent, or a root frame if
// parent is nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]any), enclosing: parent}
}

// Define unconditionally writes name into this frame, overwriting any
// existing binding for it here.
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get walks frames inside-out looking for name, returning a runtime error
// against tok if it is bound nowhere in the chain.
func (e *Environment) Get(tok token.Token) (any, error) {
	for frame := e; frame != nil; frame = frame.enclosing {
		if v, ok := frame.values[tok.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, &RuntimeError{Token: tok, Message: fmt.Sprintf("Undefined variable '%s'.", tok.Lexeme)}
}

// Assign walks frames inside-out and writes value into the first frame whose
// mapping already contains tok.Lexeme, failing if none does.
func (e *Environment) Assign(tok token.Token, value any) error {
	for frame := e; frame != nil; frame = frame.enclosing {
		if _, ok := frame.values[tok.Lexeme]; ok {
			frame.values[tok.Lexeme] = value
			return nil
		}
	}
	return &RuntimeError{Token: tok, Message: fmt.Sprintf("Undefined variable '%s'.", tok.Lexeme)}
}
