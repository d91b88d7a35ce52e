package interp

import (
	"fmt"
	"strconv"

	"github.com/aledsdavies/lox/internal/token"
)

// RuntimeError is a runtime diagnostic anchored to the token whose evaluation
// triggered it: a type mismatch, an undefined variable, a bad call.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Token.Line, e.Message)
}

// Callable is anything invocable from Lox source: a user-declared function or
// a native. Arity reports the expected argument count; Call performs the
// invocation once arity has already been checked.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []any) (any, error)
	String() string
}

// isTruthy implements spec.md §4.4: nil and boolean false are falsy,
// everything else (including 0 and "") is truthy.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md §4.4: nil == nil is true; values of different
// concrete tags are never equal; same-tag values compare by underlying
// equality.
func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify implements spec.md §4.4's stringification rules, used by `put`
// and the `str` native.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		s := strconv.FormatFloat(val, 'f', -1, 64)
		return s
	case string:
		return val
	case Callable:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
