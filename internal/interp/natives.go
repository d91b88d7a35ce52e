package interp

import (
	"fmt"
	"os"
	"time"
)

// native wraps a host-implemented built-in as a Callable, per spec.md §4.5.
type native struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []any) (any, error)
}

func (n *native) Arity() int { return n.arity }

func (n *native) Call(in *Interpreter, args []any) (any, error) {
	return n.fn(in, args)
}

func (n *native) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}

// defineNatives installs clock/clear/quit/str into globals at startup.
func defineNatives(globals *Environment, out *os.File) {
	globals.Define("clock", &native{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []any) (any, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})

	globals.Define("clear", &native{
		name:  "clear",
		arity: 0,
		fn: func(_ *Interpreter, _ []any) (any, error) {
			fmt.Fprint(out, "\033[H\033[2J")
			return float64(0), nil
		},
	})

	globals.Define("quit", &native{
		name:  "quit",
		arity: 0,
		fn: func(_ *Interpreter, _ []any) (any, error) {
			os.Exit(0)
			return nil, nil
		},
	})

	globals.Define("str", &native{
		name:  "str",
		arity: 1,
		fn: func(_ *Interpreter, args []any) (any, error) {
			return stringify(args[0]), nil
		},
	})
}
