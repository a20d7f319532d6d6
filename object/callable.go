package object

import (
	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/token"
)

// Interpreter is the slice of the evaluator that a Callable needs in
// order to run a function body or built-in: just enough to execute a
// block of statements against a fresh environment and catch a Return
// transfer. Kept as an interface here (rather than importing the
// evaluator package directly) to avoid object<->evaluator import cycle.
type Interpreter interface {
	CallFunction(fn *Function, args []Value) (Value, error)
}

// Callable is the uniform shape of anything that can appear left of a
// call expression: user functions, classes (as zero-arg constructors),
// and built-ins.
type Callable interface {
	Value
	Arity() int
	Call(interp Interpreter, args []Value) (Value, error)
}

// Function captures its parameter list, body, and defining environment,
// so calling it can build a fresh child environment, bind parameters,
// and execute the body against that closure per §4's Function.
type Function struct {
	Name    string
	Params  []token.Token
	Body    []ast.Stmt
	Closure *Environment
}

func (*Function) Type() Type { return CALLABLE }

func (f *Function) Arity() int { return len(f.Params) }

func (f *Function) Call(interp Interpreter, args []Value) (Value, error) {
	return interp.CallFunction(f, args)
}

// Builtin wraps a Go function as a Callable, for native helpers the
// driver wires into the global environment (e.g. a clock()).
type Builtin struct {
	Name    string
	NumArgs int
	Fn      func(args []Value) (Value, error)
}

func (*Builtin) Type() Type { return CALLABLE }

func (b *Builtin) Arity() int { return b.NumArgs }

func (b *Builtin) Call(interp Interpreter, args []Value) (Value, error) {
	return b.Fn(args)
}
