package evaluator

import (
	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/object"
)

// evalCall implements §4.E's Call: callee and arguments evaluate
// left-to-right into a sequential list, the callee must be Callable
// (Class included, since Class is a Callable), arity must match
// exactly, and dispatch goes through Callable.Call.
func (e *Evaluator) evalCall(c *ast.Call) (object.Value, error) {
	callee, err := e.evaluate(c.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(c.Args))
	for i, argExpr := range c.Args {
		v, err := e.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, object.NewRuntimeError(object.TypeError, c.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, object.NewRuntimeError(object.ArityError, c.Paren,
			"Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(e, args)
}

// CallFunction satisfies object.Interpreter: it builds a fresh
// environment as a child of the function's captured closure, binds
// each parameter to its argument, and executes the body, yielding Nil
// on normal completion or the value of a caught Return (spec §4's
// Function and §4.E's Return).
func (e *Evaluator) CallFunction(fn *object.Function, args []object.Value) (object.Value, error) {
	callEnv := object.NewEnclosedEnvironment(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result, err := e.executeBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if result.Signal == SigReturn {
		return result.Value, nil
	}
	return object.NilValue, nil
}
