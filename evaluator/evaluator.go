// Package evaluator walks statements and expressions produced by the
// parser and resolver, managing nested environments, non-local control
// transfers, operator dispatch, and call dispatch — the evaluator core
// described by spec §4.E.
package evaluator

import (
	"io"

	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/object"
)

// Signal tags what an execute call is unwinding for: normal completion,
// or one of the three non-local transfers spec §9 names as the
// Go-shaped equivalent of exception-based control flow.
type Signal int

const (
	SigNone Signal = iota
	SigBreak
	SigContinue
	SigReturn
)

// ExecResult is returned by every statement execution. Signal != SigNone
// means the call is unwinding past normal completion; Value carries the
// returned value when Signal == SigReturn.
type ExecResult struct {
	Signal Signal
	Value  object.Value
}

var resultNone = ExecResult{Signal: SigNone}

// Evaluator holds the single mutable currentEnv pointer spec §4.E
// describes, plus the global frame and the resolver's distance map.
type Evaluator struct {
	globals   *object.Environment
	env       *object.Environment
	distances map[ast.ID]int
	out       io.Writer
}

// New builds an Evaluator writing `print` output to out, with an empty
// global environment. Call DefineGlobal to seed built-ins before
// Interpret.
func New(out io.Writer) *Evaluator {
	globals := object.NewEnvironment()
	return &Evaluator{globals: globals, env: globals, out: out}
}

// DefineGlobal registers a built-in or other pre-bound value in the
// global frame, for the driver to call before Interpret.
func (e *Evaluator) DefineGlobal(name string, v object.Value) {
	e.globals.Define(name, v)
}

// Interpret runs a whole program once against the supplied resolver
// map (spec §6's `interpret(statements, resolverMap)`). A runtime error
// aborts the statement in which it occurred and is returned to the
// driver; a break/continue/return that escapes to the top level is
// reported as a runtime error too (and later statements do not run),
// since the resolver is expected to have rejected it statically.
func (e *Evaluator) Interpret(stmts []ast.Stmt, distances map[ast.ID]int) error {
	e.distances = distances
	for _, stmt := range stmts {
		result, err := e.execute(stmt)
		if err != nil {
			return err
		}
		if result.Signal != SigNone {
			return object.NewRuntimeError(object.Unimplemented, topLevelToken(stmt),
				"%s outside of enclosing construct.", signalName(result.Signal))
		}
	}
	return nil
}

func signalName(s Signal) string {
	switch s {
	case SigBreak:
		return "break"
	case SigContinue:
		return "continue"
	case SigReturn:
		return "return"
	default:
		return "control transfer"
	}
}
