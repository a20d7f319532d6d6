package evaluator

import (
	"fmt"
	"strings"

	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/object"
)

// execute dispatches on statement kind. Every path that swaps e.env
// for the duration of a nested scope restores it before returning —
// normal completion, a runtime error, or a break/continue/return
// transfer all take the same deferred restore, which is the single
// most important invariant in this package (spec §5, §8 invariant 1).
func (e *Evaluator) execute(stmt ast.Stmt) (ExecResult, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.evaluate(s.Expression)
		return resultNone, err

	case *ast.PrintStmt:
		return resultNone, e.execPrint(s)

	case *ast.VarStmt:
		var value object.Value = object.NilValue
		if s.Initializer != nil {
			v, err := e.evaluate(s.Initializer)
			if err != nil {
				return resultNone, err
			}
			value = v
		}
		e.env.Define(s.Name.Lexeme, value)
		return resultNone, nil

	case *ast.BlockStmt:
		return e.executeBlock(s.Statements, object.NewEnclosedEnvironment(e.env))

	case *ast.IfStmt:
		return e.execIf(s)

	case *ast.WhileStmt:
		return e.execWhile(s)

	case *ast.ForStmt:
		return e.execFor(s)

	case *ast.BreakStmt:
		return ExecResult{Signal: SigBreak}, nil

	case *ast.ContinueStmt:
		return ExecResult{Signal: SigContinue}, nil

	case *ast.ReturnStmt:
		var value object.Value = object.NilValue
		if s.Value != nil {
			v, err := e.evaluate(s.Value)
			if err != nil {
				return resultNone, err
			}
			value = v
		}
		return ExecResult{Signal: SigReturn, Value: value}, nil

	case *ast.FunctionStmt:
		fn := &object.Function{Name: s.Name.Lexeme, Params: s.Params, Body: s.Body, Closure: e.env}
		e.env.Define(s.Name.Lexeme, fn)
		return resultNone, nil

	case *ast.ClassStmt:
		return resultNone, e.execClass(s)

	default:
		return resultNone, fmt.Errorf("evaluator: unhandled statement %T", s)
	}
}

// executeBlock swaps e.env to env for the duration of the supplied
// statements and restores the caller's environment on every exit path
// via defer, then runs each statement, stopping early on the first
// error or non-normal signal.
func (e *Evaluator) executeBlock(stmts []ast.Stmt, env *object.Environment) (ExecResult, error) {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()

	for _, stmt := range stmts {
		result, err := e.execute(stmt)
		if err != nil {
			return resultNone, err
		}
		if result.Signal != SigNone {
			return result, nil
		}
	}
	return resultNone, nil
}

func (e *Evaluator) execPrint(s *ast.PrintStmt) error {
	parts := make([]string, len(s.Expressions))
	for i, expr := range s.Expressions {
		v, err := e.evaluate(expr)
		if err != nil {
			return err
		}
		parts[i] = object.Stringify(v)
	}
	fmt.Fprintln(e.out, strings.Join(parts, " ")+" ")
	return nil
}

func (e *Evaluator) execIf(s *ast.IfStmt) (ExecResult, error) {
	cond, err := e.evaluate(s.Condition)
	if err != nil {
		return resultNone, err
	}
	if object.IsTruthy(cond) {
		return e.execute(s.Then)
	}
	if s.Else != nil {
		return e.execute(s.Else)
	}
	return resultNone, nil
}

// execWhile implements §4.E's While: continue re-enters the condition
// check, break exits the loop, and any other signal (return) or error
// propagates straight out.
func (e *Evaluator) execWhile(s *ast.WhileStmt) (ExecResult, error) {
	for {
		cond, err := e.evaluate(s.Condition)
		if err != nil {
			return resultNone, err
		}
		if !object.IsTruthy(cond) {
			return resultNone, nil
		}
		result, err := e.execute(s.Body)
		if err != nil {
			return resultNone, err
		}
		switch result.Signal {
		case SigBreak:
			return resultNone, nil
		case SigReturn:
			return result, nil
		case SigContinue, SigNone:
			// fall through to re-check the condition
		}
	}
}

// execFor implements §4.E's For. The increment runs after the body and
// after a caught continue, but not after a caught break — the exact
// order spec §8 scenario 4 tests ("continue still runs the
// increment").
func (e *Evaluator) execFor(s *ast.ForStmt) (ExecResult, error) {
	if s.Initializer != nil {
		// The for-init executes once in the current environment; no
		// implicit extra scope is introduced here (spec §4.E).
		if _, err := e.execute(s.Initializer); err != nil {
			return resultNone, err
		}
	}
	for {
		cond, err := e.evaluate(s.Condition)
		if err != nil {
			return resultNone, err
		}
		if !object.IsTruthy(cond) {
			return resultNone, nil
		}
		result, err := e.execute(s.Body)
		if err != nil {
			return resultNone, err
		}
		if result.Signal == SigBreak {
			return resultNone, nil
		}
		if result.Signal == SigReturn {
			return result, nil
		}
		// SigNone or SigContinue: run the increment, then loop.
		if s.Increment != nil {
			if _, err := e.evaluate(s.Increment); err != nil {
				return resultNone, err
			}
		}
	}
}

// execClass implements §4.E's two-step class declaration: the name is
// defined as Nil first so that method bodies referencing the class by
// name resolve against a slot that already exists, then the
// constructed Class is assigned into that slot.
func (e *Evaluator) execClass(s *ast.ClassStmt) error {
	e.env.Define(s.Name.Lexeme, object.NilValue)
	class := &object.Class{Name: s.Name.Lexeme}
	return e.env.Assign(s.Name.Lexeme, class, s.Name)
}
