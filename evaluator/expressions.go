package evaluator

import (
	"fmt"

	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/object"
	"github.com/chalkline/loxwalk/token"
)

func (e *Evaluator) evaluate(expr ast.Expr) (object.Value, error) {
	switch x := expr.(type) {
	case *ast.Literal:
		return literalValue(x.Value), nil

	case *ast.Grouping:
		return e.evaluate(x.Expression)

	case *ast.Variable:
		return e.lookupVariable(x)

	case *ast.Assign:
		return e.evalAssign(x)

	case *ast.Unary:
		return e.evalUnary(x)

	case *ast.Binary:
		return e.evalBinary(x)

	case *ast.Logical:
		return e.evalLogical(x)

	case *ast.Ternary:
		return e.evalTernary(x)

	case *ast.Call:
		return e.evalCall(x)

	case *ast.Get:
		return e.evalGet(x)

	case *ast.Set:
		return e.evalSet(x)

	case *ast.This, *ast.Super, *ast.Array, *ast.ArrayGet, *ast.ArraySet:
		return nil, object.NewRuntimeError(object.Unimplemented, exprToken(x),
			"%T is not implemented by this evaluator.", x)

	default:
		return nil, fmt.Errorf("evaluator: unhandled expression %T", x)
	}
}

// literalValue converts the parser's `any`-typed literal payload into
// the tagged Value domain. nil (the `nil` keyword) and bool literals
// arrive untyped from the AST; numbers and strings arrive pre-decoded
// by the lexer.
func literalValue(v any) object.Value {
	switch v := v.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.Bool(v)
	case float64:
		return object.Number(v)
	case string:
		return object.String(v)
	case object.Value:
		return v
	default:
		return object.NilValue
	}
}

func (e *Evaluator) lookupVariable(v *ast.Variable) (object.Value, error) {
	if distance, ok := e.distances[v.ID()]; ok {
		return e.env.GetAt(distance, v.Name.Lexeme), nil
	}
	return e.globals.Get(v.Name.Lexeme, v.Name)
}

func (e *Evaluator) evalAssign(a *ast.Assign) (object.Value, error) {
	value, err := e.evaluate(a.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := e.distances[a.ID()]; ok {
		e.env.AssignAt(distance, a.Name.Lexeme, value)
		return value, nil
	}
	if err := e.globals.Assign(a.Name.Lexeme, value, a.Name); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *Evaluator) evalLogical(l *ast.Logical) (object.Value, error) {
	left, err := e.evaluate(l.Left)
	if err != nil {
		return nil, err
	}
	switch l.Operator.Type {
	case token.OR:
		if object.IsTruthy(left) {
			return left, nil
		}
	case token.AND:
		if !object.IsTruthy(left) {
			return left, nil
		}
	}
	return e.evaluate(l.Right)
}

func (e *Evaluator) evalTernary(t *ast.Ternary) (object.Value, error) {
	cond, err := e.evaluate(t.Cond)
	if err != nil {
		return nil, err
	}
	if object.IsTruthy(cond) {
		return e.evaluate(t.OnTrue)
	}
	return e.evaluate(t.OnFalse)
}

func (e *Evaluator) evalGet(g *ast.Get) (object.Value, error) {
	obj, err := e.evaluate(g.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, object.NewRuntimeError(object.TypeError, g.Name, "Only instances have properties.")
	}
	return instance.Get(g.Name.Lexeme, g.Name)
}

func (e *Evaluator) evalSet(s *ast.Set) (object.Value, error) {
	obj, err := e.evaluate(s.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, object.NewRuntimeError(object.TypeError, s.Name, "Only instances have fields.")
	}
	value, err := e.evaluate(s.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(s.Name.Lexeme, value)
	return value, nil
}

// exprToken recovers a token to report against for expression kinds
// that are parsed but not evaluated (spec §9 Open Questions). Array
// nodes carry no token of their own, so those fall back to the zero
// token; This/Super always carry their keyword.
func exprToken(expr ast.Expr) token.Token {
	switch x := expr.(type) {
	case *ast.This:
		return x.Keyword
	case *ast.Super:
		return x.Keyword
	default:
		return token.Token{}
	}
}
