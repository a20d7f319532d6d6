package evaluator

import (
	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/object"
	"github.com/chalkline/loxwalk/token"
)

func (e *Evaluator) evalUnary(u *ast.Unary) (object.Value, error) {
	right, err := e.evaluate(u.Right)
	if err != nil {
		return nil, err
	}
	switch u.Operator.Type {
	case token.MINUS:
		n, ok := right.(object.Number)
		if !ok {
			return nil, object.NewRuntimeError(object.TypeError, u.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return object.Bool(!object.IsTruthy(right)), nil
	default:
		return nil, object.NewRuntimeError(object.TypeError, u.Operator, "Unknown unary operator '%s'.", u.Operator.Lexeme)
	}
}

// evalBinary evaluates left then right, strictly left-to-right, then
// dispatches on operator per the typing table in spec §4.E.
func (e *Evaluator) evalBinary(b *ast.Binary) (object.Value, error) {
	left, err := e.evaluate(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Operator.Type {
	case token.PLUS:
		return evalPlus(left, right, b.Operator)
	case token.MINUS:
		return numericOp(left, right, b.Operator, func(a, c float64) float64 { return a - c })
	case token.STAR:
		return numericOp(left, right, b.Operator, func(a, c float64) float64 { return a * c })
	case token.SLASH:
		return evalDivide(left, right, b.Operator)
	case token.GREATER:
		return evalOrdering(left, right, b.Operator, func(c int) bool { return c > 0 })
	case token.GREATER_EQUAL:
		return evalOrdering(left, right, b.Operator, func(c int) bool { return c >= 0 })
	case token.LESS:
		return evalOrdering(left, right, b.Operator, func(c int) bool { return c < 0 })
	case token.LESS_EQUAL:
		return evalOrdering(left, right, b.Operator, func(c int) bool { return c <= 0 })
	case token.EQUAL_EQUAL:
		return object.Bool(object.IsEqual(left, right)), nil
	case token.BANG_EQUAL:
		return object.Bool(!object.IsEqual(left, right)), nil
	case token.COMMA:
		return right, nil
	default:
		return nil, object.NewRuntimeError(object.TypeError, b.Operator, "Unknown binary operator '%s'.", b.Operator.Lexeme)
	}
}

func evalPlus(left, right object.Value, tok token.Token) (object.Value, error) {
	if ln, ok := left.(object.Number); ok {
		if rn, ok := right.(object.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(object.String); ok {
		if rs, ok := right.(object.String); ok {
			return ls + rs, nil
		}
	}
	return nil, object.NewRuntimeError(object.TypeError, tok, "Operands must be two numbers or two strings.")
}

func numericOp(left, right object.Value, tok token.Token, op func(a, b float64) float64) (object.Value, error) {
	ln, lok := left.(object.Number)
	rn, rok := right.(object.Number)
	if !lok || !rok {
		return nil, object.NewRuntimeError(object.TypeError, tok, "Operands must be numbers.")
	}
	return object.Number(op(float64(ln), float64(rn))), nil
}

func evalDivide(left, right object.Value, tok token.Token) (object.Value, error) {
	ln, lok := left.(object.Number)
	rn, rok := right.(object.Number)
	if !lok || !rok {
		return nil, object.NewRuntimeError(object.TypeError, tok, "Operands must be numbers.")
	}
	if rn == 0 {
		return nil, object.NewRuntimeError(object.DivisionByZero, tok, "Division by zero.")
	}
	return ln / rn, nil
}

// evalOrdering implements <, <=, >, >= for either two numbers or two
// strings (lexicographic), per spec §4.E's Binary table.
func evalOrdering(left, right object.Value, tok token.Token, satisfies func(cmp int) bool) (object.Value, error) {
	if ln, ok := left.(object.Number); ok {
		if rn, ok := right.(object.Number); ok {
			return object.Bool(satisfies(compareFloat(float64(ln), float64(rn)))), nil
		}
	}
	if ls, ok := left.(object.String); ok {
		if rs, ok := right.(object.String); ok {
			return object.Bool(satisfies(compareString(string(ls), string(rs)))), nil
		}
	}
	return nil, object.NewRuntimeError(object.TypeError, tok, "Operands must be two numbers or two strings.")
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
