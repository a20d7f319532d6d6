package ast

import (
	"strconv"
	"strings"
)

// Stringify renders an expression as a parenthesized prefix form, the
// same debug shape as a classic Lox AST printer: used by cmd/loxwalk's
// --print-ast output and by parser tests, not for evaluation.
func Stringify(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		if e.Value == nil {
			return "nil"
		}
		return toString(e.Value)
	case *Grouping:
		return parenthesize("group", e.Expression)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Ternary:
		return parenthesize("?:", e.Cond, e.OnTrue, e.OnFalse)
	case *Call:
		return parenthesize("call", append([]Expr{e.Callee}, e.Args...)...)
	case *Get:
		return parenthesize("."+e.Name.Lexeme, e.Object)
	case *Set:
		return parenthesize("="+e.Name.Lexeme, e.Object, e.Value)
	case *This:
		return "this"
	case *Super:
		return "(super " + e.Method.Lexeme + ")"
	case *Array:
		return parenthesize("array", e.Values...)
	case *ArrayGet:
		return parenthesize("[]", e.Array, e.Index)
	case *ArraySet:
		return parenthesize("[]=", e.Array, e.Index, e.Value)
	default:
		return "<unknown expr>"
	}
}

// StringifyStmt renders a single statement, one level deep; blocks
// render their children indented, the same shape AstPrinter.java's
// visitBlockStmt uses.
func StringifyStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return Stringify(s.Expression)
	case *PrintStmt:
		parts := make([]string, len(s.Expressions))
		for i, e := range s.Expressions {
			parts[i] = Stringify(e)
		}
		return "(print " + strings.Join(parts, " ") + ")"
	case *VarStmt:
		if s.Initializer == nil {
			return "(var " + s.Name.Lexeme + ")"
		}
		return "(var " + s.Name.Lexeme + " = " + Stringify(s.Initializer) + ")"
	case *BlockStmt:
		var b strings.Builder
		b.WriteString("(block\n")
		for _, inner := range s.Statements {
			b.WriteString("  ")
			b.WriteString(StringifyStmt(inner))
			b.WriteString("\n")
		}
		b.WriteString(")")
		return b.String()
	case *IfStmt:
		result := "(if " + Stringify(s.Condition) + " " + StringifyStmt(s.Then)
		if s.Else != nil {
			result += " " + StringifyStmt(s.Else)
		}
		return result + ")"
	case *WhileStmt:
		return "(while " + Stringify(s.Condition) + " " + StringifyStmt(s.Body) + ")"
	case *ForStmt:
		result := "(for"
		if s.Initializer != nil {
			result += " " + StringifyStmt(s.Initializer)
		}
		result += " " + Stringify(s.Condition)
		if s.Increment != nil {
			result += " " + Stringify(s.Increment)
		}
		return result + " " + StringifyStmt(s.Body) + ")"
	case *BreakStmt:
		return "(break)"
	case *ContinueStmt:
		return "(continue)"
	case *ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return "(return " + Stringify(s.Value) + ")"
	case *FunctionStmt:
		return "(fun " + s.Name.Lexeme + ")"
	case *ClassStmt:
		return "(class " + s.Name.Lexeme + ")"
	default:
		return "<unknown stmt>"
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(Stringify(e))
	}
	b.WriteString(")")
	return b.String()
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return trimFloat(v)
	default:
		return "nil"
	}
}

// trimFloat mirrors object.Stringify's integer-valued-double rule
// without importing the object package (which already imports ast).
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
