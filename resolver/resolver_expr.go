package resolver

import "github.com/chalkline/loxwalk/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// nothing to resolve

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
				r.errors = append(r.errors, &ResolveError{Tok: e.Name, Message: "Can't read local variable in its own initializer."})
			}
		}
		r.resolveLocal(e.ID(), e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name.Lexeme)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Ternary:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.OnTrue)
		r.resolveExpr(e.OnFalse)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		r.resolveLocal(e.ID(), "this")

	case *ast.Super:
		r.resolveLocal(e.ID(), "super")

	case *ast.Array:
		for _, v := range e.Values {
			r.resolveExpr(v)
		}

	case *ast.ArrayGet:
		r.resolveExpr(e.Array)
		r.resolveExpr(e.Index)

	case *ast.ArraySet:
		r.resolveExpr(e.Array)
		r.resolveExpr(e.Index)
		r.resolveExpr(e.Value)
	}
}
