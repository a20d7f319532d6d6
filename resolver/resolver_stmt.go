package resolver

import "github.com/chalkline/loxwalk/ast"

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.PrintStmt:
		for _, e := range s.Expressions {
			r.resolveExpr(e)
		}

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		enclosingLoop := r.currentLoop
		r.currentLoop = loopPresent
		r.resolveStmt(s.Body)
		r.currentLoop = enclosingLoop

	case *ast.ForStmt:
		// The for-init's scope is the caller's responsibility per spec
		// §4.E: it resolves in the surrounding scope, not a fresh one.
		if s.Initializer != nil {
			r.resolveStmt(s.Initializer)
		}
		r.resolveExpr(s.Condition)
		if s.Increment != nil {
			r.resolveExpr(s.Increment)
		}
		enclosingLoop := r.currentLoop
		r.currentLoop = loopPresent
		r.resolveStmt(s.Body)
		r.currentLoop = enclosingLoop

	case *ast.BreakStmt:
		if r.currentLoop == loopNone {
			r.errors = append(r.errors, &ResolveError{Tok: s.Keyword, Message: "Can't use 'break' outside of a loop."})
		}

	case *ast.ContinueStmt:
		if r.currentLoop == loopNone {
			r.errors = append(r.errors, &ResolveError{Tok: s.Keyword, Message: "Can't use 'continue' outside of a loop."})
		}

	case *ast.ReturnStmt:
		if r.currentFn == kindNone {
			r.errors = append(r.errors, &ResolveError{Tok: s.Keyword, Message: "Can't return from top-level code."})
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, kindFunction)

	case *ast.ClassStmt:
		r.declare(s.Name)
		r.define(s.Name)
		for _, method := range s.Methods {
			r.resolveFunction(method, kindMethod)
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFn := r.currentFn
	enclosingLoop := r.currentLoop
	r.currentFn = kind
	r.currentLoop = loopNone

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
	r.currentLoop = enclosingLoop
}
