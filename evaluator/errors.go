package evaluator

import (
	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/token"
)

// topLevelToken extracts a token to report against when a non-local
// transfer escapes all the way to the top of the statement loop —
// the resolver is expected to catch break/continue/return misuse
// statically, so this path only fires if that contract is violated.
func topLevelToken(stmt ast.Stmt) token.Token {
	switch s := stmt.(type) {
	case *ast.BreakStmt:
		return s.Keyword
	case *ast.ContinueStmt:
		return s.Keyword
	case *ast.ReturnStmt:
		return s.Keyword
	default:
		return token.Token{}
	}
}
