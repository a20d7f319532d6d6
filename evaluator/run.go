package evaluator

import (
	"fmt"
	"io"

	"github.com/chalkline/loxwalk/lexer"
	"github.com/chalkline/loxwalk/object"
	"github.com/chalkline/loxwalk/parser"
	"github.com/chalkline/loxwalk/resolver"
)

// RunStatus mirrors the exit-code split spec §6 describes for the CLI
// driver: StatusOK, StatusStaticError (scan/parse/resolve failed, exit
// 65), StatusRuntimeError (evaluation failed, exit 70).
type RunStatus int

const (
	StatusOK RunStatus = iota
	StatusStaticError
	StatusRuntimeError
)

// Run lexes, parses, resolves, and evaluates one source string against
// e, writing runtime-error detail to errOut. It does not exit the
// process — that is cmd/loxwalk's job, from the returned RunStatus.
func Run(e *Evaluator, source string, errOut io.Writer) RunStatus {
	toks, lexErrs := lexer.New(source).ScanTokens()
	if len(lexErrs) > 0 {
		reportStatic(errOut, lexErrs)
		return StatusStaticError
	}

	stmts, parseErrs := parser.New(toks).Parse()
	if len(parseErrs) > 0 {
		reportStatic(errOut, parseErrs)
		return StatusStaticError
	}

	distances, resolveErrs := resolver.New().Resolve(stmts)
	if len(resolveErrs) > 0 {
		reportStatic(errOut, resolveErrs)
		return StatusStaticError
	}

	if err := e.Interpret(stmts, distances); err != nil {
		reportRuntime(errOut, err)
		return StatusRuntimeError
	}
	return StatusOK
}

func reportStatic(w io.Writer, errs []error) {
	for _, err := range errs {
		fmt.Fprintln(w, err)
	}
}

// reportRuntime prints a runtime error the way spec §6 specifies:
// "<message>\n[line N]". object.RuntimeError.Error() already produces
// that shape; any other error type (an internal evaluator bug) prints
// as-is.
func reportRuntime(w io.Writer, err error) {
	if rerr, ok := err.(*object.RuntimeError); ok {
		fmt.Fprintln(w, rerr.Error())
		return
	}
	fmt.Fprintln(w, err)
}
