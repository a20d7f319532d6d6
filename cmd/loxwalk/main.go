// Command loxwalk runs loxwalk programs, either a script file or an
// interactive prompt, following the same runFile/runPrompt split and
// exit-code convention as the original jlox driver (spec §6):
// 0 success, 64 usage error, 65 static error, 70 runtime error.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/evaluator"
	"github.com/chalkline/loxwalk/lexer"
	"github.com/chalkline/loxwalk/parser"
	"github.com/chalkline/loxwalk/repl"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	printAST := false
	if len(args) > 0 && args[0] == "--print-ast" {
		printAST = true
		args = args[1:]
	}
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: loxwalk [--print-ast] [script]")
		return 64
	}

	if printAST && len(args) == 1 {
		return printFileAST(args[0])
	}

	eval := newInterpreter()

	if len(args) == 1 {
		return runFile(eval, args[0])
	}
	repl.Start(eval, os.Stderr)
	return 0
}

// printFileAST is the debug path the SPEC_FULL supplemented-features
// section describes: parse a script and print its parenthesized AST instead of
// running it, using the same lex/parse pipeline evaluator.Run drives.
func printFileAST(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 64
	}
	toks, lexErrs := lexer.New(string(source)).ScanTokens()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		return 65
	}
	stmts, parseErrs := parser.New(toks).Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		return 65
	}
	var lines []string
	for _, stmt := range stmts {
		lines = append(lines, ast.StringifyStmt(stmt))
	}
	fmt.Println(strings.Join(lines, "\n"))
	return 0
}

func newInterpreter() *evaluator.Evaluator {
	eval := evaluator.New(os.Stdout)
	for name, builtin := range evaluator.Builtins() {
		eval.DefineGlobal(name, builtin)
	}
	return eval
}

func runFile(eval *evaluator.Evaluator, path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 64
	}
	switch evaluator.Run(eval, string(source), os.Stderr) {
	case evaluator.StatusStaticError:
		return 65
	case evaluator.StatusRuntimeError:
		return 70
	default:
		return 0
	}
}
