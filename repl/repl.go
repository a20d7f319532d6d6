// Package repl drives the interactive prompt, the same readline-backed
// loop structure as the teacher's source/repl/repl.go: read a line,
// hand it to the evaluator, print whatever it writes, repeat.
package repl

import (
	"io"
	"strings"

	"github.com/lmorg/readline"

	"github.com/chalkline/loxwalk/evaluator"
)

const prompt = "> "

// Start runs the REPL until EOF or a read error. Each line is run as
// its own program against the same Evaluator, so top-level var/fun/
// class declarations persist across lines the way a REPL session
// expects.
func Start(e *evaluator.Evaluator, errOut io.Writer) {
	rline := readline.NewInstance()
	rline.SetPrompt(prompt)

	for {
		line, err := rline.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		evaluator.Run(e, line, errOut)
	}
}
