package lexer

import "fmt"

// LexError reports a static error at a source line as
// "[line N] Error: message", the "[line N] Error<where>: message" shape
// of every pre-evaluation failure with an empty <where> (spec §6).
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}
