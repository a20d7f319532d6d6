package parser

import (
	"fmt"

	"github.com/chalkline/loxwalk/token"
)

// ParseError reports a static error at a source line, mirroring
// lexer.LexError's shape (spec §6: "[line N] Error<where>: message").
type ParseError struct {
	Tok     token.Token
	Message string
}

func (e *ParseError) Error() string {
	where := " at end"
	if e.Tok.Type != token.EOF {
		where = " at '" + e.Tok.Lexeme + "'"
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Tok.Line, where, e.Message)
}
