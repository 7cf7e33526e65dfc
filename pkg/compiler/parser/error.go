package parser

import (
	"fmt"

	"github.com/minic-lang/minic/pkg/compiler/token"
)

// SyntaxError reports the first grammar violation found. Token is the
// offending token, or nil when the input ended before the grammar was
// satisfied.
type SyntaxError struct {
	Msg   string
	Token *token.Token
}

func (e *SyntaxError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("syntax error at line %d, column %d: %s, found %q (%s)",
			e.Token.Line, e.Token.Column, e.Msg, e.Token.Text, e.Token.Category)
	}
	return fmt.Sprintf("syntax error at end of input: %s", e.Msg)
}

// errAt builds a SyntaxError for the given token, which may be nil.
func errAt(tok *token.Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Token: tok}
}
