package parser

import (
	"fmt"

	"github.com/inkmarrow/bloggc/core"
	"github.com/inkmarrow/bloggc/core/position"
	"github.com/inkmarrow/bloggc/lexer"
)

// UnexpectedTokenError reports a token/kind mismatch, with an optional
// "did you mean" suggestion (see suggestKeyword in parser.go) attached
// when the found token is an identifier that nearly matches a keyword.
type UnexpectedTokenError struct {
	Expected   lexer.Kind
	Found      lexer.Kind
	Lexeme     string
	Pos        position.Position
	Suggestion string
}

func (e *UnexpectedTokenError) Error() string {
	msg := fmt.Sprintf("expected %s but found %s %q at line %d, column %d",
		e.Expected, e.Found, e.Lexeme, e.Pos.Line, e.Pos.Column)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *UnexpectedTokenError) ErrorCode() int { return core.EUNEXPECTEDTOKEN }

func (e *UnexpectedTokenError) UserMessage() string { return e.Error() }

// UnexpectedEofError reports running out of tokens while expecting more.
type UnexpectedEofError struct {
	Expected lexer.Kind
}

func (e *UnexpectedEofError) Error() string {
	return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
}

func (e *UnexpectedEofError) ErrorCode() int { return core.EUNEXPECTEDEOF }

func (e *UnexpectedEofError) UserMessage() string { return e.Error() }
