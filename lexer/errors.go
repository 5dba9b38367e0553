package lexer

import (
	"fmt"

	"github.com/inkmarrow/bloggc/core"
	"github.com/inkmarrow/bloggc/core/position"
)

// UnrecognizedInputError reports a position where no spec in the table
// matched any growable prefix.
type UnrecognizedInputError struct {
	Pos position.Position
	Ch  rune
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("unrecognized input %q at line %d, column %d", e.Ch, e.Pos.Line, e.Pos.Column)
}

func (e *UnrecognizedInputError) ErrorCode() int { return core.EUNRECOGNIZEDINPUT }

func (e *UnrecognizedInputError) UserMessage() string {
	return fmt.Sprintf("unrecognized input at line %d, column %d", e.Pos.Line, e.Pos.Column)
}

// UnterminatedRawTextError reports the opening backtick of a raw text
// block that never found its closing delimiter.
type UnterminatedRawTextError struct {
	Pos position.Position
}

func (e *UnterminatedRawTextError) Error() string {
	return fmt.Sprintf("unterminated raw text block starting at line %d, column %d", e.Pos.Line, e.Pos.Column)
}

func (e *UnterminatedRawTextError) ErrorCode() int { return core.EUNTERMINATEDRAW }

func (e *UnterminatedRawTextError) UserMessage() string {
	return fmt.Sprintf("unterminated raw text block at line %d, column %d", e.Pos.Line, e.Pos.Column)
}
