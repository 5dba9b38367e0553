package main

import (
	"errors"

	"github.com/inkmarrow/bloggc/ast"
	"github.com/inkmarrow/bloggc/core/position"
	"github.com/inkmarrow/bloggc/lexer"
	"github.com/inkmarrow/bloggc/parser"
)

// lexTokens runs only the lexer over src, for the "lex" subcommand.
func lexTokens(src string) ([]lexer.Token, error) {
	return lexer.New(src, lexer.Specs).All()
}

// parseProgram runs the lexer and parser over src, for "parse".
func parseProgram(src string) (*ast.Program, error) {
	return parser.New(lexer.New(src, lexer.Specs)).Parse()
}

// errorPosition extracts a source Position from any pipeline error that
// carries one, so renderDiag can print a diag.Snippet around it.
func errorPosition(err error) (position.Position, bool) {
	var unrecognized *lexer.UnrecognizedInputError
	if errors.As(err, &unrecognized) {
		return unrecognized.Pos, true
	}
	var unterminated *lexer.UnterminatedRawTextError
	if errors.As(err, &unterminated) {
		return unterminated.Pos, true
	}
	var unexpected *parser.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		return unexpected.Pos, true
	}
	return position.Position{}, false
}
