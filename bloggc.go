// Package bloggc is the compiler's single embedding entry point: wire
// the regex-backed lexer into the parser into the generator, and return
// either generated HTML or the first stage error, short-circuited on
// the first failure with no local recovery.
package bloggc

import (
	"strings"

	"github.com/inkmarrow/bloggc/generator"
	"github.com/inkmarrow/bloggc/lexer"
	"github.com/inkmarrow/bloggc/parser"
)

// CompileError wraps whichever stage failed. It carries the original
// error (with its core.AppError code intact via Unwrap) plus the name of
// the pipeline call that returned it: "parse" or "generate". The parser
// pulls tokens from the lexer lazily, so lexer errors are reported under
// "parse".
type CompileError struct {
	Stage string
	Err   error
}

func (e *CompileError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *CompileError) Unwrap() error { return e.Err }

// Compile runs the full pipeline over source and returns the generated
// HTML. It is the one entry point both the CLI and the wasm binding
// (see wasm/binding.go) call into.
func Compile(source string) (string, error) {
	lex := lexer.New(source, lexer.Specs)
	prog, err := parser.New(lex).Parse()
	if err != nil {
		return "", &CompileError{Stage: "parse", Err: err}
	}
	var out strings.Builder
	if err := generator.Generate(&out, prog); err != nil {
		return "", &CompileError{Stage: "generate", Err: err}
	}
	return out.String(), nil
}
