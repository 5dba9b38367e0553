// Package fs is the compiler's sole filesystem boundary: read a source
// file, normalize it to NFC so that the lexer's rune-by-rune matching
// never has to reason about combining-character variants, and write
// generated output back out. One file in, one file out, no caching
// layer.
package fs

import (
	"os"

	"github.com/inkmarrow/bloggc/core"
	"golang.org/x/text/unicode/norm"
)

// ReadSource reads path and returns its contents normalized to NFC. The
// lexer matches runes verbatim, so normalizing up front means a source
// file saved with decomposed accents lexes identically to one saved
// precomposed.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", core.WrapError(err, core.EIO, "cannot read %s", path)
	}
	return norm.NFC.String(string(data)), nil
}

// WriteOutput writes html to path, creating or truncating it.
func WriteOutput(path string, html string) error {
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return core.WrapError(err, core.EIO, "cannot write %s", path)
	}
	return nil
}
