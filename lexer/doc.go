// Package lexer implements the longest-match tokenizer that sits
// between the regex engine and the parser: it grows a candidate buffer
// one rune at a time against the compiled token spec table, remembers
// the most recent successful (kind, length) pair, and commits to the
// longest one once no spec extends the match further.
package lexer

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bloggc.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("bloggc.lexer")
}
