// Package regex implements a small regular-expression engine from
// scratch: infix-to-postfix conversion, Thompson-style NFA construction
// over an arena of states, a cached epsilon-closure, and whole-string
// simulation. There is no backtracking and no true DFA state-merging —
// simulation walks the NFA's active-state set directly every step.
package regex

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bloggc.regex'.
func tracer() tracing.Trace {
	return tracing.Select("bloggc.regex")
}
