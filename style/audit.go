// Package style cross-checks and queries the compiler's generated HTML
// against the fixed set of Tailwind-style utility classes baked into
// every fragment template. It has no bearing on whether a program
// compiles -- it is a diagnostic layer the CLI's "query" and "compile
// --audit" modes call into, treating CSS and markup as data to be
// walked rather than rendered.
package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/inkmarrow/bloggc/core"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("bloggc.style")
}

// baseStylesheet declares every utility class the generator's fragment
// templates ever emit. It exists purely so Audit has a ground truth to
// check against -- this compiler ships no actual CSS, the generated
// HTML assumes a Tailwind-equivalent stylesheet is loaded by the page
// embedding it.
const baseStylesheet = `
.text-3xl {}
.w-full {}
.overflow-x-auto {}
.p-8 {}
.bg-opacity-10 {}
.bg-black {}
.italic {}
`

// knownClasses parses baseStylesheet with douceur and collects every
// class selector it declares.
func knownClasses() (map[string]bool, error) {
	sheet, err := parser.Parse(baseStylesheet)
	if err != nil {
		return nil, &AuditError{Cause: err}
	}
	classes := make(map[string]bool)
	for _, rule := range sheet.Rules {
		for _, sel := range rule.Selectors {
			if strings.HasPrefix(sel, ".") {
				classes[strings.TrimPrefix(sel, ".")] = true
			}
		}
	}
	return classes, nil
}

// Audit scans html for className='...' attribute values and reports any
// class token not present in baseStylesheet. It returns the sorted-ish
// (source-order) list of unknown classes found.
func Audit(html string) ([]string, error) {
	known, err := knownClasses()
	if err != nil {
		return nil, err
	}
	var unknown []string
	seen := make(map[string]bool)
	for _, tok := range extractClassTokens(html) {
		if known[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		unknown = append(unknown, tok)
	}
	tracer().Debugf("style: audited %d bytes, %d unknown classes", len(html), len(unknown))
	return unknown, nil
}

// extractClassTokens pulls the contents of every className='...'
// attribute out of html and splits each on whitespace. It is a small
// scanner, not a full HTML parser -- query.go uses x/net/html plus
// cascadia for anything that needs real DOM structure.
func extractClassTokens(html string) []string {
	const attr = "className='"
	var tokens []string
	rest := html
	for {
		i := strings.Index(rest, attr)
		if i < 0 {
			break
		}
		rest = rest[i+len(attr):]
		j := strings.Index(rest, "'")
		if j < 0 {
			break
		}
		tokens = append(tokens, strings.Fields(rest[:j])...)
		rest = rest[j+1:]
	}
	return tokens
}

// AuditError wraps a douceur parse failure over baseStylesheet -- a bug
// in this package, never in the compiled program, since baseStylesheet
// is a compile-time constant.
type AuditError struct {
	Cause error
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("style audit: %v", e.Cause)
}

func (e *AuditError) Unwrap() error { return e.Cause }

func (e *AuditError) ErrorCode() int { return core.EINTERNAL }

func (e *AuditError) UserMessage() string { return "internal stylesheet is malformed" }
