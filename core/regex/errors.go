package regex

import "github.com/inkmarrow/bloggc/core"

// InvalidPatternError reports a malformed pattern string at build time.
type InvalidPatternError struct {
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return "invalid pattern " + quote(e.Pattern) + ": " + e.Reason
}

func (e *InvalidPatternError) ErrorCode() int { return core.EINVALIDPATTERN }

func (e *InvalidPatternError) UserMessage() string {
	return "invalid regex pattern: " + e.Reason
}

func quote(s string) string { return "\"" + s + "\"" }

func invalid(pattern, reason string) error {
	return &InvalidPatternError{Pattern: pattern, Reason: reason}
}
