package generator

import (
	"fmt"

	"github.com/inkmarrow/bloggc/core"
)

// UnknownSectionError reports an article referencing a section name with
// no matching SectionDeclaration.
type UnknownSectionError struct {
	Name string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q", e.Name)
}

func (e *UnknownSectionError) ErrorCode() int { return core.EUNKNOWNSECTION }

func (e *UnknownSectionError) UserMessage() string { return e.Error() }

// IOError wraps a sink write failure.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string { return "write failure: " + e.Cause.Error() }

func (e *IOError) Unwrap() error { return e.Cause }

func (e *IOError) ErrorCode() int { return core.EIO }

func (e *IOError) UserMessage() string { return "failed to write generated output" }
