package core

import (
	"errors"
	"fmt"
	"os"
)

// Compiler error codes, one per pipeline failure kind.
const (
	NOERROR            int = 0
	EINVALIDPATTERN    int = 120 // regex engine: malformed pattern
	EUNRECOGNIZEDINPUT int = 121 // lexer: no spec matches
	EUNTERMINATEDRAW   int = 122 // lexer: raw text block never closed
	EUNEXPECTEDTOKEN   int = 123 // parser: token mismatch
	EUNEXPECTEDEOF     int = 124 // parser: ran out of tokens
	EUNKNOWNSECTION    int = 125 // generator: unresolved section reference
	EIO                int = 126 // generator: sink write failure
	EINTERNAL          int = 127
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EINVALIDPATTERN:
		return "invalid regex pattern"
	case EUNRECOGNIZEDINPUT:
		return "unrecognized input"
	case EUNTERMINATEDRAW:
		return "unterminated raw text block"
	case EUNEXPECTEDTOKEN:
		return "unexpected token"
	case EUNEXPECTEDEOF:
		return "unexpected end of input"
	case EUNKNOWNSECTION:
		return "unknown section"
	case EIO:
		return "write failure"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap a nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message. If err is nil, a new error carrying code's default text
// is wrapped instead.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL. If err is nil, NOERROR.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks the code's default text.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints err to stderr, preferring its AppError rendering.
func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
