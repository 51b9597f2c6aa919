package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF means the input ended while a form or a closing
	// parenthesis was still expected.
	ErrUnexpectedEOF = errors.New("unexpected EOF")
	// ErrUnbalancedParens means a closing parenthesis had nothing to close.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	// ErrInvalidNumber means a numeric token is neither an integer nor a
	// float.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrUnexpectedToken means tokens were left over after the first form.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error is returned by the parser. It matches one of the sentinel errors
// above with errors.Is.
type Error struct {
	// Err is the sentinel error describing the failure.
	Err error
	// Offset is the byte offset the failure is attributed to. For
	// ErrUnexpectedEOF it is the outermost unclosed parenthesis, or 0.
	Offset int
	// Token is the text of the offending token, if any.
	Token string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	if e.Token != "" {
		msg += fmt.Sprintf(" (%q)", e.Token)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
