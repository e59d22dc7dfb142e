package errors

import (
	stderrors "errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the chain.
// If err is nil, Wrap returns nil. If err is already an *Error, the wrapped
// error keeps its code; otherwise the result has CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if stderrors.As(err, &e) {
		return &Error{
			code:     e.code,
			message:  message,
			cause:    err,
			metadata: e.Metadata(),
		}
	}
	return New(CodeInternal, message, WithCause(err))
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error under a specific code.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return New(code, message, WithCause(err))
}

// AsError extracts an *Error from an error chain, or nil if none is present.
func AsError(err error) *Error {
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether any error in the chain carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.code == code
	}
	return false
}
