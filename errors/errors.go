package errors

import (
	"fmt"
)

// Error is a failure annotated with a Code and optional metadata.
// It implements the standard error interface and supports errors.Unwrap.
type Error struct {
	code     Code
	message  string
	cause    error
	metadata map[string]string
}

// Error returns the error message, including the cause when present.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the failure code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Metadata returns a copy of the error metadata.
func (e *Error) Metadata() map[string]string {
	result := make(map[string]string, len(e.metadata))
	for k, v := range e.metadata {
		result[k] = v
	}
	return result
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithCause sets the underlying cause.
func WithCause(cause error) Option {
	return func(e *Error) {
		e.cause = cause
	}
}

// WithMetadata attaches a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(e *Error) {
		if e.metadata == nil {
			e.metadata = make(map[string]string)
		}
		e.metadata[key] = value
	}
}

// New creates an Error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	e := &Error{
		code:    code,
		message: message,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// NotFound creates a NOT_FOUND error.
func NotFound(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// Malformed creates a MALFORMED error.
func Malformed(format string, args ...interface{}) *Error {
	return Newf(CodeMalformed, format, args...)
}

// InvalidPattern creates an INVALID_PATTERN error.
func InvalidPattern(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidPattern, format, args...)
}

// DuplicateKey creates a DUPLICATE_KEY error.
func DuplicateKey(format string, args ...interface{}) *Error {
	return Newf(CodeDuplicateKey, format, args...)
}

// InvalidInput creates an INVALID_INPUT error.
func InvalidInput(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidInput, format, args...)
}

// IO creates an IO_ERROR error.
func IO(format string, args ...interface{}) *Error {
	return Newf(CodeIO, format, args...)
}

// Internal creates an INTERNAL error.
func Internal(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}
