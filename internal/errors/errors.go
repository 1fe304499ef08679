package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is the structured error every godex layer returns. Code picks the
// gRPC status, Message is shown to callers and Meta travels as status details.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so errors.Is(err, NotFound(""))
// works regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Code == e.Code
}

// WithMeta sets one metadata key and returns e for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a format string
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// wrap builds the outer error. Meta is copied so later WithMeta calls on
// the wrapper leave the cause untouched.
func wrap(err error, code Code, message string) *Error {
	wrapped := &Error{Code: code, Message: message, Cause: err}
	if inner := lookup(err); inner != nil && len(inner.Meta) > 0 {
		wrapped.Meta = maps.Clone(inner.Meta)
	}
	return wrapped
}

// Wrap adds context to err and keeps its code. Foreign errors become
// CodeInternal. A nil err stays nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, GetCode(err), message)
}

// Wrapf is Wrap with a format string
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode adds context to err and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, code, message)
}

// NotFound reports a missing creature, move, type or roster
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf is NotFound with a format string
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

// InvalidArgument reports a malformed request field
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf is InvalidArgument with a format string
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf reports an id collision
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// OutOfRangef reports a value outside a lookup table
func OutOfRangef(format string, args ...any) *Error { return Newf(CodeOutOfRange, format, args...) }

// Internal reports a bug or an unexpected dependency failure
func Internal(message string) *Error { return New(CodeInternal, message) }

// Internalf is Internal with a format string
func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

// DataLossf reports a catalog file that is internally inconsistent
func DataLossf(format string, args ...any) *Error { return Newf(CodeDataLoss, format, args...) }
