// Package apperr defines the error taxonomy shared by the session and
// message services. Repositories return raw storage errors. The
// services assign a Code only when rejecting an empty send text or an
// empty search query; whatsmeow failures and "not connected" errors are
// wrapped with fmt.Errorf and carry no Code, so GetCode reports them as
// CodeInternal. Each transport maps the Code to its own wire convention.
package apperr

import "fmt"

// Code mirrors the handful of outcomes the transports actually
// distinguish. It is deliberately small: gRPC has ~17 status codes,
// but this daemon only ever needs these.
type Code int

const (
	CodeUnknown Code = iota
	CodeInvalidArgument
	CodeNotFound
	CodeFailedPrecondition
	CodeUnavailable
	CodeInternal
	CodeCanceled
	CodeDeadlineExceeded
)

func (c Code) String() string {
	switch c {
	case CodeInvalidArgument:
		return "invalid_argument"
	case CodeNotFound:
		return "not_found"
	case CodeFailedPrecondition:
		return "failed_precondition"
	case CodeUnavailable:
		return "unavailable"
	case CodeInternal:
		return "internal"
	case CodeCanceled:
		return "canceled"
	case CodeDeadlineExceeded:
		return "deadline_exceeded"
	default:
		return "unknown"
	}
}

// Error carries a Code alongside the wrapped cause so callers can
// branch on the taxonomy while %w-chains still reach the original error.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...interface{}) *Error {
	return New(CodeNotFound, fmt.Sprintf(format, args...))
}

func FailedPrecondition(format string, args ...interface{}) *Error {
	return New(CodeFailedPrecondition, fmt.Sprintf(format, args...))
}

func Unavailable(cause error, format string, args ...interface{}) *Error {
	return Wrap(CodeUnavailable, fmt.Sprintf(format, args...), cause)
}

func Internal(cause error, format string, args ...interface{}) *Error {
	return Wrap(CodeInternal, fmt.Sprintf(format, args...), cause)
}

// GetCode extracts the Code from err if it is (or wraps) an *Error,
// defaulting to CodeInternal for anything else so a transport never
// has to special-case a bare error.
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	var appErr *Error
	if ok := asError(err, &appErr); ok {
		return appErr.Code
	}
	return CodeInternal
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
