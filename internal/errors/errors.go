package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Constructor functions, one per taxonomy member

// InvalidURL creates an invalid URL error. This is a programmer error:
// endpoints are assembled from constants and should always parse.
func InvalidURL(message string) *Error {
	return New(CodeInvalidURL, message)
}

// InvalidURLf creates an invalid URL error with formatted message
func InvalidURLf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidURL, format, args...)
}

// Network creates a network error (no response obtained)
func Network(message string) *Error {
	return New(CodeNetworkError, message)
}

// Networkf creates a network error with formatted message
func Networkf(format string, args ...interface{}) *Error {
	return Newf(CodeNetworkError, format, args...)
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message)
}

// Unauthorizedf creates an unauthorized error with formatted message
func Unauthorizedf(format string, args ...interface{}) *Error {
	return Newf(CodeUnauthorized, format, args...)
}

// ClientError creates a client error (4xx other than 401)
func ClientError(message string) *Error {
	return New(CodeClientError, message)
}

// ClientErrorf creates a client error with formatted message
func ClientErrorf(format string, args ...interface{}) *Error {
	return Newf(CodeClientError, format, args...)
}

// ServerError creates a server error (5xx)
func ServerError(message string) *Error {
	return New(CodeServerError, message)
}

// ServerErrorf creates a server error with formatted message
func ServerErrorf(format string, args ...interface{}) *Error {
	return Newf(CodeServerError, format, args...)
}

// Decoding creates a decoding error (success status, unexpected body)
func Decoding(message string) *Error {
	return New(CodeDecodingError, message)
}

// Decodingf creates a decoding error with formatted message
func Decodingf(format string, args ...interface{}) *Error {
	return Newf(CodeDecodingError, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}
