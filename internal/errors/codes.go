package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes. The transport codes mirror the HTTP status classification
// performed by internal/transport: every failed request maps to exactly
// one of them.
const (
	CodeOK Code = "OK"

	// Transport taxonomy
	CodeInvalidURL    Code = "INVALID_URL"
	CodeNetworkError  Code = "NETWORK_ERROR"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeClientError   Code = "CLIENT_ERROR"
	CodeServerError   Code = "SERVER_ERROR"
	CodeDecodingError Code = "DECODING_ERROR"

	// Local codes for programmer and validation errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// CodeForStatus classifies an HTTP status code into the transport
// taxonomy. 2xx statuses map to CodeOK; callers handle success before
// consulting this.
func CodeForStatus(status int) Code {
	switch {
	case status >= 200 && status < 300:
		return CodeOK
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status >= 400 && status < 500:
		return CodeClientError
	case status >= 500 && status < 600:
		return CodeServerError
	default:
		return CodeDecodingError
	}
}

// Transient reports whether a call failing with this code may succeed
// if simply retried by the user. Unauthorized is not transient: it
// requires re-authentication first.
func (c Code) Transient() bool {
	switch c {
	case CodeNetworkError, CodeServerError:
		return true
	default:
		return false
	}
}
