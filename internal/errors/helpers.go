package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsInvalidURL checks if an error is an invalid URL error
func IsInvalidURL(err error) bool {
	return GetCode(err) == CodeInvalidURL
}

// IsNetwork checks if an error is a network error
func IsNetwork(err error) bool {
	return GetCode(err) == CodeNetworkError
}

// IsUnauthorized checks if an error is an unauthorized error
func IsUnauthorized(err error) bool {
	return GetCode(err) == CodeUnauthorized
}

// IsClientError checks if an error is a client error
func IsClientError(err error) bool {
	return GetCode(err) == CodeClientError
}

// IsServerError checks if an error is a server error
func IsServerError(err error) bool {
	return GetCode(err) == CodeServerError
}

// IsDecoding checks if an error is a decoding error
func IsDecoding(err error) bool {
	return GetCode(err) == CodeDecodingError
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
