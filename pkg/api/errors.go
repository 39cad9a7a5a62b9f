package api

import (
	"errors"
	"fmt"
)

// CodeRequestFailed is the code assigned to failures that happen before a
// well-formed server response is obtained: network errors, request encoding
// errors, and non-JSON response bodies.
const CodeRequestFailed = "REQUEST_FAILED"

// Error is the one error type the clients raise deliberately. The server
// reports failures as JSON bodies carrying message/status/code; transport
// and parse failures are normalized into the same shape so callers handle a
// single type.
type Error struct {
	Message string
	Status  int
	Code    string
	// Detail holds the full serialized response body for server-declared
	// errors, or the underlying failure message for transport errors.
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d, code %s)", e.Message, e.Status, e.Code)
}

// RequestFailed wraps a failure that occurred before a server response could
// be parsed.
func RequestFailed(cause error) *Error {
	return &Error{
		Message: "Request failed",
		Status:  500,
		Code:    CodeRequestFailed,
		Detail:  cause.Error(),
	}
}

// AsError returns err as an *Error when it is one, unwrapping as needed.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
