package rescribe

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFIG      = "config"      // missing or invalid configuration
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity or content does not exist
	EUNAVAILABLE = "unavailable" // transient failure, retry may succeed
	EINTERNAL    = "internal"    // internal error
)

// Error represents an application error with a machine-readable code.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("rescribe error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available.
// Non-application errors report a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
