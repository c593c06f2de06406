package tools

import (
	"fmt"
)

// Error codes carried in tool error messages. Tool handler errors are
// surfaced to the client as flagged (isError) results by the SDK, never
// as transport failures.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeUnsupported  = "UNSUPPORTED"
	ErrCodeInternal     = "INTERNAL"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{Code: ErrCodeInvalidInput, Message: message}
}

// ErrUnsupported creates an error for a downstream capability the
// connected client does not provide (e.g. sampling).
func ErrUnsupported(message string, cause error) error {
	return &CodedError{Code: ErrCodeUnsupported, Message: message, Cause: cause}
}

// ErrInternal wraps an unexpected failure.
func ErrInternal(message string, cause error) error {
	return &CodedError{Code: ErrCodeInternal, Message: message, Cause: cause}
}
