package socketlabs

import (
	"errors"
	"fmt"
)

// Predefined sentinel errors for common cases.
var (
	// ErrInvalidConfiguration indicates invalid construction-time configuration.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNilMessage indicates Send was called with a nil message.
	ErrNilMessage = errors.New("message is nil")
)

// ValidationError represents a construction-time configuration error with
// specific field information.
type ValidationError struct {
	// Field is the name of the configuration field that failed validation.
	Field string

	// Message is the validation error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// Is implements error matching for errors.Is.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidConfiguration {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// SendError is returned by Client.Send whenever the outcome is anything other
// than Success, whether the send failed locally, at the transport, or was
// rejected by the server. The full SendResponse is always available alongside
// the error.
type SendError struct {
	// Response is the typed outcome of the send.
	Response *SendResponse
}

// Error implements the error interface.
func (e *SendError) Error() string {
	if e.Response.ResponseMessage != "" {
		return fmt.Sprintf("send failed [%s]: %s", e.Response.Result, e.Response.ResponseMessage)
	}
	return fmt.Sprintf("send failed [%s]", e.Response.Result)
}

// Result returns the outcome code of the failed send.
func (e *SendError) Result() Result {
	return e.Response.Result
}

// Is implements error matching for errors.Is on the result code.
func (e *SendError) Is(target error) bool {
	se, ok := target.(*SendError)
	return ok && e.Response.Result == se.Response.Result
}
