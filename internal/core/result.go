package core

import "fmt"

// Result is the closed set of outcome codes shared by local validation and
// Injection API response classification. The string values match the
// errorCode strings the API returns, so a response body maps onto the
// enumeration without a translation table.
type Result string

const (
	// ResultSuccess indicates the message was accepted for delivery.
	ResultSuccess Result = "Success"

	// ResultWarning indicates the message was accepted with a warning.
	ResultWarning Result = "Warning"

	// ResultInvalidServerID indicates a missing or non-positive server id.
	ResultInvalidServerID Result = "InvalidServerId"

	// ResultInvalidAPIKey indicates a missing or empty API key.
	ResultInvalidAPIKey Result = "InvalidApiKey"

	// ResultInvalidAuthentication indicates the server rejected the credentials.
	ResultInvalidAuthentication Result = "InvalidAuthentication"

	// ResultAccountDisabled indicates the sending account is disabled.
	ResultAccountDisabled Result = "AccountDisabled"

	// ResultEmailAddressValidationFailed indicates a malformed from or
	// reply-to address.
	ResultEmailAddressValidationFailed Result = "EmailAddressValidationFailed"

	// ResultRecipientValidationFailed indicates a missing, malformed, or
	// over-limit recipient list.
	ResultRecipientValidationFailed Result = "RecipientValidationFailed"

	// ResultMessageValidationFailed indicates a missing subject or body.
	ResultMessageValidationFailed Result = "MessageValidationFailed"

	// ResultAttachmentValidationFailed indicates an attachment that could not
	// be validated or encoded.
	ResultAttachmentValidationFailed Result = "AttachmentValidationFailed"

	// ResultTooManyRecipients indicates the server rejected the recipient count.
	ResultTooManyRecipients Result = "TooManyRecipients"

	// ResultServerValidationFailed indicates the server id failed validation
	// on the remote side.
	ResultServerValidationFailed Result = "ServerValidationFailed"

	// ResultInternalError indicates a server-side failure.
	ResultInternalError Result = "InternalError"

	// ResultUnknownError indicates an unclassifiable failure, including any
	// transport-level error.
	ResultUnknownError Result = "UnknownError"
)

// String returns the wire representation of the result code.
func (r Result) String() string {
	return string(r)
}

// Known reports whether the code belongs to the enumeration.
func (r Result) Known() bool {
	switch r {
	case ResultSuccess, ResultWarning, ResultInvalidServerID, ResultInvalidAPIKey,
		ResultInvalidAuthentication, ResultAccountDisabled,
		ResultEmailAddressValidationFailed, ResultRecipientValidationFailed,
		ResultMessageValidationFailed, ResultAttachmentValidationFailed,
		ResultTooManyRecipients, ResultServerValidationFailed,
		ResultInternalError, ResultUnknownError:
		return true
	default:
		return false
	}
}

// ValidationResult is the outcome of a single validation pass. Validation
// short-circuits on the first violation, so Message describes at most one.
type ValidationResult struct {
	// Code is the result code for the first violation found, or ResultSuccess.
	Code Result

	// Message is a human-readable description of the violation (optional).
	Message string
}

// OK reports whether validation passed.
func (v ValidationResult) OK() bool {
	return v.Code == ResultSuccess
}

// Valid returns a passing validation result.
func Valid() ValidationResult {
	return ValidationResult{Code: ResultSuccess}
}

// Invalid returns a failing validation result with the given code and message.
func Invalid(code Result, format string, args ...any) ValidationResult {
	return ValidationResult{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ResultError is a structured error carrying a result code. It is the error
// shape shared by the request factory and the client facade, mirroring
// ValidationResult so every failure path resolves to the same enumeration.
type ResultError struct {
	// Code is the result code for the failure.
	Code Result

	// Message describes the failure.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ResultError) Error() string {
	if e.Message != "" {
		return string(e.Code) + ": " + e.Message
	}
	return string(e.Code)
}

// Unwrap returns the underlying error.
func (e *ResultError) Unwrap() error {
	return e.Cause
}

// Is implements error matching for errors.Is on the result code.
func (e *ResultError) Is(target error) bool {
	re, ok := target.(*ResultError)
	return ok && e.Code == re.Code
}

// NewResultError creates a result error with the given code and message.
func NewResultError(code Result, format string, args ...any) *ResultError {
	return &ResultError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// MessageResult carries per-recipient detail returned by the server on an
// accepted send.
type MessageResult struct {
	// Index is the position of the message in the submitted batch.
	Index int `json:"index"`

	// AcceptedRecipients is the number of recipients the server accepted.
	AcceptedRecipients int `json:"acceptedRecipients"`

	// ErrorCode is the per-message error code, if any.
	ErrorCode string `json:"errorCode"`

	// AddressResults carries per-address acceptance detail, if any.
	AddressResults []AddressResult `json:"addressResults"`
}

// AddressResult carries per-address acceptance detail within a MessageResult.
type AddressResult struct {
	// EmailAddress is the recipient address the result applies to.
	EmailAddress string `json:"emailAddress"`

	// Accepted reports whether the server accepted the address.
	Accepted bool `json:"accepted"`

	// ErrorCode is the per-address error code, if any.
	ErrorCode string `json:"errorCode"`
}

// SendResponse is the immutable outcome of a send attempt, whether it failed
// locally, at the transport, or was classified from the server's reply.
type SendResponse struct {
	// Result is the top-level outcome code.
	Result Result

	// ResponseMessage describes the outcome in human-readable form (optional).
	ResponseMessage string

	// TransactionReceipt is the opaque identifier the server returns when it
	// accepts a send. Empty unless Result is ResultSuccess.
	TransactionReceipt string

	// MessageResults carries per-message detail from the server, if present.
	MessageResults []MessageResult
}

// Success reports whether the send was accepted.
func (r *SendResponse) Success() bool {
	return r.Result == ResultSuccess
}
