package injection

import (
	"net/http"

	"github.com/mirriamronoh/socketlabs-go/internal/core"
)

// responseBody is the JSON shape the Injection API returns.
type responseBody struct {
	ErrorCode          string               `json:"errorCode"`
	TransactionReceipt string               `json:"transactionReceipt"`
	MessageResults     []core.MessageResult `json:"messageResults"`
}

// Parse classifies an HTTP status/body pair into a SendResponse. Every reply
// maps onto the closed result enumeration; unrecognized codes and unreadable
// bodies fall back by status class, then to UnknownError. Only a 200 reply
// can classify as Success or Warning; an accepting error code on any other
// status is not trusted.
func Parse(statusCode int, body []byte) *core.SendResponse {
	var parsed responseBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.ErrorCode != "" {
		code := core.Result(parsed.ErrorCode)
		accepting := code == core.ResultSuccess || code == core.ResultWarning
		switch {
		case accepting && statusCode == http.StatusOK:
			return &core.SendResponse{
				Result:             code,
				TransactionReceipt: parsed.TransactionReceipt,
				MessageResults:     parsed.MessageResults,
			}
		case !accepting && code.Known():
			return &core.SendResponse{
				Result:          code,
				ResponseMessage: messageForCode(code),
				MessageResults:  parsed.MessageResults,
			}
		}
		// An accepting code on a non-200 reply, or an unrecognized code:
		// classify by status instead.
	}

	// No recognizable error code in the body; classify by status.
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &core.SendResponse{
			Result:          core.ResultInvalidAuthentication,
			ResponseMessage: "authentication failed",
		}
	case statusCode >= http.StatusInternalServerError:
		return &core.SendResponse{
			Result:          core.ResultInternalError,
			ResponseMessage: "server returned an internal error",
		}
	default:
		return &core.SendResponse{
			Result:          core.ResultUnknownError,
			ResponseMessage: "unrecognized response from server",
		}
	}
}

// ParseTransportError normalizes a transport-level failure (no usable
// response at all) into a terminal UnknownError outcome. The caller must not
// additionally attempt to parse a response for the same send.
func ParseTransportError(err error) *core.SendResponse {
	resp := &core.SendResponse{Result: core.ResultUnknownError}
	if err != nil {
		resp.ResponseMessage = err.Error()
	}
	return resp
}

func messageForCode(code core.Result) string {
	switch code {
	case core.ResultInvalidAuthentication:
		return "the server id or api key was rejected"
	case core.ResultAccountDisabled:
		return "the sending account is disabled"
	case core.ResultTooManyRecipients:
		return "the message exceeds the recipient limit"
	case core.ResultEmailAddressValidationFailed:
		return "the server rejected an email address"
	case core.ResultRecipientValidationFailed:
		return "the server rejected the recipient list"
	case core.ResultMessageValidationFailed:
		return "the server rejected the message content"
	case core.ResultAttachmentValidationFailed:
		return "the server rejected an attachment"
	case core.ResultServerValidationFailed:
		return "the server id failed validation"
	case core.ResultInternalError:
		return "the server reported an internal error"
	default:
		return "the send failed with code " + code.String()
	}
}
