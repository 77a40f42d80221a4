package socketlabs

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mirriamronoh/socketlabs-go/internal/core"
	"github.com/mirriamronoh/socketlabs-go/internal/injection"
	"github.com/mirriamronoh/socketlabs-go/internal/transport"
)

// Type aliases to re-export core types for the public API.
// This allows users to access types like socketlabs.BasicMessage instead of
// core.BasicMessage, maintaining a clean public interface while keeping
// implementation details internal.
type (
	Result           = core.Result
	ValidationResult = core.ValidationResult
	SendResponse     = core.SendResponse
	MessageResult    = core.MessageResult
	AddressResult    = core.AddressResult
	Message          = core.Message
	MessageType      = core.MessageType
	EmailAddress     = core.EmailAddress
	Attachment       = core.Attachment
	CustomHeader     = core.CustomHeader
	MergeData        = core.MergeData
	BulkRecipient    = core.BulkRecipient
	BasicMessage     = core.BasicMessage
	BulkMessage      = core.BulkMessage
)

// Message type discriminators.
const (
	MessageTypeBasic = core.MessageTypeBasic
	MessageTypeBulk  = core.MessageTypeBulk
)

// Result codes shared by local validation and response classification.
const (
	ResultSuccess                      = core.ResultSuccess
	ResultWarning                      = core.ResultWarning
	ResultInvalidServerID              = core.ResultInvalidServerID
	ResultInvalidAPIKey                = core.ResultInvalidAPIKey
	ResultInvalidAuthentication        = core.ResultInvalidAuthentication
	ResultAccountDisabled              = core.ResultAccountDisabled
	ResultEmailAddressValidationFailed = core.ResultEmailAddressValidationFailed
	ResultRecipientValidationFailed    = core.ResultRecipientValidationFailed
	ResultMessageValidationFailed      = core.ResultMessageValidationFailed
	ResultAttachmentValidationFailed   = core.ResultAttachmentValidationFailed
	ResultTooManyRecipients            = core.ResultTooManyRecipients
	ResultServerValidationFailed       = core.ResultServerValidationFailed
	ResultInternalError                = core.ResultInternalError
	ResultUnknownError                 = core.ResultUnknownError
)

// DefaultMaxRecipients is the recipient cap applied when none is configured.
const DefaultMaxRecipients = core.DefaultMaxRecipients

// Client implements the Sender interface for the SocketLabs Injection API.
// Each Send constructs its own request state; the only shared data is the
// immutable configuration, so all methods are safe for concurrent use.
type Client struct {
	config    Config
	validator *core.Validator
	factory   *injection.Factory
	transport *transport.Client
	tracer    trace.Tracer
}

// New creates a client for the given configuration.
func New(config Config, opts ...Option) (*Client, error) {
	// Apply functional options
	for _, opt := range opts {
		opt(&config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	tr, err := transport.New(transport.Options{
		Endpoint:   config.EndpointURL,
		UserAgent:  UserAgent(),
		ProxyURL:   config.ProxyURL,
		Timeout:    config.Timeout,
		HTTPClient: config.HTTPClient,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		config:    config,
		validator: core.NewValidator(config.MaxRecipients),
		factory:   injection.NewFactory(),
		transport: tr,
		tracer:    otel.Tracer("github.com/mirriamronoh/socketlabs-go"),
	}, nil
}

// Send sends a single basic or bulk message. The returned SendResponse is
// always non-nil for a well-formed call; when the result is not Success the
// error is a *SendError carrying the same response, so callers may inspect
// either.
func (c *Client) Send(ctx context.Context, msg Message) (*SendResponse, error) {
	ctx, span := c.tracer.Start(ctx, "socketlabs.Client.Send")
	defer span.End()

	if msg == nil {
		span.RecordError(ErrNilMessage)
		span.SetStatus(codes.Error, ErrNilMessage.Error())
		return nil, ErrNilMessage
	}

	span.SetAttributes(
		attribute.Int("socketlabs.server_id", c.config.ServerID),
		attribute.String("socketlabs.message_type", string(msg.Type())),
		attribute.Int("socketlabs.recipients", recipientCount(msg)),
	)

	// Step 1: credentials.
	if vr := c.validator.ValidateCredentials(c.config.ServerID, c.config.APIKey); !vr.OK() {
		return c.reject(span, vr.Code, vr.Message)
	}

	// Step 2: message shape.
	if vr := c.validator.ValidateMessage(msg); !vr.OK() {
		return c.reject(span, vr.Code, vr.Message)
	}

	// Step 3: wire request.
	wire, err := c.factory.Generate(ctx, msg)
	if err != nil {
		var re *core.ResultError
		if errors.As(err, &re) {
			return c.reject(span, re.Code, re.Message)
		}
		return c.reject(span, ResultUnknownError, err.Error())
	}

	body, err := injection.EncodeRequest(&injection.Request{
		ServerID: c.config.ServerID,
		APIKey:   c.config.APIKey,
		Messages: []injection.Message{*wire},
	})
	if err != nil {
		return c.reject(span, ResultUnknownError, err.Error())
	}

	// Step 4: POST. A transport failure is terminal for this send; the raw
	// error is normalized to UnknownError and no response parsing follows.
	raw, err := c.transport.Post(ctx, body)
	if err != nil {
		resp := injection.ParseTransportError(err)
		sendErr := &SendError{Response: resp}
		span.RecordError(sendErr)
		span.SetStatus(codes.Error, "transport failure")
		return resp, sendErr
	}

	// Step 5: classify the reply.
	resp := injection.Parse(raw.StatusCode, raw.Body)
	if !resp.Success() {
		sendErr := &SendError{Response: resp}
		span.RecordError(sendErr)
		span.SetStatus(codes.Error, resp.Result.String())
		return resp, sendErr
	}

	span.SetAttributes(attribute.String("socketlabs.transaction_receipt", resp.TransactionReceipt))
	span.SetStatus(codes.Ok, "message accepted")
	return resp, nil
}

// reject resolves a local failure into a typed outcome.
func (c *Client) reject(span trace.Span, code Result, message string) (*SendResponse, error) {
	resp := &SendResponse{Result: code, ResponseMessage: message}
	err := &SendError{Response: resp}
	span.RecordError(err)
	span.SetStatus(codes.Error, code.String())
	return resp, err
}

func recipientCount(msg Message) int {
	switch m := msg.(type) {
	case *BasicMessage:
		return m.TotalRecipients()
	case *BulkMessage:
		return m.TotalRecipients()
	default:
		return 0
	}
}
