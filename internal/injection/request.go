// Package injection implements the wire protocol of the SocketLabs Injection
// API: building request payloads from validated messages and classifying the
// server's replies.
package injection

import (
	"context"
	"encoding/base64"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/mirriamronoh/socketlabs-go/internal/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is the top-level POST body sent to the Injection API.
type Request struct {
	ServerID int       `json:"serverId"`
	APIKey   string    `json:"apiKey"`
	Messages []Message `json:"messages"`
}

// Message is the wire shape of a single message within a Request.
type Message struct {
	Subject         string         `json:"subject"`
	From            Address        `json:"from"`
	ReplyTo         *Address       `json:"replyTo,omitempty"`
	To              []Address      `json:"to"`
	Cc              []Address      `json:"cc,omitempty"`
	Bcc             []Address      `json:"bcc,omitempty"`
	TextBody        string         `json:"textBody,omitempty"`
	HTMLBody        string         `json:"htmlBody,omitempty"`
	APITemplate     int            `json:"apiTemplate,omitempty"`
	CustomHeaders   []CustomHeader `json:"customHeaders,omitempty"`
	Attachments     []Attachment   `json:"attachments,omitempty"`
	MailingID       string         `json:"mailingId,omitempty"`
	MessageID       string         `json:"messageId,omitempty"`
	CharSet         string         `json:"charSet,omitempty"`
	MergeData       [][]MergeField `json:"mergeData,omitempty"`
	GlobalMergeData []MergeField   `json:"globalMergeData,omitempty"`
}

// Address is the wire shape of an email address.
type Address struct {
	EmailAddress string `json:"emailAddress"`
	FriendlyName string `json:"friendlyName,omitempty"`
}

// CustomHeader is the wire shape of a custom header entry.
type CustomHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attachment is the wire shape of an attachment. Content is always base64.
type Attachment struct {
	Name        string `json:"name"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	ContentID   string `json:"contentId,omitempty"`
}

// MergeField is the wire shape of a single merge-data substitution.
type MergeField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Factory converts validated message data into the wire shape the Injection
// API expects. It is stateless and safe for concurrent use.
type Factory struct{}

// NewFactory creates a request factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Generate builds the wire message for the given message data. Attachment
// content supplied as a file path is read here, which is the only blocking
// step; the context bounds it. Failures carry a *core.ResultError.
func (f *Factory) Generate(ctx context.Context, msg core.Message) (*Message, error) {
	switch m := msg.(type) {
	case *core.BasicMessage:
		return f.generateBasic(ctx, m)
	case *core.BulkMessage:
		return f.generateBulk(ctx, m)
	default:
		return nil, core.NewResultError(core.ResultMessageValidationFailed,
			"unsupported message type %T", msg)
	}
}

func (f *Factory) generateBasic(ctx context.Context, m *core.BasicMessage) (*Message, error) {
	wire := &Message{
		Subject:       m.Subject,
		From:          toAddress(m.From),
		To:            toAddresses(m.To),
		Cc:            toAddresses(m.Cc),
		Bcc:           toAddresses(m.Bcc),
		TextBody:      m.TextBody,
		HTMLBody:      m.HTMLBody,
		APITemplate:   m.APITemplate,
		CustomHeaders: toHeaders(m.CustomHeaders),
		MailingID:     m.MailingID,
		MessageID:     m.MessageID,
		CharSet:       m.CharSet,
	}
	if !m.ReplyTo.IsZero() {
		replyTo := toAddress(m.ReplyTo)
		wire.ReplyTo = &replyTo
	}

	attachments, err := f.resolveAttachments(ctx, m.Attachments)
	if err != nil {
		return nil, err
	}
	wire.Attachments = attachments

	return wire, nil
}

func (f *Factory) generateBulk(ctx context.Context, m *core.BulkMessage) (*Message, error) {
	wire := &Message{
		Subject:         m.Subject,
		From:            toAddress(m.From),
		TextBody:        m.TextBody,
		HTMLBody:        m.HTMLBody,
		APITemplate:     m.APITemplate,
		CustomHeaders:   toHeaders(m.CustomHeaders),
		GlobalMergeData: toMergeFields(m.GlobalMergeData),
		MailingID:       m.MailingID,
		MessageID:       m.MessageID,
		CharSet:         m.CharSet,
	}
	if !m.ReplyTo.IsZero() {
		replyTo := toAddress(m.ReplyTo)
		wire.ReplyTo = &replyTo
	}

	// Each recipient's merge data is carried positionally: mergeData[i]
	// belongs to to[i].
	wire.To = make([]Address, len(m.To))
	hasMergeData := len(m.GlobalMergeData) > 0
	mergeData := make([][]MergeField, len(m.To))
	for i, rcpt := range m.To {
		wire.To[i] = toAddress(rcpt.EmailAddress)
		mergeData[i] = toMergeFields(rcpt.MergeData)
		if len(rcpt.MergeData) > 0 {
			hasMergeData = true
		}
	}
	if hasMergeData {
		wire.MergeData = mergeData
	}

	attachments, err := f.resolveAttachments(ctx, m.Attachments)
	if err != nil {
		return nil, err
	}
	wire.Attachments = attachments

	return wire, nil
}

// resolveAttachments resolves each attachment's content source and encodes it
// as base64 for the wire.
func (f *Factory) resolveAttachments(ctx context.Context, attachments []core.Attachment) ([]Attachment, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	wire := make([]Attachment, 0, len(attachments))
	for _, a := range attachments {
		content := a.Content
		if len(content) == 0 {
			// No inline bytes: the file path is the content source. An
			// empty file is a legitimate attachment; only a missing
			// source is an error.
			if a.FilePath == "" {
				return nil, core.NewResultError(core.ResultAttachmentValidationFailed,
					"attachment %q has no content", a.Name)
			}
			if err := ctx.Err(); err != nil {
				return nil, &core.ResultError{
					Code:    core.ResultAttachmentValidationFailed,
					Message: "attachment resolution canceled",
					Cause:   err,
				}
			}
			data, err := os.ReadFile(a.FilePath)
			if err != nil {
				return nil, &core.ResultError{
					Code:    core.ResultAttachmentValidationFailed,
					Message: "failed to read attachment " + a.Name,
					Cause:   err,
				}
			}
			content = data
		}

		wire = append(wire, Attachment{
			Name:        a.Name,
			Content:     base64.StdEncoding.EncodeToString(content),
			ContentType: a.DetectContentType(),
			ContentID:   a.ContentID,
		})
	}

	return wire, nil
}

// EncodeRequest serializes the request into its JSON wire form.
func EncodeRequest(req *Request) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &core.ResultError{
			Code:    core.ResultUnknownError,
			Message: "failed to encode request",
			Cause:   err,
		}
	}
	return body, nil
}

func toAddress(a core.EmailAddress) Address {
	return Address{EmailAddress: a.Email, FriendlyName: a.FriendlyName}
}

func toAddresses(addrs []core.EmailAddress) []Address {
	if len(addrs) == 0 {
		return nil
	}
	wire := make([]Address, len(addrs))
	for i, a := range addrs {
		wire[i] = toAddress(a)
	}
	return wire
}

func toHeaders(headers []core.CustomHeader) []CustomHeader {
	if len(headers) == 0 {
		return nil
	}
	wire := make([]CustomHeader, len(headers))
	for i, h := range headers {
		wire[i] = CustomHeader{Name: h.Name, Value: h.Value}
	}
	return wire
}

func toMergeFields(data []core.MergeData) []MergeField {
	if len(data) == 0 {
		return nil
	}
	wire := make([]MergeField, len(data))
	for i, d := range data {
		wire[i] = MergeField{Field: d.Field, Value: d.Value}
	}
	return wire
}
