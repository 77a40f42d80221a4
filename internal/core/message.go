package core

import (
	"mime"
	"net/mail"
	"path/filepath"
	"strings"
)

// MessageType discriminates the two message shapes the Injection API accepts.
// Every message carries exactly one of these, and consumers switch on it
// exhaustively instead of probing for fields.
type MessageType string

const (
	// MessageTypeBasic is a single email addressed to explicit To/Cc/Bcc lists.
	MessageTypeBasic MessageType = "basic"

	// MessageTypeBulk is one template sent to many recipients, each with
	// individualized merge data.
	MessageTypeBulk MessageType = "bulk"
)

// Message is the sealed union of BasicMessage and BulkMessage.
type Message interface {
	// Type returns the shape discriminator.
	Type() MessageType
}

// EmailAddress represents an email address with optional display name.
// It is used for From, ReplyTo, To, Cc, and Bcc entries.
type EmailAddress struct {
	// Email is the address itself (required).
	Email string

	// FriendlyName is the display name (optional).
	FriendlyName string
}

// String returns the formatted address, "Name <email@domain.com>" when a
// friendly name is set.
func (a EmailAddress) String() string {
	if a.FriendlyName != "" {
		return mime.QEncoding.Encode("UTF-8", a.FriendlyName) + " <" + a.Email + ">"
	}
	return a.Email
}

// Valid checks if the address has a valid email format.
func (a EmailAddress) Valid() bool {
	if a.Email == "" {
		return false
	}
	_, err := mail.ParseAddress(a.String())
	return err == nil
}

// IsZero reports whether the address is unset.
func (a EmailAddress) IsZero() bool {
	return a.Email == "" && a.FriendlyName == ""
}

// Attachment represents a file attachment. Content may be supplied inline or
// resolved from FilePath when the wire request is built.
type Attachment struct {
	// Name is the filename as it will appear in the email (required).
	Name string

	// ContentType is the MIME content type. If empty, it is detected from the
	// filename extension when the request is built.
	ContentType string

	// Content is the raw attachment data, supplied inline.
	Content []byte

	// FilePath is an alternative content source, read when the wire request
	// is built. Ignored when Content is set.
	FilePath string

	// ContentID references an inline attachment from HTML via cid:<ContentID>.
	ContentID string
}

// DetectContentType returns the attachment's content type, inferring it from
// the filename extension when unset.
func (a *Attachment) DetectContentType() string {
	if a.ContentType != "" {
		return a.ContentType
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(a.Name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// HasContent reports whether the attachment carries a content source.
func (a *Attachment) HasContent() bool {
	return len(a.Content) > 0 || a.FilePath != ""
}

// CustomHeader is a single name/value header entry attached to a message.
// Both fields must be non-empty.
type CustomHeader struct {
	Name  string
	Value string
}

// MergeData is a single named substitution applied into a message template,
// either per recipient or globally.
type MergeData struct {
	// Field is the substitution name (required, non-empty).
	Field string

	// Value is the substitution value.
	Value string
}

// BulkRecipient is a recipient of a bulk send together with the merge data
// specific to it.
type BulkRecipient struct {
	EmailAddress

	// MergeData contains the per-recipient substitutions, in order.
	MergeData []MergeData
}

// BasicMessage is a single email addressed to explicit recipient lists.
type BasicMessage struct {
	// Subject is the message subject (required).
	Subject string

	// From is the sender address (required).
	From EmailAddress

	// ReplyTo is the reply-to address (optional).
	ReplyTo EmailAddress

	// To, Cc, and Bcc are the recipient lists. At least one To entry is
	// required.
	To  []EmailAddress
	Cc  []EmailAddress
	Bcc []EmailAddress

	// TextBody and HTMLBody are the message bodies. At least one is required
	// unless APITemplate is set.
	TextBody string
	HTMLBody string

	// APITemplate is a server-side template id that supplies the body
	// (optional).
	APITemplate int

	// Attachments are the file attachments (optional).
	Attachments []Attachment

	// CustomHeaders are additional headers, in order (optional).
	CustomHeaders []CustomHeader

	// MessageID and MailingID tag the message for reporting (optional).
	MessageID string
	MailingID string

	// CharSet overrides the message character set (optional).
	CharSet string
}

// Type returns the shape discriminator.
func (m *BasicMessage) Type() MessageType {
	return MessageTypeBasic
}

// TotalRecipients returns the total recipient count across To, Cc, and Bcc.
func (m *BasicMessage) TotalRecipients() int {
	return len(m.To) + len(m.Cc) + len(m.Bcc)
}

// HasBody reports whether the message carries body content, either directly
// or via a server-side template.
func (m *BasicMessage) HasBody() bool {
	return strings.TrimSpace(m.TextBody) != "" ||
		strings.TrimSpace(m.HTMLBody) != "" ||
		m.APITemplate > 0
}

// BulkMessage is one message template sent to many recipients with
// individualized merge data. It has no Cc or Bcc lists.
type BulkMessage struct {
	// Subject is the message subject (required).
	Subject string

	// From is the sender address (required).
	From EmailAddress

	// ReplyTo is the reply-to address (optional).
	ReplyTo EmailAddress

	// To contains the recipients with their per-recipient merge data. At
	// least one entry is required.
	To []BulkRecipient

	// TextBody and HTMLBody are the message bodies. At least one is required
	// unless APITemplate is set.
	TextBody string
	HTMLBody string

	// APITemplate is a server-side template id that supplies the body
	// (optional).
	APITemplate int

	// GlobalMergeData contains substitutions applied to every recipient
	// (optional).
	GlobalMergeData []MergeData

	// Attachments are the file attachments (optional).
	Attachments []Attachment

	// CustomHeaders are additional headers, in order (optional).
	CustomHeaders []CustomHeader

	// MessageID and MailingID tag the message for reporting (optional).
	MessageID string
	MailingID string

	// CharSet overrides the message character set (optional).
	CharSet string
}

// Type returns the shape discriminator.
func (m *BulkMessage) Type() MessageType {
	return MessageTypeBulk
}

// TotalRecipients returns the recipient count.
func (m *BulkMessage) TotalRecipients() int {
	return len(m.To)
}

// HasBody reports whether the message carries body content, either directly
// or via a server-side template.
func (m *BulkMessage) HasBody() bool {
	return strings.TrimSpace(m.TextBody) != "" ||
		strings.TrimSpace(m.HTMLBody) != "" ||
		m.APITemplate > 0
}
