package core

import "strings"

// DefaultMaxRecipients is the recipient cap applied when the caller does not
// configure one. It mirrors the Injection API's documented per-message limit.
const DefaultMaxRecipients = 50

// Validator checks credentials and message shapes before a send. It is
// stateless apart from the configured recipient cap, has no side effects, and
// short-circuits on the first violation found.
type Validator struct {
	maxRecipients int
}

// NewValidator creates a validator with the given recipient cap. A
// non-positive cap falls back to DefaultMaxRecipients.
func NewValidator(maxRecipients int) *Validator {
	if maxRecipients <= 0 {
		maxRecipients = DefaultMaxRecipients
	}
	return &Validator{maxRecipients: maxRecipients}
}

// ValidateCredentials checks the server id and API key pair.
func (v *Validator) ValidateCredentials(serverID int, apiKey string) ValidationResult {
	if serverID <= 0 {
		return Invalid(ResultInvalidServerID, "server id must be a positive integer, got %d", serverID)
	}
	if strings.TrimSpace(apiKey) == "" {
		return Invalid(ResultInvalidAPIKey, "api key is required")
	}
	return Valid()
}

// ValidateMessage dispatches on the message discriminator and checks the
// corresponding shape.
func (v *Validator) ValidateMessage(msg Message) ValidationResult {
	switch m := msg.(type) {
	case *BasicMessage:
		return v.validateBasic(m)
	case *BulkMessage:
		return v.validateBulk(m)
	default:
		return Invalid(ResultMessageValidationFailed, "unsupported message type %T", msg)
	}
}

func (v *Validator) validateBasic(m *BasicMessage) ValidationResult {
	if !m.From.Valid() {
		return Invalid(ResultEmailAddressValidationFailed, "from address %q is missing or malformed", m.From.Email)
	}
	if !m.ReplyTo.IsZero() && !m.ReplyTo.Valid() {
		return Invalid(ResultEmailAddressValidationFailed, "reply-to address %q is malformed", m.ReplyTo.Email)
	}
	if len(m.To) == 0 {
		return Invalid(ResultRecipientValidationFailed, "at least one recipient is required")
	}
	if n := m.TotalRecipients(); n > v.maxRecipients {
		return Invalid(ResultRecipientValidationFailed, "message has %d recipients, the limit is %d", n, v.maxRecipients)
	}
	for _, list := range []struct {
		field string
		addrs []EmailAddress
	}{
		{"to", m.To},
		{"cc", m.Cc},
		{"bcc", m.Bcc},
	} {
		for i, addr := range list.addrs {
			if !addr.Valid() {
				return Invalid(ResultRecipientValidationFailed, "%s address %q at index %d is malformed", list.field, addr.Email, i)
			}
		}
	}
	if r := v.validateContent(m.Subject, m.HasBody()); !r.OK() {
		return r
	}
	if r := v.validateHeaders(m.CustomHeaders); !r.OK() {
		return r
	}
	return v.validateAttachments(m.Attachments)
}

func (v *Validator) validateBulk(m *BulkMessage) ValidationResult {
	if !m.From.Valid() {
		return Invalid(ResultEmailAddressValidationFailed, "from address %q is missing or malformed", m.From.Email)
	}
	if !m.ReplyTo.IsZero() && !m.ReplyTo.Valid() {
		return Invalid(ResultEmailAddressValidationFailed, "reply-to address %q is malformed", m.ReplyTo.Email)
	}
	if len(m.To) == 0 {
		return Invalid(ResultRecipientValidationFailed, "at least one recipient is required")
	}
	if n := len(m.To); n > v.maxRecipients {
		return Invalid(ResultRecipientValidationFailed, "message has %d recipients, the limit is %d", n, v.maxRecipients)
	}
	for i, rcpt := range m.To {
		if !rcpt.Valid() {
			return Invalid(ResultRecipientValidationFailed, "recipient %q at index %d is malformed", rcpt.Email, i)
		}
		if r := v.validateMergeData(rcpt.MergeData); !r.OK() {
			return r
		}
	}
	if r := v.validateMergeData(m.GlobalMergeData); !r.OK() {
		return r
	}
	if r := v.validateContent(m.Subject, m.HasBody()); !r.OK() {
		return r
	}
	if r := v.validateHeaders(m.CustomHeaders); !r.OK() {
		return r
	}
	return v.validateAttachments(m.Attachments)
}

func (v *Validator) validateContent(subject string, hasBody bool) ValidationResult {
	if strings.TrimSpace(subject) == "" {
		return Invalid(ResultMessageValidationFailed, "subject is required")
	}
	if !hasBody {
		return Invalid(ResultMessageValidationFailed, "either a text body, an HTML body, or an API template is required")
	}
	return Valid()
}

func (v *Validator) validateHeaders(headers []CustomHeader) ValidationResult {
	for i, h := range headers {
		if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Value) == "" {
			return Invalid(ResultMessageValidationFailed, "custom header at index %d must have a name and value", i)
		}
	}
	return Valid()
}

func (v *Validator) validateMergeData(data []MergeData) ValidationResult {
	for i, d := range data {
		if strings.TrimSpace(d.Field) == "" {
			return Invalid(ResultMessageValidationFailed, "merge data entry at index %d must have a field name", i)
		}
	}
	return Valid()
}

func (v *Validator) validateAttachments(attachments []Attachment) ValidationResult {
	for i, a := range attachments {
		if strings.TrimSpace(a.Name) == "" {
			return Invalid(ResultAttachmentValidationFailed, "attachment at index %d is missing a name", i)
		}
		if !a.HasContent() {
			return Invalid(ResultAttachmentValidationFailed, "attachment %q has no content", a.Name)
		}
	}
	return Valid()
}
