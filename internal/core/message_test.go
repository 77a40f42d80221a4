package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailAddressString(t *testing.T) {
	tests := []struct {
		name string
		addr EmailAddress
		want string
	}{
		{
			name: "bare address",
			addr: EmailAddress{Email: "user@example.com"},
			want: "user@example.com",
		},
		{
			name: "with friendly name",
			addr: EmailAddress{Email: "user@example.com", FriendlyName: "User"},
			want: "User <user@example.com>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestEmailAddressValid(t *testing.T) {
	tests := []struct {
		name string
		addr EmailAddress
		want bool
	}{
		{"valid", EmailAddress{Email: "user@example.com"}, true},
		{"valid with name", EmailAddress{Email: "user@example.com", FriendlyName: "User"}, true},
		{"empty", EmailAddress{}, false},
		{"missing domain", EmailAddress{Email: "user@"}, false},
		{"missing local part", EmailAddress{Email: "@example.com"}, false},
		{"not an address", EmailAddress{Email: "not-an-address"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.Valid())
		})
	}
}

func TestAttachmentDetectContentType(t *testing.T) {
	tests := []struct {
		name       string
		attachment Attachment
		want       string
	}{
		{
			name:       "explicit type wins",
			attachment: Attachment{Name: "report.pdf", ContentType: "application/x-custom"},
			want:       "application/x-custom",
		},
		{
			name:       "detected from extension",
			attachment: Attachment{Name: "report.pdf"},
			want:       "application/pdf",
		},
		{
			name:       "unknown extension falls back",
			attachment: Attachment{Name: "data.unknownext"},
			want:       "application/octet-stream",
		},
		{
			name:       "no extension falls back",
			attachment: Attachment{Name: "README"},
			want:       "application/octet-stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attachment.DetectContentType())
		})
	}
}

func TestBasicMessageTotalRecipients(t *testing.T) {
	msg := &BasicMessage{
		To:  []EmailAddress{{Email: "a@example.com"}, {Email: "b@example.com"}},
		Cc:  []EmailAddress{{Email: "c@example.com"}},
		Bcc: []EmailAddress{{Email: "d@example.com"}},
	}
	assert.Equal(t, 4, msg.TotalRecipients())
}

func TestBasicMessageHasBody(t *testing.T) {
	assert.False(t, (&BasicMessage{}).HasBody())
	assert.True(t, (&BasicMessage{TextBody: "text"}).HasBody())
	assert.True(t, (&BasicMessage{HTMLBody: "<p>html</p>"}).HasBody())
	assert.True(t, (&BasicMessage{APITemplate: 7}).HasBody())
	assert.False(t, (&BasicMessage{TextBody: "   "}).HasBody())
}

func TestMessageTypeDiscriminator(t *testing.T) {
	var basic Message = &BasicMessage{}
	var bulk Message = &BulkMessage{}
	assert.Equal(t, MessageTypeBasic, basic.Type())
	assert.Equal(t, MessageTypeBulk, bulk.Type())
}
