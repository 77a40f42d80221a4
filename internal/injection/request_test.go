package injection

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirriamronoh/socketlabs-go/internal/core"
)

func TestGenerateBasic(t *testing.T) {
	factory := NewFactory()

	msg := &core.BasicMessage{
		Subject:  "Hi",
		From:     core.EmailAddress{Email: "a@x.com"},
		To:       []core.EmailAddress{{Email: "b@x.com"}},
		TextBody: "body",
	}

	wire, err := factory.Generate(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, "Hi", wire.Subject)
	assert.Equal(t, Address{EmailAddress: "a@x.com"}, wire.From)
	assert.Equal(t, []Address{{EmailAddress: "b@x.com"}}, wire.To)
	assert.Equal(t, "body", wire.TextBody)
	assert.Nil(t, wire.ReplyTo)
	assert.Empty(t, wire.Cc)
	assert.Empty(t, wire.Bcc)
	assert.Empty(t, wire.MergeData)
}

func TestGenerateBasicFullShape(t *testing.T) {
	factory := NewFactory()

	msg := &core.BasicMessage{
		Subject:  "Quarterly report",
		From:     core.EmailAddress{Email: "sender@x.com", FriendlyName: "Sender"},
		ReplyTo:  core.EmailAddress{Email: "replies@x.com"},
		To:       []core.EmailAddress{{Email: "to@x.com", FriendlyName: "To"}},
		Cc:       []core.EmailAddress{{Email: "cc@x.com"}},
		Bcc:      []core.EmailAddress{{Email: "bcc@x.com"}},
		HTMLBody: "<p>report attached</p>",
		Attachments: []core.Attachment{
			{Name: "report.txt", Content: []byte("numbers"), ContentID: "report"},
		},
		CustomHeaders: []core.CustomHeader{{Name: "X-Campaign", Value: "q3"}},
		MessageID:     "msg-1",
		MailingID:     "mailing-1",
		CharSet:       "utf-8",
	}

	wire, err := factory.Generate(context.Background(), msg)
	require.NoError(t, err)

	require.NotNil(t, wire.ReplyTo)
	assert.Equal(t, "replies@x.com", wire.ReplyTo.EmailAddress)
	assert.Equal(t, "Sender", wire.From.FriendlyName)
	assert.Equal(t, []Address{{EmailAddress: "cc@x.com"}}, wire.Cc)
	assert.Equal(t, []Address{{EmailAddress: "bcc@x.com"}}, wire.Bcc)
	assert.Equal(t, []CustomHeader{{Name: "X-Campaign", Value: "q3"}}, wire.CustomHeaders)
	assert.Equal(t, "msg-1", wire.MessageID)
	assert.Equal(t, "mailing-1", wire.MailingID)
	assert.Equal(t, "utf-8", wire.CharSet)

	require.Len(t, wire.Attachments, 1)
	att := wire.Attachments[0]
	assert.Equal(t, "report.txt", att.Name)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("numbers")), att.Content)
	assert.Equal(t, "report", att.ContentID)
	assert.Contains(t, att.ContentType, "text/plain")
}

func TestGenerateBulkMergeDataAlignment(t *testing.T) {
	factory := NewFactory()

	msg := &core.BulkMessage{
		Subject:  "Hello %%name%%",
		From:     core.EmailAddress{Email: "a@x.com"},
		TextBody: "code %%code%%",
		To: []core.BulkRecipient{
			{
				EmailAddress: core.EmailAddress{Email: "r1@x.com"},
				MergeData:    []core.MergeData{{Field: "code", Value: "111"}},
			},
			{
				EmailAddress: core.EmailAddress{Email: "r2@x.com"},
			},
			{
				EmailAddress: core.EmailAddress{Email: "r3@x.com"},
				MergeData: []core.MergeData{
					{Field: "code", Value: "333"},
					{Field: "tier", Value: "gold"},
				},
			},
		},
		GlobalMergeData: []core.MergeData{{Field: "name", Value: "friend"}},
	}

	wire, err := factory.Generate(context.Background(), msg)
	require.NoError(t, err)

	// mergeData is positionally aligned with to, one entry per recipient.
	require.Len(t, wire.To, 3)
	require.Len(t, wire.MergeData, 3)
	assert.Equal(t, "r1@x.com", wire.To[0].EmailAddress)
	assert.Equal(t, []MergeField{{Field: "code", Value: "111"}}, wire.MergeData[0])
	assert.Empty(t, wire.MergeData[1])
	assert.Equal(t, []MergeField{
		{Field: "code", Value: "333"},
		{Field: "tier", Value: "gold"},
	}, wire.MergeData[2])

	assert.Equal(t, []MergeField{{Field: "name", Value: "friend"}}, wire.GlobalMergeData)
	assert.Empty(t, wire.Cc)
	assert.Empty(t, wire.Bcc)
}

func TestGenerateBulkWithoutMergeData(t *testing.T) {
	factory := NewFactory()

	msg := &core.BulkMessage{
		Subject:  "Hi",
		From:     core.EmailAddress{Email: "a@x.com"},
		TextBody: "body",
		To: []core.BulkRecipient{
			{EmailAddress: core.EmailAddress{Email: "r1@x.com"}},
		},
	}

	wire, err := factory.Generate(context.Background(), msg)
	require.NoError(t, err)
	assert.Nil(t, wire.MergeData)
	assert.Nil(t, wire.GlobalMergeData)
}

func TestGenerateResolvesFileAttachment(t *testing.T) {
	factory := NewFactory()

	path := filepath.Join(t.TempDir(), "invoice.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c"), 0o600))

	msg := &core.BasicMessage{
		Subject:  "Invoice",
		From:     core.EmailAddress{Email: "a@x.com"},
		To:       []core.EmailAddress{{Email: "b@x.com"}},
		TextBody: "attached",
		Attachments: []core.Attachment{
			{Name: "invoice.csv", FilePath: path},
		},
	}

	wire, err := factory.Generate(context.Background(), msg)
	require.NoError(t, err)
	require.Len(t, wire.Attachments, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("a,b,c")), wire.Attachments[0].Content)
}

func TestGenerateResolvesEmptyFileAttachment(t *testing.T) {
	factory := NewFactory()

	path := filepath.Join(t.TempDir(), "placeholder.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	msg := &core.BasicMessage{
		Subject:  "Placeholder",
		From:     core.EmailAddress{Email: "a@x.com"},
		To:       []core.EmailAddress{{Email: "b@x.com"}},
		TextBody: "attached",
		Attachments: []core.Attachment{
			{Name: "placeholder.txt", FilePath: path},
		},
	}

	wire, err := factory.Generate(context.Background(), msg)
	require.NoError(t, err)
	require.Len(t, wire.Attachments, 1)
	assert.Equal(t, "", wire.Attachments[0].Content)
}

func TestGenerateAttachmentFailures(t *testing.T) {
	factory := NewFactory()

	tests := []struct {
		name       string
		attachment core.Attachment
	}{
		{"unreadable file", core.Attachment{Name: "missing.txt", FilePath: "/nonexistent/missing.txt"}},
		{"no content source", core.Attachment{Name: "empty.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &core.BasicMessage{
				Subject:     "Hi",
				From:        core.EmailAddress{Email: "a@x.com"},
				To:          []core.EmailAddress{{Email: "b@x.com"}},
				TextBody:    "body",
				Attachments: []core.Attachment{tt.attachment},
			}

			_, err := factory.Generate(context.Background(), msg)
			var re *core.ResultError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, core.ResultAttachmentValidationFailed, re.Code)
		})
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	factory := NewFactory()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := &core.BasicMessage{
		Subject:     "Hi",
		From:        core.EmailAddress{Email: "a@x.com"},
		To:          []core.EmailAddress{{Email: "b@x.com"}},
		TextBody:    "body",
		Attachments: []core.Attachment{{Name: "f.txt", FilePath: "/tmp/f.txt"}},
	}

	_, err := factory.Generate(ctx, msg)
	var re *core.ResultError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, core.ResultAttachmentValidationFailed, re.Code)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGenerateUnsupportedType(t *testing.T) {
	factory := NewFactory()

	_, err := factory.Generate(context.Background(), nil)
	var re *core.ResultError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, core.ResultMessageValidationFailed, re.Code)
}

func TestRequestRoundTrip(t *testing.T) {
	// Serialization is lossless for the documented schema: encoding a request
	// and decoding it back yields the same subject/from/to/body fields.
	req := &Request{
		ServerID: 123,
		APIKey:   "key",
		Messages: []Message{{
			Subject:  "Hi",
			From:     Address{EmailAddress: "a@x.com"},
			To:       []Address{{EmailAddress: "b@x.com"}},
			TextBody: "body",
		}},
	}

	body, err := EncodeRequest(req)
	require.NoError(t, err)

	var decoded Request
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, *req, decoded)
}

func TestRequestWireFieldNames(t *testing.T) {
	req := &Request{
		ServerID: 123,
		APIKey:   "key",
		Messages: []Message{{
			Subject:  "Hi",
			From:     Address{EmailAddress: "a@x.com"},
			To:       []Address{{EmailAddress: "b@x.com"}},
			TextBody: "body",
		}},
	}

	body, err := EncodeRequest(req)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, float64(123), raw["serverId"])
	assert.Equal(t, "key", raw["apiKey"])

	msgs, ok := raw["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]any)
	assert.Equal(t, "Hi", msg["subject"])
	assert.Equal(t, map[string]any{"emailAddress": "a@x.com"}, msg["from"])
	assert.Equal(t, []any{map[string]any{"emailAddress": "b@x.com"}}, msg["to"])
	assert.Equal(t, "body", msg["textBody"])

	// Optional fields stay off the wire when unset.
	assert.NotContains(t, msg, "htmlBody")
	assert.NotContains(t, msg, "replyTo")
	assert.NotContains(t, msg, "mergeData")
	assert.NotContains(t, msg, "apiTemplate")
}
