// Package socketlabs provides a Go client for the SocketLabs Injection API,
// focused on transactional email: composing basic or bulk messages,
// validating them locally, and classifying the server's reply into a closed
// set of typed result codes.
//
// # Basic Usage
//
//	config := socketlabs.DefaultConfig()
//	config.ServerID = 12345
//	config.APIKey = "your-api-key"
//
//	client, err := socketlabs.New(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	msg := &socketlabs.BasicMessage{
//		Subject:  "Welcome",
//		From:     socketlabs.EmailAddress{Email: "noreply@example.com"},
//		To:       []socketlabs.EmailAddress{{Email: "user@example.com"}},
//		HTMLBody: "<h1>Welcome!</h1>",
//		TextBody: "Welcome!",
//	}
//
//	resp, err := client.Send(context.Background(), msg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("receipt:", resp.TransactionReceipt)
//
// # Bulk Sends
//
// A BulkMessage carries one template and many recipients, each with its own
// merge data plus optional global merge data applied to every recipient:
//
//	msg := &socketlabs.BulkMessage{
//		Subject:  "Hello %%name%%",
//		From:     socketlabs.EmailAddress{Email: "noreply@example.com"},
//		TextBody: "Your code is %%code%%",
//		To: []socketlabs.BulkRecipient{
//			{
//				EmailAddress: socketlabs.EmailAddress{Email: "a@example.com"},
//				MergeData:    []socketlabs.MergeData{{Field: "code", Value: "1234"}},
//			},
//		},
//		GlobalMergeData: []socketlabs.MergeData{{Field: "name", Value: "friend"}},
//	}
//
// # Results
//
// Every send resolves to a SendResponse whose Result is drawn from one closed
// enumeration shared by local validation and server-side classification. A
// non-Success outcome is also returned as a *SendError, so both errors.As and
// direct response inspection work:
//
//	resp, err := client.Send(ctx, msg)
//	var sendErr *socketlabs.SendError
//	if errors.As(err, &sendErr) {
//		switch sendErr.Result() {
//		case socketlabs.ResultInvalidAuthentication:
//			// rotate credentials
//		case socketlabs.ResultRecipientValidationFailed:
//			// fix the recipient list
//		}
//	}
//
// # Features
//
//   - Basic and bulk message shapes with an explicit discriminator
//   - Local validation that short-circuits on the first violation
//   - Attachments from inline bytes or file paths, base64-encoded on the wire
//   - Per-client endpoint, timeout, and proxy configuration
//   - Distributed tracing with OpenTelemetry
//   - Context-aware, thread-safe operations
//
// The client never retries and enforces no rate limits; those policies belong
// to the caller.
package socketlabs
