package socketlabs

import (
	"context"
)

// Sender defines the core sending interface. All methods are safe for
// concurrent use.
type Sender interface {
	// Send validates the message, builds the wire request, POSTs it to the
	// Injection API, and classifies the reply. The returned SendResponse is
	// always non-nil; when its Result is not Success the error is a
	// *SendError carrying the same response.
	Send(ctx context.Context, msg Message) (*SendResponse, error)
}
