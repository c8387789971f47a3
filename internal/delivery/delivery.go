// Package delivery defines the inbound transport contract.
package delivery

import "context"

// Delivery is implemented by every inbound server the application runs.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
