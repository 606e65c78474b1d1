// Package delivery defines the transports that expose the application.
package delivery

import "context"

// Delivery is a serving entry point (HTTP server, worker, etc.) whose
// lifecycle is owned by the application container.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
