// Package delivery holds the transports that drive the listing pipeline.
package delivery

import "context"

// Delivery is a long-running entry point started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
